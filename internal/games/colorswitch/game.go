package colorswitch

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-colorswitch/internal/config"
	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

// Wheel geometry in screen cells
const (
	WheelRadiusX = 7 // Horizontal radius (cells are about twice as tall as wide)
	WheelRadiusY = 3 // Vertical radius
	WheelInner   = 0.5
	WheelBottom  = 1 // Rows kept free under the wheel
	BallStartY   = 2 // Row where each ball appears
	MinFallRows  = 6 // Rows between spawn and contact, enough to react

	MinScreenW = 2*WheelRadiusX + 3
	MinScreenH = BallStartY + MinFallRows + 2*WheelRadiusY + WheelBottom + 2
)

type ballPhase int

const (
	ballFalling ballPhase = iota
	ballFading
	ballGone
)

// ball is the falling sprite. Its tint is fixed when it spawns.
type ball struct {
	y     float64 // Row, fractional
	vel   float64 // Rows per second, positive = down
	color Color
	phase ballPhase
	fade  int // Ticks left in the fade-out
}

// turn is the running quarter-turn animation of the wheel graphic.
type turn struct {
	dir   Direction
	left  int // Ticks remaining
	total int
}

// Game runs Color Switch on the platform tick loop: it integrates the fall
// of the ball, reports contact to the rules and draws the scene.
type Game struct {
	cfg      config.ColorSwitchConfig
	runtime  core.RuntimeConfig
	src      *rand.PCG
	machine  *Machine
	observer ContactObserver

	ball      ball
	next      Color
	hasNext   bool
	resolving bool
	turn      turn
	sounds    []core.Sound
	paused    bool
	tickCount int
	recordErr error
}

// Ensure Game receives the machine's intents
var _ Presenter = (*Game)(nil)

// New creates a game with the given tuning, preferences and score sink.
// recorder may be nil when no storage is available.
func New(cfg config.ColorSwitchConfig, settings Settings, recorder ScoreRecorder) *Game {
	src := rand.NewPCG(0, 0)
	m := NewMachine(Params{
		BaseGravity:      cfg.Physics.BaseGravity,
		GravityStep:      cfg.Physics.GravityStep,
		RotationDuration: cfg.Timing.RotationDuration(),
	}, settings, rand.New(src))

	g := &Game{
		cfg:      cfg,
		runtime:  core.DefaultConfig(),
		src:      src,
		machine:  m,
		observer: m,
	}
	m.SetPresenter(g)
	m.SetScoreRecorder(recorder)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "colorswitch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Switch"
}

// Machine exposes the rules driving this game.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Reset reseeds the color source and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg
	g.src.Seed(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15)

	g.paused = false
	g.tickCount = 0
	g.turn = turn{}
	g.hasNext = false
	g.resolving = false
	g.recordErr = nil
	g.sounds = nil

	g.machine.StartNewRun()
}

// Resize moves the wheel to match a new terminal size without ending the run.
// A ball below the new contact row touches the wheel on the next tick.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	// Nothing moves until the terminal is large enough to react in
	if g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	for i := 0; i < in.Count(core.ActionRotateLeft); i++ {
		g.machine.Rotate(CounterClockwise)
	}
	for i := 0; i < in.Count(core.ActionRotateRight); i++ {
		g.machine.Rotate(Clockwise)
	}

	if g.turn.left > 0 {
		g.turn.left--
	}

	switch g.ball.phase {
	case ballFalling:
		g.fall()
	case ballFading:
		g.ball.fade--
		if g.ball.fade <= 0 {
			g.ball.phase = ballGone
			if g.hasNext {
				g.hasNext = false
				g.drop(g.next)
			}
		}
	}

	result := core.StepResult{State: g.State(), Sounds: g.sounds}
	g.sounds = nil
	return result
}

// fall integrates one tick of motion and resolves contact with the wheel.
func (g *Game) fall() {
	dt := 1.0 / float64(g.runtime.TickRate)
	accel := -g.machine.Gravity() * g.cfg.Physics.RowsPerUnit
	g.ball.vel += accel * dt
	g.ball.y += g.ball.vel * dt

	contactY := float64(g.contactRow())
	if g.ball.y < contactY {
		return
	}
	g.ball.y = contactY

	g.resolving = true
	out := g.observer.BallContact()
	g.resolving = false

	switch out.Effect {
	case EffectScore:
		g.ball.phase = ballFading
		g.ball.fade = g.ticksFor(g.cfg.Timing.FadeDuration())
	case EffectGameOver:
		g.recordErr = out.RecordErr
	}
}

// drop places a fresh ball at the top of the play area.
func (g *Game) drop(c Color) {
	g.ball = ball{
		y:     BallStartY,
		color: c,
		phase: ballFalling,
	}
}

// ticksFor converts a duration to a whole number of ticks, at least one.
func (g *Game) ticksFor(d time.Duration) int {
	ticks := int(math.Ceil(d.Seconds() * float64(g.runtime.TickRate)))
	return core.Max(ticks, 1)
}

// wheelCenter returns the screen position of the wheel's center.
func (g *Game) wheelCenter() (int, int) {
	return g.runtime.ScreenW / 2, g.runtime.ScreenH - WheelBottom - WheelRadiusY - 1
}

// tooSmall reports whether the play area leaves less than MinFallRows
// between the spawn row and the wheel.
func (g *Game) tooSmall() bool {
	return g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH
}

// contactRow is the row on which a falling ball touches the wheel.
func (g *Game) contactRow() int {
	_, cy := g.wheelCenter()
	return cy - WheelRadiusY - 1
}

// SwitchRotated implements Presenter.
func (g *Game) SwitchRotated(dir Direction, duration time.Duration) {
	ticks := g.ticksFor(duration)
	g.turn = turn{dir: dir, left: ticks, total: ticks}
}

// BallSpawned implements Presenter. A ball spawned while the previous one is
// being settled waits for the fade-out to finish.
func (g *Game) BallSpawned(c Color) {
	if g.resolving {
		g.next = c
		g.hasNext = true
		return
	}
	g.drop(c)
}

// SoundRequested implements Presenter.
func (g *Game) SoundRequested() {
	g.sounds = append(g.sounds, core.SoundBling)
}

// RecordErr returns the persistence error of the last finished run, if any.
func (g *Game) RecordErr() error {
	return g.recordErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.machine.Score(),
		GameOver: g.machine.Over(),
		Paused:   g.paused,
	}
}
