// Package colorswitch implements Color Switch: a four-color wheel at the
// bottom of the screen must show the color of the falling ball when the
// ball lands on it.
//
// Machine holds the rules and nothing else. Game drives it from the
// platform tick loop, simulates the fall and draws the scene.
package colorswitch

import (
	"time"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

// Direction is the turn direction of the wheel.
type Direction int

const (
	Clockwise        Direction = iota // Right tap
	CounterClockwise                  // Left tap
)

// delta is the wheel slot change for one quarter turn.
func (d Direction) delta() int {
	if d == Clockwise {
		return -1
	}
	return 1
}

// String returns the direction name.
func (d Direction) String() string {
	if d == Clockwise {
		return "Clockwise"
	}
	return "CounterClockwise"
}

// Effect is what a processed event did to the run.
type Effect int

const (
	EffectContinue Effect = iota // Nothing scored, run goes on
	EffectScore                  // Ball matched, score went up
	EffectGameOver               // Ball mismatched, run ended
)

// Outcome is the result of resolving a contact.
type Outcome struct {
	Effect Effect
	Score  int // Score after the event; the final score on game over

	// RecordErr is set when the final score could not be persisted.
	// The run state is unaffected.
	RecordErr error
}

// Continuing reports whether the run is still alive.
func (o Outcome) Continuing() bool {
	return o.Effect != EffectGameOver
}

// Presenter receives the visual and audio intents of the machine.
type Presenter interface {
	// SwitchRotated asks for a quarter turn of the wheel graphic.
	SwitchRotated(dir Direction, duration time.Duration)
	// BallSpawned asks for a new ball of the given color at the top.
	BallSpawned(c Color)
	// SoundRequested asks for the score sound.
	SoundRequested()
}

// ScoreRecorder stores the result of a finished run.
// Implementations keep lastScore := final and highScore := max(highScore, final).
type ScoreRecorder interface {
	RecordRun(finalScore int) error
}

// ContactObserver is notified by the physics layer when the ball reaches
// the switch.
type ContactObserver interface {
	BallContact() Outcome
}

// Randomizer is the source of ball colors. *math/rand/v2.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Settings carries user preferences the rules depend on.
type Settings struct {
	SoundEnabled bool
}

// Params are the tuning constants of a run.
type Params struct {
	BaseGravity      float64       // Gravity at run start, negative = down
	GravityStep      float64       // Subtracted from gravity on every even score
	RotationDuration time.Duration // Forwarded to the presenter with each turn
}

// Machine is the game-state core. It is not safe for concurrent use; the
// owner of the tick loop is its only caller.
type Machine struct {
	params    Params
	settings  Settings
	rng       Randomizer
	presenter Presenter
	recorder  ScoreRecorder

	slot    int // Index into wheel of the color facing the ball
	ball    Color
	score   int
	gravity float64
	over    bool
}

// Ensure Machine can be driven by the physics layer
var _ ContactObserver = (*Machine)(nil)

// NewMachine creates an idle machine. No run is in progress until
// StartNewRun is called, so rotate and contact are ignored.
func NewMachine(p Params, s Settings, rng Randomizer) *Machine {
	return &Machine{
		params:   p,
		settings: s,
		rng:      rng,
		gravity:  p.BaseGravity,
		over:     true,
	}
}

// SetPresenter attaches the receiver of visual and audio intents.
func (m *Machine) SetPresenter(p Presenter) {
	m.presenter = p
}

// SetScoreRecorder attaches the persistence collaborator. Nil disables it.
func (m *Machine) SetScoreRecorder(r ScoreRecorder) {
	m.recorder = r
}

// SetSettings replaces the user preferences.
func (m *Machine) SetSettings(s Settings) {
	m.settings = s
}

// StartNewRun resets score, difficulty and orientation and drops a new ball.
func (m *Machine) StartNewRun() {
	m.score = 0
	m.gravity = m.params.BaseGravity
	m.slot = 0
	m.over = false
	m.SpawnBall()
}

// SpawnBall draws a ball color uniformly at random, independent of earlier
// draws, and makes it the current ball.
func (m *Machine) SpawnBall() Color {
	m.ball = Palette[m.rng.IntN(len(Palette))]
	if m.presenter != nil {
		m.presenter.BallSpawned(m.ball)
	}
	return m.ball
}

// Rotate turns the switch a quarter in the given direction.
// Ignored once the run is over.
func (m *Machine) Rotate(dir Direction) {
	if m.over {
		return
	}
	m.slot = core.Modulo(m.slot+dir.delta(), len(wheel))
	if m.presenter != nil {
		m.presenter.SwitchRotated(dir, m.params.RotationDuration)
	}
}

// BallContact implements ContactObserver.
func (m *Machine) BallContact() Outcome {
	return m.ResolveContact()
}

// ResolveContact settles the current ball against the switch.
// A match scores and spawns the next ball; a mismatch ends the run and
// records the final score once. Calls after the end return the final
// outcome again without side effects.
func (m *Machine) ResolveContact() Outcome {
	if m.over {
		return Outcome{Effect: EffectGameOver, Score: m.score}
	}

	if m.ball != m.Orientation() {
		m.over = true
		out := Outcome{Effect: EffectGameOver, Score: m.score}
		if m.recorder != nil {
			out.RecordErr = m.recorder.RecordRun(m.score)
		}
		return out
	}

	m.score++
	if m.score%2 == 0 {
		m.gravity -= m.params.GravityStep
	}
	if m.settings.SoundEnabled && m.presenter != nil {
		m.presenter.SoundRequested()
	}
	m.SpawnBall()

	return Outcome{Effect: EffectScore, Score: m.score}
}

// Orientation returns the color currently facing the ball.
func (m *Machine) Orientation() Color {
	return m.WheelColor(0)
}

// WheelColor returns the color offset slots away from the one facing the
// ball; positive offsets go clockwise around the wheel.
func (m *Machine) WheelColor(offset int) Color {
	return wheel[core.Modulo(m.slot+offset, len(wheel))]
}

// BallColor returns the color of the current ball.
func (m *Machine) BallColor() Color {
	return m.ball
}

// Score returns the score of the current or last run.
func (m *Machine) Score() int {
	return m.score
}

// Gravity returns the current fall acceleration (negative = down).
func (m *Machine) Gravity() float64 {
	return m.gravity
}

// Over reports whether the run has ended (or never started).
func (m *Machine) Over() bool {
	return m.over
}

// Settings returns the user preferences in effect.
func (m *Machine) Settings() Settings {
	return m.settings
}
