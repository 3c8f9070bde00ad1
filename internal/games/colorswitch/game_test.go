package colorswitch

import (
	"testing"

	"github.com/vovakirdan/tui-colorswitch/internal/config"
	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64, sound bool) (*Game, *recorderStub) {
	r := &recorderStub{}
	g := New(config.DefaultColorSwitchConfig(), Settings{SoundEnabled: sound}, r)
	g.Reset(testRuntime(seed))
	return g, r
}

// turnsToFace returns how many counter-clockwise turns bring c on top.
func turnsToFace(m *Machine, c Color) int {
	for k := 0; k < len(wheel); k++ {
		if m.WheelColor(k) == c {
			return k
		}
	}
	return 0
}

// matchingInput turns the wheel so the current ball will match.
func matchingInput(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	for i := 0; i < turnsToFace(g.machine, g.machine.BallColor()); i++ {
		in.Set(core.ActionRotateLeft)
	}
	return in
}

// missingInput turns the wheel one slot past the matching color.
func missingInput(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	for i := 0; i < turnsToFace(g.machine, g.machine.BallColor())+1; i++ {
		in.Set(core.ActionRotateLeft)
	}
	return in
}

// stepUntil steps with empty input until cond holds or the budget runs out.
// Returns the number of steps taken and every sound emitted.
func stepUntil(g *Game, budget int, cond func() bool) (int, []core.Sound) {
	var sounds []core.Sound
	for i := 1; i <= budget; i++ {
		res := g.Step(core.NewInputFrame())
		sounds = append(sounds, res.Sounds...)
		if cond() {
			return i, sounds
		}
	}
	return budget, sounds
}

func TestGameReset(t *testing.T) {
	g, _ := newTestGame(42, true)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("fresh state = %+v", state)
	}
	if g.ball.phase != ballFalling || g.ball.y != BallStartY {
		t.Errorf("ball should start falling at row %d, got %+v", BallStartY, g.ball)
	}
	if g.ball.color != g.machine.BallColor() {
		t.Errorf("ball tint %v does not match rules %v", g.ball.color, g.machine.BallColor())
	}
	if g.machine.Orientation() != Red {
		t.Errorf("wheel should start on Red, got %v", g.machine.Orientation())
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() (int, []Color) {
		g, _ := newTestGame(12345, false)
		colors := []Color{g.machine.BallColor()}
		last := 0
		for i := 0; i < 5000 && !g.State().GameOver; i++ {
			in := matchingInput(g)
			if last >= 5 {
				in = missingInput(g)
			}
			g.Step(in)
			if score := g.State().Score; score != last {
				last = score
				colors = append(colors, g.machine.BallColor())
			}
		}
		return g.State().Score, colors
	}

	score1, colors1 := play()
	score2, colors2 := play()

	if score1 != 5 {
		t.Errorf("scripted run should end at 5, got %d", score1)
	}
	if score1 != score2 {
		t.Errorf("scores differ: %d vs %d", score1, score2)
	}
	if len(colors1) != len(colors2) {
		t.Fatalf("ball sequences differ in length: %v vs %v", colors1, colors2)
	}
	for i := range colors1 {
		if colors1[i] != colors2[i] {
			t.Errorf("ball %d differs: %v vs %v", i, colors1[i], colors2[i])
		}
	}
}

func TestBallFallsUnderGravity(t *testing.T) {
	g, _ := newTestGame(1, true)
	startY := g.ball.y

	g.Step(core.NewInputFrame())
	if g.ball.y <= startY {
		t.Errorf("ball should move down, was %f now %f", startY, g.ball.y)
	}
	v1 := g.ball.vel

	g.Step(core.NewInputFrame())
	if g.ball.vel <= v1 {
		t.Errorf("ball should accelerate, velocity %f then %f", v1, g.ball.vel)
	}
}

func TestMatchScoresAndRespawns(t *testing.T) {
	g, r := newTestGame(7, true)
	g.Step(matchingInput(g))

	_, sounds := stepUntil(g, 1000, func() bool { return g.State().Score == 1 })
	if g.State().Score != 1 {
		t.Fatal("ball never scored")
	}
	if len(sounds) != 1 || sounds[0] != core.SoundBling {
		t.Errorf("sounds = %v, expected one bling", sounds)
	}
	if g.ball.phase != ballFading {
		t.Errorf("scored ball should fade, phase = %v", g.ball.phase)
	}
	if !g.hasNext || g.next != g.machine.BallColor() {
		t.Error("next ball should wait for the fade-out")
	}

	fadeTicks := g.ticksFor(g.cfg.Timing.FadeDuration())
	steps, _ := stepUntil(g, 1000, func() bool { return g.ball.phase == ballFalling })
	if steps != fadeTicks {
		t.Errorf("new ball dropped after %d ticks, expected %d", steps, fadeTicks)
	}
	if g.ball.y >= float64(g.contactRow()) || g.ball.color != g.machine.BallColor() {
		t.Errorf("new ball = %+v, expected %v near the top", g.ball, g.machine.BallColor())
	}
	if len(r.runs) != 0 {
		t.Error("no run should be recorded while playing")
	}
}

func TestMuteSilencesScore(t *testing.T) {
	g, _ := newTestGame(7, false)
	g.Step(matchingInput(g))

	_, sounds := stepUntil(g, 1000, func() bool { return g.State().Score == 1 })
	if len(sounds) != 0 {
		t.Errorf("muted game emitted %v", sounds)
	}
}

func TestMismatchEndsGame(t *testing.T) {
	g, r := newTestGame(3, true)
	g.Step(missingInput(g))

	stepUntil(g, 1000, func() bool { return g.State().GameOver })
	if !g.State().GameOver {
		t.Fatal("mismatched ball should end the game")
	}
	if len(r.runs) != 1 || r.runs[0] != 0 {
		t.Errorf("recorded runs = %v, expected [0]", r.runs)
	}

	// Input after game over is dropped
	facing := g.machine.Orientation()
	in := core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	g.Step(in)
	if g.machine.Orientation() != facing {
		t.Error("rotation after game over should be ignored")
	}

	g.Reset(testRuntime(4))
	if g.State().GameOver || g.State().Score != 0 || g.machine.Orientation() != Red {
		t.Errorf("reset after game over = %+v facing %v", g.State(), g.machine.Orientation())
	}
}

func TestFasterGravityShortensFall(t *testing.T) {
	slow, _ := newTestGame(5, false)
	slowSteps, _ := stepUntil(slow, 2000, func() bool { return slow.ball.phase != ballFalling || slow.State().GameOver })

	fast, _ := newTestGame(5, false)
	fast.machine.gravity = fast.machine.params.BaseGravity - 3*fast.machine.params.GravityStep
	fastSteps, _ := stepUntil(fast, 2000, func() bool { return fast.ball.phase != ballFalling || fast.State().GameOver })

	if fastSteps >= slowSteps {
		t.Errorf("tighter gravity should land sooner: %d vs %d ticks", fastSteps, slowSteps)
	}
}

func TestRotateInputTurnsWheel(t *testing.T) {
	g, _ := newTestGame(9, false)

	in := core.NewInputFrame()
	in.Set(core.ActionRotateLeft)
	g.Step(in)

	if g.machine.Orientation() != Yellow {
		t.Errorf("left turn should bring Yellow on top, got %v", g.machine.Orientation())
	}
	if g.turnOffset() >= 0 {
		t.Errorf("counter-clockwise turn should lag clockwise, offset %f", g.turnOffset())
	}

	stepUntil(g, 100, func() bool { return g.turn.left == 0 })
	if g.turnOffset() != 0 {
		t.Errorf("offset should settle at 0, got %f", g.turnOffset())
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	in.Set(core.ActionRotateRight)
	g.Step(in)
	if g.machine.Orientation() != Blue {
		t.Errorf("two right turns from Yellow should face Blue, got %v", g.machine.Orientation())
	}
}

func TestGamePause(t *testing.T) {
	g, _ := newTestGame(1, false)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	y := g.ball.y
	turn := core.NewInputFrame()
	turn.Set(core.ActionRotateLeft)
	g.Step(turn)
	if g.ball.y != y {
		t.Error("ball should not move while paused")
	}
	if g.machine.Orientation() != Red {
		t.Error("wheel should not turn while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestSectorAt(t *testing.T) {
	tests := []struct {
		theta float64
		want  int
	}{
		{90, 0},
		{60, 0},
		{180, 1},
		{-90, 2},
		{270, 2},
		{0, 3},
		{-30, 3},
		{450, 0},
	}
	for _, tc := range tests {
		if got := sectorAt(tc.theta); got != tc.want {
			t.Errorf("sectorAt(%g) = %d, expected %d", tc.theta, got, tc.want)
		}
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(1, false)
	rc := testRuntime(1)
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)

	cx, cy := g.wheelCenter()
	checks := []struct {
		name string
		x, y int
		want Color
	}{
		{"top", cx, cy - WheelRadiusY, Red},
		{"left", cx - WheelRadiusX, cy, Blue},
		{"right", cx + WheelRadiusX, cy, Yellow},
		{"bottom", cx, cy + WheelRadiusY, Green},
	}
	for _, c := range checks {
		cell := screen.GetCell(c.x, c.y)
		if cell.Rune != WheelChar || cell.Color != c.want.Tint() {
			t.Errorf("%s of wheel = %+v, expected %v", c.name, cell, c.want)
		}
	}

	if !containsAll(screen.Row(0), "turn left", "turn right") {
		t.Errorf("help line = %q", screen.Row(0))
	}
	if got := screen.GetCell(0, rc.ScreenH-1); got.Rune != FloorChar {
		t.Errorf("floor cell = %+v, expected %q", got, FloorChar)
	}

	ballCell := screen.GetCell(cx, int(g.ball.y))
	if ballCell.Rune != BallChar || ballCell.Color != g.ball.color.Tint() {
		t.Errorf("ball cell = %+v, expected %v ball", ballCell, g.ball.color)
	}
}

func TestGameOverRender(t *testing.T) {
	g, r := newTestGame(3, false)
	r.err = errTest
	g.Step(missingInput(g))
	stepUntil(g, 1000, func() bool { return g.State().GameOver })

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	text := screen.String()

	if !containsAll(text, "GAME OVER", "score not saved") {
		t.Errorf("game over screen missing text:\n%s", text)
	}
	if g.RecordErr() == nil {
		t.Error("RecordErr() should report the failed write")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g, _ := newTestGame(4, true)
	g.Step(matchingInput(g))
	before := g.machine.BallColor()

	g.Resize(100, 40)

	if g.State().GameOver {
		t.Fatal("resize should not end the run")
	}
	if got := g.machine.BallColor(); got != before {
		t.Errorf("ball color changed on resize: %v -> %v", before, got)
	}
	if got, want := g.contactRow(), 40-WheelBottom-WheelRadiusY-1-WheelRadiusY-1; got != want {
		t.Errorf("contactRow = %d, want %d", got, want)
	}
}

func TestTerminalTooSmall(t *testing.T) {
	g, _ := newTestGame(6, false)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 6})

	for i := 0; i < 120; i++ {
		g.Step(matchingInput(g))
	}
	if s := g.State(); s.Score != 0 || s.GameOver {
		t.Fatalf("game advanced in a small terminal: %+v", s)
	}
	if g.ball.y != BallStartY {
		t.Errorf("ball moved to row %g in a small terminal", g.ball.y)
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !containsAll(screen.String(), "Terminal too small") {
		t.Errorf("small terminal not reported:\n%s", screen.String())
	}

	// Growing the window resumes the run with room to react.
	g.Resize(MinScreenW, MinScreenH)
	if got := g.contactRow() - BallStartY; got != MinFallRows {
		t.Errorf("fall distance at minimum size = %d, expected %d", got, MinFallRows)
	}
	steps, _ := stepUntil(g, 1000, func() bool { return g.State().GameOver || g.State().Score > 0 })
	if steps <= 1 {
		t.Errorf("ball reached the wheel after %d steps", steps)
	}
}
