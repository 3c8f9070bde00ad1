package colorswitch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

// Visual characters for rendering
const (
	WheelChar  = '█'
	BallChar   = '●'
	FadingChar = '○'
	FloorChar  = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall() {
		g.drawCenteredMessage(dst, "Terminal too small", fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.drawWheel(dst)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorGray)

	// Score sits in the middle of the play area, behind the ball
	dst.DrawTextCentered(dst.Height()/2-2, fmt.Sprintf("%d", g.machine.Score()), core.ColorWhite)

	g.drawBall(dst)

	dst.DrawTextCentered(0, "←/A: turn left   →/D: turn right   P: pause   Q: quit", core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.machine.Over() {
		subtitle := fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.machine.Score())
		if g.recordErr != nil {
			subtitle += "  (score not saved)"
		}
		g.drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

// drawWheel paints an elliptical ring split in four colored quarters. The
// quarter on top is the one the ball is matched against.
func (g *Game) drawWheel(dst *core.Screen) {
	cx, cy := g.wheelCenter()
	offset := g.turnOffset()

	for dy := -WheelRadiusY; dy <= WheelRadiusY; dy++ {
		for dx := -WheelRadiusX; dx <= WheelRadiusX; dx++ {
			nx := float64(dx) / WheelRadiusX
			ny := float64(dy) / WheelRadiusY
			r := math.Hypot(nx, ny)
			if r > 1.0 || r < WheelInner {
				continue
			}
			theta := math.Atan2(-ny, nx)*180/math.Pi - offset
			dst.SetColored(cx+dx, cy+dy, WheelChar, g.machine.WheelColor(-sectorAt(theta)).Tint())
		}
	}
}

// sectorAt returns the quarter of the wheel under the given angle in
// degrees: 0 top, 1 left, 2 bottom, 3 right.
func sectorAt(theta float64) int {
	a := math.Mod(theta-45, 360)
	if a < 0 {
		a += 360
	}
	return int(a/90) % 4
}

// turnOffset is the visual lag of the wheel behind its logical position, in
// degrees counter-clockwise. It shrinks to zero as the turn animation ends.
func (g *Game) turnOffset() float64 {
	if g.turn.left <= 0 || g.turn.total <= 0 {
		return 0
	}
	frac := float64(g.turn.left) / float64(g.turn.total)
	if g.turn.dir == Clockwise {
		return frac * 90
	}
	return -frac * 90
}

func (g *Game) drawBall(dst *core.Screen) {
	if g.ball.phase == ballGone {
		return
	}
	cx, _ := g.wheelCenter()
	ch := BallChar
	if g.ball.phase == ballFading && g.ball.fade*2 < g.ticksFor(g.cfg.Timing.FadeDuration()) {
		ch = FadingChar
	}
	// A resize can leave the ball below the wheel until the next tick
	y := core.Clamp(int(g.ball.y), 0, g.contactRow())
	dst.SetColored(cx, y, ch, g.ball.color.Tint())
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
