package colorswitch

import "github.com/vovakirdan/tui-colorswitch/internal/core"

// Color is the shared domain of the switch orientation and the ball.
// A ball matches the switch iff both hold the same Color value.
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
)

// Palette lists every color a ball can take.
var Palette = [...]Color{Red, Yellow, Green, Blue}

// wheel is the clockwise-from-top layout of the switch graphic. Rotation
// moves through this slice; it is kept apart from the Color values so the
// declaration order above never leaks into the matching rule.
var wheel = [...]Color{Red, Yellow, Green, Blue}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Tint maps the color to the screen palette.
func (c Color) Tint() core.Color {
	switch c {
	case Red:
		return core.ColorRed
	case Yellow:
		return core.ColorYellow
	case Green:
		return core.ColorGreen
	case Blue:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}
