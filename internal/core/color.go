package core

// Color is the tint of a screen cell. The platform maps each value to a
// terminal style; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
)
