// Package tui provides the Bubble Tea integration for Color Switch.
// It handles the terminal UI loop, input mapping, the title menu and the
// hand-off of sound and score events to the rest of the program.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// BlinkMsg toggles blinking menu text.
type BlinkMsg time.Time

// blinkInterval is the on/off period of the "Press Enter to Play!" prompt.
const blinkInterval = 600 * time.Millisecond

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}
