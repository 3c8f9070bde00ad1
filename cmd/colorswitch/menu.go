package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title screen",
	Long: `Show the title screen with your highscore and last score.
After a run you can go back to the title screen to play again.

Controls:
  Enter/Space  - Play
  S            - Sound on/off
  Q/Esc        - Quit

Examples:
  colorswitch menu
  colorswitch menu --fps 30
  colorswitch menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loopErr := s.menuLoop()
	s.close()

	if loopErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", loopErr)
		os.Exit(1)
	}
}
