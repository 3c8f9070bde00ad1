package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run immediately",
	Long: `Skip the title screen and start a run.

Controls:
  Left/A/H     - Turn the wheel counter-clockwise
  Right/D/L    - Turn the wheel clockwise
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to the title screen (paused or after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start and gentler speed-up
  normal - Default tuning
  hard   - Faster start and steeper speed-up

Examples:
  colorswitch play
  colorswitch play --difficulty easy
  colorswitch play --config ./my-colorswitch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	back, runErr := s.play()
	if runErr == nil && back {
		runErr = s.menuLoop()
	}
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
