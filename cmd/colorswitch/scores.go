package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorswitch/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show highscore and last score",
	Long: `Display the persisted highscore and the score of the last run.

Examples:
  colorswitch scores
  colorswitch scores --reset
  colorswitch scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Reset both scores to zero")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
			return
		}
		fmt.Println("Scores reset.")
		return
	}

	scores, err := store.Scores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Color Switch")
	fmt.Println()
	fmt.Printf("  Highscore:  %d\n", scores.High)
	fmt.Printf("  Last Score: %d\n", scores.Last)

	if scores.UpdatedAt.IsZero() {
		fmt.Println()
		fmt.Println("No runs recorded yet. Play 'colorswitch play' to set the first score!")
		return
	}
	fmt.Printf("  Last run:   %s\n", scores.UpdatedAt.Local().Format("2006-01-02 15:04"))
}
