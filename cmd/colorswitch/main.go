// colorswitch is a terminal rendition of the Color Switch arcade game: turn
// the four-color wheel so the falling ball lands on its own color.
//
// Usage:
//
//	colorswitch              - Start at the title menu
//	colorswitch menu         - Same as above
//	colorswitch play         - Start a run immediately
//	colorswitch scores       - Show highscore and last score
//	colorswitch config       - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.colorswitch/scores.db)
//	--config <path>       - Use a custom YAML configuration
//	--difficulty <preset> - easy, normal or hard
//	--mute                - Start with sound off
//	--log-file <path>     - Write logs here (default: ~/.colorswitch/colorswitch.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorswitch",
	Short: "Color Switch - match the falling ball in your terminal",
	Long: `Color Switch is a terminal arcade game. A ball falls onto a wheel
split into red, yellow, green and blue quarters. Turn the wheel so the
quarter on top has the ball's color when they touch. Every second point
makes the ball fall faster.

Available commands:
  menu     - Title screen (default)
  play     - Start a run immediately
  scores   - Show highscore and last score
  config   - Print the default configuration

Examples:
  colorswitch
  colorswitch play --difficulty hard
  colorswitch play --seed 42 --mute
  colorswitch scores --reset`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorswitch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.colorswitch/colorswitch.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
