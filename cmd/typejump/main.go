// typejump is a terminal typing trainer: type the word on the platform above
// to jump onto it before the climb scrolls out from under you.
//
// Usage:
//
//	typejump                        - Difficulty picker loop (same as menu)
//	typejump play                   - Start a session directly
//	typejump menu                   - Difficulty picker loop
//	typejump sources                - List registered word sources
//	typejump words <difficulty>     - Print the word pool for a difficulty
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible ladders
//	--config <path>       - YAML or TOML config file
//	--log-file <path>     - Write logs to a file (games log nowhere otherwise)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typejump",
	Short: "Type Jump - climb a frozen tower by typing",
	Long: `Type Jump is a typing trainer disguised as a platform climber.
Every platform carries a word; type it to jump up to the next one before
the auto-scrolling camera leaves you behind.

Available commands:
  play     - Start a session directly
  menu     - Pick a difficulty, play, see your report, repeat
  sources  - Show the registered word sources
  words    - Print the word pool for a difficulty

Examples:
  typejump
  typejump play --difficulty expert
  typejump play --duration 60 --mute
  typejump play --words remote --endpoint http://localhost:8080/words
  typejump words intermediate`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addSessionFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(wordsCmd)
}
