// wordsnow is a falling-letters spelling game for the terminal.
//
// Usage:
//
//	wordsnow play                 - Pick a category and play
//	wordsnow serve                - Start SSH server for remote play
//	wordsnow categories           - List word categories
//	wordsnow profiles             - List difficulty profiles
//	wordsnow words import <file>  - Import a word file into the library
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set word library path (default: ~/.wordsnow/words.db)
//	--words <file>      - Play words from a YAML/JSON file instead of the library
//	--config <file>     - Path to custom game config YAML
//	--log-file <file>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagWords   string
	flagConfig  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsnow",
	Short: "Words Snow - catch falling letters to spell words",
	Long: `Words Snow is a terminal spelling game. Letters fall from the top of
the screen toward a row of gaps that spell a hidden word. Push them with
the mouse, or switch to drag mode and carry them, until every gap is filled.

Available commands:
  play        - Pick a category and play
  serve       - Start SSH server for remote play
  categories  - List word categories
  profiles    - List difficulty profiles
  words       - Manage the word library

Examples:
  wordsnow play
  wordsnow play --category Frutas --difficulty easy
  wordsnow words import ./palabras.yaml
  wordsnow serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordsnow/words.db", "Path to word library database")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Word file (YAML or JSON) used instead of the library")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(wordsCmd)
}
