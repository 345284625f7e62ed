package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/platform/tui"
)

var (
	flagDifficulty string
	flagCategory   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Words Snow",
	Long: `Pick a category and start playing.

Controls:
  Mouse      - Push letters (repel) or carry them (drag)
  N          - Next word
  R          - Reshuffle the category and restart
  Tab/S-Tab  - Next/previous category
  D          - Cycle difficulty
  M          - Toggle repel/drag
  P/Space    - Pause
  ?          - Full help
  Esc        - Back to the category picker
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - Slow fall, gentle wind
  normal  - Default
  hard    - Fast fall, strong wind, frequent spawns

Examples:
  wordsnow play
  wordsnow play --category Frutas
  wordsnow play --difficulty hard
  wordsnow play --words ./palabras.json
  wordsnow play --config ./my-wordsnow.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagCategory, "category", "", "Start on this category and skip the picker")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger("wordsnow")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading words: %v\n", err)
		os.Exit(1)
	}
	if flagCategory != "" && !catalog.Has(flagCategory) {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", flagCategory)
		fmt.Fprintln(os.Stderr, "Run 'wordsnow categories' to see available categories.")
		os.Exit(1)
	}

	// Get terminal size for the first layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		Catalog:  catalog,
		Logger:   logger,
		Category: flagCategory,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})

	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
