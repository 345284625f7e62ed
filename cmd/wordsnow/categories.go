package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List word categories",
	Long: `Shows the categories that 'wordsnow play' would offer, with their
word counts. Words without letters are not counted.

Examples:
  wordsnow categories
  wordsnow categories --words ./palabras.yaml`,
	Args: cobra.NoArgs,
	Run:  runCategories,
}

func runCategories(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger("wordsnow")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading words: %v\n", err)
		os.Exit(1)
	}

	if catalog.Len() == 0 {
		fmt.Println("No categories available.")
		return
	}

	// Calculate column widths
	maxNameLen := len("Category")
	for _, name := range catalog.Categories() {
		if n := len([]rune(name)); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Category", "Words")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "--------", "-----")
	for _, name := range catalog.Categories() {
		pad := maxNameLen - len([]rune(name))
		fmt.Printf("  %s%*s  %d\n", name, pad, "", len(catalog.Words(name)))
	}

	fmt.Println()
	fmt.Println("Run 'wordsnow play --category <name>' to play a category.")
}
