package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnow/internal/storage"
	"github.com/vovakirdan/wordsnow/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word library",
	Long: `The word library is a SQLite database (--db) holding categories of
words. When it is not empty, 'wordsnow play' and 'wordsnow serve' use it
instead of the built-in lists.

Word files are YAML or JSON:

  lists:
    Frutas: [pera, uva, kiwi]
    Colores: [rojo, verde]

The top-level key may also be 'listas', or omitted.`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word file into the library",
	Long: `Adds every category and word of the file to the library. Existing
categories are extended; words already present are skipped.

Examples:
  wordsnow words import ./palabras.yaml
  wordsnow words import ./lists.json --db ./words.db`,
	Args: cobra.ExactArgs(1),
	Run:  runWordsImport,
}

var wordsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the library as a YAML word file",
	Long: `Writes every category of the library as a YAML word file that
'wordsnow words import' and --words can read. Without a file argument the
YAML goes to stdout.

Examples:
  wordsnow words export > backup.yaml
  wordsnow words export ./backup.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWordsExport,
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories stored in the library",
	Args:  cobra.NoArgs,
	Run:   runWordsList,
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Remove a category from the library",
	Args:  cobra.ExactArgs(1),
	Run:   runWordsRemove,
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every category from the library",
	Args:  cobra.NoArgs,
	Run:   runWordsClear,
}

func init() {
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsExportCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsRemoveCmd)
	wordsCmd.AddCommand(wordsClearCmd)
}

// openLibrary opens the word library or exits.
func openLibrary() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening word library: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runWordsImport(_ *cobra.Command, args []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := words.FileSource{Path: args[0]}.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, r := range catalog.Sanitize(words.NewFolder(cfg.Locale)) {
		fmt.Fprintf(os.Stderr, "Skipping %q in %s: no letters\n", r.Word, r.Category)
	}

	store := openLibrary()
	stats, err := store.ImportCatalog(catalog)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing words: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d words (%d new categories, %d already present)\n",
		stats.Words, stats.Categories, stats.Skipped)
}

func runWordsExport(_ *cobra.Command, args []string) {
	store := openLibrary()
	catalog, err := store.Load()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading word library: %v\n", err)
		os.Exit(1)
	}

	data, err := catalog.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		os.Stdout.Write(data) //nolint:errcheck // Nothing to do on a closed stdout
		return
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d categories to %s\n", catalog.Len(), args[0])
}

func runWordsList(_ *cobra.Command, _ []string) {
	store := openLibrary()
	defer store.Close()

	if err := printLibrary(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading word library: %v\n", err)
		os.Exit(1)
	}
}

func runWordsRemove(_ *cobra.Command, args []string) {
	store := openLibrary()
	ok, err := store.DeleteCategory(args[0])
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no category %q in the library\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("Removed %s\n", args[0])
}

func runWordsClear(_ *cobra.Command, _ []string) {
	store := openLibrary()
	err := store.Clear()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Word library cleared.")
}

// printLibrary lists categories stored in the word library with import dates.
func printLibrary(store *storage.Store) error {
	infos, err := store.Categories()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("The word library is empty.")
		return nil
	}

	maxNameLen := len("Category")
	for _, info := range infos {
		if n := len([]rune(info.Name)); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "Category", "Words", "Added")
	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "--------", "-----", "-----")
	for _, info := range infos {
		pad := maxNameLen - len([]rune(info.Name))
		fmt.Printf("  %s%*s  %-5d  %s\n", info.Name, pad, "", info.Words, info.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
