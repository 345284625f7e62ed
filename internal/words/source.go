package words

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// Source supplies the category catalog once at startup.
type Source interface {
	Load() (*Catalog, error)
}

// FileSource reads a YAML or JSON word file.
type FileSource struct {
	Path string
}

// Load reads and parses the file.
func (s FileSource) Load() (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", s.Path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return c, nil
}

// EmbeddedSource serves the built-in word lists.
type EmbeddedSource struct{}

// Load parses the embedded default word file.
func (EmbeddedSource) Load() (*Catalog, error) {
	return ParseCatalog(defaultWordsYAML)
}

// FirstNonEmpty tries sources in order and returns the first catalog with
// at least one category. Source errors are collected and returned only when
// no source produced a catalog.
func FirstNonEmpty(sources ...Source) (*Catalog, error) {
	var firstErr error
	for _, src := range sources {
		if src == nil {
			continue
		}
		c, err := src.Load()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if c.Len() > 0 {
			return c, nil
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return NewCatalog(), nil
}

// Resolve loads the first non-empty catalog from sources and sanitizes it
// with f. Every rejected word is logged as a warning.
func Resolve(f *Folder, logger *log.Logger, sources ...Source) (*Catalog, error) {
	c, err := FirstNonEmpty(sources...)
	if err != nil {
		return nil, err
	}
	for _, r := range c.Sanitize(f) {
		logger.Warn("dropping word without letters", "category", r.Category, "word", r.Word)
	}
	return c, nil
}
