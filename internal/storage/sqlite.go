// Package storage provides the SQLite word library: categories and their
// word lists imported from word files and loaded back as a catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordsnow/internal/words"
)

// Store manages the SQLite database connection for the word library.
type Store struct {
	db *sql.DB
}

// CategoryInfo summarizes one stored category.
type CategoryInfo struct {
	ID        int64
	Name      string
	Words     int
	CreatedAt time.Time
}

// ImportStats reports what an import changed.
type ImportStats struct {
	Categories int // Categories created
	Words      int // Words inserted
	Skipped    int // Words already present
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL,
			word TEXT NOT NULL,
			position INTEGER NOT NULL,
			UNIQUE(category_id, word)
		);
		CREATE INDEX IF NOT EXISTS idx_words_category ON words(category_id, position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportCatalog stores every category and word of c, keeping catalog
// order. Existing categories are extended; words already present are
// skipped. The import is atomic.
func (s *Store) ImportCatalog(c *words.Catalog) (ImportStats, error) {
	var stats ImportStats

	tx, err := s.db.Begin()
	if err != nil {
		return stats, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, name := range c.Categories() {
		id, created, err := ensureCategory(tx, name)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Categories++
		}

		var next int
		if err := tx.QueryRow(
			"SELECT COALESCE(MAX(position), -1) + 1 FROM words WHERE category_id = ?", id,
		).Scan(&next); err != nil {
			return stats, fmt.Errorf("storage: cannot read word positions: %w", err)
		}

		for _, w := range c.Words(name) {
			res, err := tx.Exec(
				"INSERT OR IGNORE INTO words (category_id, word, position) VALUES (?, ?, ?)",
				id, w, next,
			)
			if err != nil {
				return stats, fmt.Errorf("storage: cannot insert word %q: %w", w, err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				stats.Skipped++
				continue
			}
			stats.Words++
			next++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return stats, nil
}

// ensureCategory returns the ID of the named category, creating it at the
// end of the category order if needed.
func ensureCategory(tx *sql.Tx, name string) (int64, bool, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("storage: cannot query category: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO categories (name, position) VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM categories))",
		name,
	)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot create category %q: %w", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, true, nil
}

// Load reads the whole library as a catalog. It implements words.Source.
func (s *Store) Load() (*words.Catalog, error) {
	rows, err := s.db.Query(
		`SELECT c.name, w.word
		 FROM categories c
		 LEFT JOIN words w ON w.category_id = c.id
		 ORDER BY c.position, c.id, w.position, w.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	c := words.NewCatalog()
	for rows.Next() {
		var name string
		var word sql.NullString
		if err := rows.Scan(&name, &word); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if word.Valid {
			c.Add(name, word.String)
		} else {
			c.Add(name)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return c, nil
}

var _ words.Source = (*Store)(nil)

// Categories lists stored categories in order with their word counts.
func (s *Store) Categories() ([]CategoryInfo, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.name, COUNT(w.id), c.created_at
		 FROM categories c
		 LEFT JOIN words w ON w.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.position, c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query categories: %w", err)
	}
	defer rows.Close()

	var infos []CategoryInfo
	for rows.Next() {
		var info CategoryInfo
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Words, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteCategory removes a category and its words.
// It reports whether the category existed.
func (s *Store) DeleteCategory(name string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	var id int64
	err = tx.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query category: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM words WHERE category_id = ?", id); err != nil {
		return false, fmt.Errorf("storage: cannot delete words: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM categories WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("storage: cannot delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return true, nil
}

// Clear deletes every category and word.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM words; DELETE FROM categories;")
	if err != nil {
		return fmt.Errorf("storage: cannot clear library: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
