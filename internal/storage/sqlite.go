// Package storage provides SQLite-based persistence for the scoreboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-colorswitch/internal/paths"
)

// Store manages the SQLite database connection for score persistence.
// The database holds a single scoreboard row with the last and best score.
type Store struct {
	db *sql.DB
}

// Scores is the persisted scoreboard.
type Scores struct {
	Last      int       // Final score of the most recent run
	High      int       // Best final score ever recorded
	UpdatedAt time.Time // Zero until the first run is recorded
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := paths.Expand(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

// migrate creates the schema and the scoreboard row if they don't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scoreboard (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_score INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME
		);
		INSERT OR IGNORE INTO scoreboard (id) VALUES (1);
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

// RecordRun stores the final score of a run: the last score is replaced and
// the high score only ever grows.
func (s *Store) RecordRun(finalScore int) error {
	if finalScore < 0 {
		return fmt.Errorf("storage: negative score %d", finalScore)
	}

	_, err := s.db.Exec(
		`UPDATE scoreboard
		 SET last_score = ?, high_score = MAX(high_score, ?), updated_at = CURRENT_TIMESTAMP
		 WHERE id = 1`,
		finalScore, finalScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// Scores returns the persisted last and high score.
func (s *Store) Scores() (Scores, error) {
	var sc Scores
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT last_score, high_score, updated_at FROM scoreboard WHERE id = 1",
	).Scan(&sc.Last, &sc.High, &updatedAt)
	if err == sql.ErrNoRows {
		return Scores{}, nil
	}
	if err != nil {
		return Scores{}, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		sc.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			sc.UpdatedAt = parsed
		}
	}

	return sc, nil
}

// Reset zeroes both scores.
func (s *Store) Reset() error {
	_, err := s.db.Exec("UPDATE scoreboard SET last_score = 0, high_score = 0, updated_at = NULL WHERE id = 1")
	if err != nil {
		return fmt.Errorf("storage: cannot reset scores: %w", err)
	}
	return nil
}
