// Package history records completed operations in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry represents one recorded operation.
type Entry struct {
	ID        int64
	Kind      string // merge, trim, remove
	Inputs    string // input paths joined with "; "
	Output    string
	SizeBytes int64
	Duration  float64 // output duration in seconds
	Elapsed   float64 // wall-clock processing time in seconds
	CreatedAt time.Time
}

// Open opens or creates the history database at the default location,
// ~/.local/share/mp4edit/history.db. Parent directories are created if
// they don't exist.
func Open() (*sql.DB, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(homeDir, ".local", "share", "mp4edit", "history.db"))
}

// OpenAt opens or creates the history database at the given path.
func OpenAt(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate runs all database migrations. Migrations are idempotent.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			inputs TEXT NOT NULL,
			output TEXT NOT NULL,
			size_bytes INTEGER,
			duration_seconds REAL,
			elapsed_seconds REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Record inserts a completed operation and returns its ID.
func Record(db *sql.DB, e Entry) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO operations (kind, inputs, output, size_bytes, duration_seconds, elapsed_seconds) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Kind, e.Inputs, e.Output, e.SizeBytes, e.Duration, e.Elapsed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert operation: %w", err)
	}
	return result.LastInsertId()
}

// List returns the most recent operations, newest first.
func List(db *sql.DB, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT id, kind, inputs, output, size_bytes, duration_seconds, elapsed_seconds, created_at
		 FROM operations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Inputs, &e.Output, &e.SizeBytes, &e.Duration, &e.Elapsed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}

	return entries, nil
}
