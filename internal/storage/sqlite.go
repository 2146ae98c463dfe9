// Package storage provides SQLite-based persistence for chamber save slots
// and headless run history.
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
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SlotEntry is one saved copy of a chamber save buffer.
type SlotEntry struct {
	ID        int64
	Name      string
	Data      []byte // Raw save buffer
	NumBalls  int    // Decoded ball count, for listing
	CreatedAt time.Time
}

// RunRecord is the outcome of a headless simulation run.
type RunRecord struct {
	ID         int64
	Ticks      int
	Balls      int   // Balls the host stepped
	FinalCount int   // Counter value after the last step
	Seed       int64 // RNG seed used to spawn balls
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS save_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			data BLOB NOT NULL,
			num_balls INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_save_slots_name ON save_slots(name, id DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ticks INTEGER NOT NULL,
			balls INTEGER NOT NULL,
			final_count INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveSlot stores a copy of a save buffer under name.
// Older entries with the same name are kept as history.
// Returns the ID of the inserted record.
func (s *Store) SaveSlot(name string, data []byte) (int64, error) {
	if name == "" {
		return 0, errors.New("storage: slot name must not be empty")
	}
	if len(data) == 0 {
		return 0, errors.New("storage: empty save data")
	}

	result, err := s.db.Exec(
		"INSERT INTO save_slots (name, data, num_balls) VALUES (?, ?, ?)",
		name, data, int(data[0]),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save slot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestSlot returns the newest entry stored under name, or nil if none.
func (s *Store) LatestSlot(name string) (*SlotEntry, error) {
	var e SlotEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, data, num_balls, created_at
		 FROM save_slots
		 WHERE name = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		name,
	).Scan(&e.ID, &e.Name, &e.Data, &e.NumBalls, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slot: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ListSlots returns the newest entry of every slot, most recent first.
func (s *Store) ListSlots(limit int) ([]SlotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, data, num_balls, created_at
		 FROM save_slots
		 WHERE id IN (SELECT MAX(id) FROM save_slots GROUP BY name)
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var entries []SlotEntry
	for rows.Next() {
		var e SlotEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Data, &e.NumBalls, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSlot deletes every entry stored under name.
// Returns the number of entries removed.
func (s *Store) DeleteSlot(name string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM save_slots WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// RecordRun stores the outcome of a headless run.
func (s *Store) RecordRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (ticks, balls, final_count, seed) VALUES (?, ?, ?, ?)",
		r.Ticks, r.Balls, r.FinalCount, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, ticks, balls, final_count, seed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Ticks, &r.Balls, &r.FinalCount, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
