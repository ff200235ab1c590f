// Package storage provides SQLite-based persistence for save slots and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned by LoadSlot when the slot is empty.
var ErrNoSave = errors.New("storage: no save in slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SaveSlot is one persisted save document.
type SaveSlot struct {
	Slot      string
	MapID     string
	Level     int
	Data      []byte // JSON save document
	UpdatedAt time.Time
}

// RunRecord is the summary of a finished session.
type RunRecord struct {
	ID         string
	MapID      string
	PlayerName string
	Level      int
	Kills      int
	Gold       int
	Duration   int    // seconds
	Outcome    string // "dead", "quit", "menu"
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
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			map_id TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			map_id TEXT NOT NULL,
			player_name TEXT NOT NULL,
			level INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map_id ON runs(map_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(map_id, level DESC, kills DESC);
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

// WriteSlot stores a save document, replacing whatever the slot held.
func (s *Store) WriteSlot(slot, mapID string, level int, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, map_id, level, data, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   map_id = excluded.map_id,
		   level = excluded.level,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		slot, mapID, level, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write slot %q: %w", slot, err)
	}
	return nil
}

// LoadSlot returns the save in slot, or ErrNoSave.
func (s *Store) LoadSlot(slot string) (SaveSlot, error) {
	var (
		out       SaveSlot
		data      string
		updatedAt any
	)
	err := s.db.QueryRow(
		`SELECT slot, map_id, level, data, updated_at FROM saves WHERE slot = ?`,
		slot,
	).Scan(&out.Slot, &out.MapID, &out.Level, &data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SaveSlot{}, fmt.Errorf("%w %q", ErrNoSave, slot)
	}
	if err != nil {
		return SaveSlot{}, fmt.Errorf("storage: cannot load slot %q: %w", slot, err)
	}
	out.Data = []byte(data)
	out.UpdatedAt = parseTime(updatedAt)
	return out, nil
}

// ListSlots returns every save slot, most recently written first.
// Document bodies are not loaded.
func (s *Store) ListSlots() ([]SaveSlot, error) {
	rows, err := s.db.Query(
		`SELECT slot, map_id, level, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var slots []SaveSlot
	for rows.Next() {
		var sl SaveSlot
		var updatedAt any
		if err := rows.Scan(&sl.Slot, &sl.MapID, &sl.Level, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sl.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// DeleteSlot removes a save. Deleting an empty slot is not an error.
func (s *Store) DeleteSlot(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %q: %w", slot, err)
	}
	return nil
}

// RecordRun stores a finished session and returns its generated id.
func (s *Store) RecordRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, map_id, player_name, level, kills, gold, duration_secs, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MapID, r.PlayerName, r.Level, r.Kills, r.Gold, r.Duration, r.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r.ID, nil
}

// BestRuns returns the top runs on a map by level, then kills.
// An empty mapID lists every map.
func (s *Store) BestRuns(mapID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, player_name, level, kills, gold, duration_secs, outcome, created_at
		 FROM runs
		 WHERE ? = '' OR map_id = ?
		 ORDER BY level DESC, kills DESC, duration_secs ASC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MapID, &r.PlayerName, &r.Level, &r.Kills, &r.Gold,
			&r.Duration, &r.Outcome, &createdAt); err != nil {
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

// ClearRuns deletes the run history of one map, or of all maps when mapID is empty.
func (s *Store) ClearRuns(mapID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR map_id = ?", mapID, mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
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
