// Package storage provides SQLite-based persistence for franchise saves.
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

// ErrSlotEmpty is returned when a requested save slot has no data.
var ErrSlotEmpty = errors.New("storage: save slot is empty")

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
}

// SaveInfo is the listing metadata for one save slot. The blob itself is
// loaded separately.
type SaveInfo struct {
	Slot      int
	Seed      string
	TeamName  string
	Year      int
	Phase     string
	UpdatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			slot INTEGER PRIMARY KEY,
			seed TEXT NOT NULL,
			team_name TEXT NOT NULL,
			year INTEGER NOT NULL,
			phase TEXT NOT NULL,
			blob BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
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

// Save writes a franchise blob into a slot, replacing whatever was there.
func (s *Store) Save(info SaveInfo, blob []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, seed, team_name, year, phase, blob, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			seed = excluded.seed,
			team_name = excluded.team_name,
			year = excluded.year,
			phase = excluded.phase,
			blob = excluded.blob,
			updated_at = CURRENT_TIMESTAMP`,
		info.Slot, info.Seed, info.TeamName, info.Year, info.Phase, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %d: %w", info.Slot, err)
	}
	return nil
}

// Load reads the blob stored in a slot. Returns ErrSlotEmpty if the slot
// has never been written or was deleted.
func (s *Store) Load(slot int) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT blob FROM saves WHERE slot = ?", slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %d: %w", slot, err)
	}
	return blob, nil
}

// Delete removes a save slot. Deleting an empty slot is not an error.
func (s *Store) Delete(slot int) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %d: %w", slot, err)
	}
	return nil
}

// List returns metadata for every occupied slot, lowest slot first.
func (s *Store) List() ([]SaveInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, seed, team_name, year, phase, updated_at
		 FROM saves
		 ORDER BY slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var infos []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Seed, &info.TeamName, &info.Year, &info.Phase, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			info.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.UpdatedAt = parsed
			}
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// ActiveSlot returns the most recently played slot, or 0 if none is set.
func (s *Store) ActiveSlot() (int, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = 'active_slot'").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query active slot: %w", err)
	}

	var slot int
	if _, err := fmt.Sscanf(value, "%d", &slot); err != nil {
		return 0, nil
	}
	return slot, nil
}

// SetActiveSlot records which slot the player last touched.
func (s *Store) SetActiveSlot(slot int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES ('active_slot', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		fmt.Sprintf("%d", slot),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set active slot: %w", err)
	}
	return nil
}
