// Package storage provides SQLite-based persistence of game sessions for
// deterministic replay. A session stores everything needed to re-run the
// simulation bit-for-bit: the RNG seed, the playfield and screen
// dimensions, and every input action with the tick that consumed it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/toroarcade/torosnake/internal/core"
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session is a recorded game session.
type Session struct {
	ID         int64
	Seed       int64
	PixelW     float64
	PixelH     float64
	EntitySize float64
	ScreenW    int
	ScreenH    int
	FPS        int
	Ticks      uint64 // Total simulation steps; 0 while the session is open
	EndReason  string // Final phase at quit; empty while the session is open
	CreatedAt  time.Time
}

// InputEvent is one recorded action and the tick that consumed it.
type InputEvent struct {
	Tick   uint64
	Action core.Action
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			pixel_w REAL NOT NULL,
			pixel_h REAL NOT NULL,
			entity_size REAL NOT NULL,
			screen_w INTEGER NOT NULL,
			screen_h INTEGER NOT NULL,
			fps INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS session_inputs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			tick INTEGER NOT NULL,
			action INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_session_inputs_session ON session_inputs(session_id, tick);
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

// StartSession records the start of a new session and returns its ID.
func (s *Store) StartSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (seed, pixel_w, pixel_h, entity_size, screen_w, screen_h, fps)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.Seed, sess.PixelW, sess.PixelH, sess.EntitySize, sess.ScreenW, sess.ScreenH, sess.FPS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordInput stores one action consumed at the given tick.
func (s *Store) RecordInput(sessionID int64, tick uint64, action core.Action) error {
	_, err := s.db.Exec(
		"INSERT INTO session_inputs (session_id, tick, action) VALUES (?, ?, ?)",
		sessionID, tick, int(action),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record input: %w", err)
	}
	return nil
}

// FinishSession marks a session complete with its final tick count and the
// phase it ended in.
func (s *Store) FinishSession(sessionID int64, ticks uint64, endReason string) error {
	_, err := s.db.Exec(
		"UPDATE sessions SET ticks = ?, end_reason = ? WHERE id = ?",
		ticks, endReason, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	return nil
}

// Session retrieves a single session by ID.
func (s *Store) Session(id int64) (Session, error) {
	var sess Session
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, seed, pixel_w, pixel_h, entity_size, screen_w, screen_h, fps, ticks, end_reason, created_at
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Seed, &sess.PixelW, &sess.PixelH, &sess.EntitySize,
		&sess.ScreenW, &sess.ScreenH, &sess.FPS, &sess.Ticks, &sess.EndReason, &createdAt)
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot load session %d: %w", id, err)
	}
	sess.CreatedAt = parseCreatedAt(createdAt)
	return sess, nil
}

// Sessions retrieves the most recent sessions, newest first.
func (s *Store) Sessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, pixel_w, pixel_h, entity_size, screen_w, screen_h, fps, ticks, end_reason, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Seed, &sess.PixelW, &sess.PixelH, &sess.EntitySize,
			&sess.ScreenW, &sess.ScreenH, &sess.FPS, &sess.Ticks, &sess.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseCreatedAt(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Inputs retrieves all recorded actions for a session in tick order.
func (s *Store) Inputs(sessionID int64) ([]InputEvent, error) {
	rows, err := s.db.Query(
		"SELECT tick, action FROM session_inputs WHERE session_id = ? ORDER BY tick, id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	var events []InputEvent
	for rows.Next() {
		var e InputEvent
		var action int
		if err := rows.Scan(&e.Tick, &action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Action = core.Action(action)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
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
