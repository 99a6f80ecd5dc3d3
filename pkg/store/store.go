package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Session is the outcome of one finished game.
type Session struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	FoodEaten int
	Moves     int
	Crashed   bool
}

// Store keeps session history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS game_sessions (
			id TEXT PRIMARY KEY,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			length INTEGER NOT NULL,
			food_eaten INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			crashed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_length ON game_sessions (length DESC, food_eaten DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// SaveSession inserts or replaces a session.
func (s *Store) SaveSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO game_sessions (id, start_time, end_time, length, food_eaten, moves, crashed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.StartTime.UTC(), sess.EndTime.UTC(), sess.Length, sess.FoodEaten, sess.Moves, sess.Crashed)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

// TopSessions returns up to limit sessions, longest snake first.
func (s *Store) TopSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, start_time, end_time, length, food_eaten, moves, crashed
		 FROM game_sessions
		 ORDER BY length DESC, food_eaten DESC, end_time ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.StartTime, &sess.EndTime, &sess.Length, &sess.FoodEaten, &sess.Moves, &sess.Crashed); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
