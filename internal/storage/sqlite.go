// Package storage provides SQLite-based history of finished game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/learning-adventure/internal/config"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/session"
)

// timeLayout is how timestamps are stored. Always UTC.
const timeLayout = time.RFC3339

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one finished game session.
type SessionEntry struct {
	ID        string
	Player    player.ID
	Activity  string
	Score     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

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
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			activity TEXT NOT NULL,
			score INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_player_activity ON sessions(player, activity);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at DESC);
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

// SaveSession records a finished session. Saving the same session id twice
// is an error, which keeps a flushed score from being recorded again.
func (s *Store) SaveSession(sum session.Summary) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, player, activity, score, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(sum.ID),
		string(sum.Player),
		sum.Activity,
		sum.Score,
		sum.StartedAt.UTC().Format(timeLayout),
		sum.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// RecentSessions returns the latest sessions of a player, newest first.
// An empty activity matches every activity.
func (s *Store) RecentSessions(p player.ID, activity string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, activity, score, started_at, ended_at
		 FROM sessions
		 WHERE player = ? AND (? = '' OR activity = ?)
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		string(p), activity, activity, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var playerID, startedAt, endedAt string
		if err := rows.Scan(&e.ID, &playerID, &e.Activity, &e.Score, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Player = player.ID(playerID)
		e.StartedAt = parseTime(startedAt)
		e.EndedAt = parseTime(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestSession returns the highest single-session score of a player in an
// activity. Returns 0 if no sessions exist.
func (s *Store) BestSession(p player.ID, activity string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE player = ? AND activity = ?",
		string(p), activity,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best session: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ActivityStats contains aggregated session statistics for one activity.
type ActivityStats struct {
	Activity     string
	Sessions     int
	BestSession  int
	AvgScore     float64
	TotalScore   int64
	LastPlayedAt time.Time
}

// PlayerStats aggregates a player's sessions per activity.
func (s *Store) PlayerStats(p player.ID) (map[string]*ActivityStats, error) {
	rows, err := s.db.Query(
		`SELECT activity, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(ended_at)
		 FROM sessions
		 WHERE player = ?
		 GROUP BY activity`,
		string(p),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ActivityStats)
	for rows.Next() {
		var a ActivityStats
		var lastPlayed string
		if err := rows.Scan(&a.Activity, &a.Sessions, &a.BestSession, &a.AvgScore, &a.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		a.LastPlayedAt = parseTime(lastPlayed)
		stats[a.Activity] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
