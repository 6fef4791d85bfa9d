// Package storage keeps the scoreboard of finished runs in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is needed.
// By default the database lives in memory and disappears with the process.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

const timeLayout = "2006-01-02 15:04:05.000"

// Store wraps the scoreboard database.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID             string
	GameID         string
	Score          int
	CleanCollected int
	BestStreak     int
	FactsSeen      int
	Character      string
	Difficulty     string
	Outcome        string
	CreatedAt      time.Time
}

// GameStats aggregates the runs of one game.
type GameStats struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalClean int64
	BestStreak int
	LastPlayed time.Time
}

// OpenMemory opens an empty in-memory scoreboard.
func OpenMemory(ctx context.Context) (*Store, error) {
	return Open(ctx, MemoryDSN)
}

// Open opens the scoreboard at path, creating parent directories as
// needed, and applies migrations. An empty path or MemoryDSN keeps the
// database in memory.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = MemoryDSN
	}
	if path != MemoryDSN {
		if path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. A missing ID or timestamp is filled in and the
// stored run is returned.
func (s *Store) SaveRun(ctx context.Context, r Run) (Run, error) {
	if r.GameID == "" {
		return r, errors.New("storage: run has no game id")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Millisecond)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs
		 (id, game_id, score, clean_collected, best_streak, facts_seen, character, difficulty, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.CleanCollected, r.BestStreak, r.FactsSeen,
		r.Character, r.Difficulty, r.Outcome, r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r, nil
}

// TopRuns returns the best runs of a game, highest score first. Ties go
// to the earlier run.
func (s *Store) TopRuns(ctx context.Context, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, score, clean_collected, best_streak, facts_seen,
		        character, difficulty, outcome, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.CleanCollected, &r.BestStreak, &r.FactsSeen,
			&r.Character, &r.Difficulty, &r.Outcome, &createdAt); err != nil {
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

// HighScore returns the best score of a game, 0 if it was never played.
func (s *Store) HighScore(ctx context.Context, gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every run of a game.
func (s *Store) Stats(ctx context.Context, gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(clean_collected), 0), COALESCE(MAX(best_streak), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalClean, &stats.BestStreak, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// Clear deletes every run of a game.
func (s *Store) Clear(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime accepts the driver's time.Time or the stored text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range []string{timeLayout, time.DateTime, time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
