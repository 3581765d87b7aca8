// Package storage keeps the record of finished levels in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only completions are stored; a level in progress is never saved.
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

// Completion is one finished run of a level.
type Completion struct {
	ID         int64
	LevelID    string
	Player     string
	Moves      int
	Pushes     int
	Score      int
	Duration   time.Duration
	PushPolicy string
	CreatedAt  time.Time
}

// LevelStats aggregates the completions of one level.
type LevelStats struct {
	LevelID     string
	Completions int
	BestMoves   int
	BestPushes  int
	BestScore   int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			push_policy TEXT NOT NULL DEFAULT 'overlap',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(level_id, moves, pushes);
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

// SaveCompletion records a finished level and returns the new record ID.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	if c.LevelID == "" {
		return 0, errors.New("storage: completion without level id")
	}

	result, err := s.db.Exec(
		`INSERT INTO completions (level_id, player, moves, pushes, score, duration_ms, push_policy)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.LevelID, c.Player, c.Moves, c.Pushes, c.Score, c.Duration.Milliseconds(), c.PushPolicy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestCompletions returns up to limit completions of a level, fewest
// moves first, then fewest pushes, then earliest.
func (s *Store) BestCompletions(levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, moves, pushes, score, duration_ms, push_policy, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY moves ASC, pushes ASC, created_at ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&c.ID, &c.LevelID, &c.Player, &c.Moves, &c.Pushes, &c.Score,
			&durationMS, &c.PushPolicy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Duration = time.Duration(durationMS) * time.Millisecond
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestMoves returns the fewest moves any completion of the level took.
// ok is false when the level was never finished.
func (s *Store) BestMoves(levelID string) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// LevelStats aggregates the completions of one level. A level never
// finished yields zero counts.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(pushes), 0), COALESCE(MAX(score), 0), MAX(created_at)
		 FROM completions WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Completions, &stats.BestMoves, &stats.BestPushes, &stats.BestScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllLevelStats returns stats for every level with at least one completion.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MIN(pushes), MAX(score), MAX(created_at)
		 FROM completions
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Completions, &ls.BestMoves, &ls.BestPushes, &ls.BestScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearCompletions deletes every completion of the level.
func (s *Store) ClearCompletions(levelID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// parseTime handles both driver representations of a DATETIME column.
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
