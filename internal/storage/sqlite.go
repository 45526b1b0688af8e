// Package storage provides SQLite-based persistence for simulated runs.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished autoplay run.
type RunRecord struct {
	ID         string // Run UUID
	Variant    string
	Seed       int64
	Strategy   string
	Score      int
	Swaps      int
	Rounds     int
	Cleared    int
	BestChain  int
	Deadlocked bool
	Duration   time.Duration
	CreatedAt  time.Time
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	RunsCount  int
	BestScore  int
	AvgScore   float64
	BestChain  int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			score INTEGER NOT NULL,
			swaps INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			cleared INTEGER NOT NULL,
			best_chain INTEGER NOT NULL,
			deadlocked INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
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

// SaveRun records a finished run. The run ID must be unique.
func (s *Store) SaveRun(r RunRecord) error {
	if r.ID == "" {
		return errors.New("storage: run has no ID")
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, variant, seed, strategy, score, swaps, rounds, cleared, best_chain, deadlocked, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Variant,
		r.Seed,
		r.Strategy,
		r.Score,
		r.Swaps,
		r.Rounds,
		r.Cleared,
		r.BestChain,
		r.Deadlocked,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

const runColumns = `id, variant, seed, strategy, score, swaps, rounds, cleared,
		        best_chain, deadlocked, duration_ms, created_at`

// TopRuns retrieves the top N runs for the given variant.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// BestScore returns the highest score for the given variant.
// Returns 0 if no runs exist.
func (s *Store) BestScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BeatsBest reports whether score would be a new best for variant: the
// variant has no runs yet or score is strictly above every stored one.
// Call it before SaveRun.
func (s *Store) BeatsBest(variant string, score int) (bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&best)

	if err != nil {
		return false, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	return !best.Valid || int64(score) > best.Int64, nil
}

// ClearRuns deletes all runs for the given variant.
func (s *Store) ClearRuns(variant string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a variant.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(best_chain), 0), MAX(created_at)
		 FROM runs WHERE variant = ?`,
		variant,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore, &stats.BestChain, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRun reads one row selected with runColumns.
func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var durationMs int64
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.Variant,
		&r.Seed,
		&r.Strategy,
		&r.Score,
		&r.Swaps,
		&r.Rounds,
		&r.Cleared,
		&r.BestChain,
		&r.Deadlocked,
		&durationMs,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
