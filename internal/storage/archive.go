package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/IgorBio/Rogue-sub001/internal/stats"
)

// ArchiveFilename is the run archive database inside the save dir.
const ArchiveFilename = "history.db"

// RunArchive is a durable append-only history of completed runs backed
// by SQLite. Unlike the leaderboard file it is never rewritten, and its
// aggregates are computed in SQL. Archive failures must never block
// leaderboard persistence.
type RunArchive struct {
	db *sql.DB
}

// OpenArchive opens (and creates if missing) the archive database in
// the save directory and applies the schema.
func OpenArchive(ctx context.Context, dir string) (*RunArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, ArchiveFilename))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	a := &RunArchive{db: db}
	if err := a.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the database handle.
func (a *RunArchive) Close() error { return a.db.Close() }

func (a *RunArchive) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			completed_at TEXT NOT NULL,
			treasure INTEGER NOT NULL DEFAULT 0,
			level_reached INTEGER NOT NULL DEFAULT 1,
			enemies_defeated INTEGER NOT NULL DEFAULT 0,
			attacks_made INTEGER NOT NULL DEFAULT 0,
			damage_dealt INTEGER NOT NULL DEFAULT 0,
			damage_received INTEGER NOT NULL DEFAULT 0,
			tiles_moved INTEGER NOT NULL DEFAULT 0,
			items_collected INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			victory INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_treasure ON runs(treasure);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level_reached);`,
	}
	for _, stmt := range stmts {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate archive: %w", err)
		}
	}
	return nil
}

// InsertRun appends a completed run to the archive.
func (a *RunArchive) InsertRun(ctx context.Context, run *stats.Statistics) (int64, error) {
	res, err := a.db.ExecContext(ctx, `
		INSERT INTO runs (
			completed_at, treasure, level_reached, enemies_defeated,
			attacks_made, damage_dealt, damage_received,
			tiles_moved, items_collected, deaths, victory
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.Timestamp, run.TreasureCollected, run.LevelReached, run.EnemiesDefeated,
		run.AttacksMade, run.DamageDealt, run.DamageReceived,
		run.TilesMoved, run.ItemsCollected, run.Deaths, boolToInt(run.Victory))
	if err != nil {
		return 0, fmt.Errorf("archive insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("archive last insert id: %w", err)
	}
	return id, nil
}

// CountRuns returns how many runs the archive holds.
func (a *RunArchive) CountRuns(ctx context.Context) (int, error) {
	var n int
	row := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("archive count: %w", err)
	}
	return n, nil
}

// ArchiveTotals are the SQL-side aggregates over the archive.
type ArchiveTotals struct {
	Runs          int
	Victories     int
	TotalTreasure int
	MostTreasure  int
	DeepestLevel  int
	AvgTreasure   float64
	AvgLevel      float64
}

// AggregateTotals computes aggregates over all archived runs, or nil
// when the archive is empty.
func (a *RunArchive) AggregateTotals(ctx context.Context) (*ArchiveTotals, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(victory), 0),
			COALESCE(SUM(treasure), 0),
			COALESCE(MAX(treasure), 0),
			COALESCE(MAX(level_reached), 0),
			COALESCE(AVG(treasure), 0),
			COALESCE(AVG(level_reached), 0)
		FROM runs
	`)
	var t ArchiveTotals
	if err := row.Scan(&t.Runs, &t.Victories, &t.TotalTreasure, &t.MostTreasure,
		&t.DeepestLevel, &t.AvgTreasure, &t.AvgLevel); err != nil {
		return nil, fmt.Errorf("archive totals: %w", err)
	}
	if t.Runs == 0 {
		return nil, nil
	}
	return &t, nil
}

// LevelBest is the best archived outcome for one dungeon level.
type LevelBest struct {
	Level        int
	Runs         int
	BestTreasure int
	Victories    int
}

// BestByLevel returns per-level bests ordered by level.
func (a *RunArchive) BestByLevel(ctx context.Context) ([]LevelBest, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT level_reached, COUNT(*), MAX(treasure), SUM(victory)
		FROM runs
		GROUP BY level_reached
		ORDER BY level_reached ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("archive by level: %w", err)
	}
	defer rows.Close()

	var out []LevelBest
	for rows.Next() {
		var lb LevelBest
		if err := rows.Scan(&lb.Level, &lb.Runs, &lb.BestTreasure, &lb.Victories); err != nil {
			return nil, fmt.Errorf("archive by level scan: %w", err)
		}
		out = append(out, lb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive by level rows: %w", err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
