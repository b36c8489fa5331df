package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/IgorBio/Rogue-sub001/internal/stats"
)

const (
	// LeaderboardFilename is the leaderboard file inside the save dir.
	LeaderboardFilename = "leaderboard.json"

	// LeaderboardVersion tags the leaderboard file format. Files
	// written before versioning (a bare JSON array) still load.
	LeaderboardVersion = "1.0"

	// DefaultTopRunsCount is how many runs TopRuns shows by default.
	DefaultTopRunsCount = 10
)

// LeaderboardStore persists completed runs to a single JSON file kept
// sorted by treasure, and answers rank / aggregate / group-by queries
// over it.
//
// Mutating operations log and return storage errors so the caller
// decides whether to surface them. Query operations always return
// usable values: a missing, empty or unparsable file reads as an empty
// leaderboard.
type LeaderboardStore struct {
	file string
	log  zerolog.Logger
}

// leaderboardFile is the on-disk envelope.
type leaderboardFile struct {
	Version string            `json:"version"`
	Runs    []json.RawMessage `json:"runs"`
}

// NewLeaderboardStore creates the save directory if needed and returns
// a store over <dir>/leaderboard.json.
func NewLeaderboardStore(dir string, log zerolog.Logger) (*LeaderboardStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &LeaderboardStore{
		file: filepath.Join(dir, LeaderboardFilename),
		log:  log.With().Str("component", "leaderboard").Logger(),
	}, nil
}

// SaveRun appends the run to the leaderboard, re-sorts by treasure
// descending (stable, so earlier runs keep their position on ties) and
// rewrites the file. The error is also logged; callers that prefer the
// historic fire-and-forget behavior may ignore it.
func (s *LeaderboardStore) SaveRun(run *stats.Statistics) error {
	board := s.Load()
	board = append(board, run)
	sortByTreasure(board)

	if err := s.write(board); err != nil {
		s.log.Error().Err(err).Str("path", s.file).Msg("save run")
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Load returns the full leaderboard, sorted by treasure descending. A
// missing file is an empty leaderboard; read or parse failures are
// logged and also read as empty, never as an error.
func (s *LeaderboardStore) Load() []*stats.Statistics {
	data, err := os.ReadFile(s.file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error().Err(err).Str("path", s.file).Msg("read leaderboard")
		}
		return []*stats.Statistics{}
	}

	raw, err := decodeRuns(data)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.file).Msg("parse leaderboard")
		return []*stats.Statistics{}
	}

	board := make([]*stats.Statistics, 0, len(raw))
	for _, doc := range raw {
		run, err := stats.UnmarshalDoc(doc)
		if err != nil {
			s.log.Error().Err(err).Str("path", s.file).Msg("parse leaderboard entry")
			return []*stats.Statistics{}
		}
		board = append(board, run)
	}
	return board
}

// decodeRuns accepts both the versioned envelope and the legacy bare
// array format.
func decodeRuns(data []byte) ([]json.RawMessage, error) {
	var file leaderboardFile
	if err := json.Unmarshal(data, &file); err == nil && file.Version != "" {
		return file.Runs, nil
	}
	var legacy []json.RawMessage
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("leaderboard format: %w", err)
	}
	return legacy, nil
}

func (s *LeaderboardStore) write(board []*stats.Statistics) error {
	file := leaderboardFile{Version: LeaderboardVersion, Runs: make([]json.RawMessage, 0, len(board))}
	for _, run := range board {
		doc, err := run.MarshalDoc()
		if err != nil {
			return err
		}
		file.Runs = append(file.Runs, doc)
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := os.WriteFile(s.file, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

func sortByTreasure(board []*stats.Statistics) {
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TreasureCollected > board[j].TreasureCollected
	})
}

// TopRuns returns the first n runs of the sorted leaderboard, or all of
// them when fewer exist.
func (s *LeaderboardStore) TopRuns(n int) []*stats.Statistics {
	board := s.Load()
	if n > len(board) {
		n = len(board)
	}
	if n < 0 {
		n = 0
	}
	return board[:n]
}

// Totals aggregates every tracked metric across all runs.
type Totals struct {
	TotalRuns            int `json:"total_runs"`
	TotalVictories       int `json:"total_victories"`
	TotalDeaths          int `json:"total_deaths"`
	TotalEnemiesDefeated int `json:"total_enemies_defeated"`
	TotalTreasure        int `json:"total_treasure"`
	DeepestLevel         int `json:"deepest_level"`
	MostTreasure         int `json:"most_treasure"`
	TotalTilesMoved      int `json:"total_tiles_moved"`
	TotalAttacks         int `json:"total_attacks"`
	TotalDamageDealt     int `json:"total_damage_dealt"`
	TotalDamageReceived  int `json:"total_damage_received"`
	TotalFoodConsumed    int `json:"total_food_consumed"`
	TotalItemsCollected  int `json:"total_items_collected"`

	AvgTreasurePerRun float64 `json:"avg_treasure_per_run"`
	AvgLevelReached   float64 `json:"avg_level_reached"`
	AvgEnemiesPerRun  float64 `json:"avg_enemies_per_run"`
}

// Totals computes aggregate statistics across all runs, or nil when the
// leaderboard is empty. Missing per-record fields count as zero and a
// missing level as 1, so older records never break aggregation.
func (s *LeaderboardStore) Totals() *Totals {
	board := s.Load()
	if len(board) == 0 {
		return nil
	}

	t := &Totals{TotalRuns: len(board)}
	levelSum := 0
	for _, run := range board {
		if run.Victory {
			t.TotalVictories++
		}
		t.TotalDeaths += run.Deaths
		t.TotalEnemiesDefeated += run.EnemiesDefeated
		t.TotalTreasure += run.TreasureCollected
		t.TotalTilesMoved += run.TilesMoved
		t.TotalAttacks += run.AttacksMade
		t.TotalDamageDealt += run.DamageDealt
		t.TotalDamageReceived += run.DamageReceived
		t.TotalFoodConsumed += run.FoodConsumed
		t.TotalItemsCollected += run.ItemsCollected

		level := run.LevelReached
		if level < 1 {
			level = 1
		}
		levelSum += level
		if level > t.DeepestLevel {
			t.DeepestLevel = level
		}
		if run.TreasureCollected > t.MostTreasure {
			t.MostTreasure = run.TreasureCollected
		}
	}

	t.AvgTreasurePerRun = float64(t.TotalTreasure) / float64(t.TotalRuns)
	t.AvgLevelReached = float64(levelSum) / float64(t.TotalRuns)
	t.AvgEnemiesPerRun = float64(t.TotalEnemiesDefeated) / float64(t.TotalRuns)
	return t
}

// PlayerRank ranks a treasure value against the leaderboard: one plus
// the count of runs with strictly more treasure. Equal values share the
// same rank and no ranks are skipped after a tie.
func (s *LeaderboardStore) PlayerRank(treasure int) int {
	rank := 1
	for _, run := range s.Load() {
		if run.TreasureCollected > treasure {
			rank++
		}
	}
	return rank
}

// LevelStats aggregates the runs that ended on one level.
type LevelStats struct {
	Runs          int     `json:"runs"`
	Victories     int     `json:"victories"`
	TotalTreasure int     `json:"total_treasure"`
	AvgTreasure   float64 `json:"avg_treasure"`
}

// StatsByLevel groups runs by deepest level reached. Averages are
// computed once per level after the fold, never incrementally.
func (s *LeaderboardStore) StatsByLevel() map[int]LevelStats {
	byLevel := map[int]LevelStats{}
	for _, run := range s.Load() {
		level := run.LevelReached
		if level < 1 {
			level = 1
		}
		ls := byLevel[level]
		ls.Runs++
		if run.Victory {
			ls.Victories++
		}
		ls.TotalTreasure += run.TreasureCollected
		byLevel[level] = ls
	}
	for level, ls := range byLevel {
		if ls.Runs > 0 {
			ls.AvgTreasure = float64(ls.TotalTreasure) / float64(ls.Runs)
			byLevel[level] = ls
		}
	}
	return byLevel
}

// Clear deletes the leaderboard file. A subsequent Load returns an
// empty leaderboard.
func (s *LeaderboardStore) Clear() error {
	if err := os.Remove(s.file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error().Err(err).Str("path", s.file).Msg("clear leaderboard")
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	return nil
}
