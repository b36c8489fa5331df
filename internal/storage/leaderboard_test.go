package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/IgorBio/Rogue-sub001/internal/stats"
)

func newTestBoard(t *testing.T) *LeaderboardStore {
	t.Helper()
	store, err := NewLeaderboardStore(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("new leaderboard store: %v", err)
	}
	return store
}

func runWithTreasure(treasure, level int, victory bool) *stats.Statistics {
	s := stats.New()
	s.TreasureCollected = treasure
	s.LevelReached = level
	s.Victory = victory
	if !victory {
		s.Deaths = 1
	}
	return s
}

func TestLoadEmptyWhenFileMissing(t *testing.T) {
	store := newTestBoard(t)
	if got := store.Load(); len(got) != 0 {
		t.Fatalf("Load()=%d entries, want 0", len(got))
	}
}

func TestSaveRunKeepsSortedByTreasure(t *testing.T) {
	store := newTestBoard(t)
	for _, treasure := range []int{100, 50, 150} {
		if err := store.SaveRun(runWithTreasure(treasure, 3, false)); err != nil {
			t.Fatalf("SaveRun(%d): %v", treasure, err)
		}
	}

	board := store.Load()
	want := []int{150, 100, 50}
	if len(board) != len(want) {
		t.Fatalf("Load()=%d entries, want %d", len(board), len(want))
	}
	for i, w := range want {
		if board[i].TreasureCollected != w {
			t.Fatalf("board[%d].TreasureCollected=%d, want %d", i, board[i].TreasureCollected, w)
		}
	}
}

func TestSaveRunStableOnTies(t *testing.T) {
	store := newTestBoard(t)
	first := runWithTreasure(100, 2, false)
	first.EnemiesDefeated = 1
	second := runWithTreasure(100, 5, false)
	second.EnemiesDefeated = 2

	if err := store.SaveRun(first); err != nil {
		t.Fatalf("SaveRun first: %v", err)
	}
	if err := store.SaveRun(second); err != nil {
		t.Fatalf("SaveRun second: %v", err)
	}

	board := store.Load()
	if board[0].EnemiesDefeated != 1 || board[1].EnemiesDefeated != 2 {
		t.Fatalf("tie order changed: got kills [%d %d], want [1 2]",
			board[0].EnemiesDefeated, board[1].EnemiesDefeated)
	}
}

func TestTopRuns(t *testing.T) {
	store := newTestBoard(t)
	for _, treasure := range []int{10, 30, 20} {
		if err := store.SaveRun(runWithTreasure(treasure, 1, false)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	top := store.TopRuns(2)
	if len(top) != 2 {
		t.Fatalf("TopRuns(2)=%d entries, want 2", len(top))
	}
	if top[0].TreasureCollected != 30 || top[1].TreasureCollected != 20 {
		t.Fatalf("TopRuns(2) treasures [%d %d], want [30 20]",
			top[0].TreasureCollected, top[1].TreasureCollected)
	}

	if got := store.TopRuns(100); len(got) != 3 {
		t.Fatalf("TopRuns(100)=%d entries, want all 3", len(got))
	}
}

func TestPlayerRankStrictlyGreater(t *testing.T) {
	store := newTestBoard(t)
	for _, treasure := range []int{100, 50, 150} {
		if err := store.SaveRun(runWithTreasure(treasure, 1, false)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	if got := store.PlayerRank(120); got != 2 {
		t.Fatalf("PlayerRank(120)=%d, want 2", got)
	}
	if got := store.PlayerRank(200); got != 1 {
		t.Fatalf("PlayerRank(200)=%d, want 1", got)
	}
	if got := store.PlayerRank(0); got != 4 {
		t.Fatalf("PlayerRank(0)=%d, want 4", got)
	}
}

func TestPlayerRankTiesShareRank(t *testing.T) {
	store := newTestBoard(t)
	for _, treasure := range []int{100, 100, 50} {
		if err := store.SaveRun(runWithTreasure(treasure, 1, false)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	// Both 100-treasure runs rank 1; equal values never push each
	// other down and no rank is skipped after the tie.
	if got := store.PlayerRank(100); got != 1 {
		t.Fatalf("PlayerRank(100)=%d, want 1 (ties share rank)", got)
	}
	if got := store.PlayerRank(50); got != 3 {
		t.Fatalf("PlayerRank(50)=%d, want 3", got)
	}
}

func TestTotalsNilWhenEmpty(t *testing.T) {
	store := newTestBoard(t)
	if got := store.Totals(); got != nil {
		t.Fatalf("Totals() on empty leaderboard = %+v, want nil", got)
	}
}

func TestTotalsAggregates(t *testing.T) {
	store := newTestBoard(t)
	for _, treasure := range []int{100, 50, 150} {
		level := treasure / 50
		if err := store.SaveRun(runWithTreasure(treasure, level, treasure == 150)); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	totals := store.Totals()
	if totals == nil {
		t.Fatalf("Totals()=nil, want aggregates")
	}
	if totals.TotalRuns != 3 {
		t.Fatalf("TotalRuns=%d, want 3", totals.TotalRuns)
	}
	if totals.TotalTreasure != 300 {
		t.Fatalf("TotalTreasure=%d, want 300", totals.TotalTreasure)
	}
	if totals.MostTreasure != 150 {
		t.Fatalf("MostTreasure=%d, want 150", totals.MostTreasure)
	}
	if totals.DeepestLevel != 3 {
		t.Fatalf("DeepestLevel=%d, want 3", totals.DeepestLevel)
	}
	if totals.AvgTreasurePerRun != 100 {
		t.Fatalf("AvgTreasurePerRun=%v, want 100", totals.AvgTreasurePerRun)
	}
	if totals.TotalVictories != 1 {
		t.Fatalf("TotalVictories=%d, want 1", totals.TotalVictories)
	}
	if totals.TotalDeaths != 2 {
		t.Fatalf("TotalDeaths=%d, want 2", totals.TotalDeaths)
	}
}

func TestStatsByLevel(t *testing.T) {
	store := newTestBoard(t)
	for _, run := range []*stats.Statistics{
		runWithTreasure(100, 2, false),
		runWithTreasure(200, 2, true),
		runWithTreasure(30, 5, false),
	} {
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	byLevel := store.StatsByLevel()
	if len(byLevel) != 2 {
		t.Fatalf("StatsByLevel()=%d levels, want 2", len(byLevel))
	}

	l2 := byLevel[2]
	if l2.Runs != 2 || l2.Victories != 1 || l2.TotalTreasure != 300 {
		t.Fatalf("level 2 stats = %+v", l2)
	}
	if l2.AvgTreasure != 150 {
		t.Fatalf("level 2 AvgTreasure=%v, want 150", l2.AvgTreasure)
	}

	l5 := byLevel[5]
	if l5.Runs != 1 || l5.TotalTreasure != 30 || l5.AvgTreasure != 30 {
		t.Fatalf("level 5 stats = %+v", l5)
	}
}

func TestClearThenLoadEmpty(t *testing.T) {
	store := newTestBoard(t)
	if err := store.SaveRun(runWithTreasure(10, 1, false)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := store.Load(); len(got) != 0 {
		t.Fatalf("Load() after Clear = %d entries, want 0", len(got))
	}
	// Clearing an already-missing file is fine too.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
}

func TestLoadCorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLeaderboardStore(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new leaderboard store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, LeaderboardFilename), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if got := store.Load(); len(got) != 0 {
		t.Fatalf("Load() on corrupt file = %d entries, want 0", len(got))
	}
}

func TestLoadLegacyArrayFormat(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLeaderboardStore(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("new leaderboard store: %v", err)
	}
	legacy := `[{"treasure_collected": 70, "level_reached": 2}]`
	if err := os.WriteFile(filepath.Join(dir, LeaderboardFilename), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	board := store.Load()
	if len(board) != 1 {
		t.Fatalf("Load() legacy = %d entries, want 1", len(board))
	}
	if board[0].TreasureCollected != 70 || board[0].LevelReached != 2 {
		t.Fatalf("legacy entry = %+v", board[0])
	}
}
