package stats

import (
	"encoding/json"
	"strings"
	"testing"
)

type fakeCharacter struct {
	health, strength, dexterity int
}

func (f fakeCharacter) CurrentHealth() int    { return f.health }
func (f fakeCharacter) CurrentStrength() int  { return f.strength }
func (f fakeCharacter) CurrentDexterity() int { return f.dexterity }

func TestNewStartsAtLevelOne(t *testing.T) {
	s := New()
	if s.LevelReached != 1 {
		t.Fatalf("LevelReached=%d, want 1", s.LevelReached)
	}
	if s.TreasureCollected != 0 || s.EnemiesDefeated != 0 {
		t.Fatalf("expected zeroed counters, got %+v", s)
	}
}

func TestRecordAttackMissIgnoresDamage(t *testing.T) {
	s := New()
	s.RecordAttack(true, 5)
	s.RecordAttack(false, 999)

	if s.AttacksMade != 2 {
		t.Fatalf("AttacksMade=%d, want 2", s.AttacksMade)
	}
	if s.DamageDealt != 5 {
		t.Fatalf("DamageDealt=%d, want 5 (miss damage must not count)", s.DamageDealt)
	}
}

func TestRecordLevelReachedIsMonotonic(t *testing.T) {
	s := New()
	s.RecordLevelReached(5)
	s.RecordLevelReached(3)
	if s.LevelReached != 5 {
		t.Fatalf("LevelReached=%d, want 5", s.LevelReached)
	}
	s.RecordLevelReached(7)
	if s.LevelReached != 7 {
		t.Fatalf("LevelReached=%d, want 7", s.LevelReached)
	}
}

func TestRecordEnemyDefeated(t *testing.T) {
	s := New()
	s.RecordEnemyDefeated(30)
	s.RecordEnemyDefeated(0)
	if s.EnemiesDefeated != 2 {
		t.Fatalf("EnemiesDefeated=%d, want 2", s.EnemiesDefeated)
	}
	if s.TreasureCollected != 30 {
		t.Fatalf("TreasureCollected=%d, want 30", s.TreasureCollected)
	}
}

func TestRecordGameEndDefeat(t *testing.T) {
	s := New()
	s.RecordGameEnd(fakeCharacter{health: 0, strength: 12, dexterity: 9}, false)

	if s.Deaths != 1 {
		t.Fatalf("Deaths=%d, want 1", s.Deaths)
	}
	if s.Victory {
		t.Fatalf("Victory=true, want false")
	}
	if s.FinalHealth != 0 || s.FinalStrength != 12 || s.FinalDexterity != 9 {
		t.Fatalf("final stats not copied: %+v", s)
	}
	if s.Timestamp == "" {
		t.Fatalf("expected timestamp to be stamped")
	}
}

func TestRecordGameEndVictoryKeepsZeroDeaths(t *testing.T) {
	s := New()
	s.RecordGameEnd(fakeCharacter{health: 40, strength: 15, dexterity: 11}, true)
	if s.Deaths != 0 {
		t.Fatalf("Deaths=%d, want 0 on victory", s.Deaths)
	}
	if !s.Victory {
		t.Fatalf("Victory=false, want true")
	}
}

func TestRoundTripReproducesAllFields(t *testing.T) {
	s := New()
	s.RecordEnemyDefeated(50)
	s.RecordFoodUsed()
	s.RecordElixirUsed()
	s.RecordScrollUsed()
	s.RecordWeaponEquipped()
	s.RecordAttack(true, 7)
	s.RecordHitTaken(3)
	s.RecordMovement()
	s.RecordItemCollected()
	s.RecordLevelReached(4)
	s.RecordGameEnd(fakeCharacter{health: 20, strength: 14, dexterity: 8}, false)

	doc, err := s.MarshalDoc()
	if err != nil {
		t.Fatalf("MarshalDoc: %v", err)
	}
	got, err := UnmarshalDoc(doc)
	if err != nil {
		t.Fatalf("UnmarshalDoc: %v", err)
	}
	if *got != *s {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestUnmarshalDocTolerates(t *testing.T) {
	// Unknown keys from a newer build and missing level_reached.
	doc := []byte(`{"treasure_collected": 80, "future_metric": 12}`)
	got, err := UnmarshalDoc(doc)
	if err != nil {
		t.Fatalf("UnmarshalDoc: %v", err)
	}
	if got.TreasureCollected != 80 {
		t.Fatalf("TreasureCollected=%d, want 80", got.TreasureCollected)
	}
	if got.LevelReached != 1 {
		t.Fatalf("LevelReached=%d, want default 1", got.LevelReached)
	}
}

func TestUnmarshalDocEmpty(t *testing.T) {
	got, err := UnmarshalDoc(nil)
	if err != nil {
		t.Fatalf("UnmarshalDoc(nil): %v", err)
	}
	if got.LevelReached != 1 {
		t.Fatalf("LevelReached=%d, want 1", got.LevelReached)
	}
}

func TestSummarySectionOrder(t *testing.T) {
	s := New()
	s.RecordAttack(true, 10)
	s.RecordMovement()
	s.RecordItemCollected()

	lines := s.Summary()
	text := strings.Join(lines, "\n")

	sections := []string{"=== PROGRESSION ===", "=== COMBAT ===", "=== ITEMS ===", "=== EXPLORATION ==="}
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx < 0 {
			t.Fatalf("summary missing section %q", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}

	if !strings.Contains(text, "Hit Efficiency:") {
		t.Fatalf("expected hit efficiency line with attacks made")
	}
	if !strings.Contains(text, "Items per Tile:") {
		t.Fatalf("expected items-per-tile line with movement recorded")
	}
}

func TestSummaryGuardsDivisionByZero(t *testing.T) {
	s := New()
	text := strings.Join(s.Summary(), "\n")
	if strings.Contains(text, "Hit Efficiency:") {
		t.Fatalf("no attacks made, hit efficiency must be omitted")
	}
	if strings.Contains(text, "Items per Tile:") {
		t.Fatalf("no tiles moved, items-per-tile must be omitted")
	}
}

func TestDocKeysMatchFormat(t *testing.T) {
	doc, err := New().MarshalDoc()
	if err != nil {
		t.Fatalf("MarshalDoc: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"treasure_collected", "level_reached", "enemies_defeated",
		"food_consumed", "elixirs_used", "scrolls_read", "weapons_equipped",
		"attacks_made", "hits_taken", "damage_dealt", "damage_received",
		"tiles_moved", "items_collected", "deaths", "victory",
		"final_health", "final_strength", "final_dexterity", "timestamp",
	} {
		if _, ok := m[key]; !ok {
			t.Fatalf("document missing key %q", key)
		}
	}
}
