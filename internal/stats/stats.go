// Package stats tracks per-run gameplay metrics.
//
// A Statistics value accumulates counters during a single run and is
// finalized once at game end. It is the unit persisted to the
// leaderboard and embedded in save files.
package stats

import (
	"encoding/json"
	"fmt"
	"time"
)

// TotalLevels is the depth of the dungeon; level_reached is 1..TotalLevels.
const TotalLevels = 21

const hitEfficiencyPercent = 100

// Statistics records all player actions, combat outcomes, progression
// metrics and final character state for one run. Mutate it only through
// the Record* methods.
type Statistics struct {
	TreasureCollected int `json:"treasure_collected"`
	LevelReached      int `json:"level_reached"`
	EnemiesDefeated   int `json:"enemies_defeated"`

	FoodConsumed    int `json:"food_consumed"`
	ElixirsUsed     int `json:"elixirs_used"`
	ScrollsRead     int `json:"scrolls_read"`
	WeaponsEquipped int `json:"weapons_equipped"`

	AttacksMade    int `json:"attacks_made"`
	HitsTaken      int `json:"hits_taken"`
	DamageDealt    int `json:"damage_dealt"`
	DamageReceived int `json:"damage_received"`

	TilesMoved     int `json:"tiles_moved"`
	ItemsCollected int `json:"items_collected"`

	Deaths  int  `json:"deaths"`
	Victory bool `json:"victory"`

	FinalHealth    int `json:"final_health"`
	FinalStrength  int `json:"final_strength"`
	FinalDexterity int `json:"final_dexterity"`

	Timestamp string `json:"timestamp"`
}

// New returns a zeroed Statistics with level_reached set to 1.
func New() *Statistics {
	return &Statistics{LevelReached: 1}
}

// CharacterState is the slice of a character that Statistics copies at
// game end.
type CharacterState interface {
	CurrentHealth() int
	CurrentStrength() int
	CurrentDexterity() int
}

// RecordEnemyDefeated counts a kill and its treasure reward. The reward
// must be non-negative; the caller is responsible for validation.
func (s *Statistics) RecordEnemyDefeated(treasureReward int) {
	s.EnemiesDefeated++
	s.TreasureCollected += treasureReward
}

// RecordFoodUsed counts one food item consumed.
func (s *Statistics) RecordFoodUsed() { s.FoodConsumed++ }

// RecordElixirUsed counts one elixir consumed.
func (s *Statistics) RecordElixirUsed() { s.ElixirsUsed++ }

// RecordScrollUsed counts one scroll read.
func (s *Statistics) RecordScrollUsed() { s.ScrollsRead++ }

// RecordWeaponEquipped counts one weapon equip.
func (s *Statistics) RecordWeaponEquipped() { s.WeaponsEquipped++ }

// RecordAttack counts an attack attempt. Damage accumulates only when
// the attack landed; a miss ignores the damage argument entirely.
func (s *Statistics) RecordAttack(hit bool, damage int) {
	s.AttacksMade++
	if hit {
		s.DamageDealt += damage
	}
}

// RecordHitTaken counts an enemy hit and its damage.
func (s *Statistics) RecordHitTaken(damage int) {
	s.HitsTaken++
	s.DamageReceived += damage
}

// RecordMovement counts one tile of movement.
func (s *Statistics) RecordMovement() { s.TilesMoved++ }

// RecordItemCollected counts one item pickup.
func (s *Statistics) RecordItemCollected() { s.ItemsCollected++ }

// RecordLevelReached raises the deepest level reached. It never
// decreases the recorded value.
func (s *Statistics) RecordLevelReached(level int) {
	if level > s.LevelReached {
		s.LevelReached = level
	}
}

// RecordGameEnd copies the final character state, stamps the run and
// marks the outcome. A defeat sets the death counter to 1; a later
// victorious call never resets it. This is a terminal operation and is
// not idempotent.
func (s *Statistics) RecordGameEnd(character CharacterState, victory bool) {
	s.FinalHealth = character.CurrentHealth()
	s.FinalStrength = character.CurrentStrength()
	s.FinalDexterity = character.CurrentDexterity()
	s.Victory = victory
	s.Timestamp = time.Now().Format(time.RFC3339)

	if !victory {
		s.Deaths = 1
	}
}

// Summary renders the run as display lines. Section order (progression,
// combat, items, exploration) is part of the contract.
func (s *Statistics) Summary() []string {
	var out []string

	out = append(out, "=== PROGRESSION ===")
	out = append(out, fmt.Sprintf("Deepest Level: %d/%d", s.LevelReached, TotalLevels))
	out = append(out, fmt.Sprintf("Treasure: %d", s.TreasureCollected))
	victory := "No"
	if s.Victory {
		victory = "YES"
	}
	out = append(out, "Victory: "+victory)
	out = append(out, "")

	out = append(out, "=== COMBAT ===")
	out = append(out, fmt.Sprintf("Enemies Defeated: %d", s.EnemiesDefeated))
	out = append(out, fmt.Sprintf("Attacks Made: %d", s.AttacksMade))
	out = append(out, fmt.Sprintf("Hits Taken: %d", s.HitsTaken))
	out = append(out, fmt.Sprintf("Damage Dealt: %d", s.DamageDealt))
	out = append(out, fmt.Sprintf("Damage Received: %d", s.DamageReceived))
	if s.AttacksMade > 0 {
		hitRate := float64(s.DamageDealt) / float64(s.AttacksMade) * hitEfficiencyPercent
		out = append(out, fmt.Sprintf("Hit Efficiency: %.1f%%", hitRate))
	}
	out = append(out, "")

	out = append(out, "=== ITEMS ===")
	out = append(out, fmt.Sprintf("Items Collected: %d", s.ItemsCollected))
	out = append(out, fmt.Sprintf("Food Consumed: %d", s.FoodConsumed))
	out = append(out, fmt.Sprintf("Elixirs Used: %d", s.ElixirsUsed))
	out = append(out, fmt.Sprintf("Scrolls Read: %d", s.ScrollsRead))
	out = append(out, fmt.Sprintf("Weapons Equipped: %d", s.WeaponsEquipped))
	out = append(out, "")

	out = append(out, "=== EXPLORATION ===")
	out = append(out, fmt.Sprintf("Tiles Traversed: %d", s.TilesMoved))
	if s.TilesMoved > 0 {
		perTile := float64(s.ItemsCollected) / float64(s.TilesMoved)
		out = append(out, fmt.Sprintf("Items per Tile: %.3f", perTile))
	}

	return out
}

// MarshalDoc serializes the run for persistence.
func (s *Statistics) MarshalDoc() (json.RawMessage, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal statistics: %w", err)
	}
	return data, nil
}

// UnmarshalDoc reconstructs a run from a persisted document. Unknown
// keys are ignored and missing fields keep their typed defaults, so
// documents written by newer builds degrade gracefully. A missing
// level_reached falls back to 1.
func UnmarshalDoc(data json.RawMessage) (*Statistics, error) {
	s := New()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unmarshal statistics: %w", err)
	}
	if s.LevelReached < 1 {
		s.LevelReached = 1
	}
	return s, nil
}
