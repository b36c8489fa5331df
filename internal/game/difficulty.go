package game

import "github.com/IgorBio/Rogue-sub001/internal/stats"

// Performance thresholds for the adaptive difficulty model.
const (
	healthExcellentThreshold = 0.8
	healthGoodThreshold      = 0.6
	healthAverageThreshold   = 0.4
	healthLowThreshold       = 0.2

	damageRatioExcellent  = 3.0
	damageRatioStrong     = 2.0
	damageRatioAhead      = 1.0
	damageRatioBehind     = 0.5
	damageRatioStruggling = 0.3

	itemUsageEfficient = 0.5
	itemUsageAverage   = 0.3

	combatMultiplierLow  = 0.5
	combatMultiplierHigh = 1.5

	performanceExcellent  = 1.3
	performanceStruggling = 0.8

	driftRateFactor = 0.3
)

// Neutral modifier limits; serialized with the manager so old saves
// keep the bounds they were written with.
const (
	DefaultMinModifier    = 0.5
	DefaultMaxModifier    = 1.5
	DefaultAdjustmentRate = 0.1
)

// DifficultyManager adapts challenge to player performance: skilled
// players see more and stronger enemies with fewer items, struggling
// players the reverse. All modifiers stay within [MinModifier,
// MaxModifier] and drift back to 1.0 on balanced play.
type DifficultyManager struct {
	LevelsCompleted   int
	TotalDamageTaken  int
	TotalDamageDealt  int
	DeathsThisSession int

	AverageHealthPerLevel []float64
	TimePerLevel          []int

	EnemyCountModifier float64
	EnemyStatModifier  float64
	ItemSpawnModifier  float64
	HealingModifier    float64

	MinModifier    float64
	MaxModifier    float64
	AdjustmentRate float64
}

// NewDifficultyManager returns a manager with neutral modifiers.
func NewDifficultyManager() *DifficultyManager {
	return &DifficultyManager{
		AverageHealthPerLevel: []float64{},
		TimePerLevel:          []int{},
		EnemyCountModifier:    1.0,
		EnemyStatModifier:     1.0,
		ItemSpawnModifier:     1.0,
		HealingModifier:       1.0,
		MinModifier:           DefaultMinModifier,
		MaxModifier:           DefaultMaxModifier,
		AdjustmentRate:        DefaultAdjustmentRate,
	}
}

// UpdatePerformance folds the current run state into the tracked
// history. Call it when the player finishes a level.
func (m *DifficultyManager) UpdatePerformance(s *stats.Statistics, c *Character) {
	if c.MaxHealth > 0 {
		m.AverageHealthPerLevel = append(m.AverageHealthPerLevel, float64(c.Health)/float64(c.MaxHealth))
	}
	m.TotalDamageTaken = s.DamageReceived
	m.TotalDamageDealt = s.DamageDealt
}

// Adjust recomputes the four modifiers from a weighted performance
// score and returns that score (0.0 struggling .. 2.0 excelling, 1.0
// balanced).
func (m *DifficultyManager) Adjust(c *Character, s *stats.Statistics, levelNumber int) float64 {
	score := m.performanceScore(c, s, levelNumber)
	switch {
	case score > performanceExcellent:
		m.increaseDifficulty()
	case score < performanceStruggling:
		m.decreaseDifficulty()
	default:
		m.driftTowardNeutral()
	}
	return score
}

func (m *DifficultyManager) performanceScore(c *Character, s *stats.Statistics, levelNumber int) float64 {
	var scores []float64

	if c.MaxHealth > 0 {
		scores = append(scores, healthScore(float64(c.Health)/float64(c.MaxHealth)))
	}
	if s.HitsTaken > 0 && s.AttacksMade > 0 {
		scores = append(scores, combatScore(s))
	}
	if s.ItemsCollected > 0 {
		scores = append(scores, resourceScore(s))
	}
	scores = append(scores, speedScore(s, levelNumber))

	weights := []float64{1.5, 1.2, 1.0, 0.8}
	weightedSum, totalWeight := 0.0, 0.0
	for i, sc := range scores {
		weightedSum += sc * weights[i]
		totalWeight += weights[i]
	}
	return weightedSum / totalWeight
}

func healthScore(healthPercent float64) float64 {
	switch {
	case healthPercent > healthExcellentThreshold:
		return 1.8
	case healthPercent > healthGoodThreshold:
		return 1.3
	case healthPercent > healthAverageThreshold:
		return 1.0
	case healthPercent > healthLowThreshold:
		return 0.7
	default:
		return 0.4
	}
}

func combatScore(s *stats.Statistics) float64 {
	received := s.DamageReceived
	if received < 1 {
		received = 1
	}
	ratio := float64(s.DamageDealt) / float64(received)
	switch {
	case ratio > damageRatioExcellent:
		return 1.8
	case ratio > damageRatioStrong:
		return 1.4
	case ratio > damageRatioAhead:
		return 1.1
	case ratio > damageRatioBehind:
		return 0.9
	case ratio > damageRatioStruggling:
		return 0.6
	default:
		return 0.4
	}
}

func resourceScore(s *stats.Statistics) float64 {
	collected := s.ItemsCollected
	if collected < 1 {
		collected = 1
	}
	used := s.FoodConsumed + s.ElixirsUsed + s.ScrollsRead
	ratio := float64(used) / float64(collected)
	switch {
	case ratio > itemUsageEfficient:
		return 1.2
	case ratio > itemUsageAverage:
		return 1.0
	default:
		return 1.4
	}
}

func speedScore(s *stats.Statistics, levelNumber int) float64 {
	expected := float64(levelNumber * 3)
	defeated := float64(s.EnemiesDefeated)
	switch {
	case defeated < expected*combatMultiplierLow:
		return 0.8
	case defeated > expected*combatMultiplierHigh:
		return 1.3
	default:
		return 1.0
	}
}

func (m *DifficultyManager) increaseDifficulty() {
	m.EnemyCountModifier = min(m.MaxModifier, m.EnemyCountModifier+m.AdjustmentRate)
	m.EnemyStatModifier = min(m.MaxModifier, m.EnemyStatModifier+m.AdjustmentRate*0.5)
	m.ItemSpawnModifier = max(m.MinModifier, m.ItemSpawnModifier-m.AdjustmentRate)
	m.HealingModifier = max(m.MinModifier, m.HealingModifier-m.AdjustmentRate*0.5)
}

func (m *DifficultyManager) decreaseDifficulty() {
	m.EnemyCountModifier = max(m.MinModifier, m.EnemyCountModifier-m.AdjustmentRate)
	m.EnemyStatModifier = max(m.MinModifier, m.EnemyStatModifier-m.AdjustmentRate*0.5)
	m.ItemSpawnModifier = min(m.MaxModifier, m.ItemSpawnModifier+m.AdjustmentRate)
	m.HealingModifier = min(m.MaxModifier, m.HealingModifier+m.AdjustmentRate*0.5)
}

func (m *DifficultyManager) driftTowardNeutral() {
	drift := m.AdjustmentRate * driftRateFactor
	m.EnemyCountModifier = driftValue(m.EnemyCountModifier, drift)
	m.EnemyStatModifier = driftValue(m.EnemyStatModifier, drift)
	m.ItemSpawnModifier = driftValue(m.ItemSpawnModifier, drift)
	m.HealingModifier = driftValue(m.HealingModifier, drift)
}

func driftValue(v, drift float64) float64 {
	switch {
	case v > 1.0:
		return max(1.0, v-drift)
	case v < 1.0:
		return min(1.0, v+drift)
	default:
		return v
	}
}

// RecordLevelCompleted counts a finished level and its duration.
func (m *DifficultyManager) RecordLevelCompleted(seconds int) {
	m.LevelsCompleted++
	m.TimePerLevel = append(m.TimePerLevel, seconds)
}

// RecordDeath counts a death in this session.
func (m *DifficultyManager) RecordDeath() {
	m.DeathsThisSession++
}

// DifficultyDoc is the persisted form of the difficulty model. The
// modifiers and bounds are pointers so a restore can tell a missing
// field (older save) from an explicit value.
type DifficultyDoc struct {
	LevelsCompleted   int `json:"levels_completed"`
	TotalDamageTaken  int `json:"total_damage_taken"`
	TotalDamageDealt  int `json:"total_damage_dealt"`
	DeathsThisSession int `json:"deaths_this_session"`

	AverageHealthPerLevel []float64 `json:"average_health_per_level"`
	TimePerLevel          []int     `json:"time_per_level"`

	EnemyCountModifier *float64 `json:"enemy_count_modifier"`
	EnemyStatModifier  *float64 `json:"enemy_stat_modifier"`
	ItemSpawnModifier  *float64 `json:"item_spawn_modifier"`
	HealingModifier    *float64 `json:"healing_modifier"`

	MinModifier    *float64 `json:"min_modifier"`
	MaxModifier    *float64 `json:"max_modifier"`
	AdjustmentRate *float64 `json:"adjustment_rate"`
}

// EncodeDifficulty converts the manager to its persisted form.
func EncodeDifficulty(m *DifficultyManager) DifficultyDoc {
	return DifficultyDoc{
		LevelsCompleted:       m.LevelsCompleted,
		TotalDamageTaken:      m.TotalDamageTaken,
		TotalDamageDealt:      m.TotalDamageDealt,
		DeathsThisSession:     m.DeathsThisSession,
		AverageHealthPerLevel: m.AverageHealthPerLevel,
		TimePerLevel:          m.TimePerLevel,
		EnemyCountModifier:    ptr(m.EnemyCountModifier),
		EnemyStatModifier:     ptr(m.EnemyStatModifier),
		ItemSpawnModifier:     ptr(m.ItemSpawnModifier),
		HealingModifier:       ptr(m.HealingModifier),
		MinModifier:           ptr(m.MinModifier),
		MaxModifier:           ptr(m.MaxModifier),
		AdjustmentRate:        ptr(m.AdjustmentRate),
	}
}

// DecodeDifficulty reconstructs the manager, filling the neutral value
// 1.0 for any modifier absent from the document and the default bounds
// for absent configuration.
func DecodeDifficulty(doc DifficultyDoc) *DifficultyManager {
	m := NewDifficultyManager()
	m.LevelsCompleted = doc.LevelsCompleted
	m.TotalDamageTaken = doc.TotalDamageTaken
	m.TotalDamageDealt = doc.TotalDamageDealt
	m.DeathsThisSession = doc.DeathsThisSession
	if doc.AverageHealthPerLevel != nil {
		m.AverageHealthPerLevel = doc.AverageHealthPerLevel
	}
	if doc.TimePerLevel != nil {
		m.TimePerLevel = doc.TimePerLevel
	}
	m.EnemyCountModifier = valueOr(doc.EnemyCountModifier, 1.0)
	m.EnemyStatModifier = valueOr(doc.EnemyStatModifier, 1.0)
	m.ItemSpawnModifier = valueOr(doc.ItemSpawnModifier, 1.0)
	m.HealingModifier = valueOr(doc.HealingModifier, 1.0)
	m.MinModifier = valueOr(doc.MinModifier, DefaultMinModifier)
	m.MaxModifier = valueOr(doc.MaxModifier, DefaultMaxModifier)
	m.AdjustmentRate = valueOr(doc.AdjustmentRate, DefaultAdjustmentRate)
	return m
}

func ptr(v float64) *float64 { return &v }

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
