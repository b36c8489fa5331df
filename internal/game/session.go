// Package game holds the live session graph: the character, the level
// topology, fog of war, the adaptive difficulty model and the camera.
// Each entity owns its Encode/Decode pair; the storage package composes
// them into versioned save documents.
package game

import "github.com/IgorBio/Rogue-sub001/internal/stats"

// RenderingMode selects the presentation layer.
type RenderingMode string

const (
	Mode2D RenderingMode = "2d"
	Mode3D RenderingMode = "3d"
)

// State is the session flow state. The persisted flags reduce to one
// state on restore with priority Victory > GameOver > PlayerAsleep >
// ItemSelection > Playing.
type State string

const (
	StatePlaying       State = "playing"
	StatePlayerAsleep  State = "player_asleep"
	StateItemSelection State = "item_selection"
	StateGameOver      State = "game_over"
	StateVictory       State = "victory"
)

// Session is the live mutable game: the entity graph plus flow state.
// The persistence core reads it on save and populates it on restore;
// the input/render loop drives it in between.
type Session struct {
	CurrentLevelNumber int

	Character *Character
	Level     *Level
	Fog       *FogOfWar
	Stats     *stats.Statistics

	Difficulty *DifficultyManager
	// Camera is nil while in 2D mode.
	Camera *Camera

	RenderingMode RenderingMode
	PlayerAsleep  bool
	GameOver      bool
	Victory       bool
	Message       string
	DeathReason   string

	PendingSelection *SelectionRequest

	state State
}

// NewSession returns an empty session at level 1 in 2D mode. The level,
// character and fog are populated by the level generator (or by
// restore).
func NewSession() *Session {
	return &Session{
		CurrentLevelNumber: 1,
		Stats:              stats.New(),
		Difficulty:         NewDifficultyManager(),
		RenderingMode:      Mode2D,
		state:              StatePlaying,
	}
}

// State returns the current flow state.
func (s *Session) State() State { return s.state }

// RestoreState forces the flow state without transition validation.
// Used when reconstructing a session from a save document.
func (s *Session) RestoreState(state State) { s.state = state }

// DeriveState reduces the persisted flags to one state, in the fixed
// priority order.
func (s *Session) DeriveState() State {
	switch {
	case s.Victory:
		return StateVictory
	case s.GameOver:
		return StateGameOver
	case s.PlayerAsleep:
		return StatePlayerAsleep
	case s.PendingSelection != nil:
		return StateItemSelection
	default:
		return StatePlaying
	}
}

// EndGame finalizes the run statistics and flips the outcome flags.
func (s *Session) EndGame(victory bool, reason string) {
	s.Stats.RecordGameEnd(s.Character, victory)
	if victory {
		s.Victory = true
		s.state = StateVictory
		return
	}
	s.GameOver = true
	s.DeathReason = reason
	s.Difficulty.RecordDeath()
	s.state = StateGameOver
}

// Is3D reports whether the 3D presentation is active.
func (s *Session) Is3D() bool { return s.RenderingMode == Mode3D }
