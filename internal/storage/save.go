// Package storage persists the game: the versioned autosave document,
// the leaderboard file and the sqlite run archive. All I/O is blocking
// and scoped to a single call; there is exactly one game process, so no
// locking is done.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/IgorBio/Rogue-sub001/internal/game"
	"github.com/IgorBio/Rogue-sub001/internal/stats"
)

// AutosaveFilename is the default save file inside the save dir.
const AutosaveFilename = "autosave.json"

// Snapshot is the on-disk save document. Optional blocks are pointers:
// nil camera means "no active camera / 2D mode", nil difficulty block
// means a pre-1.1 save.
type Snapshot struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`

	CurrentLevelNumber int                 `json:"current_level_number"`
	Character          *game.CharacterDoc  `json:"character"`
	Level              *game.LevelDoc      `json:"level"`
	FogOfWar           *game.FogDoc        `json:"fog_of_war"`
	Statistics         json.RawMessage     `json:"statistics"`

	RenderingMode string `json:"rendering_mode,omitempty"`
	PlayerAsleep  bool   `json:"player_asleep"`
	GameOver      bool   `json:"game_over"`
	Victory       bool   `json:"victory"`
	Message       string `json:"message"`
	DeathReason   string `json:"death_reason"`

	PendingSelection *game.SelectionDoc `json:"pending_selection"`

	DifficultyManager *game.DifficultyDoc `json:"difficulty_manager"`
	Camera            *game.CameraDoc     `json:"camera"`
}

// SaveManager serializes a live session to a versioned document and
// reconstructs a live session from a document of any prior version,
// filling named defaults for fields absent in older formats.
type SaveManager struct {
	dir      string
	autosave string
	log      zerolog.Logger
}

// NewSaveManager creates the save directory if needed.
func NewSaveManager(dir string, log zerolog.Logger) (*SaveManager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &SaveManager{
		dir:      dir,
		autosave: filepath.Join(dir, AutosaveFilename),
		log:      log.With().Str("component", "save").Logger(),
	}, nil
}

func (m *SaveManager) resolve(filename string) string {
	if filename == "" {
		return m.autosave
	}
	return filepath.Join(m.dir, filename)
}

// Serialize captures the complete session as a current-version
// document. It is pure: no I/O, no session mutation.
func Serialize(sess *game.Session) (*Snapshot, error) {
	statsDoc, err := sess.Stats.MarshalDoc()
	if err != nil {
		return nil, err
	}

	charDoc := game.EncodeCharacter(sess.Character)
	levelDoc := game.EncodeLevel(sess.Level)
	fogDoc := game.EncodeFog(sess.Fog)
	diffDoc := game.EncodeDifficulty(sess.Difficulty)

	return &Snapshot{
		Version:            SaveVersion,
		Timestamp:          time.Now().Format(time.RFC3339),
		CurrentLevelNumber: sess.CurrentLevelNumber,
		Character:          &charDoc,
		Level:              &levelDoc,
		FogOfWar:           &fogDoc,
		Statistics:         statsDoc,
		RenderingMode:      string(sess.RenderingMode),
		PlayerAsleep:       sess.PlayerAsleep,
		GameOver:           sess.GameOver,
		Victory:            sess.Victory,
		Message:            sess.Message,
		DeathReason:        sess.DeathReason,
		PendingSelection:   game.EncodeSelection(sess.PendingSelection),
		DifficultyManager:  &diffDoc,
		Camera:             game.EncodeCamera(sess.Camera),
	}, nil
}

// SaveGame writes the session to the named file (autosave when empty).
// The write is not atomic; a crash mid-write leaves a truncated file,
// which later reads treat as a recoverable failure. The error is logged
// and returned so the caller can decide whether to warn the player.
func (m *SaveManager) SaveGame(sess *game.Session, filename string) error {
	path := m.resolve(filename)

	snap, err := Serialize(sess)
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("serialize game")
		return fmt.Errorf("save game: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("marshal save")
		return fmt.Errorf("save game: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("write save")
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// LoadGame reads the named save document (autosave when empty). It
// returns (nil, nil) when no save exists; read and parse failures are
// logged and returned.
func (m *SaveManager) LoadGame(filename string) (*Snapshot, error) {
	path := m.resolve(filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		m.log.Error().Err(err).Str("path", path).Msg("read save")
		return nil, fmt.Errorf("load game: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("parse save")
		return nil, fmt.Errorf("load game: %w", err)
	}
	return &snap, nil
}

// SaveExists reports whether the named save file (autosave when empty)
// is present.
func (m *SaveManager) SaveExists(filename string) bool {
	_, err := os.Stat(m.resolve(filename))
	return err == nil
}

// RestoreSession reconstructs a live session from a document of any
// supported version. Fields the document's version predates — and
// fields simply absent — get their named defaults: 2D rendering, false
// flags, empty texts, nil pending selection, neutral difficulty, nil
// camera. Only the character and level blocks are required.
func (m *SaveManager) RestoreSession(snap *Snapshot) (*game.Session, error) {
	if snap == nil {
		return nil, errors.New("restore: nil snapshot")
	}
	if snap.Character == nil || snap.Level == nil {
		return nil, fmt.Errorf("restore: save %q missing character or level", snap.Version)
	}

	sess := game.NewSession()
	sess.CurrentLevelNumber = snap.CurrentLevelNumber
	if sess.CurrentLevelNumber < 1 {
		sess.CurrentLevelNumber = 1
	}

	character, err := game.DecodeCharacter(*snap.Character)
	if err != nil {
		return nil, fmt.Errorf("restore character: %w", err)
	}
	sess.Character = character

	level, err := game.DecodeLevel(*snap.Level)
	if err != nil {
		return nil, fmt.Errorf("restore level: %w", err)
	}
	sess.Level = level

	if snap.FogOfWar != nil {
		sess.Fog = game.DecodeFog(level, *snap.FogOfWar)
	} else {
		sess.Fog = game.NewFogOfWar(level)
	}

	runStats, err := stats.UnmarshalDoc(snap.Statistics)
	if err != nil {
		return nil, fmt.Errorf("restore statistics: %w", err)
	}
	sess.Stats = runStats

	sess.RenderingMode = game.Mode2D
	if snap.RenderingMode != "" {
		sess.RenderingMode = game.RenderingMode(snap.RenderingMode)
	} else if fieldInVersion("rendering_mode", snap.Version) {
		m.log.Debug().Str("version", snap.Version).Msg("rendering_mode absent, defaulting to 2d")
	}
	sess.PlayerAsleep = snap.PlayerAsleep
	sess.GameOver = snap.GameOver
	sess.Victory = snap.Victory
	sess.Message = snap.Message
	sess.DeathReason = snap.DeathReason
	sess.PendingSelection = game.DecodeSelection(snap.PendingSelection)

	if snap.DifficultyManager != nil {
		sess.Difficulty = game.DecodeDifficulty(*snap.DifficultyManager)
	} else {
		sess.Difficulty = game.NewDifficultyManager()
	}

	// nil camera is valid at any version: it means 2D mode.
	sess.Camera = game.DecodeCamera(snap.Camera)

	sess.RestoreState(sess.DeriveState())
	return sess, nil
}
