// Package save implements JSON serialization of the full game state with
// defensive merge-with-defaults on load, so schema upgrades backfill new
// fields instead of failing.
package save

import (
	"encoding/json"
	"time"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

// FormatVersion is bumped when the save layout changes shape.
const FormatVersion = 1

// SaveData is the JSON-serializable save format. The RNG seed and position
// stored inside the state allow exact replay after load.
type SaveData struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	State   types.GameState `json:"state"`
}

// Save serializes game state to JSON bytes.
func Save(s *types.GameState, now time.Time) ([]byte, error) {
	data := SaveData{
		Version: FormatVersion,
		SavedAt: now,
		State:   *s,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into a game state. Unmarshalling happens on
// top of a freshly constructed default state, so fields missing from older
// saves silently keep their defaults.
func Load(data []byte) (*types.GameState, error) {
	wrapper := SaveData{State: *state.NewGameState()}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	s := wrapper.State
	repair(&s)
	return &s, nil
}

// repair ensures collections are never nil after load.
func repair(s *types.GameState) {
	if s.Inventory.Weapons == nil {
		s.Inventory.Weapons = []types.Weapon{}
	}
	if s.Inventory.Armors == nil {
		s.Inventory.Armors = []types.Armor{}
	}
	if s.Inventory.Relics == nil {
		s.Inventory.Relics = []types.Relic{}
	}
	if s.Inventory.EquippedRelicIDs == nil {
		s.Inventory.EquippedRelicIDs = []string{}
	}
	if s.CombatLog == nil {
		s.CombatLog = []string{}
	}
	if s.AdventureSkills.Available == nil {
		s.AdventureSkills.Available = []types.AdventureSkill{}
	}
	if s.Stats.Accuracy == nil {
		s.Stats.Accuracy = map[string]*types.CategoryAccuracy{}
	}
	if s.Achievements == nil {
		s.Achievements = map[string]time.Time{}
	}
	if s.Tags == nil {
		s.Tags = map[string]time.Time{}
	}
	if s.Streak.Multiplier == 0 {
		s.Streak.Multiplier = 1
	}
	if s.NextItemID == 0 {
		s.NextItemID = 1
	}
}
