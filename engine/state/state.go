// Package state constructs default game state and provides pure lookup
// helpers over it. All mutation happens in the engine package.
package state

import (
	"time"

	"github.com/nathoo/quizfall/types"
)

// Starting values for a fresh game.
const (
	StartCoins = 500
	StartGems  = 0
	StartZone  = 1

	BaseAtk = 20
	BaseDef = 10
	BaseHP  = 300

	SurvivalStartLives = 3

	GardenMaxGrowthCm = 100
)

// NewGameState creates a fresh state with all defaults. It is deterministic
// and performs no RNG or clock reads; timed systems initialize lazily on the
// first Tick.
func NewGameState() *types.GameState {
	return &types.GameState{
		Coins: StartCoins,
		Gems:  StartGems,
		Zone:  StartZone,
		Player: types.PlayerStats{
			HP:      BaseHP,
			MaxHP:   BaseHP,
			Atk:     BaseAtk,
			Def:     BaseDef,
			BaseAtk: BaseAtk,
			BaseDef: BaseDef,
			BaseHP:  BaseHP,
		},
		Inventory: types.Inventory{
			Weapons:          []types.Weapon{},
			Armors:           []types.Armor{},
			Relics:           []types.Relic{},
			EquippedRelicIDs: []string{},
		},
		CombatLog: []string{},
		Streak:    types.KnowledgeStreak{Multiplier: 1},
		Mode: types.GameModeState{
			Current:       types.ModeNormal,
			SurvivalLives: SurvivalStartLives,
		},
		Multipliers: types.Multipliers{Atk: 1, Def: 1, HP: 1, Coins: 1, Gems: 1},
		Garden: types.GardenOfGrowth{
			MaxGrowthCm: GardenMaxGrowthCm,
		},
		AdventureSkills: types.AdventureSkillsState{
			Available: []types.AdventureSkill{},
		},
		Merchant: types.Merchant{},
		Stats: types.Statistics{
			Accuracy:     map[string]*types.CategoryAccuracy{},
			ZonesReached: StartZone,
		},
		Achievements: map[string]time.Time{},
		Tags:         map[string]time.Time{},
		NextItemID:   1,
	}
}

// FindWeapon returns the index of the weapon with the given ID, or -1.
func FindWeapon(s *types.GameState, id string) int {
	for i := range s.Inventory.Weapons {
		if s.Inventory.Weapons[i].ID == id {
			return i
		}
	}
	return -1
}

// FindArmor returns the index of the armor with the given ID, or -1.
func FindArmor(s *types.GameState, id string) int {
	for i := range s.Inventory.Armors {
		if s.Inventory.Armors[i].ID == id {
			return i
		}
	}
	return -1
}

// FindRelic returns the index of the owned relic with the given ID, or -1.
func FindRelic(s *types.GameState, id string) int {
	for i := range s.Inventory.Relics {
		if s.Inventory.Relics[i].ID == id {
			return i
		}
	}
	return -1
}

// CurrentWeapon returns the equipped weapon, or nil.
func CurrentWeapon(s *types.GameState) *types.Weapon {
	if s.Inventory.CurrentWeaponID == "" {
		return nil
	}
	if i := FindWeapon(s, s.Inventory.CurrentWeaponID); i >= 0 {
		return &s.Inventory.Weapons[i]
	}
	return nil
}

// CurrentArmor returns the equipped armor, or nil.
func CurrentArmor(s *types.GameState) *types.Armor {
	if s.Inventory.CurrentArmorID == "" {
		return nil
	}
	if i := FindArmor(s, s.Inventory.CurrentArmorID); i >= 0 {
		return &s.Inventory.Armors[i]
	}
	return nil
}

// RelicEquipped reports whether the relic ID is in the equipped set.
func RelicEquipped(s *types.GameState, id string) bool {
	for _, rid := range s.Inventory.EquippedRelicIDs {
		if rid == id {
			return true
		}
	}
	return false
}

// EquippedRelics returns the equipped subset of owned relics.
func EquippedRelics(s *types.GameState) []types.Relic {
	var out []types.Relic
	for _, id := range s.Inventory.EquippedRelicIDs {
		if i := FindRelic(s, id); i >= 0 {
			out = append(out, s.Inventory.Relics[i])
		}
	}
	return out
}

// SkillActive reports whether the given adventure skill is selected for the
// current combat session.
func SkillActive(s *types.GameState, t types.AdventureSkillType) bool {
	return s.InCombat && s.AdventureSkills.Effects.Active == t
}
