package engine

import (
	"math"

	"github.com/nathoo/quizfall/types"

	"github.com/nathoo/quizfall/engine/state"
)

// Per-level equipment bonuses applied before durability scaling.
const (
	WeaponAtkPerLevel = 10
	ArmorDefPerLevel  = 5
)

// Research flat bonuses per level.
const (
	ResearchAtkPerLevel = 3
	ResearchDefPerLevel = 2
	ResearchHPPerLevel  = 10
)

// GardenBonusPerCm is the percentage added to all stats per grown cm.
const GardenBonusPerCm = 5.0

// weaponContribution is the durability-scaled attack a weapon adds.
func weaponContribution(w *types.Weapon) int {
	if w == nil || w.MaxDurability == 0 {
		return 0
	}
	base := w.BaseAtk + (w.Level-1)*WeaponAtkPerLevel
	return int(math.Floor(float64(base) * float64(w.Durability) / float64(w.MaxDurability)))
}

// armorContribution is the durability-scaled defense an armor piece adds.
func armorContribution(a *types.Armor) int {
	if a == nil || a.MaxDurability == 0 {
		return 0
	}
	base := a.BaseDef + (a.Level-1)*ArmorDefPerLevel
	return int(math.Floor(float64(base) * float64(a.Durability) / float64(a.MaxDurability)))
}

// CalculatePlayerStats derives the effective player stats from scratch. It
// never trusts the previously stored Atk/Def/MaxHP — only HP and the base
// stats carry over. The composition order is fixed:
//
//  1. base stats
//  2. + durability-scaled weapon/armor
//  3. + equipped relics
//  4. + research flat bonuses
//  5. × (1 + garden bonus %), floored
//  6. × global multipliers, floored
//  7. hp clamped to the new ceiling (never auto-healed upward)
func CalculatePlayerStats(s *types.GameState) types.PlayerStats {
	atk := s.Player.BaseAtk
	def := s.Player.BaseDef
	hp := s.Player.BaseHP

	atk += weaponContribution(state.CurrentWeapon(s))
	def += armorContribution(state.CurrentArmor(s))

	// A relic carries exactly one nonzero stat, so both adds are safe.
	for _, r := range state.EquippedRelics(s) {
		atk += r.Level * r.BaseAtk
		def += r.Level * r.BaseDef
	}

	atk += s.Research.Level * ResearchAtkPerLevel
	def += s.Research.Level * ResearchDefPerLevel
	hp += s.Research.Level * ResearchHPPerLevel

	garden := 1 + (s.Garden.GrowthCm*GardenBonusPerCm)/100
	atk = int(math.Floor(float64(atk) * garden))
	def = int(math.Floor(float64(def) * garden))
	hp = int(math.Floor(float64(hp) * garden))

	atk = int(math.Floor(float64(atk) * s.Multipliers.Atk))
	def = int(math.Floor(float64(def) * s.Multipliers.Def))
	hp = int(math.Floor(float64(hp) * s.Multipliers.HP))

	cur := s.Player.HP
	if cur > hp {
		cur = hp
	}

	return types.PlayerStats{
		HP:      cur,
		MaxHP:   hp,
		Atk:     atk,
		Def:     def,
		BaseAtk: s.Player.BaseAtk,
		BaseDef: s.Player.BaseDef,
		BaseHP:  s.Player.BaseHP,
	}
}
