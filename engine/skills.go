package engine

import (
	"time"

	"github.com/nathoo/quizfall/types"
)

// adventureSkillPool is the fixed pool that combat offers draw from.
var adventureSkillPool = []types.AdventureSkill{
	{Type: types.SkillRisker, Name: "Risker", Description: "+50% damage dealt, +50% damage taken"},
	{Type: types.SkillLightning, Name: "Lightning Chain", Description: "20% chance to strike twice"},
	{Type: types.SkillSkipCard, Name: "Skip Card", Description: "your first miss is forgiven"},
	{Type: types.SkillMetalShield, Name: "Metal Shield", Description: "absorbs the first enemy hit"},
	{Type: types.SkillDodge, Name: "Dodge", Description: "25% chance to avoid enemy hits"},
	{Type: types.SkillBerserker, Name: "Berserker", Description: "double damage below half health"},
	{Type: types.SkillVampiric, Name: "Vampiric", Description: "heal 25% of damage dealt"},
	{Type: types.SkillSharpBlade, Name: "Sharp Blade", Description: "weapon loses no durability"},
	{Type: types.SkillArmorMastery, Name: "Armor Mastery", Description: "armor loses no durability"},
	{Type: types.SkillGoldenTouch, Name: "Golden Touch", Description: "+50% coins from this fight"},
	{Type: types.SkillGemHunter, Name: "Gem Hunter", Description: "double gems from this fight"},
	{Type: types.SkillFirstStrike, Name: "First Strike", Description: "open with a free attack"},
	{Type: types.SkillHealingWind, Name: "Healing Wind", Description: "heal 10% max HP on every correct answer"},
	{Type: types.SkillIronWill, Name: "Iron Will", Description: "damage bonus never drops below ×1.5"},
	{Type: types.SkillStreakKeeper, Name: "Streak Keeper", Description: "your first miss keeps the streak"},
	{Type: types.SkillScholarFocus, Name: "Scholar's Focus", Description: "streak multiplier counts double for rewards"},
	{Type: types.SkillLastStand, Name: "Last Stand", Description: "survive one lethal hit at 1 HP"},
	{Type: types.SkillPrecision, Name: "Precision", Description: "+25% damage dealt"},
	{Type: types.SkillFortuneFavor, Name: "Fortune's Favor", Description: "double item drop chance"},
	{Type: types.SkillStoneSkin, Name: "Stone Skin", Description: "-25% damage taken"},
	{Type: types.SkillAdrenaline, Name: "Adrenaline", Description: "+5% damage per current streak"},
	{Type: types.SkillComeback, Name: "Comeback", Description: "double damage on the turn after a miss"},
	{Type: types.SkillScavenger, Name: "Scavenger", Description: "restore 5 durability on victory"},
	{Type: types.SkillMidasCurse, Name: "Midas Curse", Description: "double coins, but no gems"},
}

// offerAdventureSkills draws 3 distinct skills from the pool.
func (e *Engine) offerAdventureSkills() []types.AdventureSkill {
	pool := adventureSkillPool
	picked := map[int]bool{}
	var out []types.AdventureSkill
	for len(out) < 3 {
		i := e.RNG.Intn(len(pool))
		if picked[i] {
			continue
		}
		picked[i] = true
		out = append(out, pool[i])
	}
	return out
}

// Menu skill catalog: timed global buffs, one active at a time.

// MenuSkillRollCost is the flat coin price of one skill roll.
const MenuSkillRollCost = 100

var menuSkillPool = []struct {
	Type types.MenuSkillType
	Name string
}{
	{types.MenuCoinBoost, "Coin Boost"},
	{types.MenuGemBoost, "Gem Boost"},
	{types.MenuXPBoost, "XP Boost"},
	{types.MenuDurabilityFreeze, "Durability Freeze"},
	{types.MenuStreakShield, "Streak Shield"},
	{types.MenuTreasureSense, "Treasure Sense"},
}

// rollMenuSkill picks a uniformly random type and duration (1–8 hours).
func (e *Engine) rollMenuSkill(now time.Time) types.MenuSkill {
	pick := menuSkillPool[e.RNG.Intn(len(menuSkillPool))]
	hours := e.RNG.Between(1, 8)
	return types.MenuSkill{
		Type:      pick.Type,
		Name:      pick.Name,
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
	}
}
