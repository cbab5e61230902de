package engine

import (
	"fmt"
	"math"

	"github.com/nathoo/quizfall/types"
)

// Default rarity weights, indexed like types.Rarities.
var rarityWeights = []int{40, 30, 20, 8, 2}

// Per-rarity generation tables.
var (
	weaponBaseAtk = map[types.Rarity]int{
		types.RarityCommon:    15,
		types.RarityRare:      25,
		types.RarityEpic:      40,
		types.RarityLegendary: 60,
		types.RarityMythical:  90,
	}
	armorBaseDef = map[types.Rarity]int{
		types.RarityCommon:    8,
		types.RarityRare:      15,
		types.RarityEpic:      25,
		types.RarityLegendary: 40,
		types.RarityMythical:  60,
	}
	rarityDurability = map[types.Rarity]int{
		types.RarityCommon:    50,
		types.RarityRare:      75,
		types.RarityEpic:      100,
		types.RarityLegendary: 150,
		types.RarityMythical:  200,
	}
	rarityUpgradeCost = map[types.Rarity]int{
		types.RarityCommon:    5,
		types.RarityRare:      10,
		types.RarityEpic:      20,
		types.RarityLegendary: 40,
		types.RarityMythical:  80,
	}
	raritySellPrice = map[types.Rarity]int{
		types.RarityCommon:    25,
		types.RarityRare:      60,
		types.RarityEpic:      150,
		types.RarityLegendary: 400,
		types.RarityMythical:  1000,
	}
)

var weaponNames = map[types.Rarity][]string{
	types.RarityCommon:    {"Worn Blade", "Oak Cudgel", "Rusty Dirk"},
	types.RarityRare:      {"Steel Saber", "Hunting Axe", "Silvered Spear"},
	types.RarityEpic:      {"Runed Claymore", "Stormpiercer", "Wyrmfang"},
	types.RarityLegendary: {"Dawnbreaker", "Kingslayer", "Night's Edge"},
	types.RarityMythical:  {"Worldsplitter", "Oblivion Fang", "Starforged Executioner"},
}

var armorNames = map[types.Rarity][]string{
	types.RarityCommon:    {"Padded Vest", "Leather Jerkin", "Hide Cloak"},
	types.RarityRare:      {"Chain Hauberk", "Scale Cuirass", "Reinforced Plate"},
	types.RarityEpic:      {"Runeward Mail", "Dragonscale Coat", "Bulwark of Thorns"},
	types.RarityLegendary: {"Aegis of Dawn", "Titanplate", "Shroud of Kings"},
	types.RarityMythical:  {"Worldshell", "Armor of the Last Star", "Eternity Carapace"},
}

var relicNames = map[types.RelicKind][]string{
	types.RelicWeapon: {"Fang of the First Scholar", "Ember Sigil", "Warbrand Idol", "Shard of Certainty"},
	types.RelicArmor:  {"Tortoise Totem", "Veil of Quiet", "Keystone Ward", "Bones of the Mountain"},
}

// enemyNames is bucketed by floor((zone-1)/5), clamped to the last entry.
var enemyNames = []string{
	"Fledgling Imp",
	"Mire Ghoul",
	"Bonecage Brute",
	"Hollow Knight",
	"Pale Sorcerer",
	"Abyss Warden",
	"Cinder Colossus",
	"The Unanswered",
}

// Enemy scaling constants. Past zone 10 every stat compounds exponentially.
const (
	enemyBaseHP      = 200
	enemyHPPerZone   = 15
	enemyBaseAtk     = 20
	enemyAtkPerZone  = 8
	enemyDefPerZone  = 2
	enemyScaleZone   = 10
	enemyHPGrowth    = 1.1
	enemyAtkGrowth   = 1.08
	enemyDefGrowth   = 1.05
	itemDropMinZone  = 10
	enchantChancePct = 5
)

// ChestRarityWeights returns the rarity weight table for a chest of the
// given coin cost. Pricier chests shift weight toward the high tiers.
func ChestRarityWeights(cost int) []int {
	switch {
	case cost >= 1000:
		return []int{20, 30, 25, 15, 10}
	case cost >= 500:
		return []int{30, 30, 20, 12, 8}
	case cost >= 200:
		return []int{35, 30, 20, 10, 5}
	default:
		return rarityWeights
	}
}

// RollRarity picks a rarity by cumulative-weight roll.
func RollRarity(rng *RNG, weights []int) types.Rarity {
	return types.Rarities[rng.WeightedSelect(weights)]
}

// GenerateWeapon creates a new weapon at full durability. forceRarity of ""
// rolls the default weight table; forceEnchant bypasses the 5% roll.
func GenerateWeapon(rng *RNG, id int, forceEnchant bool, forceRarity types.Rarity) types.Weapon {
	rarity := forceRarity
	if rarity == "" {
		rarity = RollRarity(rng, rarityWeights)
	}

	atk := weaponBaseAtk[rarity] + rng.Intn(10)
	name := weaponNames[rarity][rng.Intn(len(weaponNames[rarity]))]

	enchanted := forceEnchant || rng.Chance(enchantChancePct)
	mult := 0.0
	if enchanted {
		atk *= 2
		mult = 2
		name = "Enchanted " + name
	}

	dur := rarityDurability[rarity]
	return types.Weapon{
		ID:            fmt.Sprintf("w%d", id),
		Name:          name,
		Rarity:        rarity,
		BaseAtk:       atk,
		Level:         1,
		UpgradeCost:   rarityUpgradeCost[rarity],
		SellPrice:     raritySellPrice[rarity],
		Durability:    dur,
		MaxDurability: dur,
		Enchanted:     enchanted,
		EnchantMult:   mult,
	}
}

// GenerateArmor creates a new armor piece at full durability.
func GenerateArmor(rng *RNG, id int, forceEnchant bool, forceRarity types.Rarity) types.Armor {
	rarity := forceRarity
	if rarity == "" {
		rarity = RollRarity(rng, rarityWeights)
	}

	def := armorBaseDef[rarity] + rng.Intn(6)
	name := armorNames[rarity][rng.Intn(len(armorNames[rarity]))]

	enchanted := forceEnchant || rng.Chance(enchantChancePct)
	mult := 0.0
	if enchanted {
		def *= 2
		mult = 2
		name = "Enchanted " + name
	}

	dur := rarityDurability[rarity]
	return types.Armor{
		ID:            fmt.Sprintf("a%d", id),
		Name:          name,
		Rarity:        rarity,
		BaseDef:       def,
		Level:         1,
		UpgradeCost:   rarityUpgradeCost[rarity],
		SellPrice:     raritySellPrice[rarity],
		Durability:    dur,
		MaxDurability: dur,
		Enchanted:     enchanted,
		EnchantMult:   mult,
	}
}

// Per-level relic contributions are fixed regardless of rarity.
const (
	RelicAtkPerLevel = 22
	RelicDefPerLevel = 15
)

// GenerateRelic creates a market relic. Kind is a 50/50 roll; rarity uses
// the default weight table and is cosmetic, contribution stays fixed per
// level.
func GenerateRelic(rng *RNG, id int) types.Relic {
	kind := types.RelicWeapon
	if rng.Chance(50) {
		kind = types.RelicArmor
	}
	name := relicNames[kind][rng.Intn(len(relicNames[kind]))]

	r := types.Relic{
		ID:          fmt.Sprintf("r%d", id),
		Name:        name,
		Rarity:      RollRarity(rng, rarityWeights),
		Kind:        kind,
		Level:       1,
		UpgradeCost: 25,
		Cost:        rng.Between(50, 150),
	}
	if kind == types.RelicWeapon {
		r.BaseAtk = RelicAtkPerLevel
	} else {
		r.BaseDef = RelicDefPerLevel
	}
	return r
}

// GenerateEnemy scales an enemy to the given zone. Linear growth up to zone
// 10, compounded exponentially beyond it.
func GenerateEnemy(zone int) types.Enemy {
	hp := float64(enemyBaseHP + enemyHPPerZone*zone)
	atk := float64(enemyBaseAtk + enemyAtkPerZone*zone)
	def := float64(enemyDefPerZone * zone)

	if zone >= enemyScaleZone {
		over := float64(zone - enemyScaleZone)
		hp *= math.Pow(enemyHPGrowth, over)
		atk *= math.Pow(enemyAtkGrowth, over)
		def *= math.Pow(enemyDefGrowth, over)
	}

	bucket := (zone - 1) / 5
	if bucket >= len(enemyNames) {
		bucket = len(enemyNames) - 1
	}

	return types.Enemy{
		Name:         enemyNames[bucket],
		HP:           int(hp),
		MaxHP:        int(hp),
		Atk:          int(atk),
		Def:          int(def),
		Zone:         zone,
		CanDropItems: zone >= itemDropMinZone,
	}
}

// dropRarity picks the forced rarity for zone item drops: epic 60%,
// legendary 30%, mythical 10%.
func dropRarity(rng *RNG) types.Rarity {
	switch rng.WeightedSelect([]int{60, 30, 10}) {
	case 0:
		return types.RarityEpic
	case 1:
		return types.RarityLegendary
	default:
		return types.RarityMythical
	}
}
