// Package types defines the shared data structures for the Quizfall engine.
// This package contains only type definitions and constants — no logic.
package types

import "time"

// Rarity tiers for generated items, from most to least common.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// Rarities lists all tiers in weight-table order.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythical}

// Weapon is an equippable item contributing attack. Durability depletes in
// combat and linearly scales the contribution down.
type Weapon struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rarity        Rarity  `json:"rarity"`
	BaseAtk       int     `json:"base_atk"`
	Level         int     `json:"level"`
	UpgradeCost   int     `json:"upgrade_cost"`
	SellPrice     int     `json:"sell_price"`
	Durability    int     `json:"durability"`
	MaxDurability int     `json:"max_durability"`
	Enchanted     bool    `json:"enchanted,omitempty"`
	EnchantMult   float64 `json:"enchant_mult,omitempty"`
}

// Armor is an equippable item contributing defense.
type Armor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rarity        Rarity  `json:"rarity"`
	BaseDef       int     `json:"base_def"`
	Level         int     `json:"level"`
	UpgradeCost   int     `json:"upgrade_cost"`
	SellPrice     int     `json:"sell_price"`
	Durability    int     `json:"durability"`
	MaxDurability int     `json:"max_durability"`
	Enchanted     bool    `json:"enchanted,omitempty"`
	EnchantMult   float64 `json:"enchant_mult,omitempty"`
}

// RelicKind discriminates what stat a relic contributes.
type RelicKind string

const (
	RelicWeapon RelicKind = "weapon"
	RelicArmor  RelicKind = "armor"
)

// Relic is equipment with no durability and no equip limit. Its BaseAtk or
// BaseDef (one is set, by Kind) is a per-level bonus, additive into derived
// stats.
type Relic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rarity      Rarity    `json:"rarity"`
	Kind        RelicKind `json:"kind"`
	BaseAtk     int       `json:"base_atk,omitempty"`
	BaseDef     int       `json:"base_def,omitempty"`
	Level       int       `json:"level"`
	UpgradeCost int       `json:"upgrade_cost"`
	Cost        int       `json:"cost"` // gem price in the Yojef market
}

// Enemy exists only while a combat session is active.
type Enemy struct {
	Name         string `json:"name"`
	HP           int    `json:"hp"`
	MaxHP        int    `json:"max_hp"`
	Atk          int    `json:"atk"`
	Def          int    `json:"def"`
	Zone         int    `json:"zone"`
	CanDropItems bool   `json:"can_drop_items"`
}

// PlayerStats holds base stats and the derived totals recomputed after every
// operation. Atk/Def/MaxHP are outputs of the derived-stats pipeline; only
// HP and the Base* fields carry forward between recomputations.
type PlayerStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	Atk     int `json:"atk"`
	Def     int `json:"def"`
	BaseAtk int `json:"base_atk"`
	BaseDef int `json:"base_def"`
	BaseHP  int `json:"base_hp"`
}

// Inventory owns all items. Current* reference the single equipped weapon
// and armor by ID; EquippedRelicIDs is a subset of Relics with no size cap.
type Inventory struct {
	Weapons          []Weapon `json:"weapons"`
	Armors           []Armor  `json:"armors"`
	Relics           []Relic  `json:"relics"`
	CurrentWeaponID  string   `json:"current_weapon_id,omitempty"`
	CurrentArmorID   string   `json:"current_armor_id,omitempty"`
	EquippedRelicIDs []string `json:"equipped_relic_ids"`
}

// KnowledgeStreak counts consecutive correct answers. Multiplier is
// 1 + current*0.1 and resets fully on any miss.
type KnowledgeStreak struct {
	Current    int     `json:"current"`
	Best       int     `json:"best"`
	Multiplier float64 `json:"multiplier"`
}

// GameMode selects the active ruleset variant.
type GameMode string

const (
	ModeNormal    GameMode = "normal"
	ModeBlitz     GameMode = "blitz"
	ModeBloodlust GameMode = "bloodlust"
	ModeSurvival  GameMode = "survival"
)

// GameModeState tracks the selected mode and remaining survival lives.
type GameModeState struct {
	Current       GameMode `json:"current"`
	SurvivalLives int      `json:"survival_lives"`
}

// Research accrues permanent flat stat bonuses per level.
type Research struct {
	Level      int `json:"level"`
	TotalSpent int `json:"total_spent"`
}

// Multipliers are global multiplicative bonuses applied last in the
// derived-stats pipeline. Coins/Gems scale combat rewards.
type Multipliers struct {
	Atk   float64 `json:"atk"`
	Def   float64 `json:"def"`
	HP    float64 `json:"hp"`
	Coins float64 `json:"coins"`
	Gems  float64 `json:"gems"`
}

// GardenOfGrowth grows over wall-clock time while watered. Each grown
// centimeter is worth a fixed percentage bonus on all derived stats.
type GardenOfGrowth struct {
	IsPlanted           bool      `json:"is_planted"`
	PlantedAt           time.Time `json:"planted_at"`
	LastUpdated         time.Time `json:"last_updated"`
	GrowthCm            float64   `json:"growth_cm"`
	MaxGrowthCm         float64   `json:"max_growth_cm"`
	WaterHoursRemaining float64   `json:"water_hours_remaining"`
}

// AdventureSkillType identifies a per-combat buff from the fixed pool.
type AdventureSkillType string

const (
	SkillRisker       AdventureSkillType = "risker"
	SkillLightning    AdventureSkillType = "lightning_chain"
	SkillSkipCard     AdventureSkillType = "skip_card"
	SkillMetalShield  AdventureSkillType = "metal_shield"
	SkillDodge        AdventureSkillType = "dodge"
	SkillBerserker    AdventureSkillType = "berserker"
	SkillVampiric     AdventureSkillType = "vampiric"
	SkillSharpBlade   AdventureSkillType = "sharp_blade"
	SkillArmorMastery AdventureSkillType = "armor_mastery"
	SkillGoldenTouch  AdventureSkillType = "golden_touch"
	SkillGemHunter    AdventureSkillType = "gem_hunter"
	SkillFirstStrike  AdventureSkillType = "first_strike"
	SkillHealingWind  AdventureSkillType = "healing_wind"
	SkillIronWill     AdventureSkillType = "iron_will"
	SkillStreakKeeper AdventureSkillType = "streak_keeper"
	SkillScholarFocus AdventureSkillType = "scholars_focus"
	SkillLastStand    AdventureSkillType = "last_stand"
	SkillPrecision    AdventureSkillType = "precision"
	SkillFortuneFavor AdventureSkillType = "fortunes_favor"
	SkillStoneSkin    AdventureSkillType = "stone_skin"
	SkillAdrenaline   AdventureSkillType = "adrenaline"
	SkillComeback     AdventureSkillType = "comeback"
	SkillScavenger    AdventureSkillType = "scavenger"
	SkillMidasCurse   AdventureSkillType = "midas_curse"
)

// AdventureSkill is one selectable offer at combat start.
type AdventureSkill struct {
	Type        AdventureSkillType `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

// SkillEffects is the per-combat flag set toggled by the selected adventure
// skill and consumed by the resolver. Reset when combat ends.
type SkillEffects struct {
	Active AdventureSkillType `json:"active,omitempty"`

	// One-shot effects flip to true once spent.
	SkipCardUsed     bool `json:"skip_card_used,omitempty"`
	MetalShieldUsed  bool `json:"metal_shield_used,omitempty"`
	StreakKeeperUsed bool `json:"streak_keeper_used,omitempty"`
	LastStandUsed    bool `json:"last_stand_used,omitempty"`

	// MissedLastTurn feeds the comeback skill.
	MissedLastTurn bool `json:"missed_last_turn,omitempty"`
}

// AdventureSkillsState is the per-combat-session selection sub-state.
type AdventureSkillsState struct {
	Available     []AdventureSkill `json:"available"`
	Selected      *AdventureSkill  `json:"selected,omitempty"`
	SelectionOpen bool             `json:"selection_open"`
	Effects       SkillEffects     `json:"effects"`
}

// MenuSkillType identifies a purchasable timed global buff.
type MenuSkillType string

const (
	MenuCoinBoost        MenuSkillType = "coin_boost"
	MenuGemBoost         MenuSkillType = "gem_boost"
	MenuXPBoost          MenuSkillType = "xp_boost"
	MenuDurabilityFreeze MenuSkillType = "durability_freeze"
	MenuStreakShield     MenuSkillType = "streak_shield"
	MenuTreasureSense    MenuSkillType = "treasure_sense"
)

// MenuSkill is the single active timed buff, if any.
type MenuSkill struct {
	Type      MenuSkillType `json:"type"`
	Name      string        `json:"name"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// YojefMarket holds the rotating relic stock.
type YojefMarket struct {
	Relics      []Relic   `json:"relics"`
	NextRefresh time.Time `json:"next_refresh"`
}

// MerchantRewardKind discriminates MerchantReward. Only the fields matching
// the kind are valid.
type MerchantRewardKind string

const (
	RewardItem      MerchantRewardKind = "item"
	RewardCoins     MerchantRewardKind = "coins"
	RewardGems      MerchantRewardKind = "gems"
	RewardXP        MerchantRewardKind = "xp"
	RewardHPMult    MerchantRewardKind = "hp_multiplier"
	RewardAtkMult   MerchantRewardKind = "atk_multiplier"
	RewardFreeSkill MerchantRewardKind = "free_skill"
)

// MerchantReward is one of the three candidates offered per fragment spend.
type MerchantReward struct {
	Kind   MerchantRewardKind `json:"kind"`
	Weapon *Weapon            `json:"weapon,omitempty"` // RewardItem
	Armor  *Armor             `json:"armor,omitempty"`  // RewardItem
	Amount int                `json:"amount,omitempty"` // RewardCoins, RewardGems, RewardXP
	Mult   float64            `json:"mult,omitempty"`   // RewardHPMult, RewardAtkMult
	Skill  *MenuSkill         `json:"skill,omitempty"`  // RewardFreeSkill
}

// Merchant tracks zone fragments and the pending reward choice.
type Merchant struct {
	Fragments        int              `json:"fragments"`
	TotalEarned      int              `json:"total_earned"`
	LastFragmentZone int              `json:"last_fragment_zone"`
	Rewards          []MerchantReward `json:"rewards,omitempty"`
	ChoiceOpen       bool             `json:"choice_open"`
}

// DailyRewards tracks the 24–48h claim streak.
type DailyRewards struct {
	LastClaim  time.Time `json:"last_claim"`
	StreakDays int       `json:"streak_days"`
}

// OfflineProgress stages rewards accrued while the game was closed.
type OfflineProgress struct {
	LastSeen     time.Time `json:"last_seen"`
	PendingCoins int       `json:"pending_coins"`
	PendingGems  int       `json:"pending_gems"`
	PendingHours float64   `json:"pending_hours"`
}

// Progression tracks experience levels. Levels gate nothing in the core;
// they feed tags and flavor.
type Progression struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// CategoryAccuracy counts answers per question category.
type CategoryAccuracy struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Statistics are monotonically increasing lifetime counters.
type Statistics struct {
	TotalQuestions int                          `json:"total_questions"`
	CorrectAnswers int                          `json:"correct_answers"`
	Accuracy       map[string]*CategoryAccuracy `json:"accuracy"`
	EnemiesKilled  int                          `json:"enemies_killed"`
	ZonesReached   int                          `json:"zones_reached"`
	ChestsOpened   int                          `json:"chests_opened"`
	ItemsCollected int                          `json:"items_collected"`
	CoinsEarned    int                          `json:"coins_earned"`
	GemsEarned     int                          `json:"gems_earned"`
	Deaths         int                          `json:"deaths"`
	Revivals       int                          `json:"revivals"`
	FragmentSpends int                          `json:"fragment_spends"`
}

// QuestionKind discriminates how a question is presented and checked.
type QuestionKind string

const (
	KindChoice   QuestionKind = "choice"
	KindSlider   QuestionKind = "slider"
	KindFreeText QuestionKind = "free_text"
	KindReorder  QuestionKind = "reorder"
)

// Question is supplied by the quiz bank collaborator. Only the fields
// matching Kind are meaningful.
type Question struct {
	ID         string       `json:"id"`
	Prompt     string       `json:"prompt"`
	Kind       QuestionKind `json:"kind"`
	Options    []string     `json:"options,omitempty"`     // KindChoice
	Answer     int          `json:"answer,omitempty"`      // KindChoice (index), KindSlider (value)
	AnswerText string       `json:"answer_text,omitempty"` // KindFreeText
	SliderMin  int          `json:"slider_min,omitempty"`  // KindSlider
	SliderMax  int          `json:"slider_max,omitempty"`  // KindSlider
	Words      []string     `json:"words,omitempty"`       // KindReorder (correct order)
	Category   string       `json:"category"`
	Difficulty string       `json:"difficulty"`
}

// GameState is the single root aggregate. The engine owns it exclusively
// and replaces it atomically per operation.
type GameState struct {
	Coins     int  `json:"coins"`
	Gems      int  `json:"gems"`
	Zone      int  `json:"zone"`
	IsPremium bool `json:"is_premium"`

	Player    PlayerStats `json:"player"`
	Inventory Inventory   `json:"inventory"`

	InCombat        bool      `json:"in_combat"`
	CurrentEnemy    *Enemy    `json:"current_enemy,omitempty"`
	PendingQuestion *Question `json:"pending_question,omitempty"`
	CombatLog       []string  `json:"combat_log"`
	HasUsedRevival  bool      `json:"has_used_revival"`

	Streak          KnowledgeStreak      `json:"streak"`
	Mode            GameModeState        `json:"mode"`
	Research        Research             `json:"research"`
	Multipliers     Multipliers          `json:"multipliers"`
	Garden          GardenOfGrowth       `json:"garden"`
	AdventureSkills AdventureSkillsState `json:"adventure_skills"`
	ActiveMenuSkill *MenuSkill           `json:"active_menu_skill,omitempty"`
	Market          YojefMarket          `json:"market"`
	Merchant        Merchant             `json:"merchant"`
	Daily           DailyRewards         `json:"daily"`
	Offline         OfflineProgress      `json:"offline"`
	Progression     Progression          `json:"progression"`
	Stats           Statistics           `json:"stats"`

	Achievements map[string]time.Time `json:"achievements"`
	Tags         map[string]time.Time `json:"tags"`

	NextItemID  int   `json:"next_item_id"`
	RNGSeed     int64 `json:"rng_seed"`
	RNGPosition int64 `json:"rng_position"`
}

// Result is the output of a single engine operation, rendered by the shells.
type Result struct {
	Output   []string
	Unlocked []string // achievement/tag IDs newly unlocked by this operation
}
