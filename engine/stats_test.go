package engine

import (
	"testing"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

func TestCalculatePlayerStats_FreshState(t *testing.T) {
	s := state.NewGameState()

	p := CalculatePlayerStats(s)
	if p.Atk != 20 {
		t.Errorf("fresh atk = %d, want 20", p.Atk)
	}
	if p.Def != 10 {
		t.Errorf("fresh def = %d, want 10", p.Def)
	}
	if p.MaxHP != 300 {
		t.Errorf("fresh maxHP = %d, want 300", p.MaxHP)
	}
}

func TestCalculatePlayerStats_Idempotent(t *testing.T) {
	s := state.NewGameState()
	s.Inventory.Weapons = []types.Weapon{{
		ID: "w1", BaseAtk: 30, Level: 2, Durability: 50, MaxDurability: 100,
	}}
	s.Inventory.CurrentWeaponID = "w1"
	s.Research.Level = 3
	s.Garden.GrowthCm = 10

	first := CalculatePlayerStats(s)
	s.Player = first
	second := CalculatePlayerStats(s)

	if first != second {
		t.Errorf("recomputation drifted: %+v then %+v", first, second)
	}
}

func TestCalculatePlayerStats_DurabilityScalesEquipment(t *testing.T) {
	s := state.NewGameState()
	s.Inventory.Weapons = []types.Weapon{{
		ID: "w1", BaseAtk: 40, Level: 1, Durability: 50, MaxDurability: 100,
	}}
	s.Inventory.CurrentWeaponID = "w1"

	p := CalculatePlayerStats(s)
	// base 20 + floor(40 * 50/100) = 40
	if p.Atk != 40 {
		t.Errorf("atk at half durability = %d, want 40", p.Atk)
	}

	s.Inventory.Weapons[0].Durability = 0
	p = CalculatePlayerStats(s)
	if p.Atk != 20 {
		t.Errorf("atk at zero durability = %d, want base 20", p.Atk)
	}
}

func TestCalculatePlayerStats_LevelBonusBeforeDurability(t *testing.T) {
	s := state.NewGameState()
	s.Inventory.Weapons = []types.Weapon{{
		ID: "w1", BaseAtk: 30, Level: 3, Durability: 50, MaxDurability: 100,
	}}
	s.Inventory.CurrentWeaponID = "w1"

	p := CalculatePlayerStats(s)
	// (30 + 2*10) * 0.5 = 25, plus base 20
	if p.Atk != 45 {
		t.Errorf("atk = %d, want 45", p.Atk)
	}
}

func TestCalculatePlayerStats_RelicContribution(t *testing.T) {
	s := state.NewGameState()
	s.Inventory.Relics = []types.Relic{
		{ID: "r1", Kind: types.RelicWeapon, BaseAtk: RelicAtkPerLevel, Level: 2},
		{ID: "r2", Kind: types.RelicArmor, BaseDef: RelicDefPerLevel, Level: 1},
		{ID: "r3", Kind: types.RelicWeapon, BaseAtk: RelicAtkPerLevel, Level: 5}, // owned, not equipped
	}
	s.Inventory.EquippedRelicIDs = []string{"r1", "r2"}

	p := CalculatePlayerStats(s)
	if want := 20 + 2*RelicAtkPerLevel; p.Atk != want {
		t.Errorf("atk = %d, want %d", p.Atk, want)
	}
	if want := 10 + RelicDefPerLevel; p.Def != want {
		t.Errorf("def = %d, want %d", p.Def, want)
	}
}

func TestCalculatePlayerStats_RelicUsesItemStat(t *testing.T) {
	s := state.NewGameState()
	s.Inventory.Relics = []types.Relic{
		{ID: "r1", Kind: types.RelicWeapon, BaseAtk: 30, Level: 2},
		{ID: "r2", Kind: types.RelicArmor, BaseDef: 8, Level: 3},
	}
	s.Inventory.EquippedRelicIDs = []string{"r1", "r2"}

	// Contribution comes from the relic's own stat, not a flat table.
	p := CalculatePlayerStats(s)
	if p.Atk != 20+60 {
		t.Errorf("atk = %d, want 80", p.Atk)
	}
	if p.Def != 10+24 {
		t.Errorf("def = %d, want 34", p.Def)
	}
}

func TestCalculatePlayerStats_GardenThenMultipliers(t *testing.T) {
	s := state.NewGameState()
	s.Garden.GrowthCm = 20 // +100%
	s.Multipliers.Atk = 1.5

	p := CalculatePlayerStats(s)
	// floor(20 * 2.0) = 40, then floor(40 * 1.5) = 60
	if p.Atk != 60 {
		t.Errorf("atk = %d, want 60", p.Atk)
	}
	// def: floor(10*2.0)=20, multiplier 1.0
	if p.Def != 20 {
		t.Errorf("def = %d, want 20", p.Def)
	}
}

func TestCalculatePlayerStats_HPClampedNeverHealed(t *testing.T) {
	s := state.NewGameState()
	s.Player.HP = 100

	p := CalculatePlayerStats(s)
	if p.HP != 100 {
		t.Errorf("hp = %d, want unchanged 100", p.HP)
	}

	// Shrinking the ceiling clamps current HP down.
	s.Player = p
	s.Multipliers.HP = 0.25
	p = CalculatePlayerStats(s)
	if p.MaxHP != 75 {
		t.Errorf("maxHP = %d, want 75", p.MaxHP)
	}
	if p.HP != 75 {
		t.Errorf("hp = %d, want clamped to 75", p.HP)
	}
}

func TestCalculatePlayerStats_ResearchFlatBonuses(t *testing.T) {
	s := state.NewGameState()
	s.Research.Level = 4

	p := CalculatePlayerStats(s)
	if want := 20 + 4*ResearchAtkPerLevel; p.Atk != want {
		t.Errorf("atk = %d, want %d", p.Atk, want)
	}
	if want := 10 + 4*ResearchDefPerLevel; p.Def != want {
		t.Errorf("def = %d, want %d", p.Def, want)
	}
	if want := 300 + 4*ResearchHPPerLevel; p.MaxHP != want {
		t.Errorf("maxHP = %d, want %d", p.MaxHP, want)
	}
}
