package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/quizfall/types"
)

func TestGenerateEnemy_LinearScaling(t *testing.T) {
	e := GenerateEnemy(1)
	if e.HP != 215 || e.MaxHP != 215 {
		t.Errorf("zone 1 hp = %d/%d, want 215", e.HP, e.MaxHP)
	}
	if e.Atk != 28 {
		t.Errorf("zone 1 atk = %d, want 28", e.Atk)
	}
	if e.Def != 2 {
		t.Errorf("zone 1 def = %d, want 2", e.Def)
	}
	if e.CanDropItems {
		t.Error("zone 1 enemies should not drop items")
	}
}

func TestGenerateEnemy_ExponentialPastZone10(t *testing.T) {
	z10 := GenerateEnemy(10)
	if z10.HP != 350 { // 200 + 15*10, growth^0
		t.Errorf("zone 10 hp = %d, want 350", z10.HP)
	}
	if !z10.CanDropItems {
		t.Error("zone 10 enemies should drop items")
	}

	z11 := GenerateEnemy(11)
	if z11.HP != 401 { // (200+165) * 1.1
		t.Errorf("zone 11 hp = %d, want 401", z11.HP)
	}

	// Sanity: deep zones keep compounding.
	z30 := GenerateEnemy(30)
	if z30.HP <= GenerateEnemy(29).HP {
		t.Error("enemy hp should grow monotonically with zone")
	}
}

func TestGenerateEnemy_NameBucketsClamped(t *testing.T) {
	if GenerateEnemy(1).Name != enemyNames[0] {
		t.Errorf("zone 1 name = %q, want first bucket", GenerateEnemy(1).Name)
	}
	last := enemyNames[len(enemyNames)-1]
	if got := GenerateEnemy(500).Name; got != last {
		t.Errorf("zone 500 name = %q, want clamped to %q", got, last)
	}
}

func TestChestRarityWeights_Tiers(t *testing.T) {
	cases := []struct {
		cost  int
		first int // weight of common
	}{
		{100, 40},
		{200, 35},
		{500, 30},
		{1000, 20},
		{5000, 20},
	}
	for _, tc := range cases {
		w := ChestRarityWeights(tc.cost)
		if len(w) != len(types.Rarities) {
			t.Fatalf("cost %d: %d weights, want %d", tc.cost, len(w), len(types.Rarities))
		}
		if w[0] != tc.first {
			t.Errorf("cost %d: common weight = %d, want %d", tc.cost, w[0], tc.first)
		}
	}
}

func TestGenerateWeapon_FullDurabilityByRarity(t *testing.T) {
	rng := NewRNG(1)
	for rarity, want := range rarityDurability {
		w := GenerateWeapon(rng, 1, false, rarity)
		if w.Durability != want || w.MaxDurability != want {
			t.Errorf("%s durability = %d/%d, want %d", rarity, w.Durability, w.MaxDurability, want)
		}
		if w.Level != 1 {
			t.Errorf("%s new weapon level = %d, want 1", rarity, w.Level)
		}
	}
}

func TestGenerateWeapon_ForcedEnchant(t *testing.T) {
	rng := NewRNG(1)
	w := GenerateWeapon(rng, 7, true, types.RarityEpic)
	if !w.Enchanted {
		t.Fatal("forced enchant ignored")
	}
	if !strings.HasPrefix(w.Name, "Enchanted ") {
		t.Errorf("enchanted name = %q, want Enchanted prefix", w.Name)
	}
	if w.ID != "w7" {
		t.Errorf("weapon id = %q, want w7", w.ID)
	}
	// Enchanting doubles the rolled base; epic floor is 40.
	if w.BaseAtk < 80 {
		t.Errorf("enchanted epic baseAtk = %d, want >= 80", w.BaseAtk)
	}
}

func TestGenerateArmor_IDAndRarity(t *testing.T) {
	rng := NewRNG(3)
	a := GenerateArmor(rng, 12, false, types.RarityRare)
	if a.ID != "a12" {
		t.Errorf("armor id = %q, want a12", a.ID)
	}
	if a.Rarity != types.RarityRare {
		t.Errorf("rarity = %s, want rare", a.Rarity)
	}
	if a.BaseDef < armorBaseDef[types.RarityRare] {
		t.Errorf("baseDef = %d, below rarity floor %d", a.BaseDef, armorBaseDef[types.RarityRare])
	}
}

func TestGenerateRelic_KindMatchesContribution(t *testing.T) {
	rng := NewRNG(5)
	for i := 0; i < 50; i++ {
		r := GenerateRelic(rng, i)
		switch r.Kind {
		case types.RelicWeapon:
			if r.BaseAtk != RelicAtkPerLevel || r.BaseDef != 0 {
				t.Fatalf("weapon relic stats: atk=%d def=%d", r.BaseAtk, r.BaseDef)
			}
		case types.RelicArmor:
			if r.BaseDef != RelicDefPerLevel || r.BaseAtk != 0 {
				t.Fatalf("armor relic stats: atk=%d def=%d", r.BaseAtk, r.BaseDef)
			}
		default:
			t.Fatalf("unknown relic kind %q", r.Kind)
		}
		if r.Cost < 50 || r.Cost > 150 {
			t.Fatalf("relic cost %d outside [50,150]", r.Cost)
		}
		known := false
		for _, rarity := range types.Rarities {
			if r.Rarity == rarity {
				known = true
			}
		}
		if !known {
			t.Fatalf("relic rarity %q not in the rarity table", r.Rarity)
		}
	}
}

func TestDropRarity_HighTiersOnly(t *testing.T) {
	rng := NewRNG(9)
	for i := 0; i < 200; i++ {
		switch dropRarity(rng) {
		case types.RarityEpic, types.RarityLegendary, types.RarityMythical:
		default:
			t.Fatal("zone drops must be epic or better")
		}
	}
}
