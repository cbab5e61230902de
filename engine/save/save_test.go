package save

import (
	"testing"
	"time"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := state.NewGameState()
	s.Coins = 1234
	s.Zone = 17
	s.Streak = types.KnowledgeStreak{Current: 4, Best: 9, Multiplier: 1.4}
	s.Inventory.Weapons = []types.Weapon{{
		ID: "w3", Name: "Runed Claymore", Rarity: types.RarityEpic,
		BaseAtk: 44, Level: 2, Durability: 80, MaxDurability: 100,
	}}
	s.Inventory.CurrentWeaponID = "w3"
	s.RNGSeed = 42
	s.RNGPosition = 137

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data, err := Save(s, now)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Coins != 1234 || loaded.Zone != 17 {
		t.Errorf("coins=%d zone=%d", loaded.Coins, loaded.Zone)
	}
	if loaded.Streak != s.Streak {
		t.Errorf("streak = %+v, want %+v", loaded.Streak, s.Streak)
	}
	if len(loaded.Inventory.Weapons) != 1 || loaded.Inventory.Weapons[0].ID != "w3" {
		t.Error("weapon lost in round trip")
	}
	if loaded.Inventory.CurrentWeaponID != "w3" {
		t.Error("equip reference lost")
	}
	if loaded.RNGSeed != 42 || loaded.RNGPosition != 137 {
		t.Errorf("rng seed=%d pos=%d", loaded.RNGSeed, loaded.RNGPosition)
	}
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	// A minimal save from an old schema: most fields absent.
	data := []byte(`{"version":1,"state":{"coins":50,"zone":3}}`)

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Coins != 50 || loaded.Zone != 3 {
		t.Errorf("coins=%d zone=%d", loaded.Coins, loaded.Zone)
	}
	// Defaults fill in what the save never mentioned.
	if loaded.Multipliers.Atk != 1 {
		t.Errorf("atk multiplier = %v, want default 1", loaded.Multipliers.Atk)
	}
	if loaded.Mode.Current != types.ModeNormal {
		t.Errorf("mode = %s, want normal", loaded.Mode.Current)
	}
}

func TestLoad_RepairsNilCollections(t *testing.T) {
	data := []byte(`{"version":1,"state":{
		"inventory":{"weapons":null,"armors":null,"relics":null,"equipped_relic_ids":null},
		"combat_log":null,"achievements":null,"tags":null,
		"stats":{"accuracy":null}
	}}`)

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Inventory.Weapons == nil || loaded.Inventory.EquippedRelicIDs == nil {
		t.Error("inventory collections still nil")
	}
	if loaded.CombatLog == nil || loaded.Achievements == nil || loaded.Tags == nil {
		t.Error("log/achievement maps still nil")
	}
	if loaded.Stats.Accuracy == nil {
		t.Error("accuracy map still nil")
	}
}

func TestLoad_RepairsZeroedScalars(t *testing.T) {
	data := []byte(`{"version":1,"state":{"streak":{"current":0,"best":0,"multiplier":0},"next_item_id":0}}`)

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Streak.Multiplier != 1 {
		t.Errorf("multiplier = %v, want repaired to 1", loaded.Streak.Multiplier)
	}
	if loaded.NextItemID != 1 {
		t.Errorf("nextItemID = %d, want repaired to 1", loaded.NextItemID)
	}
}

func TestLoad_RejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json")); err == nil {
		t.Error("garbage accepted")
	}
}
