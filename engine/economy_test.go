package engine

import (
	"testing"
	"time"

	"github.com/nathoo/quizfall/types"
)

func TestOpenChest_SpendsAndGrantsItem(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Coins = 1000

	reward := e.OpenChest(1000)
	if reward == nil {
		t.Fatal("chest with exact funds should open")
	}
	if s.Coins != 0 {
		t.Errorf("coins = %d, want 0", s.Coins)
	}
	items := len(s.Inventory.Weapons) + len(s.Inventory.Armors)
	if items != 1 {
		t.Errorf("items = %d, want exactly 1", items)
	}
	if s.Stats.ChestsOpened != 1 {
		t.Errorf("chestsOpened = %d, want 1", s.Stats.ChestsOpened)
	}
	if reward.BonusGems < 5 || reward.BonusGems > 14 {
		t.Errorf("bonus gems = %d, want [5,14]", reward.BonusGems)
	}
	if s.Gems != reward.BonusGems {
		t.Errorf("gems = %d, want %d", s.Gems, reward.BonusGems)
	}
}

func TestOpenChest_InsufficientFundsIsNoOp(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Coins = 0

	if e.OpenChest(1000) != nil {
		t.Fatal("broke player opened a chest")
	}
	if s.Coins != 0 || len(s.Inventory.Weapons)+len(s.Inventory.Armors) != 0 {
		t.Error("failed open must leave state unchanged")
	}
	if s.Stats.ChestsOpened != 0 {
		t.Error("failed open must not count")
	}
}

func TestSpendFragments_RequiresFive(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Merchant.Fragments = 4

	e.SpendFragments()
	if s.Merchant.ChoiceOpen {
		t.Error("choice opened with too few fragments")
	}
	if s.Merchant.Fragments != 4 {
		t.Errorf("fragments = %d, want untouched 4", s.Merchant.Fragments)
	}
}

func TestSpendFragments_OffersThreeDistinctKinds(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Merchant.Fragments = 7

	e.SpendFragments()
	if !s.Merchant.ChoiceOpen {
		t.Fatal("choice should open")
	}
	if s.Merchant.Fragments != 2 {
		t.Errorf("fragments = %d, want 2", s.Merchant.Fragments)
	}
	if len(s.Merchant.Rewards) != 3 {
		t.Fatalf("offers = %d, want 3", len(s.Merchant.Rewards))
	}
	seen := map[types.MerchantRewardKind]bool{}
	for _, r := range s.Merchant.Rewards {
		if seen[r.Kind] {
			t.Errorf("duplicate reward kind %s", r.Kind)
		}
		seen[r.Kind] = true
	}

	// A second exchange while one is pending is rejected.
	e.SpendFragments()
	if s.Merchant.Fragments != 2 {
		t.Error("pending choice must block further spends")
	}
}

func TestSelectMerchantReward_AppliesCoins(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Merchant.ChoiceOpen = true
	s.Merchant.Rewards = []types.MerchantReward{
		{Kind: types.RewardCoins, Amount: 750},
		{Kind: types.RewardGems, Amount: 50},
		{Kind: types.RewardXP, Amount: 200},
	}

	e.SelectMerchantReward(0)
	if s.Coins != 1250 {
		t.Errorf("coins = %d, want 1250", s.Coins)
	}
	if s.Gems != 0 {
		t.Error("unchosen rewards must not apply")
	}
	if s.Merchant.ChoiceOpen || s.Merchant.Rewards != nil {
		t.Error("choice should be consumed")
	}
}

func TestSelectMerchantReward_FreeSkillGetsExpiry(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Merchant.ChoiceOpen = true
	s.Merchant.Rewards = []types.MerchantReward{
		{Kind: types.RewardFreeSkill, Skill: &types.MenuSkill{Type: types.MenuCoinBoost, Name: "Coin Boost"}},
	}

	e.SelectMerchantReward(0)
	if s.ActiveMenuSkill == nil {
		t.Fatal("free skill not activated")
	}
	want := e.Now().Add(4 * time.Hour)
	if !s.ActiveMenuSkill.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", s.ActiveMenuSkill.ExpiresAt, want)
	}
}

func TestSelectMerchantReward_PermanentMultipliers(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Merchant.ChoiceOpen = true
	s.Merchant.Rewards = []types.MerchantReward{
		{Kind: types.RewardAtkMult, Mult: 0.2},
	}

	e.SelectMerchantReward(0)
	if s.Multipliers.Atk != 1.2 {
		t.Errorf("atk multiplier = %v, want 1.2", s.Multipliers.Atk)
	}
	// The derived stats pick it up immediately: floor(20 * 1.2) = 24.
	if s.Player.Atk != 24 {
		t.Errorf("atk = %d, want 24", s.Player.Atk)
	}
}

func TestBuyMarketRelic(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Gems = 100
	s.Market.Relics = []types.Relic{
		{ID: "r1", Name: "Ember Sigil", Kind: types.RelicWeapon, BaseAtk: RelicAtkPerLevel, Level: 1, Cost: 80},
	}

	if !e.BuyMarketRelic("r1") {
		t.Fatal("purchase should succeed")
	}
	if s.Gems != 20 {
		t.Errorf("gems = %d, want 20", s.Gems)
	}
	if len(s.Market.Relics) != 0 {
		t.Error("bought relic should leave the market")
	}
	if len(s.Inventory.Relics) != 1 {
		t.Fatal("relic not owned")
	}
	if len(s.Inventory.EquippedRelicIDs) != 1 {
		t.Error("market relics auto-equip")
	}

	if e.BuyMarketRelic("r1") {
		t.Error("relic cannot be bought twice")
	}
}

func TestBuyMarketRelic_InsufficientGems(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Gems = 10
	s.Market.Relics = []types.Relic{{ID: "r1", Cost: 80}}

	if e.BuyMarketRelic("r1") {
		t.Fatal("purchase should fail")
	}
	if s.Gems != 10 || len(s.Market.Relics) != 1 {
		t.Error("failed purchase must leave state unchanged")
	}
}

func TestRollMenuSkill(t *testing.T) {
	e := newTestEngine(42)
	s := e.State

	e.RollMenuSkill()
	if s.ActiveMenuSkill == nil {
		t.Fatal("no skill rolled")
	}
	if s.Coins != 400 {
		t.Errorf("coins = %d, want 400", s.Coins)
	}

	// One active at a time.
	e.RollMenuSkill()
	if s.Coins != 400 {
		t.Error("roll with an active skill must not charge")
	}
}

func TestUpgradeResearch_CostGrows(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	s.Coins = 1000

	if !e.UpgradeResearch() { // level 0 costs 100
		t.Fatal("first research rejected")
	}
	if s.Coins != 900 || s.Research.Level != 1 {
		t.Errorf("coins=%d level=%d after first upgrade", s.Coins, s.Research.Level)
	}

	if !e.UpgradeResearch() { // level 1 costs 150
		t.Fatal("second research rejected")
	}
	if s.Coins != 750 {
		t.Errorf("coins = %d, want 750", s.Coins)
	}
	if s.Research.TotalSpent != 250 {
		t.Errorf("totalSpent = %d, want 250", s.Research.TotalSpent)
	}

	s.Coins = 0
	if e.UpgradeResearch() {
		t.Error("broke research accepted")
	}
}

func TestGarden_PlantAndWater(t *testing.T) {
	e := newTestEngine(42)
	s := e.State

	if !e.PlantGardenSeed() {
		t.Fatal("planting rejected")
	}
	if s.Coins != 400 {
		t.Errorf("coins = %d, want 400", s.Coins)
	}
	if s.Garden.WaterHoursRemaining != 24 {
		t.Errorf("water = %v, want 24h", s.Garden.WaterHoursRemaining)
	}

	if e.PlantGardenSeed() {
		t.Error("double planting accepted")
	}

	if !e.WaterGarden() {
		t.Fatal("watering rejected")
	}
	if s.Garden.WaterHoursRemaining != 48 {
		t.Errorf("water = %v, want 48h", s.Garden.WaterHoursRemaining)
	}

	// Cap at 72 hours.
	e.WaterGarden()
	e.WaterGarden()
	if s.Garden.WaterHoursRemaining != 72 {
		t.Errorf("water = %v, want capped 72h", s.Garden.WaterHoursRemaining)
	}
}

func TestWaterGarden_NothingPlanted(t *testing.T) {
	e := newTestEngine(42)
	if e.WaterGarden() {
		t.Error("watering bare soil accepted")
	}
}

func TestClaimDailyReward_Window(t *testing.T) {
	e := newTestEngine(42)
	s := e.State
	base := e.Now()

	if !e.ClaimDailyReward() {
		t.Fatal("first claim rejected")
	}
	if s.Daily.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", s.Daily.StreakDays)
	}
	if s.Coins != 550 || s.Gems != 2 {
		t.Errorf("coins=%d gems=%d after first claim", s.Coins, s.Gems)
	}

	// Too soon.
	if e.ClaimDailyReward() {
		t.Error("immediate re-claim accepted")
	}

	// Within 24-48h window the streak grows.
	e.Now = func() time.Time { return base.Add(30 * time.Hour) }
	if !e.ClaimDailyReward() {
		t.Fatal("in-window claim rejected")
	}
	if s.Daily.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", s.Daily.StreakDays)
	}

	// Missing the window resets to 1.
	e.Now = func() time.Time { return base.Add(100 * time.Hour) }
	if !e.ClaimDailyReward() {
		t.Fatal("late claim rejected")
	}
	if s.Daily.StreakDays != 1 {
		t.Errorf("streak = %d, want reset to 1", s.Daily.StreakDays)
	}
}

func TestClaimOfflineRewards(t *testing.T) {
	e := newTestEngine(42)
	s := e.State

	if e.ClaimOfflineRewards() {
		t.Error("nothing staged, claim should fail")
	}

	s.Offline.PendingCoins = 120
	s.Offline.PendingGems = 6
	if !e.ClaimOfflineRewards() {
		t.Fatal("claim rejected")
	}
	if s.Coins != 620 || s.Gems != 6 {
		t.Errorf("coins=%d gems=%d", s.Coins, s.Gems)
	}
	if s.Offline.PendingCoins != 0 || s.Offline.PendingGems != 0 {
		t.Error("staged rewards should clear")
	}
}
