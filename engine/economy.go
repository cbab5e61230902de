package engine

import (
	"fmt"
	"time"

	"github.com/nathoo/quizfall/types"
)

// ChestReward describes what one chest opening produced.
type ChestReward struct {
	Weapon    *types.Weapon
	Armor     *types.Armor
	BonusGems int
	Lines     []string
}

// OpenChest buys and opens a chest. Returns nil with state unchanged when
// coins are insufficient. Rarity odds improve with chest cost.
func (e *Engine) OpenChest(cost int) *ChestReward {
	s := e.State
	if cost <= 0 || !e.spendCoins(cost) {
		return nil
	}

	rarity := RollRarity(e.RNG, ChestRarityWeights(cost))
	reward := &ChestReward{BonusGems: e.RNG.Between(5, 14)}

	if e.RNG.Chance(50) {
		w := GenerateWeapon(e.RNG, e.nextID(), false, rarity)
		s.Inventory.Weapons = append(s.Inventory.Weapons, w)
		reward.Weapon = &w
		reward.Lines = append(reward.Lines, fmt.Sprintf("The chest holds: %s (%s weapon).", w.Name, w.Rarity))
	} else {
		a := GenerateArmor(e.RNG, e.nextID(), false, rarity)
		s.Inventory.Armors = append(s.Inventory.Armors, a)
		reward.Armor = &a
		reward.Lines = append(reward.Lines, fmt.Sprintf("The chest holds: %s (%s armor).", a.Name, a.Rarity))
	}

	s.Gems += reward.BonusGems
	s.Stats.GemsEarned += reward.BonusGems
	s.Stats.ChestsOpened++
	s.Stats.ItemsCollected++
	reward.Lines = append(reward.Lines, fmt.Sprintf("Tucked inside: %d bonus gems.", reward.BonusGems))

	res := types.Result{}
	e.commit(&res)
	reward.Lines = append(reward.Lines, res.Output...)
	return reward
}

// FragmentsPerExchange is the fragment cost of one merchant visit.
const FragmentsPerExchange = 5

// SpendFragments trades 5 fragments for a choice of exactly 3 reward
// candidates. The choice stays open until SelectMerchantReward commits one.
func (e *Engine) SpendFragments() types.Result {
	s := e.State
	res := types.Result{}

	if s.Merchant.ChoiceOpen {
		res.Output = append(res.Output, "You already have a reward choice pending.")
		return res
	}
	if s.Merchant.Fragments < FragmentsPerExchange {
		res.Output = append(res.Output, fmt.Sprintf("The merchant wants %d fragments. You have %d.",
			FragmentsPerExchange, s.Merchant.Fragments))
		return res
	}

	s.Merchant.Fragments -= FragmentsPerExchange
	s.Stats.FragmentSpends++
	s.Merchant.Rewards = e.generateMerchantRewards()
	s.Merchant.ChoiceOpen = true

	res.Output = append(res.Output, "The merchant spreads three offers before you:")
	for i, r := range s.Merchant.Rewards {
		res.Output = append(res.Output, fmt.Sprintf("  %d) %s", i+1, describeReward(r)))
	}
	e.commit(&res)
	return res
}

// merchantRewardKinds is the pool each offer is drawn from, no repeats per
// visit.
var merchantRewardKinds = []types.MerchantRewardKind{
	types.RewardItem,
	types.RewardCoins,
	types.RewardGems,
	types.RewardXP,
	types.RewardHPMult,
	types.RewardAtkMult,
	types.RewardFreeSkill,
}

func (e *Engine) generateMerchantRewards() []types.MerchantReward {
	picked := map[int]bool{}
	var out []types.MerchantReward
	for len(out) < 3 {
		i := e.RNG.Intn(len(merchantRewardKinds))
		if picked[i] {
			continue
		}
		picked[i] = true
		out = append(out, e.rollMerchantReward(merchantRewardKinds[i]))
	}
	return out
}

func (e *Engine) rollMerchantReward(kind types.MerchantRewardKind) types.MerchantReward {
	r := types.MerchantReward{Kind: kind}
	switch kind {
	case types.RewardItem:
		rarity := types.RarityEpic
		if e.RNG.Chance(30) {
			rarity = types.RarityLegendary
		}
		if e.RNG.Chance(50) {
			w := GenerateWeapon(e.RNG, e.nextID(), false, rarity)
			r.Weapon = &w
		} else {
			a := GenerateArmor(e.RNG, e.nextID(), false, rarity)
			r.Armor = &a
		}
	case types.RewardCoins:
		r.Amount = e.RNG.Between(500, 1500)
	case types.RewardGems:
		r.Amount = e.RNG.Between(25, 75)
	case types.RewardXP:
		r.Amount = e.RNG.Between(100, 300)
	case types.RewardHPMult, types.RewardAtkMult:
		r.Mult = float64(e.RNG.Between(10, 25)) / 100
	case types.RewardFreeSkill:
		pick := menuSkillPool[e.RNG.Intn(len(menuSkillPool))]
		// Expiry is stamped when the reward is actually taken.
		r.Skill = &types.MenuSkill{Type: pick.Type, Name: pick.Name}
	}
	return r
}

func describeReward(r types.MerchantReward) string {
	switch r.Kind {
	case types.RewardItem:
		if r.Weapon != nil {
			return fmt.Sprintf("%s (%s weapon)", r.Weapon.Name, r.Weapon.Rarity)
		}
		return fmt.Sprintf("%s (%s armor)", r.Armor.Name, r.Armor.Rarity)
	case types.RewardCoins:
		return fmt.Sprintf("%d coins", r.Amount)
	case types.RewardGems:
		return fmt.Sprintf("%d gems", r.Amount)
	case types.RewardXP:
		return fmt.Sprintf("%d experience", r.Amount)
	case types.RewardHPMult:
		return fmt.Sprintf("+%.0f%% max health, permanently", r.Mult*100)
	case types.RewardAtkMult:
		return fmt.Sprintf("+%.0f%% attack, permanently", r.Mult*100)
	case types.RewardFreeSkill:
		return fmt.Sprintf("free skill: %s", r.Skill.Name)
	}
	return "?"
}

// SelectMerchantReward commits exactly one of the pending candidates.
func (e *Engine) SelectMerchantReward(i int) types.Result {
	s := e.State
	res := types.Result{}

	if !s.Merchant.ChoiceOpen {
		res.Output = append(res.Output, "No merchant choice is pending.")
		return res
	}
	if i < 0 || i >= len(s.Merchant.Rewards) {
		res.Output = append(res.Output, "Pick a reward, 1-3.")
		return res
	}

	r := s.Merchant.Rewards[i]
	switch r.Kind {
	case types.RewardItem:
		if r.Weapon != nil {
			s.Inventory.Weapons = append(s.Inventory.Weapons, *r.Weapon)
		} else if r.Armor != nil {
			s.Inventory.Armors = append(s.Inventory.Armors, *r.Armor)
		}
		s.Stats.ItemsCollected++
	case types.RewardCoins:
		s.Coins += r.Amount
		s.Stats.CoinsEarned += r.Amount
	case types.RewardGems:
		s.Gems += r.Amount
		s.Stats.GemsEarned += r.Amount
	case types.RewardXP:
		e.addXP(r.Amount)
	case types.RewardHPMult:
		s.Multipliers.HP += r.Mult
	case types.RewardAtkMult:
		s.Multipliers.Atk += r.Mult
	case types.RewardFreeSkill:
		if r.Skill != nil {
			sk := *r.Skill
			sk.ExpiresAt = e.Now().Add(4 * time.Hour)
			s.ActiveMenuSkill = &sk
		}
	}

	res.Output = append(res.Output, "You take: "+describeReward(r)+".")
	s.Merchant.Rewards = nil
	s.Merchant.ChoiceOpen = false
	e.commit(&res)
	return res
}

// BuyMarketRelic purchases a relic from the Yojef market with gems. Unlike
// chest loot, a bought relic is auto-equipped.
func (e *Engine) BuyMarketRelic(id string) bool {
	s := e.State
	idx := -1
	for i := range s.Market.Relics {
		if s.Market.Relics[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	relic := s.Market.Relics[idx]
	if !e.spendGems(relic.Cost) {
		return false
	}

	s.Market.Relics = append(s.Market.Relics[:idx:idx], s.Market.Relics[idx+1:]...)
	s.Inventory.Relics = append(s.Inventory.Relics, relic)
	s.Inventory.EquippedRelicIDs = append(s.Inventory.EquippedRelicIDs, relic.ID)
	s.Stats.ItemsCollected++

	res := types.Result{}
	e.commit(&res)
	return true
}

// RollMenuSkill buys one random timed buff for a flat 100 coins. Only one
// menu skill may be active at a time.
func (e *Engine) RollMenuSkill() types.Result {
	s := e.State
	res := types.Result{}

	if s.ActiveMenuSkill != nil && e.Now().Before(s.ActiveMenuSkill.ExpiresAt) {
		res.Output = append(res.Output, fmt.Sprintf("%s is still active.", s.ActiveMenuSkill.Name))
		return res
	}
	if !e.spendCoins(MenuSkillRollCost) {
		res.Output = append(res.Output, fmt.Sprintf("A skill roll costs %d coins.", MenuSkillRollCost))
		return res
	}

	sk := e.rollMenuSkill(e.Now())
	s.ActiveMenuSkill = &sk
	res.Output = append(res.Output, fmt.Sprintf("You rolled %s, active until %s.",
		sk.Name, sk.ExpiresAt.Format("15:04")))
	e.commit(&res)
	return res
}

// Research pricing: each level costs more coins.
func researchCost(level int) int {
	return 100 + level*50
}

// UpgradeResearch buys one research level for coins.
func (e *Engine) UpgradeResearch() bool {
	s := e.State
	cost := researchCost(s.Research.Level)
	if !e.spendCoins(cost) {
		return false
	}
	s.Research.Level++
	s.Research.TotalSpent += cost

	res := types.Result{}
	e.commit(&res)
	return true
}

// Garden pricing and pacing.
const (
	gardenPlantCost  = 100
	gardenWaterCost  = 50
	gardenWaterHours = 24
	gardenWaterCap   = 72
)

// PlantGardenSeed starts the garden. One plant at a time.
func (e *Engine) PlantGardenSeed() bool {
	s := e.State
	if s.Garden.IsPlanted {
		return false
	}
	if !e.spendCoins(gardenPlantCost) {
		return false
	}
	now := e.Now()
	s.Garden.IsPlanted = true
	s.Garden.PlantedAt = now
	s.Garden.LastUpdated = now
	s.Garden.GrowthCm = 0
	s.Garden.WaterHoursRemaining = gardenWaterHours

	res := types.Result{}
	e.commit(&res)
	return true
}

// WaterGarden tops up the water reserve, capped.
func (e *Engine) WaterGarden() bool {
	s := e.State
	if !s.Garden.IsPlanted {
		return false
	}
	if !e.spendCoins(gardenWaterCost) {
		return false
	}
	s.Garden.WaterHoursRemaining += gardenWaterHours
	if s.Garden.WaterHoursRemaining > gardenWaterCap {
		s.Garden.WaterHoursRemaining = gardenWaterCap
	}

	res := types.Result{}
	e.commit(&res)
	return true
}

// Daily reward pacing: claimable every 24h; missing the 48h window resets
// the streak.
const (
	dailyWindowMin = 24 * time.Hour
	dailyWindowMax = 48 * time.Hour
)

// ClaimDailyReward grants the streak-scaled daily bonus.
func (e *Engine) ClaimDailyReward() bool {
	s := e.State
	now := e.Now()

	if !s.Daily.LastClaim.IsZero() {
		since := now.Sub(s.Daily.LastClaim)
		if since < dailyWindowMin {
			return false
		}
		if since <= dailyWindowMax {
			s.Daily.StreakDays++
		} else {
			s.Daily.StreakDays = 1
		}
	} else {
		s.Daily.StreakDays = 1
	}
	s.Daily.LastClaim = now

	e.earnCoins(50 * s.Daily.StreakDays)
	e.earnGems(2 * s.Daily.StreakDays)

	res := types.Result{}
	e.commit(&res)
	return true
}

// ClaimOfflineRewards banks the staged offline accrual.
func (e *Engine) ClaimOfflineRewards() bool {
	s := e.State
	if s.Offline.PendingCoins == 0 && s.Offline.PendingGems == 0 {
		return false
	}
	s.Coins += s.Offline.PendingCoins
	s.Stats.CoinsEarned += s.Offline.PendingCoins
	s.Gems += s.Offline.PendingGems
	s.Stats.GemsEarned += s.Offline.PendingGems
	s.Offline.PendingCoins = 0
	s.Offline.PendingGems = 0
	s.Offline.PendingHours = 0

	res := types.Result{}
	e.commit(&res)
	return true
}
