package engine

import (
	"fmt"
	"time"

	"github.com/nathoo/quizfall/types"
)

// Lazy-advance pacing. All time-based systems move only when Tick compares
// stored timestamps against the injected clock — there is no background
// scheduler.
const (
	marketRefreshEvery = 5 * time.Minute
	marketStockSize    = 3

	gardenGrowthCmPerHour = 0.5

	offlineMinGap   = 5 * time.Minute
	maxOfflineHours = 12.0
)

// Tick advances every timed subsystem to now: offline accrual staging,
// garden growth and water depletion, Yojef market refresh, and menu-skill
// expiry. It is called at the start of every Step and may be called
// directly by shells before rendering.
func (e *Engine) Tick(now time.Time) types.Result {
	res := types.Result{}
	s := e.State

	e.tickOffline(now, &res)
	tickGarden(&s.Garden, now)
	e.tickMarket(now, &res)

	if s.ActiveMenuSkill != nil && !now.Before(s.ActiveMenuSkill.ExpiresAt) {
		res.Output = append(res.Output, fmt.Sprintf("%s has worn off.", s.ActiveMenuSkill.Name))
		s.ActiveMenuSkill = nil
	}

	e.commit(&res)
	return res
}

// tickOffline stages rewards for the gap since the game was last seen.
// Gaps shorter than offlineMinGap are treated as a running session.
func (e *Engine) tickOffline(now time.Time, res *types.Result) {
	s := e.State
	if s.Offline.LastSeen.IsZero() {
		s.Offline.LastSeen = now
		return
	}
	elapsed := now.Sub(s.Offline.LastSeen)
	s.Offline.LastSeen = now
	if elapsed < offlineMinGap {
		return
	}

	hours := elapsed.Hours()
	if hours > maxOfflineHours {
		hours = maxOfflineHours
	}
	coins := int(hours * float64(10+s.Zone*2))
	gems := int(hours * float64(1+s.Zone/10))
	if coins == 0 && gems == 0 {
		return
	}

	s.Offline.PendingCoins += coins
	s.Offline.PendingGems += gems
	s.Offline.PendingHours += hours
	res.Output = append(res.Output, fmt.Sprintf(
		"While you were away (%.1fh): %d coins and %d gems await. Type 'claim'.",
		hours, s.Offline.PendingCoins, s.Offline.PendingGems))
}

// tickGarden grows the plant for however long water lasted since the last
// update. Growth stops dry and caps at MaxGrowthCm.
func tickGarden(g *types.GardenOfGrowth, now time.Time) {
	if !g.IsPlanted {
		return
	}
	if g.LastUpdated.IsZero() {
		g.LastUpdated = now
		return
	}
	elapsed := now.Sub(g.LastUpdated).Hours()
	if elapsed <= 0 {
		return
	}
	g.LastUpdated = now

	watered := elapsed
	if watered > g.WaterHoursRemaining {
		watered = g.WaterHoursRemaining
	}
	g.WaterHoursRemaining -= watered

	g.GrowthCm += watered * gardenGrowthCmPerHour
	if g.GrowthCm > g.MaxGrowthCm {
		g.GrowthCm = g.MaxGrowthCm
	}
}

// tickMarket restocks the Yojef relic market on its refresh cadence.
func (e *Engine) tickMarket(now time.Time, res *types.Result) {
	s := e.State
	if !s.Market.NextRefresh.IsZero() && now.Before(s.Market.NextRefresh) {
		return
	}
	announce := !s.Market.NextRefresh.IsZero()

	relics := make([]types.Relic, 0, marketStockSize)
	for i := 0; i < marketStockSize; i++ {
		relics = append(relics, GenerateRelic(e.RNG, e.nextID()))
	}
	s.Market.Relics = relics
	s.Market.NextRefresh = now.Add(marketRefreshEvery)

	if announce {
		res.Output = append(res.Output, "The Yojef market has fresh relics in stock.")
	}
}
