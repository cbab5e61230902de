package engine

import (
	"fmt"
	"math"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

// difficultyMultiplier scales damage by question difficulty. It is fixed at
// 1.0 for now; varying it is a pending balance decision.
const difficultyMultiplier = 1.0

// Durability decay per answered question.
const (
	durabilityLossHit  = 1
	durabilityLossMiss = 2
)

// Item drop odds after a kill in an eligible zone.
const (
	itemDropChancePct = 30
	reviveHPFraction  = 0.5
)

// StartCombat generates an enemy for the current zone and opens the
// adventure-skill selection. Question answering is gated until the
// selection is resolved.
func (e *Engine) StartCombat() types.Result {
	s := e.State
	res := types.Result{}

	if s.InCombat {
		res.Output = append(res.Output, "You are already fighting.")
		return res
	}
	if s.Mode.Current == types.ModeSurvival && s.Mode.SurvivalLives <= 0 {
		res.Output = append(res.Output, "No survival lives left. Switch modes or reset.")
		return res
	}
	if s.Player.HP <= 0 {
		res.Output = append(res.Output, "You are in no state to fight.")
		return res
	}

	enemy := GenerateEnemy(s.Zone)
	s.CurrentEnemy = &enemy
	s.InCombat = true
	s.CombatLog = []string{}
	s.AdventureSkills = types.AdventureSkillsState{
		Available:     e.offerAdventureSkills(),
		SelectionOpen: true,
	}

	e.logCombat("A %s appears in zone %d.", enemy.Name, s.Zone)
	res.Output = append(res.Output,
		fmt.Sprintf("A %s blocks your way! (%d HP, %d atk, %d def)", enemy.Name, enemy.HP, enemy.Atk, enemy.Def),
		"Choose an adventure skill:")
	for i, sk := range s.AdventureSkills.Available {
		res.Output = append(res.Output, fmt.Sprintf("  %d) %s — %s", i+1, sk.Name, sk.Description))
	}
	res.Output = append(res.Output, "  (or type 'skip')")

	e.commit(&res)
	return res
}

// SelectAdventureSkill picks one of the three offered skills.
func (e *Engine) SelectAdventureSkill(i int) types.Result {
	s := e.State
	res := types.Result{}

	if !s.InCombat || !s.AdventureSkills.SelectionOpen {
		res.Output = append(res.Output, "No skill selection is open.")
		return res
	}
	if i < 0 || i >= len(s.AdventureSkills.Available) {
		res.Output = append(res.Output, "Pick 1-3, or 'skip'.")
		return res
	}

	chosen := s.AdventureSkills.Available[i]
	s.AdventureSkills.Selected = &chosen
	s.AdventureSkills.SelectionOpen = false
	s.AdventureSkills.Effects = types.SkillEffects{Active: chosen.Type}

	res.Output = append(res.Output, fmt.Sprintf("%s active for this fight.", chosen.Name))
	e.logCombat("Adventure skill: %s.", chosen.Name)

	if chosen.Type == types.SkillFirstStrike && s.CurrentEnemy != nil {
		dmg := maxInt(1, s.Player.Atk-s.CurrentEnemy.Def)
		s.CurrentEnemy.HP = maxInt(0, s.CurrentEnemy.HP-dmg)
		res.Output = append(res.Output, fmt.Sprintf("You strike first for %d damage!", dmg))
		e.logCombat("First strike for %d.", dmg)
		if s.CurrentEnemy.HP == 0 {
			e.resolveVictory(&res)
			e.commit(&res)
			return res
		}
	}

	e.commit(&res)
	e.drawQuestion(&res)
	return res
}

// SkipAdventureSkills declines all three offers.
func (e *Engine) SkipAdventureSkills() types.Result {
	s := e.State
	res := types.Result{}

	if !s.InCombat || !s.AdventureSkills.SelectionOpen {
		res.Output = append(res.Output, "No skill selection is open.")
		return res
	}
	s.AdventureSkills.SelectionOpen = false
	s.AdventureSkills.Effects = types.SkillEffects{}
	res.Output = append(res.Output, "You trust your wits alone.")

	e.commit(&res)
	e.drawQuestion(&res)
	return res
}

// Attack resolves one combat turn from an answered question. hit is whether
// the answer was correct; category feeds the accuracy counters.
func (e *Engine) Attack(hit bool, category string) types.Result {
	s := e.State
	res := types.Result{}

	if !s.InCombat || s.CurrentEnemy == nil {
		res.Output = append(res.Output, "There is nothing to fight.")
		return res
	}

	if category == "" {
		category = "general"
	}
	if s.Stats.Accuracy == nil {
		s.Stats.Accuracy = map[string]*types.CategoryAccuracy{}
	}
	acc := s.Stats.Accuracy[category]
	if acc == nil {
		acc = &types.CategoryAccuracy{}
		s.Stats.Accuracy[category] = acc
	}
	acc.Total++
	s.Stats.TotalQuestions++
	if hit {
		acc.Correct++
		s.Stats.CorrectAnswers++
		e.resolveHit(&res)
	} else {
		e.resolveMiss(&res)
	}

	e.commit(&res)
	return res
}

// resolveHit applies the player's attack: durability decay, damage with
// health-percentage scaling, streak growth, and the victory branch.
func (e *Engine) resolveHit(res *types.Result) {
	s := e.State
	eff := &s.AdventureSkills.Effects
	enemy := s.CurrentEnemy

	e.decayEquipment(durabilityLossHit)

	if state.SkillActive(s, types.SkillHealingWind) {
		heal := s.Player.MaxHP / 10
		s.Player.HP = minInt(s.Player.MaxHP, s.Player.HP+heal)
	}

	baseDamage := maxInt(1, s.Player.Atk-enemy.Def)
	healthMult := healthMultiplier(s.Player.HP, s.Player.MaxHP)
	if state.SkillActive(s, types.SkillIronWill) && healthMult < 1.5 {
		healthMult = 1.5
	}

	skillMult := 1.0
	switch {
	case state.SkillActive(s, types.SkillPrecision):
		skillMult = 1.25
	case state.SkillActive(s, types.SkillRisker):
		skillMult = 1.5
	}
	if state.SkillActive(s, types.SkillBerserker) && s.Player.HP*2 <= s.Player.MaxHP {
		skillMult *= 2
	}
	if state.SkillActive(s, types.SkillComeback) && eff.MissedLastTurn {
		skillMult *= 2
	}
	if state.SkillActive(s, types.SkillAdrenaline) {
		skillMult *= 1 + 0.05*float64(s.Streak.Current)
	}
	if s.Mode.Current == types.ModeBloodlust {
		skillMult *= 2
	}

	damage := int(math.Floor(float64(baseDamage) * difficultyMultiplier * healthMult * skillMult))

	strikes := 1
	if state.SkillActive(s, types.SkillLightning) && e.RNG.Chance(20) {
		strikes = 2
		res.Output = append(res.Output, "Lightning chains into a second strike!")
	}
	total := damage * strikes
	enemy.HP = maxInt(0, enemy.HP-total)

	if state.SkillActive(s, types.SkillVampiric) {
		heal := total / 4
		s.Player.HP = minInt(s.Player.MaxHP, s.Player.HP+heal)
	}

	s.Streak.Current++
	if s.Streak.Current > s.Streak.Best {
		s.Streak.Best = s.Streak.Current
	}
	s.Streak.Multiplier = 1 + float64(s.Streak.Current)*0.1
	eff.MissedLastTurn = false

	e.logCombat("Correct! %d damage to %s (%d HP left).", total, enemy.Name, enemy.HP)
	res.Output = append(res.Output, fmt.Sprintf("Correct! You deal %d damage. %s: %d/%d HP.",
		total, enemy.Name, enemy.HP, enemy.MaxHP))

	if enemy.HP == 0 {
		e.resolveVictory(res)
	}
}

// resolveVictory pays out rewards, advances the zone, and rolls fragment and
// item drops. The fragment and drop rules use the defeated (pre-advance)
// zone.
func (e *Engine) resolveVictory(res *types.Result) {
	s := e.State
	defeatedZone := s.Zone

	streakMult := s.Streak.Multiplier
	if state.SkillActive(s, types.SkillScholarFocus) {
		streakMult *= 2
	}

	coinBase := float64(10+defeatedZone*5) * streakMult
	gemBase := float64(1+defeatedZone/5) * streakMult
	if s.Mode.Current == types.ModeBlitz {
		coinBase *= 1.5
		gemBase *= 1.5
	}
	if state.SkillActive(s, types.SkillGoldenTouch) {
		coinBase *= 1.5
	}
	if state.SkillActive(s, types.SkillMidasCurse) {
		coinBase *= 2
		gemBase = 0
	}
	if state.SkillActive(s, types.SkillGemHunter) {
		gemBase *= 2
	}

	coins := e.earnCoins(int(math.Floor(coinBase)))
	gems := e.earnGems(int(math.Floor(gemBase)))
	e.addXP(defeatedZone * 10)
	s.Stats.EnemiesKilled++

	res.Output = append(res.Output, fmt.Sprintf("%s defeated! +%d coins, +%d gems.", s.CurrentEnemy.Name, coins, gems))
	e.logCombat("%s defeated in zone %d.", s.CurrentEnemy.Name, defeatedZone)

	if state.SkillActive(s, types.SkillScavenger) {
		if w := state.CurrentWeapon(s); w != nil {
			w.Durability = minInt(w.MaxDurability, w.Durability+5)
		}
		if a := state.CurrentArmor(s); a != nil {
			a.Durability = minInt(a.MaxDurability, a.Durability+5)
		}
	}

	if defeatedZone%5 == 0 && defeatedZone > s.Merchant.LastFragmentZone {
		s.Merchant.Fragments++
		s.Merchant.TotalEarned++
		s.Merchant.LastFragmentZone = defeatedZone
		res.Output = append(res.Output, "You found a merchant fragment!")
	}

	if defeatedZone >= itemDropMinZone {
		chance := itemDropChancePct
		if state.SkillActive(s, types.SkillFortuneFavor) || e.menuSkillActive(types.MenuTreasureSense) {
			chance *= 2
		}
		if e.RNG.Chance(chance) {
			rarity := dropRarity(e.RNG)
			if e.RNG.Chance(50) {
				w := GenerateWeapon(e.RNG, e.nextID(), true, rarity)
				s.Inventory.Weapons = append(s.Inventory.Weapons, w)
				res.Output = append(res.Output, fmt.Sprintf("The enemy dropped: %s (%s)!", w.Name, w.Rarity))
			} else {
				a := GenerateArmor(e.RNG, e.nextID(), true, rarity)
				s.Inventory.Armors = append(s.Inventory.Armors, a)
				res.Output = append(res.Output, fmt.Sprintf("The enemy dropped: %s (%s)!", a.Name, a.Rarity))
			}
			s.Stats.ItemsCollected++
		}
	}

	s.Zone = defeatedZone + 1
	s.IsPremium = s.Zone+1 >= 50
	if s.Zone > s.Stats.ZonesReached {
		s.Stats.ZonesReached = s.Zone
	}
	res.Output = append(res.Output, fmt.Sprintf("You advance to zone %d.", s.Zone))

	e.endCombat()
}

// resolveMiss applies the enemy's counterattack: double durability decay,
// streak reset, and the defeat branch.
func (e *Engine) resolveMiss(res *types.Result) {
	s := e.State
	eff := &s.AdventureSkills.Effects
	enemy := s.CurrentEnemy

	if state.SkillActive(s, types.SkillSkipCard) && !eff.SkipCardUsed {
		eff.SkipCardUsed = true
		res.Output = append(res.Output, "Wrong — but your Skip Card absorbs the mistake.")
		e.logCombat("Skip card spent.")
		return
	}

	e.decayEquipment(durabilityLossMiss)

	damage := maxInt(1, enemy.Atk-s.Player.Def)
	if state.SkillActive(s, types.SkillRisker) {
		damage = int(math.Floor(float64(damage) * 1.5))
	}
	if state.SkillActive(s, types.SkillStoneSkin) {
		damage = maxInt(1, int(math.Floor(float64(damage)*0.75)))
	}
	if s.Mode.Current == types.ModeBloodlust {
		damage *= 2
	}

	absorbed := false
	switch {
	case state.SkillActive(s, types.SkillMetalShield) && !eff.MetalShieldUsed:
		eff.MetalShieldUsed = true
		absorbed = true
		res.Output = append(res.Output, "Your Metal Shield absorbs the blow!")
	case state.SkillActive(s, types.SkillDodge) && e.RNG.Chance(25):
		absorbed = true
		res.Output = append(res.Output, "You dodge the counterattack!")
	}

	keepStreak := e.menuSkillActive(types.MenuStreakShield)
	if state.SkillActive(s, types.SkillStreakKeeper) && !eff.StreakKeeperUsed {
		eff.StreakKeeperUsed = true
		keepStreak = true
		res.Output = append(res.Output, "Streak Keeper preserves your streak.")
	}
	if !keepStreak {
		s.Streak.Current = 0
		s.Streak.Multiplier = 1
	}
	eff.MissedLastTurn = true

	if absorbed {
		e.logCombat("Miss, but no damage taken.")
		e.commitHPLine(res)
		return
	}

	s.Player.HP = maxInt(0, s.Player.HP-damage)
	e.logCombat("Wrong! %s hits you for %d (%d HP left).", enemy.Name, damage, s.Player.HP)
	res.Output = append(res.Output, fmt.Sprintf("Wrong! The %s hits you for %d.", enemy.Name, damage))
	e.commitHPLine(res)

	if s.Player.HP == 0 {
		e.resolveDefeat(res)
	}
}

// resolveDefeat handles lethal damage: Last Stand, then the one-per-run
// revival, then death.
func (e *Engine) resolveDefeat(res *types.Result) {
	s := e.State
	eff := &s.AdventureSkills.Effects

	if state.SkillActive(s, types.SkillLastStand) && !eff.LastStandUsed {
		eff.LastStandUsed = true
		s.Player.HP = 1
		res.Output = append(res.Output, "Last Stand! You cling on at 1 HP.")
		e.logCombat("Last stand at 1 HP.")
		return
	}

	if !s.HasUsedRevival {
		s.HasUsedRevival = true
		s.Stats.Revivals++
		s.Player.HP = int(float64(s.Player.MaxHP) * reviveHPFraction)
		res.Output = append(res.Output, fmt.Sprintf("You collapse — and rise again with %d HP. That trick works once.", s.Player.HP))
		e.logCombat("Revived at %d HP.", s.Player.HP)
		return
	}

	s.Stats.Deaths++
	if s.Mode.Current == types.ModeSurvival {
		s.Mode.SurvivalLives--
		res.Output = append(res.Output, fmt.Sprintf("You fall. Survival lives left: %d.", s.Mode.SurvivalLives))
	} else {
		res.Output = append(res.Output, "You have been defeated.")
	}
	e.logCombat("Defeated by %s.", s.CurrentEnemy.Name)
	e.endCombat()
}

// Flee abandons the current fight with no rewards.
func (e *Engine) Flee() types.Result {
	s := e.State
	res := types.Result{}
	if !s.InCombat {
		res.Output = append(res.Output, "You are not fighting anything.")
		return res
	}
	res.Output = append(res.Output, fmt.Sprintf("You retreat from the %s.", s.CurrentEnemy.Name))
	e.logCombat("Fled from combat.")
	e.endCombat()
	e.commit(&res)
	return res
}

// endCombat clears the combat session and the adventure-skill state.
func (e *Engine) endCombat() {
	s := e.State
	s.InCombat = false
	s.CurrentEnemy = nil
	s.PendingQuestion = nil
	s.AdventureSkills = types.AdventureSkillsState{Available: []types.AdventureSkill{}}
}

// decayEquipment reduces equipped weapon and armor durability, floored at
// zero. Sharp Blade, Armor Mastery, and the durability-freeze menu skill
// exempt their items.
func (e *Engine) decayEquipment(amount int) {
	s := e.State
	if e.menuSkillActive(types.MenuDurabilityFreeze) {
		return
	}
	if w := state.CurrentWeapon(s); w != nil && !state.SkillActive(s, types.SkillSharpBlade) {
		w.Durability = maxInt(0, w.Durability-amount)
	}
	if a := state.CurrentArmor(s); a != nil && !state.SkillActive(s, types.SkillArmorMastery) {
		a.Durability = maxInt(0, a.Durability-amount)
	}
}

// healthMultiplier rewards fighting at low health.
func healthMultiplier(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 1.0
	}
	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio <= 0.10:
		return 3.0
	case ratio <= 0.25:
		return 2.0
	case ratio <= 0.50:
		return 1.5
	case ratio <= 0.75:
		return 1.25
	default:
		return 1.0
	}
}

func (e *Engine) commitHPLine(res *types.Result) {
	res.Output = append(res.Output, fmt.Sprintf("HP: %d/%d.", e.State.Player.HP, e.State.Player.MaxHP))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
