// Package engine owns the single game-state tree and every operation that
// mutates it. Each operation runs the same pipeline: mutate → recompute
// derived stats → evaluate achievements and tags → track RNG position.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathoo/quizfall/engine/state"
	"github.com/nathoo/quizfall/types"
)

// QuestionSource supplies trivia questions and checks answers. The engine
// never generates or grades questions itself.
type QuestionSource interface {
	QuestionByZone(zone int, rng *RNG) (types.Question, bool)
	Check(q *types.Question, answer string) bool
	NearMiss(q *types.Question, answer string) bool
}

// Engine holds the game state, the question bank, and the clock.
type Engine struct {
	State *types.GameState
	Bank  QuestionSource
	RNG   *RNG

	// Now is the injected clock for all lazy time-based systems.
	Now func() time.Time
}

// New creates an engine with a fresh state.
func New(bank QuestionSource, seed int64) *Engine {
	s := state.NewGameState()
	s.RNGSeed = seed
	return &Engine{
		State: s,
		Bank:  bank,
		RNG:   NewRNG(seed),
		Now:   time.Now,
	}
}

// RestoreRNGState re-creates the RNG from the saved seed and position.
func (e *Engine) RestoreRNGState() {
	e.RNG = RestoreRNG(e.State.RNGSeed, e.State.RNGPosition)
}

// commit finishes an operation: derived stats are recomputed from scratch,
// achievement and tag evaluators scan the new snapshot, and the RNG position
// is stamped for save/load.
func (e *Engine) commit(res *types.Result) {
	e.State.Player = CalculatePlayerStats(e.State)

	for _, id := range e.evaluateAchievements() {
		res.Unlocked = append(res.Unlocked, id)
		res.Output = append(res.Output, fmt.Sprintf("Achievement unlocked: %s", achievementName(id)))
	}
	for _, id := range e.evaluateTags() {
		res.Unlocked = append(res.Unlocked, id)
		res.Output = append(res.Output, fmt.Sprintf("New title earned: %s", tagName(id)))
	}

	e.State.RNGPosition = e.RNG.Position()
}

// Step processes one line of player input and returns the result. Timed
// systems are advanced first, so garden growth, market refreshes, offline
// accrual, and skill expiry are always up to date before dispatch.
func (e *Engine) Step(input string) types.Result {
	res := e.Tick(e.Now())

	input = strings.TrimSpace(input)
	if input == "" {
		res.Output = append(res.Output, "What do you want to do?")
		return res
	}

	s := e.State

	// A pending merchant choice blocks everything else.
	if s.Merchant.ChoiceOpen {
		if n, err := strconv.Atoi(input); err == nil {
			merge(&res, e.SelectMerchantReward(n-1))
			return res
		}
		res.Output = append(res.Output, "Choose your merchant reward first (1-3).")
		return res
	}

	// Adventure skill selection gates combat.
	if s.InCombat && s.AdventureSkills.SelectionOpen {
		switch strings.ToLower(input) {
		case "skip":
			merge(&res, e.SkipAdventureSkills())
			return res
		default:
			if n, err := strconv.Atoi(input); err == nil {
				merge(&res, e.SelectAdventureSkill(n-1))
				return res
			}
			res.Output = append(res.Output, "Pick an adventure skill (1-3) or type 'skip'.")
			return res
		}
	}

	// During combat every non-command line is an answer to the pending
	// question. "flee" is the one escape hatch.
	if s.InCombat {
		if strings.EqualFold(input, "flee") {
			merge(&res, e.Flee())
			return res
		}
		merge(&res, e.answer(input))
		return res
	}

	merge(&res, e.dispatch(input))
	return res
}

// answer grades the input against the pending question and resolves the
// combat turn.
func (e *Engine) answer(input string) types.Result {
	q := e.State.PendingQuestion
	if q == nil {
		return types.Result{Output: []string{"No question is pending."}}
	}

	hit := e.Bank.Check(q, input)
	res := e.Attack(hit, q.Category)

	if !hit && e.Bank.NearMiss(q, input) {
		res.Output = append(res.Output, "So close! The answer was: "+answerText(q))
	} else if !hit {
		res.Output = append(res.Output, "The answer was: "+answerText(q))
	}

	if e.State.InCombat {
		e.drawQuestion(&res)
	}
	return res
}

// drawQuestion pulls the next question for the current zone into state and
// renders it.
func (e *Engine) drawQuestion(res *types.Result) {
	q, ok := e.Bank.QuestionByZone(e.State.Zone, e.RNG)
	if !ok {
		res.Output = append(res.Output, "The question bank is empty — combat cannot continue.")
		e.endCombat()
		e.commit(res)
		return
	}
	e.State.PendingQuestion = &q
	e.State.RNGPosition = e.RNG.Position()
	res.Output = append(res.Output, RenderQuestion(&q)...)
}

// dispatch routes out-of-combat commands to operations.
func (e *Engine) dispatch(input string) types.Result {
	parts := strings.Fields(strings.ToLower(input))
	verb := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch verb {
	case "fight":
		return e.StartCombat()
	case "equip":
		return boolResult(e.EquipItem(arg), "Equipped.", "You don't own that.")
	case "unequip":
		return boolResult(e.UnequipRelic(arg), "Relic unequipped.", "That relic isn't equipped.")
	case "upgrade":
		return boolResult(e.UpgradeItem(arg), "Upgraded.", "Can't upgrade that (missing item or gems).")
	case "sell":
		return boolResult(e.SellItem(arg), "Sold.", "Can't sell that (missing, or currently equipped).")
	case "discard":
		return boolResult(e.DiscardItem(arg), "Discarded.", "Can't discard that (missing, or currently equipped).")
	case "chest":
		cost := 200
		if arg != "" {
			if n, err := strconv.Atoi(arg); err == nil {
				cost = n
			}
		}
		if reward := e.OpenChest(cost); reward != nil {
			return types.Result{Output: reward.Lines}
		}
		return types.Result{Output: []string{"Not enough coins for that chest."}}
	case "merchant":
		return e.SpendFragments()
	case "buy":
		return boolResult(e.BuyMarketRelic(arg), "Relic purchased and equipped.", "Can't buy that (missing relic or gems).")
	case "roll":
		return e.RollMenuSkill()
	case "research":
		return boolResult(e.UpgradeResearch(), "Research advanced.", "Not enough coins for research.")
	case "plant":
		return boolResult(e.PlantGardenSeed(), "Seed planted. Keep it watered.", "Can't plant (already planted, or not enough coins).")
	case "water":
		return boolResult(e.WaterGarden(), "Garden watered (+24h).", "Can't water (nothing planted, or not enough coins).")
	case "daily":
		return boolResult(e.ClaimDailyReward(), "Daily reward claimed.", "Daily reward not ready yet.")
	case "claim":
		return boolResult(e.ClaimOfflineRewards(), "Offline rewards claimed.", "Nothing to claim.")
	case "mode":
		return boolResult(e.SetGameMode(types.GameMode(arg)), "Mode changed.", "Unknown mode, or combat in progress.")
	case "reset":
		return e.ResetGame()
	default:
		return types.Result{Output: []string{fmt.Sprintf("Unknown command: %s.", verb)}}
	}
}

// EquipItem equips a weapon, armor, or relic by ID.
func (e *Engine) EquipItem(id string) bool {
	switch {
	case state.FindWeapon(e.State, id) >= 0:
		return e.EquipWeapon(id)
	case state.FindArmor(e.State, id) >= 0:
		return e.EquipArmor(id)
	case state.FindRelic(e.State, id) >= 0:
		return e.EquipRelic(id)
	}
	return false
}

// UpgradeItem upgrades a weapon, armor, or relic by ID.
func (e *Engine) UpgradeItem(id string) bool {
	switch {
	case state.FindWeapon(e.State, id) >= 0:
		return e.UpgradeWeapon(id)
	case state.FindArmor(e.State, id) >= 0:
		return e.UpgradeArmor(id)
	case state.FindRelic(e.State, id) >= 0:
		return e.UpgradeRelic(id)
	}
	return false
}

// SellItem sells a weapon or armor by ID.
func (e *Engine) SellItem(id string) bool {
	if state.FindWeapon(e.State, id) >= 0 {
		return e.SellWeapon(id)
	}
	if state.FindArmor(e.State, id) >= 0 {
		return e.SellArmor(id)
	}
	return false
}

// DiscardItem discards a weapon or armor by ID.
func (e *Engine) DiscardItem(id string) bool {
	if state.FindWeapon(e.State, id) >= 0 {
		return e.DiscardWeapon(id)
	}
	if state.FindArmor(e.State, id) >= 0 {
		return e.DiscardArmor(id)
	}
	return false
}

// SetGameMode switches the ruleset. Blocked during combat.
func (e *Engine) SetGameMode(mode types.GameMode) bool {
	if e.State.InCombat {
		return false
	}
	switch mode {
	case types.ModeNormal, types.ModeBlitz, types.ModeBloodlust, types.ModeSurvival:
	default:
		return false
	}
	e.State.Mode.Current = mode
	if mode == types.ModeSurvival {
		e.State.Mode.SurvivalLives = state.SurvivalStartLives
	}
	res := types.Result{}
	e.commit(&res)
	return true
}

// ResetGame replaces the state tree with a fresh one, keeping the RNG seed.
func (e *Engine) ResetGame() types.Result {
	seed := e.State.RNGSeed
	e.State = state.NewGameState()
	e.State.RNGSeed = seed
	res := types.Result{Output: []string{"The world resets. Zone 1 awaits."}}
	e.commit(&res)
	return res
}

// RenderQuestion formats a question for the shells.
func RenderQuestion(q *types.Question) []string {
	lines := []string{fmt.Sprintf("[%s/%s] %s", q.Category, q.Difficulty, q.Prompt)}
	switch q.Kind {
	case types.KindChoice:
		for i, opt := range q.Options {
			lines = append(lines, fmt.Sprintf("  %d) %s", i+1, opt))
		}
	case types.KindSlider:
		lines = append(lines, fmt.Sprintf("  (enter a number between %d and %d)", q.SliderMin, q.SliderMax))
	case types.KindReorder:
		lines = append(lines, "  (reorder these words: "+strings.Join(q.Words, ", ")+")")
	}
	return lines
}

// answerText renders the correct answer for feedback after a miss.
func answerText(q *types.Question) string {
	switch q.Kind {
	case types.KindChoice:
		if q.Answer >= 0 && q.Answer < len(q.Options) {
			return q.Options[q.Answer]
		}
	case types.KindSlider:
		return strconv.Itoa(q.Answer)
	case types.KindFreeText:
		return q.AnswerText
	case types.KindReorder:
		return strings.Join(q.Words, " ")
	}
	return ""
}

// logCombat appends to the capped combat log.
func (e *Engine) logCombat(format string, args ...any) {
	const maxLog = 50
	s := e.State
	s.CombatLog = append(s.CombatLog, fmt.Sprintf(format, args...))
	if len(s.CombatLog) > maxLog {
		s.CombatLog = s.CombatLog[len(s.CombatLog)-maxLog:]
	}
}

// nextID reserves a unique item ID.
func (e *Engine) nextID() int {
	id := e.State.NextItemID
	e.State.NextItemID++
	return id
}

// earnCoins credits coins through the global and timed multipliers and
// returns the credited amount.
func (e *Engine) earnCoins(n int) int {
	mult := e.State.Multipliers.Coins
	if e.menuSkillActive(types.MenuCoinBoost) {
		mult *= 2
	}
	earned := int(float64(n) * mult)
	e.State.Coins += earned
	e.State.Stats.CoinsEarned += earned
	return earned
}

// earnGems credits gems through the global and timed multipliers.
func (e *Engine) earnGems(n int) int {
	mult := e.State.Multipliers.Gems
	if e.menuSkillActive(types.MenuGemBoost) {
		mult *= 2
	}
	earned := int(float64(n) * mult)
	e.State.Gems += earned
	e.State.Stats.GemsEarned += earned
	return earned
}

// spendCoins debits coins, or returns false leaving state unchanged.
func (e *Engine) spendCoins(n int) bool {
	if e.State.Coins < n {
		return false
	}
	e.State.Coins -= n
	return true
}

// spendGems debits gems, or returns false leaving state unchanged.
func (e *Engine) spendGems(n int) bool {
	if e.State.Gems < n {
		return false
	}
	e.State.Gems -= n
	return true
}

// addXP credits experience and resolves level-ups.
func (e *Engine) addXP(n int) {
	if e.menuSkillActive(types.MenuXPBoost) {
		n *= 2
	}
	p := &e.State.Progression
	p.XP += n
	for p.XP >= xpToNext(p.Level) {
		p.XP -= xpToNext(p.Level)
		p.Level++
	}
}

func xpToNext(level int) int {
	return (level + 1) * 100
}

// menuSkillActive reports whether the given timed buff is currently running.
func (e *Engine) menuSkillActive(t types.MenuSkillType) bool {
	ms := e.State.ActiveMenuSkill
	return ms != nil && ms.Type == t && e.Now().Before(ms.ExpiresAt)
}

// merge appends one result into another.
func merge(dst *types.Result, src types.Result) {
	dst.Output = append(dst.Output, src.Output...)
	dst.Unlocked = append(dst.Unlocked, src.Unlocked...)
}

// boolResult wraps the boolean-return operations for the command router.
func boolResult(ok bool, yes, no string) types.Result {
	if ok {
		return types.Result{Output: []string{yes}}
	}
	return types.Result{Output: []string{no}}
}
