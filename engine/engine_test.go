package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/quizfall/types"
)

// stubBank always serves the same choice question. "yes" is correct.
type stubBank struct{}

func (stubBank) QuestionByZone(zone int, rng *RNG) (types.Question, bool) {
	return types.Question{
		ID:       "stub",
		Prompt:   "Say yes?",
		Kind:     types.KindChoice,
		Options:  []string{"yes", "no"},
		Answer:   0,
		Category: "general",
	}, true
}

func (stubBank) Check(q *types.Question, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func (stubBank) NearMiss(q *types.Question, answer string) bool { return false }

// emptyBank has no questions at all.
type emptyBank struct{}

func (emptyBank) QuestionByZone(zone int, rng *RNG) (types.Question, bool) {
	return types.Question{}, false
}
func (emptyBank) Check(q *types.Question, answer string) bool    { return false }
func (emptyBank) NearMiss(q *types.Question, answer string) bool { return false }

func TestStep_EmptyInput(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	res := e.Step("   ")
	if len(res.Output) == 0 || !strings.Contains(res.Output[len(res.Output)-1], "What do you want to do?") {
		t.Errorf("empty input output = %v", res.Output)
	}
}

func TestStep_UnknownCommand(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	res := e.Step("dance")
	if !strings.Contains(strings.Join(res.Output, "\n"), "Unknown command: dance") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestStep_FullCombatRound(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	e.Step("fight")
	if !e.State.AdventureSkills.SelectionOpen {
		t.Fatal("skill selection should open")
	}

	res := e.Step("skip")
	if e.State.PendingQuestion == nil {
		t.Fatal("a question should be pending after skipping skills")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Say yes?") {
		t.Errorf("question not rendered: %v", res.Output)
	}

	enemyHP := e.State.CurrentEnemy.HP
	res = e.Step("yes")
	if e.State.CurrentEnemy != nil && e.State.CurrentEnemy.HP >= enemyHP {
		t.Error("correct answer should damage the enemy")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Correct!") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestStep_WrongAnswerRevealsTruth(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	e.Step("fight")
	e.Step("skip")
	res := e.Step("no")

	joined := strings.Join(res.Output, "\n")
	if !strings.Contains(joined, "Wrong!") {
		t.Errorf("output = %v", res.Output)
	}
	if !strings.Contains(joined, "The answer was: yes") {
		t.Errorf("answer reveal missing: %v", res.Output)
	}
}

func TestStep_FleeDuringCombat(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	e.Step("fight")
	e.Step("skip")
	e.Step("flee")
	if e.State.InCombat {
		t.Error("flee should end combat")
	}
}

func TestStep_SkillSelectionGatesAnswers(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}

	e.Step("fight")
	res := e.Step("yes") // not a skill number
	if !strings.Contains(strings.Join(res.Output, "\n"), "Pick an adventure skill") {
		t.Errorf("output = %v", res.Output)
	}
	if e.State.PendingQuestion != nil {
		t.Error("no question should be drawn before skills resolve")
	}
}

func TestStep_EmptyBankEndsCombat(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = emptyBank{}

	e.Step("fight")
	res := e.Step("skip")
	if e.State.InCombat {
		t.Error("combat cannot continue with no questions")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "question bank is empty") {
		t.Errorf("output = %v", res.Output)
	}
}

func TestStep_MerchantChoiceBlocksOtherCommands(t *testing.T) {
	e := newTestEngine(42)
	e.Bank = stubBank{}
	e.State.Merchant.Fragments = FragmentsPerExchange

	e.Step("merchant")
	if !e.State.Merchant.ChoiceOpen {
		t.Fatal("merchant choice should open")
	}

	res := e.Step("fight")
	if e.State.InCombat {
		t.Error("pending merchant choice must block combat")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Choose your merchant reward") {
		t.Errorf("output = %v", res.Output)
	}

	e.Step("1")
	if e.State.Merchant.ChoiceOpen {
		t.Error("choosing should close the merchant")
	}
}

func TestSetGameMode(t *testing.T) {
	e := newTestEngine(42)

	if !e.SetGameMode(types.ModeBlitz) {
		t.Fatal("blitz should be selectable")
	}
	if e.State.Mode.Current != types.ModeBlitz {
		t.Errorf("mode = %s", e.State.Mode.Current)
	}

	if e.SetGameMode("impossible") {
		t.Error("unknown mode accepted")
	}

	if !e.SetGameMode(types.ModeSurvival) {
		t.Fatal("survival should be selectable")
	}
	if e.State.Mode.SurvivalLives != 3 {
		t.Errorf("survival lives = %d, want 3", e.State.Mode.SurvivalLives)
	}

	e.State.InCombat = true
	if e.SetGameMode(types.ModeNormal) {
		t.Error("mode switch must be blocked during combat")
	}
}

func TestResetGame_KeepsSeed(t *testing.T) {
	e := newTestEngine(42)
	e.State.Coins = 9999
	e.State.Zone = 30

	e.ResetGame()
	if e.State.Coins != 500 || e.State.Zone != 1 {
		t.Error("reset should restore defaults")
	}
	if e.State.RNGSeed != 42 {
		t.Errorf("seed = %d, want preserved 42", e.State.RNGSeed)
	}
}

func TestEarnCoins_AppliesMultipliers(t *testing.T) {
	e := newTestEngine(42)
	e.State.Multipliers.Coins = 2

	got := e.earnCoins(10)
	if got != 20 {
		t.Errorf("earned = %d, want 20", got)
	}
	if e.State.Coins != 520 {
		t.Errorf("coins = %d, want 520", e.State.Coins)
	}
}

func TestSpendCoins_NeverGoesNegative(t *testing.T) {
	e := newTestEngine(42)
	e.State.Coins = 10

	if e.spendCoins(11) {
		t.Error("overspend accepted")
	}
	if e.State.Coins != 10 {
		t.Errorf("coins = %d after rejected spend, want 10", e.State.Coins)
	}
	if !e.spendCoins(10) {
		t.Error("exact spend rejected")
	}
	if e.State.Coins != 0 {
		t.Errorf("coins = %d, want 0", e.State.Coins)
	}
}

func TestAddXP_LevelsUp(t *testing.T) {
	e := newTestEngine(42)

	e.addXP(100) // level 0 needs 100
	if e.State.Progression.Level != 1 {
		t.Errorf("level = %d, want 1", e.State.Progression.Level)
	}
	if e.State.Progression.XP != 0 {
		t.Errorf("xp = %d, want 0 carried", e.State.Progression.XP)
	}

	e.addXP(250) // level 1 needs 200, leaving 50 toward level 2's 300
	if e.State.Progression.Level != 2 {
		t.Errorf("level = %d, want 2", e.State.Progression.Level)
	}
	if e.State.Progression.XP != 50 {
		t.Errorf("xp = %d, want 50", e.State.Progression.XP)
	}
}

func TestCommit_UnlocksAchievements(t *testing.T) {
	e := newTestEngine(42)
	e.State.Stats.EnemiesKilled = 1

	res := types.Result{}
	e.commit(&res)

	if _, ok := e.State.Achievements["first_blood"]; !ok {
		t.Fatal("first_blood should unlock")
	}
	if !strings.Contains(strings.Join(res.Output, "\n"), "Achievement unlocked: First Blood") {
		t.Errorf("output = %v", res.Output)
	}

	// Second commit must not re-announce.
	res2 := types.Result{}
	e.commit(&res2)
	if len(res2.Unlocked) != 0 {
		t.Errorf("re-unlocked: %v", res2.Unlocked)
	}
}

func TestCommit_StampsRNGPosition(t *testing.T) {
	e := newTestEngine(42)
	e.RNG.Intn(10)
	e.RNG.Intn(10)

	res := types.Result{}
	e.commit(&res)
	if e.State.RNGPosition != 2 {
		t.Errorf("rng position = %d, want 2", e.State.RNGPosition)
	}
}
