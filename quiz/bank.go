// Package quiz supplies trivia questions and grades answers. The engine
// consumes it through the engine.QuestionSource interface and never looks
// inside.
package quiz

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nathoo/quizfall/engine"
	"github.com/nathoo/quizfall/types"
)

// Difficulty labels, in weight-table order.
var difficulties = []string{"easy", "medium", "hard"}

// Bank is an immutable set of questions indexed by difficulty.
type Bank struct {
	Name string

	questions    []types.Question
	byDifficulty map[string][]int
}

// NewBank builds a bank from compiled questions.
func NewBank(name string, qs []types.Question) *Bank {
	b := &Bank{
		Name:         name,
		questions:    qs,
		byDifficulty: map[string][]int{},
	}
	for i, q := range qs {
		b.byDifficulty[q.Difficulty] = append(b.byDifficulty[q.Difficulty], i)
	}
	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// difficultyWeights shifts harder questions in as zones climb.
func difficultyWeights(zone int) []int {
	switch {
	case zone < 10:
		return []int{70, 25, 5}
	case zone < 25:
		return []int{30, 50, 20}
	default:
		return []int{10, 40, 50}
	}
}

// QuestionByZone draws a question whose difficulty distribution follows the
// zone. Falls back to the whole bank when the rolled difficulty is empty.
func (b *Bank) QuestionByZone(zone int, rng *engine.RNG) (types.Question, bool) {
	if len(b.questions) == 0 {
		return types.Question{}, false
	}
	difficulty := difficulties[rng.WeightedSelect(difficultyWeights(zone))]
	pool := b.byDifficulty[difficulty]
	if len(pool) == 0 {
		return b.questions[rng.Intn(len(b.questions))], true
	}
	return b.questions[pool[rng.Intn(len(pool))]], true
}

// Check grades a raw answer string against the question:
// exact match for choice and reorder, ±1 tolerance for slider, and
// case/whitespace-insensitive equality for free text.
func (b *Bank) Check(q *types.Question, answer string) bool {
	switch q.Kind {
	case types.KindChoice:
		return checkChoice(q, answer)
	case types.KindSlider:
		v, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return false
		}
		diff := v - q.Answer
		return diff >= -1 && diff <= 1
	case types.KindFreeText:
		return normalize(answer) == normalize(q.AnswerText)
	case types.KindReorder:
		got := strings.Fields(strings.ToLower(answer))
		if len(got) != len(q.Words) {
			return false
		}
		for i, w := range q.Words {
			if got[i] != strings.ToLower(w) {
				return false
			}
		}
		return true
	}
	return false
}

// checkChoice accepts either the 1-based option number or the option text.
func checkChoice(q *types.Question, answer string) bool {
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return false
	}
	trimmed := strings.TrimSpace(answer)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n-1 == q.Answer
	}
	return normalize(trimmed) == normalize(q.Options[q.Answer])
}

// NearMiss reports whether a wrong free-text answer was within edit
// distance 2 of the truth. Used for feedback only, never for scoring.
func (b *Bank) NearMiss(q *types.Question, answer string) bool {
	if q.Kind != types.KindFreeText {
		return false
	}
	got := normalize(answer)
	want := normalize(q.AnswerText)
	if got == "" || got == want {
		return false
	}
	return levenshtein.ComputeDistance(got, want) <= 2
}

// normalize lowercases and collapses all whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
