package quiz

import "github.com/nathoo/quizfall/types"

// DefaultBank is the built-in starter set used when no question directory
// is supplied. Small on purpose — real decks ship as Lua files.
func DefaultBank() *Bank {
	return NewBank("starter", []types.Question{
		{
			ID: "geo_paris", Prompt: "What is the capital of France?",
			Kind: types.KindChoice, Options: []string{"Lyon", "Paris", "Marseille", "Nice"},
			Answer: 1, Category: "geography", Difficulty: "easy",
		},
		{
			ID: "math_sq9", Prompt: "What is 9 squared?",
			Kind: types.KindChoice, Options: []string{"18", "72", "81", "99"},
			Answer: 2, Category: "math", Difficulty: "easy",
		},
		{
			ID: "sci_h2o", Prompt: "Which element does the O in H2O stand for?",
			Kind: types.KindFreeText, AnswerText: "oxygen",
			Category: "science", Difficulty: "easy",
		},
		{
			ID: "hist_moon", Prompt: "In what year did humans first walk on the Moon?",
			Kind: types.KindSlider, SliderMin: 1950, SliderMax: 1990, Answer: 1969,
			Category: "history", Difficulty: "medium",
		},
		{
			ID: "geo_longest", Prompt: "Which river is generally considered the longest?",
			Kind: types.KindChoice, Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
			Answer: 1, Category: "geography", Difficulty: "medium",
		},
		{
			ID: "lang_proverb", Prompt: "Reorder into the proverb:",
			Kind: types.KindReorder, Words: []string{"practice", "makes", "perfect"},
			Category: "language", Difficulty: "medium",
		},
		{
			ID: "sci_planck", Prompt: "Which constant relates a photon's energy to its frequency?",
			Kind: types.KindFreeText, AnswerText: "planck constant",
			Category: "science", Difficulty: "hard",
		},
		{
			ID: "hist_fall", Prompt: "In what year did the Western Roman Empire fall?",
			Kind: types.KindSlider, SliderMin: 400, SliderMax: 500, Answer: 476,
			Category: "history", Difficulty: "hard",
		},
	})
}
