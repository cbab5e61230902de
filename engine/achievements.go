package engine

import (
	"time"

	"github.com/nathoo/quizfall/types"
)

// achievementDef is a pure predicate over a state snapshot, keyed by a
// stable ID. Definitions are evaluated after every commit; once unlocked an
// entry stays unlocked.
type achievementDef struct {
	ID       string
	Name     string
	Unlocked func(s *types.GameState) bool
}

var achievementDefs = []achievementDef{
	{"first_blood", "First Blood", func(s *types.GameState) bool {
		return s.Stats.EnemiesKilled >= 1
	}},
	{"zone_10", "Double Digits", func(s *types.GameState) bool {
		return s.Stats.ZonesReached >= 10
	}},
	{"zone_25", "Deep Delver", func(s *types.GameState) bool {
		return s.Stats.ZonesReached >= 25
	}},
	{"zone_50", "Premium Territory", func(s *types.GameState) bool {
		return s.Stats.ZonesReached >= 50
	}},
	{"streak_5", "On a Roll", func(s *types.GameState) bool {
		return s.Streak.Best >= 5
	}},
	{"streak_15", "Unstoppable Mind", func(s *types.GameState) bool {
		return s.Streak.Best >= 15
	}},
	{"scholar_100", "Scholar", func(s *types.GameState) bool {
		return s.Stats.CorrectAnswers >= 100
	}},
	{"scholar_500", "Sage", func(s *types.GameState) bool {
		return s.Stats.CorrectAnswers >= 500
	}},
	{"collector_25", "Collector", func(s *types.GameState) bool {
		return s.Stats.ItemsCollected >= 25
	}},
	{"chest_10", "Chest Cracker", func(s *types.GameState) bool {
		return s.Stats.ChestsOpened >= 10
	}},
	{"rich_10k", "Coin Hoarder", func(s *types.GameState) bool {
		return s.Stats.CoinsEarned >= 10000
	}},
	{"relic_5", "Relic Hunter", func(s *types.GameState) bool {
		return len(s.Inventory.Relics) >= 5
	}},
	{"fragment_trader", "Fragment Trader", func(s *types.GameState) bool {
		return s.Stats.FragmentSpends >= 1
	}},
	{"green_thumb", "Green Thumb", func(s *types.GameState) bool {
		return s.Garden.GrowthCm >= 10
	}},
	{"death_defier", "Death Defier", func(s *types.GameState) bool {
		return s.Stats.Revivals >= 1
	}},
}

// tagDef works like achievementDef but for player titles.
type tagDef struct {
	ID       string
	Name     string
	Unlocked func(s *types.GameState) bool
}

var tagDefs = []tagDef{
	{"novice", "Novice", func(s *types.GameState) bool {
		return s.Progression.Level >= 5
	}},
	{"veteran", "Veteran", func(s *types.GameState) bool {
		return s.Progression.Level >= 20
	}},
	{"untouchable", "Untouchable", func(s *types.GameState) bool {
		return s.Streak.Best >= 25
	}},
	{"premium", "Premium Adventurer", func(s *types.GameState) bool {
		return s.IsPremium
	}},
	{"perfectionist", "Perfectionist", func(s *types.GameState) bool {
		return s.Stats.TotalQuestions >= 100 &&
			s.Stats.CorrectAnswers*100 >= s.Stats.TotalQuestions*90
	}},
}

// evaluateAchievements scans the snapshot and records any newly unlocked
// achievements, returning their IDs.
func (e *Engine) evaluateAchievements() []string {
	s := e.State
	if s.Achievements == nil {
		s.Achievements = map[string]time.Time{}
	}
	var unlocked []string
	for _, def := range achievementDefs {
		if _, done := s.Achievements[def.ID]; done {
			continue
		}
		if def.Unlocked(s) {
			s.Achievements[def.ID] = e.Now()
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

// evaluateTags scans the snapshot for newly earned titles.
func (e *Engine) evaluateTags() []string {
	s := e.State
	if s.Tags == nil {
		s.Tags = map[string]time.Time{}
	}
	var unlocked []string
	for _, def := range tagDefs {
		if _, done := s.Tags[def.ID]; done {
			continue
		}
		if def.Unlocked(s) {
			s.Tags[def.ID] = e.Now()
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

func achievementName(id string) string {
	for _, def := range achievementDefs {
		if def.ID == id {
			return def.Name
		}
	}
	return id
}

func tagName(id string) string {
	for _, def := range tagDefs {
		if def.ID == id {
			return def.Name
		}
	}
	return id
}
