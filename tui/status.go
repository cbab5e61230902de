package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/quizfall/types"
)

// renderStatusBar produces a full-width inverted status line showing HP,
// currencies, zone, streak, and the current enemy when fighting.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" HP %d/%d | Atk %d | Def %d | Zone %d",
		s.Player.HP, s.Player.MaxHP, s.Player.Atk, s.Player.Def, s.Zone)
	if s.Mode.Current != types.ModeNormal {
		left += " | " + strings.ToUpper(string(s.Mode.Current))
		if s.Mode.Current == types.ModeSurvival {
			left += fmt.Sprintf(" (%d lives)", s.Mode.SurvivalLives)
		}
	}

	right := fmt.Sprintf("%dc %dg | streak %d ", s.Coins, s.Gems, s.Streak.Current)
	if s.InCombat && s.CurrentEnemy != nil {
		enemy := s.CurrentEnemy
		candidate := fmt.Sprintf("%s %d/%d | %dc %dg | streak %d ",
			enemy.Name, enemy.HP, enemy.MaxHP, s.Coins, s.Gems, s.Streak.Current)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
