package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleQuestion = lipgloss.NewStyle().
			Bold(true)

	styleOption = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleGood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	styleBad = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleReward = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindQuestion
	kindOption
	kindGood
	kindBad
	kindReward
	kindSystem
)

// classifyLine determines what kind of output line this is, based on the
// fixed phrasing the engine uses.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.Contains(line, "] "):
		return kindQuestion
	case strings.HasPrefix(line, "  "):
		return kindOption
	case strings.HasPrefix(line, "Correct!"),
		strings.HasPrefix(line, "You advance to zone"),
		strings.HasPrefix(line, "Lightning chains"),
		strings.HasPrefix(line, "You strike first"):
		return kindGood
	case strings.HasPrefix(line, "Wrong!"),
		strings.HasPrefix(line, "You have been defeated"),
		strings.HasPrefix(line, "You fall."),
		strings.HasPrefix(line, "You collapse"):
		return kindBad
	case strings.HasPrefix(line, "Achievement unlocked:"),
		strings.HasPrefix(line, "New title earned:"),
		strings.Contains(line, "defeated! +"),
		strings.HasPrefix(line, "The enemy dropped:"),
		strings.HasPrefix(line, "You found a merchant fragment"):
		return kindReward
	default:
		return kindNarrative
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
