// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Quizfall game engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/quizfall/engine"
	"github.com/nathoo/quizfall/engine/save"
	"github.com/nathoo/quizfall/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	saveDir := filepath.Join(home, ".quizfall", "saves")
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: saveDir,
	}
}

// Run starts the game loop: prompt → input → dispatch → output.
func (c *CLI) Run() {
	c.printLine("Quizfall — answer questions, conquer zones.")
	c.printLine("Type 'fight' to start, or /help for commands.")
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		result := c.Engine.Step(input)
		c.printResult(result)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/inventory", "/inv":
		c.cmdInventory()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(c.Engine.State, c.Engine.Now())
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	s, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Engine.State = s
	c.Engine.RestoreRNGState()
	c.printSystem(fmt.Sprintf("Game loaded from %s (zone %d).", name, s.Zone))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]   — Save game (default: quicksave)",
		"  /load [name]   — Load game (default: quicksave)",
		"  /quit          — Exit game",
		"  /help          — Show this help",
		"  /state         — Show player status",
		"  /inventory     — List owned items",
		"",
		"Game commands:",
		"  fight                — Start combat in the current zone",
		"  flee                 — Escape the current fight",
		"  equip <id>           — Equip a weapon, armor, or relic",
		"  unequip <id>         — Unequip a relic",
		"  upgrade <id>         — Upgrade an item (costs gems)",
		"  sell <id>            — Sell an unequipped item",
		"  discard <id>         — Throw an unequipped item away",
		"  chest [cost]         — Open a chest (default 200 coins)",
		"  merchant             — Trade 5 fragments for a reward choice",
		"  buy <id>             — Buy a relic from the market",
		"  roll                 — Roll a timed menu skill (100 coins)",
		"  research             — Advance permanent research",
		"  plant / water        — Tend the garden of growth",
		"  daily                — Claim the daily reward",
		"  claim                — Collect staged offline rewards",
		"  mode <name>          — normal, blitz, bloodlust, survival",
		"  reset                — Start over (asks nothing, be sure)",
		"",
		"In combat, type your answer to the question shown.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Zone: %d  Mode: %s", s.Zone, s.Mode.Current))
	c.printSystem(fmt.Sprintf("HP: %d/%d  Atk: %d  Def: %d", s.Player.HP, s.Player.MaxHP, s.Player.Atk, s.Player.Def))
	c.printSystem(fmt.Sprintf("Coins: %d  Gems: %d  Fragments: %d", s.Coins, s.Gems, s.Merchant.Fragments))
	c.printSystem(fmt.Sprintf("Level: %d  XP: %d  Streak: %d (best %d)", s.Progression.Level, s.Progression.XP, s.Streak.Current, s.Streak.Best))
	if s.InCombat && s.CurrentEnemy != nil {
		enemy := s.CurrentEnemy
		c.printSystem(fmt.Sprintf("Fighting: %s (%d/%d HP)", enemy.Name, enemy.HP, enemy.MaxHP))
	}
	if s.Mode.Current == types.ModeSurvival {
		c.printSystem(fmt.Sprintf("Lives: %d", s.Mode.SurvivalLives))
	}
}

func (c *CLI) cmdInventory() {
	s := c.Engine.State
	if len(s.Inventory.Weapons) == 0 && len(s.Inventory.Armors) == 0 && len(s.Inventory.Relics) == 0 {
		c.printSystem("Inventory is empty.")
		return
	}
	for _, w := range s.Inventory.Weapons {
		marker := " "
		if w.ID == s.Inventory.CurrentWeaponID {
			marker = "*"
		}
		c.printLine(fmt.Sprintf("%s %-6s %-28s %s L%d  atk %d  dur %d/%d", marker, w.ID, w.Name, w.Rarity, w.Level, w.BaseAtk, w.Durability, w.MaxDurability))
	}
	for _, a := range s.Inventory.Armors {
		marker := " "
		if a.ID == s.Inventory.CurrentArmorID {
			marker = "*"
		}
		c.printLine(fmt.Sprintf("%s %-6s %-28s %s L%d  def %d  dur %d/%d", marker, a.ID, a.Name, a.Rarity, a.Level, a.BaseDef, a.Durability, a.MaxDurability))
	}
	for _, r := range s.Inventory.Relics {
		marker := " "
		if equippedRelic(s, r.ID) {
			marker = "*"
		}
		c.printLine(fmt.Sprintf("%s %-6s %-28s %s L%d (%s)", marker, r.ID, r.Name, r.Rarity, r.Level, r.Kind))
	}
}

func equippedRelic(s *types.GameState, id string) bool {
	for _, rid := range s.Inventory.EquippedRelicIDs {
		if rid == id {
			return true
		}
	}
	return false
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
