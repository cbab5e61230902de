// Quizfall is a deterministic trivia idle RPG: answer questions to fight
// through zones, collect gear, and build an economy.
// Usage: quizfall [--version] [--plain] [--seed <n>] [--script <file>] [--questions <dir>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/quizfall/cli"
	"github.com/nathoo/quizfall/engine"
	"github.com/nathoo/quizfall/quiz"
	"github.com/nathoo/quizfall/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seed := time.Now().UnixNano()
	var scriptFile string
	var questionDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("quizfall %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed requires a number: %v\n", err)
				os.Exit(1)
			}
			seed = n
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--questions":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--questions requires a directory\n")
				os.Exit(1)
			}
			i++
			questionDir = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", args[i])
			os.Exit(1)
		}
	}

	// Load Lua question decks, or fall back to the built-in starter set.
	var bank *quiz.Bank
	if questionDir != "" {
		b, err := quiz.Load(questionDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading questions: %v\n", err)
			os.Exit(1)
		}
		bank = b
	} else {
		bank = quiz.DefaultBank()
	}

	eng := engine.New(bank, seed)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng)
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
