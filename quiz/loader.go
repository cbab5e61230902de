package quiz

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/quizfall/types"
)

// rawQuestion holds a question table before compilation.
type rawQuestion struct {
	id    string
	table *lua.LTable
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	bank      *lua.LTable
	questions []rawQuestion
}

// Load reads all .lua files from dir, compiles them into a question bank,
// and validates it. The Lua VM is discarded after loading.
func Load(dir string) (*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading question directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	bank, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling question data: %w", err)
	}
	if err := validate(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Bank { name = "..." }
	L.SetGlobal("Bank", L.NewFunction(func(L *lua.LState) int {
		coll.bank = L.CheckTable(1)
		return 0
	}))

	// Question "id" { ... } — curried: Question("id") returns a function
	// that takes the definition table.
	L.SetGlobal("Question", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.questions = append(coll.questions, rawQuestion{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getStringList returns an array-style table field as a string slice.
func getStringList(tbl *lua.LTable, key string) []string {
	t, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	for i := 1; i <= t.MaxN(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts collected Lua tables into a Bank.
func compile(coll *collector) (*Bank, error) {
	name := "quizfall"
	if coll.bank != nil {
		if n := getString(coll.bank, "name"); n != "" {
			name = n
		}
	}

	qs := make([]types.Question, 0, len(coll.questions))
	for _, raw := range coll.questions {
		q, err := compileQuestion(raw)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", raw.id, err)
		}
		qs = append(qs, q)
	}
	return NewBank(name, qs), nil
}

func compileQuestion(raw rawQuestion) (types.Question, error) {
	tbl := raw.table
	q := types.Question{
		ID:         raw.id,
		Prompt:     getString(tbl, "prompt"),
		Kind:       types.QuestionKind(getString(tbl, "kind")),
		Category:   getString(tbl, "category"),
		Difficulty: getString(tbl, "difficulty"),
	}
	if q.Category == "" {
		q.Category = "general"
	}
	if q.Difficulty == "" {
		q.Difficulty = "easy"
	}

	switch q.Kind {
	case types.KindChoice:
		q.Options = getStringList(tbl, "options")
		// Lua answers are 1-based.
		q.Answer = getInt(tbl, "answer") - 1
	case types.KindSlider:
		q.SliderMin = getInt(tbl, "min")
		q.SliderMax = getInt(tbl, "max")
		q.Answer = getInt(tbl, "answer")
	case types.KindFreeText:
		q.AnswerText = getString(tbl, "answer")
	case types.KindReorder:
		q.Words = getStringList(tbl, "words")
	default:
		return q, fmt.Errorf("unknown kind %q", q.Kind)
	}
	return q, nil
}

// validate checks the compiled bank for consistency.
func validate(b *Bank) error {
	seen := map[string]bool{}
	valid := map[string]bool{"easy": true, "medium": true, "hard": true}

	for _, q := range b.questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			return fmt.Errorf("question %s: prompt is required", q.ID)
		}
		if !valid[q.Difficulty] {
			return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
		}

		switch q.Kind {
		case types.KindChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("question %s: choice needs at least 2 options", q.ID)
			}
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("question %s: answer out of range", q.ID)
			}
		case types.KindSlider:
			if q.SliderMin >= q.SliderMax {
				return fmt.Errorf("question %s: slider needs min < max", q.ID)
			}
			if q.Answer < q.SliderMin || q.Answer > q.SliderMax {
				return fmt.Errorf("question %s: answer outside slider range", q.ID)
			}
		case types.KindFreeText:
			if q.AnswerText == "" {
				return fmt.Errorf("question %s: answer is required", q.ID)
			}
		case types.KindReorder:
			if len(q.Words) < 2 {
				return fmt.Errorf("question %s: reorder needs at least 2 words", q.ID)
			}
		}
	}
	return nil
}
