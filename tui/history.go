// Package tui provides a Bubble Tea terminal UI for the Quizfall game engine.
package tui

// History remembers commands the player has entered, oldest first, so the
// arrow keys can recall them. A cursor of -1 means the input line is live.
type History struct {
	entries []string
	limit   int
	cursor  int
}

// NewHistory creates a history buffer that keeps at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit, cursor: -1}
}

// Push records a command. Blank input and immediate repeats are not kept;
// answering "2" to five sliders in a row should still be one entry.
func (h *History) Push(cmd string) {
	if cmd == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.limit]
	}
}

// Prev moves the cursor toward older entries and returns the entry under
// it. Returns ("", false) when there is nothing to recall.
func (h *History) Prev() (string, bool) {
	switch {
	case len(h.entries) == 0:
		return "", false
	case h.cursor < 0:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves the cursor toward newer entries. Stepping past the newest one
// returns ("", false) and hands the input line back to the player.
func (h *History) Next() (string, bool) {
	if h.cursor < 0 || h.cursor+1 >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// ResetCursor drops any recall in progress.
func (h *History) ResetCursor() {
	h.cursor = -1
}
