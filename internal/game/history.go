// internal/game/history.go
//
// History: the guess → verdict record of one game.
//
// Notes:
//   - Guesses are stored upper case, in submission order, each at most once.
//   - Entries() hands out a copy; filtering never sees later mutations.
//   - A nil *History reads as empty and Reset on it is a no-op.

package game

import "strings"

// Entry is one recorded guess and the verdict it received.
type Entry struct {
	Guess   string // upper case
	Verdict Verdict
}

// History is the ordered guess → verdict record of one game.
// It only grows until Reset. The zero value and a nil *History are empty.
type History struct {
	entries []Entry
}

// Add records a guess and its verdict. A guess already recorded is kept
// once; against the same answer it can only have produced the same verdict.
func (h *History) Add(guess string, v Verdict) {
	g := strings.ToUpper(guess)
	for _, e := range h.entries {
		if e.Guess == g {
			return
		}
	}
	h.entries = append(h.entries, Entry{Guess: g, Verdict: v})
}

// Entries returns a copy of the recorded entries in submission order.
func (h *History) Entries() []Entry {
	if h == nil {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of recorded guesses.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Reset drops every entry, for a new answer.
func (h *History) Reset() {
	if h == nil {
		return
	}
	h.entries = nil
}
