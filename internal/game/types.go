// internal/game/types.go
//
// Core type definitions for the hint engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Tile/Verdict: the scored row for one guess, with its clue-string form.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - MarkHit:     letter is correct and in the correct position.
//   - MarkPresent: letter exists in the answer at another, unclaimed position.
//   - MarkMiss:    letter has no unclaimed occurrence left in the answer.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkPresent
	MarkHit
)

func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// MissChar is the clue character used for a missed position.
const MissChar = '*'

var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrInvalidClue    = errors.New("invalid clue")
)

// Tile is one scored position. Letter is the upper-cased guess letter,
// kept for misses too so a verdict can be re-rendered against its guess.
type Tile struct {
	Letter rune
	Mark   Mark
}

// Verdict is the ordered list of tiles for one guess.
type Verdict []Tile

// String renders the clue form: upper case for a hit, lower case for a
// present letter and '*' for a miss. CLASS scored with SASSY is "sa*S*".
func (v Verdict) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, t := range v {
		switch t.Mark {
		case MarkHit:
			b.WriteRune(unicode.ToUpper(t.Letter))
		case MarkPresent:
			b.WriteRune(unicode.ToLower(t.Letter))
		default:
			b.WriteRune(MissChar)
		}
	}
	return b.String()
}

// Equal reports whether two verdicts carry the same marks, and the same
// letters wherever a letter was credited.
func (v Verdict) Equal(o Verdict) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i].Mark != o[i].Mark {
			return false
		}
		if v[i].Mark != MarkMiss && unicode.ToUpper(v[i].Letter) != unicode.ToUpper(o[i].Letter) {
			return false
		}
	}
	return true
}

// Solved reports whether every tile is a hit.
func (v Verdict) Solved() bool {
	if len(v) == 0 {
		return false
	}
	for _, t := range v {
		if t.Mark != MarkHit {
			return false
		}
	}
	return true
}

// Marks returns the marks alone, in position order.
func (v Verdict) Marks() []Mark {
	out := make([]Mark, len(v))
	for i, t := range v {
		out[i] = t.Mark
	}
	return out
}

// ParseVerdict decodes a clue string produced by Verdict.String back into a
// Verdict for guess. Every credited letter must agree with the guess letter
// at the same position.
func ParseVerdict(guess, clue string) (Verdict, error) {
	g := canonical(guess)
	c := []rune(clue)
	if len(c) != len(g) {
		return nil, fmt.Errorf("%w: clue %q has %d symbols, guess %q has %d letters",
			ErrLengthMismatch, clue, len(c), guess, len(g))
	}
	v := make(Verdict, len(g))
	for i, r := range c {
		v[i].Letter = g[i]
		switch {
		case r == MissChar:
			v[i].Mark = MarkMiss
		case unicode.IsUpper(r) && r == g[i]:
			v[i].Mark = MarkHit
		case unicode.IsLower(r) && unicode.ToUpper(r) == g[i]:
			v[i].Mark = MarkPresent
		case !unicode.IsLetter(r) && r == g[i]:
			// Symbols have no case; the clue form can't tell hit from present.
			v[i].Mark = MarkHit
		default:
			return nil, fmt.Errorf("%w: %q at position %d does not fit guess %q", ErrInvalidClue, r, i+1, guess)
		}
	}
	return v, nil
}

// canonical upper-cases s and splits it into runes.
func canonical(s string) []rune {
	return []rune(strings.ToUpper(s))
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game session.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of letters per word (typically 5).
	Guesses  []string // List of accepted guesses so far (lowercased).
	History  History  // Guess → verdict record, reset with every new game.
	Keyboard Keyboard // Best mark seen per letter.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.

	scorer Scorer
	lex    Lexicon
}
