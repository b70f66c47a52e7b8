// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create new games with a fixed answer and row count.
//   - Validate and apply guesses (finished, length, word list).
//   - Score guesses, record them in the game's History and Keyboard.
//   - Track state transitions: playing → won/lost.
//   - List the lexicon words still consistent with the History.
//
// Notes:
//   - The answer's length fixes the word length of the game.
//   - The word list comes in through the Lexicon interface; the engine holds
//     no package-level state.
//   - randomID() is a compact hex identifier for correlating sessions.
package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const defaultRows = 6

var (
	ErrFinished      = errors.New("game finished")
	ErrNotInWordList = errors.New("not in word list")
)

// Lexicon is the word list a game validates guesses against and searches
// for candidates. *words.Dictionary satisfies it.
type Lexicon interface {
	Contains(word string) bool
	Words() []string
}

// New constructs a new game for answer. rows <= 0 selects the default of 6.
func New(lex Lexicon, answer string, rows int) (*Game, error) {
	ans := strings.ToLower(strings.TrimSpace(answer))
	cols := utf8.RuneCountInString(ans)
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty answer", ErrLengthMismatch)
	}
	if rows <= 0 {
		rows = defaultRows
	}
	return &Game{
		ID:      randomID(),
		Answer:  ans,
		Rows:    rows,
		Cols:    cols,
		Guesses: []string{},
		scorer:  NewScorer(cols),
		lex:     lex,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the verdict, the new state, or an error.
//
// Validation rules, in order:
//   - Game must not be finished (ErrFinished).
//   - Guess must be exactly g.Cols letters long (ErrLengthMismatch).
//   - Guess must be in the lexicon, when there is one (ErrNotInWordList).
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Verdict, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if n := utf8.RuneCountInString(guess); n != g.Cols {
		return nil, g.State(), fmt.Errorf("%w: %q has %d letters, want %d", ErrLengthMismatch, guess, n, g.Cols)
	}
	if g.lex != nil && !g.lex.Contains(guess) {
		return nil, g.State(), fmt.Errorf("%w: %q", ErrNotInWordList, guess)
	}

	v, err := g.scorer.Score(guess, g.Answer)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, guess)
	g.History.Add(guess, v)
	g.Keyboard.Record(v)

	if v.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return v, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Restart puts a new answer in place and clears everything learned so far:
// guesses, history, keyboard and the finished flags. ID, Rows and the
// lexicon are kept.
func (g *Game) Restart(answer string) error {
	ans := strings.ToLower(strings.TrimSpace(answer))
	cols := utf8.RuneCountInString(ans)
	if cols == 0 {
		return fmt.Errorf("%w: empty answer", ErrLengthMismatch)
	}
	g.Answer, g.Cols, g.scorer = ans, cols, NewScorer(cols)
	g.Guesses = []string{}
	g.History.Reset()
	g.Keyboard.Reset()
	g.Finished, g.Won = false, false
	return nil
}

// Candidates lists the lexicon words still consistent with the game's history.
func (g *Game) Candidates() []string {
	if g.lex == nil {
		return nil
	}
	return g.scorer.Filter(&g.History, g.lex.Words())
}

// CandidatesContext is Candidates spread across workers goroutines.
func (g *Game) CandidatesContext(ctx context.Context, workers int) ([]string, error) {
	if g.lex == nil {
		return nil, nil
	}
	return g.scorer.FilterContext(ctx, &g.History, g.lex.Words(), workers)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
