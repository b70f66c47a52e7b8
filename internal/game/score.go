// internal/game/score.go
//
// Scorer: the two-pass consume-then-scan scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit and consume both positions.
//
// Pass 2:
//   - For each unconsumed guess position, in order, credit the lowest
//     unconsumed answer position holding the same letter as Present.
//
// The scan order decides which of several repeated guess letters is credited
// when the answer has fewer copies, so it is part of the observable output.

package game

import "fmt"

// DefaultLength is the word length used when none is configured.
const DefaultLength = 5

// Scorer scores guesses of a fixed word length.
type Scorer struct {
	length int
}

var defaultScorer = NewScorer(DefaultLength)

// NewScorer returns a Scorer for words of the given length.
// A non-positive length selects DefaultLength.
func NewScorer(length int) Scorer {
	if length <= 0 {
		length = DefaultLength
	}
	return Scorer{length: length}
}

// Length reports the word length this Scorer accepts.
func (s Scorer) Length() int {
	if s.length <= 0 {
		return DefaultLength
	}
	return s.length
}

// Score compares guess against secret with the default word length.
func Score(guess, secret string) (Verdict, error) {
	return defaultScorer.Score(guess, secret)
}

// Score compares guess against secret, ignoring case.
// Both must be exactly s.Length() runes long; otherwise the returned error
// wraps ErrLengthMismatch.
func (s Scorer) Score(guess, secret string) (Verdict, error) {
	n := s.Length()
	g, w := canonical(guess), canonical(secret)
	if len(g) != n {
		return nil, fmt.Errorf("%w: guess %q has %d letters, want %d", ErrLengthMismatch, guess, len(g), n)
	}
	if len(w) != n {
		return nil, fmt.Errorf("%w: secret has %d letters, want %d", ErrLengthMismatch, len(w), n)
	}
	return score(g, w), nil
}

// score does the work on canonical, equal-length input.
func score(guess, secret []rune) Verdict {
	n := len(guess)
	res := make(Verdict, n)
	secretUsed := make([]bool, n)
	guessUsed := make([]bool, n)

	for i := 0; i < n; i++ {
		res[i] = Tile{Letter: guess[i], Mark: MarkMiss}
		if guess[i] == secret[i] {
			res[i].Mark = MarkHit
			secretUsed[i] = true
			guessUsed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !secretUsed[j] && secret[j] == guess[i] {
				res[i].Mark = MarkPresent
				secretUsed[j] = true
				break
			}
		}
	}
	return res
}
