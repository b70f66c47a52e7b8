// internal/game/keyboard.go
//
// Keyboard: the best mark each letter has earned in a game, for coloring
// the on-screen keys.
//
// Ordering: hit > present > miss. A letter never moves down that order.

package game

import "unicode"

// Keyboard tracks the best mark each letter has received in a game.
// A letter that was a hit stays a hit; a present letter is never
// downgraded to a miss by a later guess.
type Keyboard struct {
	marks map[rune]Mark
}

// Record folds a verdict into the keyboard.
func (k *Keyboard) Record(v Verdict) {
	if k.marks == nil {
		k.marks = make(map[rune]Mark)
	}
	for _, t := range v {
		r := unicode.ToUpper(t.Letter)
		if prev, ok := k.marks[r]; !ok || t.Mark > prev {
			k.marks[r] = t.Mark
		}
	}
}

// Mark returns the best mark seen for letter, and whether it was guessed at all.
func (k *Keyboard) Mark(letter rune) (Mark, bool) {
	m, ok := k.marks[unicode.ToUpper(letter)]
	return m, ok
}

// Reset forgets every letter.
func (k *Keyboard) Reset() {
	k.marks = nil
}
