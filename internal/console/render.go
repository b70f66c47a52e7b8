// internal/console/render.go
//
// Text rendering for tile rows and the keyboard summary.
//
// Output:
//   - With color, letters are painted green/yellow/gray via go-color.
//   - Without color, rows are plain letters and the keyboard is grouped by
//     mark.

package console

import (
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/go-hints/internal/game"
)

// markColor maps marks to the three display colors.
var markColor = map[game.Mark]string{
	game.MarkHit:     color.Green,
	game.MarkPresent: color.Yellow,
	game.MarkMiss:    color.Gray,
}

// renderRow shows the guessed letters, colored when useColor is set,
// followed by the clue string.
func renderRow(word string, v game.Verdict, useColor bool) string {
	var b strings.Builder
	letters := []rune(word)
	for i, t := range v {
		r := t.Letter
		if i < len(letters) {
			r = letters[i]
		}
		if useColor {
			b.WriteString(color.Bold + markColor[t.Mark] + string(r) + color.Reset)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString("  ")
	b.WriteString(v.String())
	return b.String()
}

// renderKeyboard summarizes the letters guessed so far. With color it prints
// the alphabet with each guessed letter in its best color; without, it
// groups letters by mark.
func renderKeyboard(k *game.Keyboard, useColor bool) string {
	var hit, present, miss strings.Builder
	var all strings.Builder
	for r := 'A'; r <= 'Z'; r++ {
		m, ok := k.Mark(r)
		if useColor {
			if ok {
				all.WriteString(markColor[m] + string(r) + color.Reset)
			} else {
				all.WriteRune(r)
			}
			continue
		}
		if !ok {
			continue
		}
		switch m {
		case game.MarkHit:
			hit.WriteRune(r)
		case game.MarkPresent:
			present.WriteRune(r)
		default:
			miss.WriteRune(r)
		}
	}
	if useColor {
		return "Keys: " + all.String()
	}
	return "Keys: hit=" + hit.String() + " present=" + present.String() + " miss=" + miss.String()
}
