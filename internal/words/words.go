// internal/words/words.go
//
// Provides word list management for the hint engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to embedded defaults.
//   - Keep a case-insensitive lookup set (answers ∪ allowed) for guess validation.
//   - Keep the ordered word list that candidate filtering searches.
//
// Word Lists:
//   - "answers": words a secret may be drawn from.
//   - "allowed": extra valid guesses (the dictionary always includes the answers).
//
// Loading behavior (Load):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the embedded lists in the assets package.
//
// Constraints:
//   • Words must be exactly Length letters a–z; other lines are dropped.
//   • Lists are normalized to lowercase and deduplicated, keeping first occurrence.
//   • A Dictionary is never mutated after construction.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-hints/assets"
)

// DefaultLength is the word length used when a Source leaves it unset.
const DefaultLength = 5

var ErrEmpty = errors.New("words: answers list is empty")

// Source says where word lists come from.
type Source struct {
	Length      int    // letters per word; <= 0 means DefaultLength
	AnswersFile string // optional path, one word per line
	AllowedFile string // optional path, one word per line
}

// Dictionary is an immutable word list of a single length.
type Dictionary struct {
	length  int
	answers []string
	words   []string            // answers, then extra allowed words
	set     map[string]struct{} // lookup for words
}

// Load reads the word lists described by src.
func Load(src Source) (*Dictionary, error) {
	n := src.Length
	if n <= 0 {
		n = DefaultLength
	}

	var ansList, allowList []string
	var from string
	switch {
	// Case 1: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		var err error
		if ansList, err = readWordFile(src.AnswersFile, n); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile, n); err != nil {
			return nil, err
		}
		from = "files"

	// Case 2: only allowed file provided → use for both
	case src.AllowedFile != "":
		var err error
		if allowList, err = readWordFile(src.AllowedFile, n); err != nil {
			return nil, err
		}
		ansList = allowList
		from = "allowed-file"

	// Case 3: fallback to embedded defaults
	default:
		var err error
		if ansList, err = readEmbedded(assets.Answers, n); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed, n); err != nil {
			return nil, err
		}
		from = "embedded"
	}

	d, err := New(n, ansList, allowList)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", from).
		Int("length", n).
		Int("answers", len(d.answers)).
		Int("words", len(d.words)).
		Msg("word lists loaded")
	return d, nil
}

// New builds a Dictionary of words of exactly length letters.
// Entries of another length or with characters outside a–z are dropped.
// Every answer is also a valid guess.
func New(length int, answers, allowed []string) (*Dictionary, error) {
	if length <= 0 {
		length = DefaultLength
	}
	d := &Dictionary{length: length, set: make(map[string]struct{}, len(answers)+len(allowed))}
	answerSet := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		if w, ok := normalize(w, length); ok {
			if _, dup := answerSet[w]; !dup {
				answerSet[w] = struct{}{}
				d.answers = append(d.answers, w)
			}
		}
	}
	if len(d.answers) == 0 {
		return nil, ErrEmpty
	}
	for _, list := range [][]string{d.answers, allowed} {
		for _, w := range list {
			if w, ok := normalize(w, length); ok {
				if _, dup := d.set[w]; !dup {
					d.set[w] = struct{}{}
					d.words = append(d.words, w)
				}
			}
		}
	}
	return d, nil
}

// ReadWords loads one word per line from r. It lowercases and trims each line,
// skips blanks and '#' comments, and keeps only words of exactly length a–z
// letters, in file order.
func ReadWords(r io.Reader, length int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, ok := normalize(line, length); ok {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return out, nil
}

// readWordFile is ReadWords over a file path.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f, length)
}

// readEmbedded is ReadWords over one of the embedded lists.
func readEmbedded(open func() (io.ReadCloser, error), length int) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f, length)
}

// normalize lowercases w and reports whether it is length letters a–z.
func normalize(w string, length int) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if utf8.RuneCountInString(w) != length || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Length reports the letters per word.
func (d *Dictionary) Length() int { return d.length }

// Len reports the number of valid words (answers ∪ allowed).
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is a valid guess, ignoring case.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w may be drawn as a secret.
func (d *Dictionary) IsAnswer(w string) bool {
	w = strings.ToLower(w)
	for _, a := range d.answers {
		if a == w {
			return true
		}
	}
	return false
}

// Words returns every valid word, answers first, in load order.
// The slice is shared; callers must not modify it.
func (d *Dictionary) Words() []string { return d.words }

// Answers returns the answer list in load order.
// The slice is shared; callers must not modify it.
func (d *Dictionary) Answers() []string { return d.answers }
