// internal/words/select.go
//
// Secret selection strategies.
//
// Selectors:
//   - RandomSelector: uniform draw using crypto/rand.
//   - PluralSkipSelector: uniform draw that usually rejects words ending in a
//     plural suffix and draws again.
//   - FixedSelector: always the same word (tests, ANSWER override).
//
// Every selector returns ErrNoWords for an empty answer list.

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
	"strings"
)

var ErrNoWords = errors.New("words: nothing to choose from")

// Selector picks the secret for a new game from the answer list.
type Selector func(answers []string) (string, error)

// RandomSelector draws uniformly using crypto/rand.
func RandomSelector() Selector {
	return func(answers []string) (string, error) {
		if len(answers) == 0 {
			return "", ErrNoWords
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
		if err != nil {
			return "", err
		}
		return answers[n.Int64()], nil
	}
}

// maxRedraws bounds PluralSkipSelector on lists made mostly of plurals.
const maxRedraws = 64

// PluralSkipSelector draws uniformly from rnd, but a word ending in suffix is
// kept only with probability keep; otherwise it draws again. After maxRedraws
// rejections it accepts whatever comes next. A nil rnd uses the global source.
func PluralSkipSelector(rnd *mrand.Rand, suffix string, keep float64) Selector {
	intN := mrand.IntN
	float := mrand.Float64
	if rnd != nil {
		intN, float = rnd.IntN, rnd.Float64
	}
	suffix = strings.ToLower(suffix)
	return func(answers []string) (string, error) {
		if len(answers) == 0 {
			return "", ErrNoWords
		}
		for i := 0; i < maxRedraws; i++ {
			w := answers[intN(len(answers))]
			if suffix == "" || !strings.HasSuffix(w, suffix) || float() < keep {
				return w, nil
			}
		}
		return answers[intN(len(answers))], nil
	}
}

// FixedSelector always returns word.
func FixedSelector(word string) Selector {
	return func([]string) (string, error) {
		if word == "" {
			return "", ErrNoWords
		}
		return strings.ToLower(word), nil
	}
}
