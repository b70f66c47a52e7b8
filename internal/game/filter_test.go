package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOf(t *testing.T, secret string, guesses ...string) *History {
	t.Helper()
	var h History
	for _, g := range guesses {
		v, err := Score(g, secret)
		require.NoError(t, err)
		h.Add(g, v)
	}
	return &h
}

// synthDictionary returns every 5-letter word over alphabet, in a fixed order.
func synthDictionary(alphabet string) []string {
	var out []string
	var rec func(prefix []byte)
	rec = func(prefix []byte) {
		if len(prefix) == DefaultLength {
			out = append(out, string(prefix))
			return
		}
		for i := 0; i < len(alphabet); i++ {
			rec(append(prefix, alphabet[i]))
		}
	}
	rec(make([]byte, 0, DefaultLength))
	return out
}

func TestFilterAllMissesExcludesGuess(t *testing.T) {
	v, err := ParseVerdict("CRANE", "*****")
	require.NoError(t, err)
	var h History
	h.Add("CRANE", v)

	got := Filter(&h, []string{"MOIST", "CRANE", "BUILT"})
	assert.Equal(t, []string{"MOIST", "BUILT"}, got)

	// STACK and TRUCK share letters with CRANE, so an all-miss clue rules
	// them out as well.
	got = Filter(&h, []string{"STACK", "CRANE", "TRUCK"})
	assert.Empty(t, got)
}

func TestFilterEmptyHistory(t *testing.T) {
	dict := []string{"truck", "crane", "stack", "ab", "toolong"}

	for name, h := range map[string]*History{"nil": nil, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			got := Filter(h, dict)
			assert.Equal(t, dict, got)

			got[0] = "xxxxx"
			assert.Equal(t, "truck", dict[0], "result must not alias the dictionary")
		})
	}
}

func TestFilterKeepsDictionaryOrder(t *testing.T) {
	h := historyOf(t, "class", "sassy")
	dict := []string{"glass", "class", "brass", "crass", "grass"}

	got := Filter(h, dict)
	assert.Equal(t, []string{"glass", "class", "brass", "crass", "grass"}, got)

	h = historyOf(t, "class", "sassy", "crane")
	got = Filter(h, dict)
	assert.Equal(t, []string{"class"}, got)
}

func TestFilterRejectsWrongLength(t *testing.T) {
	h := historyOf(t, "crane", "crane")
	got := Filter(h, []string{"cranes", "cran", "crane"})
	assert.Equal(t, []string{"crane"}, got)
}

func TestFilterSoundAndMonotone(t *testing.T) {
	dict := synthDictionary("abcse")
	secrets := []string{"sasse", "cases", "eases", "ceces", "bacce"}
	guesses := []string{"sebac", "aaabb", "ssccs", "cease", "basse"}

	for _, secret := range secrets {
		t.Run(secret, func(t *testing.T) {
			var h History
			prev := Filter(&h, dict)
			for _, g := range guesses {
				v, err := Score(g, secret)
				require.NoError(t, err)
				h.Add(g, v)

				got := Filter(&h, dict)
				assert.Contains(t, got, secret)
				assert.Subset(t, prev, got, "adding %s grew the candidate set", g)
				for _, w := range got {
					for _, e := range h.Entries() {
						rv, err := Score(e.Guess, w)
						require.NoError(t, err)
						assert.True(t, rv.Equal(e.Verdict), "%s does not reproduce %s for %s", w, e.Verdict, e.Guess)
					}
				}
				prev = got
			}
		})
	}
}

func TestFilterDoesNotMutateHistory(t *testing.T) {
	h := historyOf(t, "stack", "taste", "crane")
	before := h.Entries()
	_ = Filter(h, []string{"stack", "track", "snack"})
	assert.Equal(t, before, h.Entries())
}

func TestFilterContextMatchesFilter(t *testing.T) {
	dict := synthDictionary("abcse")
	h := historyOf(t, "cabes", "sebac", "aaabb")
	want := Filter(h, dict)
	require.NotEmpty(t, want)

	for _, workers := range []int{0, 1, 2, 3, 7, 16, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := defaultScorer.FilterContext(context.Background(), h, dict, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFilterContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := historyOf(t, "cabes", "sebac")
	got, err := defaultScorer.FilterContext(ctx, h, synthDictionary("abcse"), 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
