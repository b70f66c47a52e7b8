// internal/game/filter.go
//
// Candidate filtering: which dictionary words could still be the answer.
//
// A word survives when scoring every recorded guess against it reproduces the
// recorded verdict exactly. The same Scorer that produced the verdicts is used
// here, so duplicate-letter tie-breaks can never disagree.
//
// FilterContext shards the dictionary across workers. Shards are aligned to
// 64 entries so each worker owns whole words of the survivor bitset, and the
// result is collected in dictionary order afterwards.

package game

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// Filter keeps the dictionary words consistent with h, using the default Scorer.
func Filter(h *History, dictionary []string) []string {
	return defaultScorer.Filter(h, dictionary)
}

// Filter returns, in dictionary order, every word consistent with every
// entry of h. An empty history returns a copy of the whole dictionary.
// Neither argument is modified.
func (s Scorer) Filter(h *History, dictionary []string) []string {
	entries := h.Entries()
	if len(entries) == 0 {
		return append([]string(nil), dictionary...)
	}
	out := make([]string, 0, len(dictionary))
	for _, w := range dictionary {
		if s.consistent(entries, w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterContext is Filter spread over workers goroutines. The result is
// identical to Filter's. workers <= 1 runs Filter directly.
func (s Scorer) FilterContext(ctx context.Context, h *History, dictionary []string, workers int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := h.Entries()
	if workers <= 1 || len(entries) == 0 || len(dictionary) == 0 {
		return s.Filter(h, dictionary), nil
	}

	n := len(dictionary)
	shard := (n + workers - 1) / workers
	shard = (shard + 63) &^ 63

	alive := bitset.New(uint(n))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += shard {
		lo, hi := lo, min(lo+shard, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i&63 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if s.consistent(entries, dictionary[i]) {
					alive.Set(uint(i))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, alive.Count())
	for i, ok := alive.NextSet(0); ok; i, ok = alive.NextSet(i + 1) {
		out = append(out, dictionary[i])
	}
	return out, nil
}

// consistent reports whether word would have produced every recorded verdict.
// A word of the wrong length can't have, and is rejected.
func (s Scorer) consistent(entries []Entry, word string) bool {
	for _, e := range entries {
		v, err := s.Score(e.Guess, word)
		if err != nil || !v.Equal(e.Verdict) {
			return false
		}
	}
	return true
}
