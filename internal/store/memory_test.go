package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-hints/internal/game"
)

func newGame(t *testing.T, answer string, guesses ...string) *game.Game {
	t.Helper()
	g, err := game.New(nil, answer, 3)
	require.NoError(t, err)
	for _, w := range guesses {
		_, _, err := g.ApplyGuess(w)
		require.NoError(t, err)
	}
	return g
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	a := newGame(t, "crane")
	b := newGame(t, "stack")
	require.NoError(t, st.Save(ctx, a))
	require.NoError(t, st.Save(ctx, b))
	require.NoError(t, st.Save(ctx, a))
	assert.Error(t, st.Save(ctx, nil))

	got, err := st.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*game.Game{a, b}, list)
}

func TestTally(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	games := []*game.Game{
		newGame(t, "crane", "crane"),                   // won in 1
		newGame(t, "stack", "crane", "stack"),          // won in 2
		newGame(t, "truck", "crane", "stack", "class"), // lost
		newGame(t, "class", "crane", "class"),          // won in 2
		newGame(t, "fluff", "offer"),                   // still playing
	}
	for _, g := range games {
		require.NoError(t, st.Save(ctx, g))
	}

	s, err := Tally(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Played)
	assert.Equal(t, 3, s.Wins)
	assert.Equal(t, 1, s.Streak)
	assert.Equal(t, 2, s.BestStreak)
	assert.Equal(t, map[int]int{1: 1, 2: 2}, s.Guesses)
	assert.InDelta(t, 75.0, s.WinRate(), 0.001)

	empty, err := Tally(ctx, NewMemoryStore())
	require.NoError(t, err)
	assert.Zero(t, empty.WinRate())
}
