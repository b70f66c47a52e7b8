package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordList []string

func (l wordList) Contains(w string) bool {
	for _, x := range l {
		if strings.EqualFold(x, w) {
			return true
		}
	}
	return false
}

func (l wordList) Words() []string { return l }

var testLexicon = wordList{"class", "glass", "brass", "crass", "grass", "sassy", "crane", "stack", "taste"}

func TestNewGame(t *testing.T) {
	g, err := New(testLexicon, " CLASS ", 0)
	require.NoError(t, err)
	assert.Equal(t, "class", g.Answer)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 6, g.Rows)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, StatePlaying, g.State())

	_, err = New(testLexicon, "", 6)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestApplyGuessWin(t *testing.T) {
	g, err := New(testLexicon, "class", 6)
	require.NoError(t, err)

	v, state, err := g.ApplyGuess("SASSY")
	require.NoError(t, err)
	assert.Equal(t, "sa*S*", v.String())
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, []string{"sassy"}, g.Guesses)
	assert.Equal(t, 1, g.History.Len())

	assert.Equal(t, []string{"class", "glass", "brass", "crass", "grass"}, g.Candidates())

	v, state, err = g.ApplyGuess("class")
	require.NoError(t, err)
	assert.True(t, v.Solved())
	assert.Equal(t, StateWon, state)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)

	_, state, err = g.ApplyGuess("glass")
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, StateWon, state)
}

func TestApplyGuessLoss(t *testing.T) {
	g, err := New(testLexicon, "class", 2)
	require.NoError(t, err)

	_, state, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)

	_, state, err = g.ApplyGuess("stack")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuessValidation(t *testing.T) {
	g, err := New(testLexicon, "class", 6)
	require.NoError(t, err)

	_, _, err = g.ApplyGuess("cat")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, _, err = g.ApplyGuess("zzzzz")
	assert.ErrorIs(t, err, ErrNotInWordList)

	assert.Empty(t, g.Guesses, "rejected guesses must not use a row")
	assert.Zero(t, g.History.Len())
}

func TestApplyGuessWithoutLexicon(t *testing.T) {
	g, err := New(nil, "class", 6)
	require.NoError(t, err)

	v, _, err := g.ApplyGuess("zzzzs")
	require.NoError(t, err)
	assert.Equal(t, "****S", v.String())
	assert.Nil(t, g.Candidates())
}

func TestGameCandidatesContext(t *testing.T) {
	g, err := New(testLexicon, "stack", 6)
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("taste")
	require.NoError(t, err)

	got, err := g.CandidatesContext(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, g.Candidates(), got)
	assert.Contains(t, got, "stack")
}

func TestRestart(t *testing.T) {
	g, err := New(testLexicon, "class", 2)
	require.NoError(t, err)
	id := g.ID

	_, _, err = g.ApplyGuess("sassy")
	require.NoError(t, err)
	_, state, err := g.ApplyGuess("crane")
	require.NoError(t, err)
	require.Equal(t, StateLost, state)

	require.NoError(t, g.Restart(" Stack "))
	assert.Equal(t, id, g.ID)
	assert.Equal(t, "stack", g.Answer)
	assert.Equal(t, StatePlaying, g.State())
	assert.Empty(t, g.Guesses)
	assert.Zero(t, g.History.Len())
	_, ok := g.Keyboard.Mark('s')
	assert.False(t, ok)
	assert.Len(t, g.Candidates(), len(testLexicon))

	_, state, err = g.ApplyGuess("stack")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)

	assert.ErrorIs(t, g.Restart("  "), ErrLengthMismatch)
}
