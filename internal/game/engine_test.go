package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allowSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var testAllowed = allowSet(
	"CRANE", "CRATE", "SLATE", "BLOOM", "DIRTY", "FUNKY", "MIGHT", "PLUSH", "SCARE",
)

func typeWord(g *Game, w string) {
	for _, c := range w {
		g.TypeChar(c)
	}
}

func play(t *testing.T, g *Game, w string) Guess {
	t.Helper()
	typeWord(g, w)
	guess, err := g.Submit()
	require.NoError(t, err, "submit %s", w)
	return guess
}

func TestTypeCharAndBackspace(t *testing.T) {
	g := New("CRANE", testAllowed, 0)

	typeWord(g, "crate")
	assert.Equal(t, "CRATE", g.Input())

	g.TypeChar('x')
	assert.Equal(t, "CRATE", g.Input(), "buffer holds at most five letters")

	g.Backspace()
	g.Backspace()
	assert.Equal(t, "CRA", g.Input())

	for i := 0; i < 5; i++ {
		g.Backspace()
	}
	assert.Equal(t, "", g.Input())
}

func TestSubmitRejectsWrongLength(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	typeWord(g, "CAT")

	_, err := g.Submit()
	require.ErrorIs(t, err, ErrInvalidGuess)
	assert.Equal(t, InvalidGuessMessage, g.Message())
	assert.Empty(t, g.Guesses())
	assert.Equal(t, 0, g.Attempts())
	assert.Equal(t, "CAT", g.Input(), "rejected input stays editable")
	assert.Equal(t, InProgress, g.Status())
}

func TestSubmitRejectsUnknownWord(t *testing.T) {
	g := New("CRANE", allowSet("CRANE", "SLATE"), 0)
	typeWord(g, "ZZZZZ")

	_, err := g.Submit()
	require.ErrorIs(t, err, ErrInvalidGuess)
	assert.Equal(t, InvalidGuessMessage, g.Message())
	assert.Empty(t, g.Guesses())
	assert.Equal(t, Unknown, g.Letter('Z'))
}

func TestSubmitClearsMessage(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	typeWord(g, "SLA")
	_, err := g.Submit()
	require.Error(t, err)
	require.NotEmpty(t, g.Message())

	typeWord(g, "TE")
	play(t, g, "")
	assert.Empty(t, g.Message())
	assert.Empty(t, g.Input())
	assert.Equal(t, 1, g.Attempts())
}

func TestSubmitLowercaseInputIsAllowed(t *testing.T) {
	g := New("crane", testAllowed, 0)
	assert.Equal(t, "CRANE", g.Secret())

	guess := play(t, g, "slate")
	assert.Equal(t, "SLATE", guess.Word())
}

func TestCrateAgainstCrane(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	guess := play(t, g, "CRATE")

	assert.Equal(t, []LetterStatus{Correct, Correct, Correct, NotInWord, Correct}, statuses(guess))
	assert.Equal(t, NotInWord, g.Letter('T'))
	assert.Equal(t, Correct, g.Letter('c'))
	assert.Equal(t, Unknown, g.Letter('N'))
	assert.Equal(t, InProgress, g.Status())
}

func TestAlphabetNeverDowngrades(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	play(t, g, "CRATE")
	require.Equal(t, Correct, g.Letter('C'))

	// C is misplaced in SCARE; the summary keeps Correct.
	guess := play(t, g, "SCARE")
	require.Equal(t, Incorrect, guess[1].Status)
	assert.Equal(t, Correct, g.Letter('C'))
	assert.Equal(t, Correct, g.Letter('R'))
	assert.Equal(t, NotInWord, g.Letter('S'))
}

func TestLoseAfterSixMisses(t *testing.T) {
	g := New("CRANE", testAllowed, 4)
	for _, w := range []string{"SLATE", "BLOOM", "DIRTY", "FUNKY", "MIGHT"} {
		play(t, g, w)
		require.Equal(t, InProgress, g.Status())
	}
	play(t, g, "PLUSH")
	assert.Equal(t, Lost, g.Status())
	assert.Equal(t, MaxAttempts, g.Attempts())

	// A seventh submit is a no-op.
	typeWord(g, "CRANE")
	assert.Empty(t, g.Input(), "typing is ignored once the game is over")
	_, err := g.Submit()
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Len(t, g.Guesses(), MaxAttempts)
	assert.Equal(t, Lost, g.Status())
}

func TestWinOnThirdAttempt(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	play(t, g, "SLATE")
	play(t, g, "BLOOM")
	play(t, g, "CRANE")

	assert.Equal(t, Won, g.Status())
	assert.Equal(t, 3, g.Attempts())

	g.Backspace()
	_, err := g.Submit()
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 3, g.Attempts())
}

func TestApply(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	for _, cmd := range []Command{
		TypeChar('c'), TypeChar('r'), TypeChar('a'), TypeChar('x'), Backspace(),
		TypeChar('n'), TypeChar('e'), Copy(), Quit(), {Kind: CmdNone},
	} {
		require.NoError(t, g.Apply(cmd))
	}
	assert.Equal(t, "CRANE", g.Input())
	require.NoError(t, g.Apply(Submit()))
	assert.Equal(t, Won, g.Status())
	assert.ErrorIs(t, g.Apply(Submit()), ErrGameOver)
}

func TestGuessesReturnsCopy(t *testing.T) {
	g := New("CRANE", testAllowed, 0)
	play(t, g, "SLATE")
	got := g.Guesses()
	got[0][0].Letter = 'Q'
	assert.Equal(t, "SLATE", g.Guesses()[0].Word())
}
