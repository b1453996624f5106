package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	l, err := Load("", "")
	require.NoError(t, err)

	first, err := l.Answer(0)
	require.NoError(t, err)
	assert.Equal(t, "CIGAR", first)

	a, g := l.Stats()
	assert.Greater(t, a, 50)
	assert.Greater(t, g, a)

	for _, w := range l.Answers() {
		assert.Contains(t, l.Allowed(), w, "secret %s must be a valid guess", w)
	}
	assert.Contains(t, l.Allowed(), "ABOUT")
}

func TestLoadJSONOverride(t *testing.T) {
	answers := writeFile(t, "words.json", `["slate", "Crane", "toolong", "ab1de", "crane"]`)
	allowed := writeFile(t, "allowed.json", `["zesty"]`)

	l, err := Load(answers, allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"SLATE", "CRANE", "CRANE"}, l.Answers())
	assert.Contains(t, l.Allowed(), "ZESTY")
	assert.Contains(t, l.Allowed(), "SLATE")
	assert.NotContains(t, l.Allowed(), "ABOUT", "override replaces the default allow-list")

	a, g := l.Stats()
	assert.Equal(t, 3, a)
	assert.Equal(t, 3, g, "allow-list is a set")

	_, err = l.Answer(3)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestLoadLineOverride(t *testing.T) {
	answers := writeFile(t, "words.txt", "# comment\nplumb\n\n  fjord \n")

	l, err := Load(answers, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"PLUMB", "FJORD"}, l.Answers())
	assert.Contains(t, l.Allowed(), "ABOUT", "default allow-list still applies")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `["oops"`)
	_, err = Load(bad, "")
	assert.Error(t, err)

	empty := writeFile(t, "empty.txt", "# nothing here\n")
	_, err = Load(empty, "")
	assert.Error(t, err)
}

func TestAnswerBounds(t *testing.T) {
	l, err := New([]string{"crane"}, nil)
	require.NoError(t, err)

	_, err = l.Answer(-1)
	assert.ErrorIs(t, err, ErrExhausted)
	w, err := l.Answer(0)
	require.NoError(t, err)
	assert.Equal(t, "CRANE", w)
}

func TestDuplicateAnswersKeepTheirIndex(t *testing.T) {
	l, err := New([]string{"cigar", "cigar", "rebut", "x", "sissy"}, nil)
	require.NoError(t, err)

	for i, want := range []string{"CIGAR", "CIGAR", "REBUT", "SISSY"} {
		got, err := l.Answer(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
	_, err = l.Answer(4)
	assert.ErrorIs(t, err, ErrExhausted)
}
