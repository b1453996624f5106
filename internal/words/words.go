// internal/words/words.go
//
// Provides word list management for the game.
//
// Responsibilities:
//   - Load the secret word list and the allowed guess list from override
//     files, or fall back to the embedded defaults in assets.
//   - Build the uppercase allow-list (words ∪ guesses) used by the engine.
//   - Hand out secret words by session index.
//
// Word Lists:
//   - "words":   secret words, played in file order (exactly 5 letters).
//   - "allowed": valid guesses; every secret word is always allowed too.
//
// File formats:
//   - A JSON array of strings, e.g. ["cigar", "rebut"].
//   - Plain text, one word per line; blank lines and "#" comments skipped.
//
// Constraints:
//   • Words must be 5 alphabetic letters (A–Z); others are dropped.
//   • Lists are normalized to uppercase. Answers keep duplicates and order;
//     only invalid entries are dropped, which shifts later indexes.
package words

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/wrdl/assets"
	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

// ErrExhausted is returned by Answer when the index is past the end of the list.
var ErrExhausted = errors.New("all available words have been used")

// Lists holds the loaded secret words and allow-list.
type Lists struct {
	answers []string            // secret words, in play order
	allowed map[string]struct{} // answers ∪ guesses
}

// Load reads the word lists. An empty path selects the embedded default
// for that list. Returns an error if the secret word list ends up empty.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var (
		ans, guesses []string
		err          error
	)

	if answersPath != "" {
		ans, err = readWordFile(answersPath)
	} else {
		ans, err = assets.WordsList()
	}
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	if allowedPath != "" {
		guesses, err = readWordFile(allowedPath)
	} else {
		guesses, err = assets.AllowedList()
	}
	if err != nil {
		return nil, fmt.Errorf("load allowed guesses: %w", err)
	}

	return New(ans, guesses)
}

// New normalizes raw word slices into Lists.
func New(answers, guesses []string) (*Lists, error) {
	l := &Lists{answers: normalize(answers)}
	if len(l.answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	// Ensure all answers are also marked as allowed
	l.allowed = make(map[string]struct{}, len(l.answers)+len(guesses))
	for _, w := range l.answers {
		l.allowed[w] = struct{}{}
	}
	for _, w := range normalize(guesses) {
		l.allowed[w] = struct{}{}
	}
	return l, nil
}

// Answer returns the secret word at index i.
func (l *Lists) Answer(i int) (string, error) {
	if i < 0 || i >= len(l.answers) {
		return "", ErrExhausted
	}
	return l.answers[i], nil
}

// Answers returns the secret words in play order.
func (l *Lists) Answers() []string { return l.answers }

// Allowed returns the uppercase allow-list. Callers must not modify it.
func (l *Lists) Allowed() map[string]struct{} { return l.allowed }

// Stats reports the list sizes; allowed includes the answers.
func (l *Lists) Stats() (answers, allowed int) {
	return len(l.answers), len(l.allowed)
}

// readWordFile loads a JSON array or a one-word-per-line file.
func readWordFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var out []string
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return out, nil
	}

	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize uppercases and keeps only valid words in order. Duplicates
// stay, so a repeated secret keeps its own index.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) != game.WordLength || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
