package game

import (
	"fmt"
	"strings"
)

// Emoji returns the share glyph for a status.
func Emoji(s LetterStatus) string {
	switch s {
	case Correct:
		return "🟩"
	case Incorrect:
		return "🟨"
	default:
		return "⬛"
	}
}

// Header is the first summary line: "Wordle <index+1> <attempts>/6".
func Header(index, attempts int) string {
	return fmt.Sprintf("Wordle %d %d/%d", index+1, attempts, MaxAttempts)
}

// Grid renders one emoji row per guess, newline separated, no trailing newline.
func Grid(guesses []Guess) string {
	rows := make([]string, 0, len(guesses))
	for _, g := range guesses {
		var b strings.Builder
		for _, s := range g {
			b.WriteString(Emoji(s.Status))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// Summary formats the shareable result block:
//
//	Wordle <index+1> <attempts>/6
//
//	<emoji row per guess>
//
// Every line, including the last row, ends with a newline.
func Summary(index int, guesses []Guess) string {
	var b strings.Builder
	b.WriteString(Header(index, len(guesses)))
	b.WriteString("\n\n")
	if grid := Grid(guesses); grid != "" {
		b.WriteString(grid)
		b.WriteString("\n")
	}
	return b.String()
}
