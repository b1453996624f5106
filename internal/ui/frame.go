// internal/ui/frame.go
//
// Pure rendering of a game into a Frame: lines of styled text segments.
// The painter (paint.go) maps attributes to terminal styles; nothing here
// touches the terminal, so frames are easy to assert on in tests.
//
// Screens:
//   - playing:  help line, rejection message, guess grid, input row, alphabet.
//   - won/lost: answer line, result summary, copy hint, optional notice.

package ui

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

// Attr is a display attribute. The painter owns the colour for each one.
type Attr uint8

const (
	AttrDefault Attr = iota
	AttrBold
	AttrDim
	AttrTitle
	AttrError
	AttrNotice
	AttrAnswer
	AttrInput
	AttrCorrect
	AttrIncorrect
	AttrNotInWord
)

// Segment is a run of text sharing one attribute.
type Segment struct {
	Text string
	Attr Attr
}

// Line is one row of the frame.
type Line []Segment

// Text returns the line without attributes.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Frame is everything drawn for one state, top to bottom.
type Frame struct {
	Lines []Line
}

// Text returns the frame as plain text, one line per row.
func (f Frame) Text() string {
	rows := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		rows[i] = l.Text()
	}
	return strings.Join(rows, "\n")
}

func plain(text string) Line { return Line{{Text: text}} }

func styled(text string, a Attr) Line { return Line{{Text: text, Attr: a}} }

// attrFor maps a letter status to its display attribute.
func attrFor(s game.LetterStatus) Attr {
	switch s {
	case game.Correct:
		return AttrCorrect
	case game.Incorrect:
		return AttrIncorrect
	case game.NotInWord:
		return AttrNotInWord
	default:
		return AttrDefault
	}
}

// alphabetBreaks are the letter counts per alphabet row (A–H, I–P, Q–Z).
var alphabetBreaks = []int{8, 8, 10}

// Render lays out g. notice is a transient line owned by the session
// (clipboard feedback) and is shown only on the result screens.
func Render(g *game.Game, notice string) Frame {
	if g.Status().Over() {
		return renderResult(g, notice)
	}
	return renderBoard(g)
}

func renderBoard(g *game.Game) Frame {
	lines := []Line{
		{
			{Text: "Press "},
			{Text: "Esc", Attr: AttrBold},
			{Text: " to quit, "},
			{Text: "Enter", Attr: AttrBold},
			{Text: " to submit a word."},
		},
		styled(g.Message(), AttrError),
		plain(""),
		styled(fmt.Sprintf("Guesses %d/%d", g.Attempts(), game.MaxAttempts), AttrTitle),
	}

	for _, guess := range g.Guesses() {
		row := make(Line, 0, 2*game.WordLength)
		for i, s := range guess {
			if i > 0 {
				row = append(row, Segment{Text: " "})
			}
			row = append(row, Segment{Text: string(s.Letter), Attr: attrFor(s.Status)})
		}
		lines = append(lines, row)
	}

	input := []rune(g.Input())
	cells := make([]string, game.WordLength)
	for i := range cells {
		cells[i] = "_"
		if i < len(input) {
			cells[i] = string(input[i])
		}
	}
	lines = append(lines, styled(strings.Join(cells, " "), AttrInput))

	lines = append(lines, plain(""), styled("Alphabet", AttrTitle))
	start := 0
	for _, n := range alphabetBreaks {
		row := make(Line, 0, 2*n)
		for i := start; i < start+n; i++ {
			if i > start {
				row = append(row, Segment{Text: " "})
			}
			r := rune('A' + i)
			row = append(row, Segment{Text: string(r), Attr: attrFor(g.Letter(r))})
		}
		lines = append(lines, row)
		start += n
	}
	return Frame{Lines: lines}
}

func renderResult(g *game.Game, notice string) Frame {
	lead := "The correct word was "
	if g.Status() == game.Won {
		lead = "Correct! The word was "
	}
	lines := []Line{
		{
			{Text: lead},
			{Text: g.Secret(), Attr: AttrAnswer},
			{Text: "."},
		},
		plain(""),
		plain(""),
	}

	summary := strings.Split(strings.TrimSuffix(g.Summary(), "\n"), "\n")
	for i, row := range summary {
		a := AttrDefault
		if i == 0 {
			a = AttrBold
		}
		lines = append(lines, styled(row, a))
	}

	lines = append(lines,
		plain(""),
		plain(""),
		styled("Press C to copy result to clipboard", AttrDim),
		styled("Press any other key to exit", AttrDim),
	)
	if notice != "" {
		lines = append(lines, plain(""), styled(notice, AttrNotice))
	}
	return Frame{Lines: lines}
}
