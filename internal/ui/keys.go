package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

// Translate maps a key event to a game command for the current status.
//
//   - Esc / Ctrl-C quit in any state.
//   - On the result screen "c" copies the summary; any other key exits.
//   - While playing: Enter submits, Backspace deletes, printable runes type.
func Translate(ev *tcell.EventKey, status game.Status) game.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit()
	}

	if status.Over() {
		if ev.Key() == tcell.KeyRune && unicode.ToUpper(ev.Rune()) == 'C' {
			return game.Copy()
		}
		return game.Quit()
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return game.Submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Backspace()
	case tcell.KeyRune:
		if unicode.IsPrint(ev.Rune()) {
			return game.TypeChar(ev.Rune())
		}
	}
	return game.Command{}
}
