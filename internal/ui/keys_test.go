package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

func TestTranslate(t *testing.T) {
	key := func(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
	char := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		status game.Status
		want   game.Command
	}{
		{"letter types", char('a'), game.InProgress, game.TypeChar('a')},
		{"c types while playing", char('c'), game.InProgress, game.TypeChar('c')},
		{"enter submits", key(tcell.KeyEnter), game.InProgress, game.Submit()},
		{"backspace deletes", key(tcell.KeyBackspace), game.InProgress, game.Backspace()},
		{"delete char deletes", key(tcell.KeyBackspace2), game.InProgress, game.Backspace()},
		{"escape quits", key(tcell.KeyEscape), game.InProgress, game.Quit()},
		{"ctrl-c quits", key(tcell.KeyCtrlC), game.InProgress, game.Quit()},
		{"arrow ignored", key(tcell.KeyLeft), game.InProgress, game.Command{}},
		{"copy on win", char('c'), game.Won, game.Copy()},
		{"copy on loss upper case", char('C'), game.Lost, game.Copy()},
		{"other key exits result", char('x'), game.Won, game.Quit()},
		{"enter exits result", key(tcell.KeyEnter), game.Lost, game.Quit()},
		{"escape exits result", key(tcell.KeyEscape), game.Won, game.Quit()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.ev, tt.status))
		})
	}
}
