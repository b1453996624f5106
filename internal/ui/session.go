// internal/ui/session.go
//
// Terminal session loop for one game.
// Responsibilities:
//   - Own the terminal for the session: raw mode on Init, restored by Fini
//     on every exit path (quit, error, panic, context cancellation).
//   - Block on the next event, translate keys, apply commands, repaint.
//   - Handle Copy by pushing the result summary to the clipboard.
//
// Notes:
//   - Single-threaded; the only helper goroutine turns ctx cancellation into
//     a tcell interrupt so the loop can return normally.
//   - Progress is not persisted here; callers inspect the returned game.

package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

var (
	// ErrTerminal wraps failures to acquire the terminal.
	ErrTerminal = errors.New("terminal unavailable")
	// ErrClipboard wraps failures to write the clipboard.
	ErrClipboard = errors.New("clipboard unavailable")
)

const (
	noticeCopied    = "Result copied to clipboard."
	noticeCopyError = "Could not copy result: "
)

// Session drives one game on a terminal screen.
type Session struct {
	screen tcell.Screen
	game   *game.Game
	clip   Clipboard
	log    zerolog.Logger
	notice string // transient feedback shown on the result screen
}

// NewSession wires a game to a screen. clip may be nil, in which case
// Copy always reports ErrClipboard.
func NewSession(screen tcell.Screen, g *game.Game, clip Clipboard, logger zerolog.Logger) *Session {
	return &Session{screen: screen, game: g, clip: clip, log: logger}
}

// Play is the session entry point: it builds a game for secret and runs
// it until the player quits or ctx is cancelled. The finished game is
// returned even when err is non-nil.
func Play(ctx context.Context, screen tcell.Screen, secret string, allowed map[string]struct{},
	index int, clip Clipboard, logger zerolog.Logger) (*game.Game, error) {
	g := game.New(secret, allowed, index)
	return g, NewSession(screen, g, clip, logger).Run(ctx)
}

// Run takes over the terminal and processes events until Quit.
func (s *Session) Run(ctx context.Context) (err error) {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrTerminal, err)
	}
	defer s.screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session panic: %v", r)
		}
	}()

	s.screen.HideCursor()
	s.screen.Clear()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.screen.PostEventWait(tcell.NewEventInterrupt(ctx.Err()))
		case <-stop:
		}
	}()

	for {
		paint(s.screen, Render(s.game, s.notice))

		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// Screen finalized underneath us.
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			s.log.Info().Interface("reason", ev.Data()).Str("state", s.game.Status().String()).Msg("session interrupted")
			return nil
		case *tcell.EventKey:
			if done := s.handle(Translate(ev, s.game.Status())); done {
				return nil
			}
		}
	}
}

// handle applies one command and reports whether the session should end.
func (s *Session) handle(cmd game.Command) bool {
	switch cmd.Kind {
	case game.CmdNone:
		return false
	case game.CmdQuit:
		s.log.Debug().Str("state", s.game.Status().String()).Int("attempts", s.game.Attempts()).Msg("quit")
		return true
	case game.CmdCopy:
		s.copyResult()
		return false
	}

	s.notice = ""
	if err := s.game.Apply(cmd); err != nil {
		if errors.Is(err, game.ErrInvalidGuess) {
			s.log.Debug().Err(err).Msg("guess rejected")
		}
		return false
	}
	if cmd.Kind == game.CmdSubmit {
		s.log.Debug().Int("attempts", s.game.Attempts()).Str("state", s.game.Status().String()).Msg("guess accepted")
	}
	return false
}

func (s *Session) copyResult() {
	if !s.game.Status().Over() {
		return
	}
	var err error
	if s.clip == nil {
		err = ErrClipboard
	} else {
		err = s.clip.WriteAll(s.game.Summary())
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("copy result")
		s.notice = noticeCopyError + err.Error()
		return
	}
	s.notice = noticeCopied
}
