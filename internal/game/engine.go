// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Hold the secret, guess history, input buffer and alphabet summary.
//   - Validate and apply guesses (length, allow-list).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word lists are provided by the caller; the engine never loads files.
//   - Quit and Copy are presentation concerns and leave the engine untouched.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidGuess is returned by Submit for a wrong-length word or one
	// missing from the allow-list. The game state is left unchanged.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrGameOver is returned by Submit once the game is won or lost.
	ErrGameOver = errors.New("game finished")
)

// InvalidGuessMessage is shown to the player after a rejected submit.
const InvalidGuessMessage = "Not a valid five letter word. Try again..."

// Game holds the state of a single session.
type Game struct {
	secret  string
	allowed map[string]struct{}
	index   int

	guesses []Guess
	input   []rune
	letters [26]LetterStatus
	status  Status
	message string
}

// New constructs a game for secret. allowed must contain uppercase words
// and should already include every possible secret; index is used only to
// number the result summary.
func New(secret string, allowed map[string]struct{}, index int) *Game {
	return &Game{
		secret:  strings.ToUpper(secret),
		allowed: allowed,
		index:   index,
		guesses: make([]Guess, 0, MaxAttempts),
		input:   make([]rune, 0, WordLength),
	}
}

// Apply routes an engine command. Quit, Copy and CmdNone are accepted and
// ignored here; the session handles them.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdTypeChar:
		g.TypeChar(cmd.Char)
	case CmdBackspace:
		g.Backspace()
	case CmdSubmit:
		_, err := g.Submit()
		return err
	}
	return nil
}

// TypeChar appends c in upper case when the buffer is not full.
func (g *Game) TypeChar(c rune) {
	if g.status != InProgress || len(g.input) >= WordLength {
		return
	}
	g.input = append(g.input, unicode.ToUpper(c))
}

// Backspace removes the last buffered character, if any.
func (g *Game) Backspace() {
	if g.status != InProgress || len(g.input) == 0 {
		return
	}
	g.input = g.input[:len(g.input)-1]
}

// Submit validates the input buffer and, when accepted, scores it and
// advances the game.
//
// Validation rules:
//   - Game must not be finished (ErrGameOver).
//   - Input must be exactly WordLength characters (ErrInvalidGuess).
//   - Input must be present in the allow-list (ErrInvalidGuess).
//
// State transitions:
//   - Input equals the secret → Won.
//   - Else if the number of guesses reaches MaxAttempts → Lost.
func (g *Game) Submit() (Guess, error) {
	if g.status.Over() {
		return Guess{}, ErrGameOver
	}
	word := string(g.input)
	if len(g.input) != WordLength {
		g.message = InvalidGuessMessage
		return Guess{}, fmt.Errorf("%w: %q has %d letters", ErrInvalidGuess, word, len(g.input))
	}
	if _, ok := g.allowed[strings.ToUpper(word)]; !ok {
		g.message = InvalidGuessMessage
		return Guess{}, fmt.Errorf("%w: %q not in word list", ErrInvalidGuess, word)
	}

	g.message = ""
	guess := Evaluate(word, g.secret)
	g.guesses = append(g.guesses, guess)
	g.input = g.input[:0]
	for _, s := range guess {
		g.mergeLetter(s)
	}

	if guess.Word() == g.secret {
		g.status = Won
	} else if len(g.guesses) >= MaxAttempts {
		g.status = Lost
	}
	return guess, nil
}

// mergeLetter folds a spot into the alphabet summary.
func (g *Game) mergeLetter(s Spot) {
	i := letterIndex(s.Letter)
	if i < 0 {
		return
	}
	g.letters[i] = g.letters[i].Merge(s.Status)
}

// letterIndex maps A–Z (either case) to 0..25, anything else to -1.
func letterIndex(r rune) int {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}

// --- read-only accessors ---

func (g *Game) Secret() string  { return g.secret }
func (g *Game) Index() int      { return g.index }
func (g *Game) Status() Status  { return g.status }
func (g *Game) Message() string { return g.message }
func (g *Game) Input() string   { return string(g.input) }
func (g *Game) Attempts() int   { return len(g.guesses) }

// Guesses returns a copy of the guess history, oldest first.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// Letter returns the best-known status of r.
func (g *Game) Letter(r rune) LetterStatus {
	i := letterIndex(r)
	if i < 0 {
		return Unknown
	}
	return g.letters[i]
}

// Summary returns the shareable result text for this game.
func (g *Game) Summary() string { return Summary(g.index, g.guesses) }
