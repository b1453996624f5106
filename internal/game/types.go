// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/incorrect/not in word).
//   - Spot, Guess: one evaluated board row.
//   - Status: lifecycle of a single game (in progress → won/lost).
//   - Command: player intents produced by the presentation layer.

package game

const (
	// WordLength is the number of letters in every secret word and guess.
	WordLength = 5
	// MaxAttempts is the number of guesses a player gets.
	MaxAttempts = 6
)

// LetterStatus represents the evaluation result for a single letter.
// Values are ordered by display precedence so the best-known status of a
// letter is simply the maximum seen so far.
//   - Unknown:   letter not guessed yet (alphabet summary only).
//   - NotInWord: letter does not exist in the secret.
//   - Incorrect: letter exists in the secret at another position.
//   - Correct:   letter is in the correct position.
type LetterStatus uint8

const (
	Unknown LetterStatus = iota
	NotInWord
	Incorrect
	Correct
)

func (s LetterStatus) String() string {
	switch s {
	case NotInWord:
		return "not_in_word"
	case Incorrect:
		return "incorrect"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Merge returns the better of two statuses. It never downgrades.
func (s LetterStatus) Merge(other LetterStatus) LetterStatus {
	if other > s {
		return other
	}
	return s
}

// Spot is a letter paired with its status at one board position.
type Spot struct {
	Letter rune
	Status LetterStatus
}

// Guess is one evaluated row of the board.
type Guess [WordLength]Spot

// Word returns the letters of the guess as a string.
func (g Guess) Word() string {
	b := make([]rune, 0, WordLength)
	for _, s := range g {
		b = append(b, s.Letter)
	}
	return string(b)
}

// Status is the coarse state of a game.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Over reports whether the game reached a terminal state.
func (s Status) Over() bool { return s == Won || s == Lost }

// CommandKind enumerates the player intents the engine understands.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdTypeChar
	CmdBackspace
	CmdSubmit
	CmdQuit
	CmdCopy
)

// Command is a translated key event. Char is set only for CmdTypeChar.
type Command struct {
	Kind CommandKind
	Char rune
}

// TypeChar, Backspace, Submit, Quit and Copy build the matching Command.
func TypeChar(c rune) Command { return Command{Kind: CmdTypeChar, Char: c} }
func Backspace() Command      { return Command{Kind: CmdBackspace} }
func Submit() Command         { return Command{Kind: CmdSubmit} }
func Quit() Command           { return Command{Kind: CmdQuit} }
func Copy() Command           { return Command{Kind: CmdCopy} }
