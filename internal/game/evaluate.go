package game

import "strings"

// Evaluate scores guess against secret, position by position:
//   - same letter at the same position → Correct
//   - letter found anywhere in secret  → Incorrect
//   - otherwise                        → NotInWord
//
// The containment check is not frequency aware: a repeated guess letter
// that occurs once in the secret is Incorrect at every misplaced position.
// Both inputs must be WordLength uppercase ASCII letters.
func Evaluate(guess, secret string) Guess {
	var out Guess
	for i := 0; i < WordLength; i++ {
		c := guess[i]
		switch {
		case c == secret[i]:
			out[i] = Spot{Letter: rune(c), Status: Correct}
		case strings.IndexByte(secret, c) >= 0:
			out[i] = Spot{Letter: rune(c), Status: Incorrect}
		default:
			out[i] = Spot{Letter: rune(c), Status: NotInWord}
		}
	}
	return out
}
