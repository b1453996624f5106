// internal/store/store.go
//
// Persistence contract for everything that outlives a single game:
//   - Progress: which secret word index to play next, plus word list overrides.
//   - Results: one row per finished game, used for stats and sharing.
//
// Implementations:
//   - SQLite (sqlite.go): durable, used by the CLI.
//   - memory (memory.go): ephemeral, used by tests.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a result id does not exist.
var ErrNotFound = errors.New("not found")

// Progress is the state carried between sessions.
type Progress struct {
	Index       int    `json:"index"`       // next secret word index
	WordsPath   string `json:"wordsPath"`   // override for the secret list ("" = embedded)
	AllowedPath string `json:"allowedPath"` // override for the guess list ("" = embedded)
}

// Result describes one finished game.
type Result struct {
	ID        int64     `json:"id"`
	Index     int       `json:"index"`     // secret word index
	Word      string    `json:"word"`      // secret word
	Attempts  int       `json:"attempts"`  // guesses used
	Won       bool      `json:"won"`       // false means lost
	Daily     bool      `json:"daily"`     // played in daily mode
	Date      string    `json:"date"`      // YYYY-MM-DD for daily games
	Grid      string    `json:"grid"`      // emoji rows, newline separated
	ElapsedMs int64     `json:"elapsedMs"` // session wall time
	PlayedAt  time.Time `json:"playedAt"`
}

// Store defines the persistence interface.
type Store interface {
	// LoadProgress returns the saved progress (zero value if none yet).
	LoadProgress(ctx context.Context) (Progress, error)
	// SaveProgress replaces the saved progress.
	SaveProgress(ctx context.Context, p Progress) error

	// RecordResult inserts r and sets r.ID.
	RecordResult(ctx context.Context, r *Result) error
	// Results returns finished games, newest first. limit <= 0 means all.
	Results(ctx context.Context, limit int) ([]Result, error)
	// Result returns a single game by id or ErrNotFound.
	Result(ctx context.Context, id int64) (Result, error)
	// PlayedDaily reports whether the daily game for date was recorded.
	PlayedDaily(ctx context.Context, date string) (bool, error)

	Close() error
}
