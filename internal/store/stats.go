package store

import (
	"sort"

	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
)

// Stats aggregates finished games.
type Stats struct {
	Played        int                   `json:"played"`
	Wins          int                   `json:"wins"`
	WinPercent    int                   `json:"winPercent"`
	CurrentStreak int                   `json:"currentStreak"`
	MaxStreak     int                   `json:"maxStreak"`
	Distribution  [game.MaxAttempts]int `json:"distribution"` // wins by attempts, index 0 = 1 guess
}

// Summarize computes Stats from results in any order.
func Summarize(results []Result) Stats {
	ordered := make([]Result, len(results))
	copy(ordered, results)
	// oldest first
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PlayedAt.Equal(ordered[j].PlayedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].PlayedAt.Before(ordered[j].PlayedAt)
	})

	var st Stats
	run := 0
	for _, r := range ordered {
		st.Played++
		if !r.Won {
			run = 0
			continue
		}
		st.Wins++
		run++
		if run > st.MaxStreak {
			st.MaxStreak = run
		}
		if r.Attempts >= 1 && r.Attempts <= game.MaxAttempts {
			st.Distribution[r.Attempts-1]++
		}
	}
	st.CurrentStreak = run
	if st.Played > 0 {
		st.WinPercent = st.Wins * 100 / st.Played
	}
	return st
}

// Share rebuilds the clipboard summary for a recorded game.
func (r Result) Share() string {
	s := game.Header(r.Index, r.Attempts) + "\n\n"
	if r.Grid != "" {
		s += r.Grid + "\n"
	}
	return s
}
