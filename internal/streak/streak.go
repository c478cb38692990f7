// Package streak derives consecutive-completion streaks from a habit's
// completion history.
package streak

import (
	"time"

	"github.com/benvon/zen-planner/internal/models"
)

// Current returns the habit's current streak: the number of consecutive
// days ending at today (inclusive) that have a completed entry. The walk
// starts at today and stops at the first missing or uncompleted day, so
// a habit not completed today has a streak of zero.
func Current(completions []models.HabitCompletion, today time.Time) int {
	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.Completed {
			completed[c.Date] = true
		}
	}

	count := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if !completed[day.Format(models.DateLayout)] {
			break
		}
		count++
	}
	return count
}

// Ratchet returns the new best streak given the previous best and the
// current streak. Best streaks only ever grow: toggling today's
// completion off drops the current streak to zero but leaves the best
// untouched.
func Ratchet(previousBest, current int) int {
	if current > previousBest {
		return current
	}
	return previousBest
}
