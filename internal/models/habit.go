package models

import (
	"time"

	"github.com/google/uuid"
)

// Frequency represents how often a habit recurs
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// HabitCompletion records whether a habit was completed on a given
// calendar date. At most one entry exists per date.
type HabitCompletion struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Habit represents a recurring habit with its completion history.
// Streak and BestStreak are derived: Streak is the current run of
// consecutive completed days ending today, BestStreak ratchets up and
// never decreases over the habit's lifetime.
type Habit struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Frequency   Frequency         `json:"frequency"`
	Color       string            `json:"color"`
	Completions []HabitCompletion `json:"completions"`
	Streak      int               `json:"streak"`
	BestStreak  int               `json:"bestStreak"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// HabitInput is the creation payload for a habit. Completions and both
// streak fields start empty.
type HabitInput struct {
	Title       string    `json:"title" validate:"required,min=1"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency" validate:"frequency"`
	Color       string    `json:"color"`
}

// HabitUpdate carries the updatable fields of a habit. Completion history
// changes only through the toggle operation.
type HabitUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Frequency   *Frequency `json:"frequency,omitempty"`
	Color       *string    `json:"color,omitempty"`
}
