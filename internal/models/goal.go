package models

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is a step toward a goal
type Milestone struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Completed  bool      `json:"completed"`
	TargetDate string    `json:"targetDate,omitempty"`
}

// Goal represents a long-term goal. Progress is derived from milestone
// completion and is never set directly by callers.
type Goal struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Color       string      `json:"color"`
	Milestones  []Milestone `json:"milestones"`
	Progress    int         `json:"progress"`
	CreatedAt   time.Time   `json:"createdAt"`
	TargetDate  string      `json:"targetDate,omitempty"`
}

// GoalInput is the creation payload for a goal. Progress starts at zero.
type GoalInput struct {
	Title       string      `json:"title" validate:"required,min=1"`
	Description string      `json:"description,omitempty"`
	Color       string      `json:"color"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	TargetDate  string      `json:"targetDate,omitempty"`
}

// GoalUpdate carries the updatable fields of a goal. Progress is absent
// on purpose: it is recomputed whenever milestones change.
type GoalUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Color       *string     `json:"color,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	TargetDate  *string     `json:"targetDate,omitempty"`
}
