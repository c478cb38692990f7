package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used throughout the persisted
// state (due dates, habit completion keys, calendar events).
const DateLayout = "2006-01-02"

// Priority represents the urgency of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Subtask is a checklist item nested under a task
type Subtask struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

// Task represents a single task item. Dates are calendar dates in
// DateLayout form; CreatedAt/UpdatedAt are full timestamps.
type Task struct {
	ID                    uuid.UUID  `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description,omitempty"`
	Completed             bool       `json:"completed"`
	Priority              Priority   `json:"priority"`
	DueDate               string     `json:"dueDate,omitempty"`
	DueTime               string     `json:"dueTime,omitempty"`
	ReminderMinutesBefore int        `json:"reminderMinutesBefore,omitempty"`
	Category              string     `json:"category"`
	GoalID                *uuid.UUID `json:"goalId,omitempty"`
	Subtasks              []Subtask  `json:"subtasks"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	Order                 int        `json:"order"`
}

// TaskInput is the creation payload for a task. Engine-assigned fields
// (id, timestamps, order) are deliberately absent.
type TaskInput struct {
	Title                 string     `json:"title" validate:"required,min=1"`
	Description           string     `json:"description,omitempty"`
	Completed             bool       `json:"completed"`
	Priority              Priority   `json:"priority" validate:"priority"`
	DueDate               string     `json:"dueDate,omitempty"`
	DueTime               string     `json:"dueTime,omitempty"`
	ReminderMinutesBefore int        `json:"reminderMinutesBefore,omitempty" validate:"gte=0"`
	Category              string     `json:"category"`
	GoalID                *uuid.UUID `json:"goalId,omitempty"`
	Subtasks              []Subtask  `json:"subtasks,omitempty"`
}

// TaskUpdate carries the updatable fields of a task. Nil pointers mean
// "leave unchanged".
type TaskUpdate struct {
	Title                 *string    `json:"title,omitempty"`
	Description           *string    `json:"description,omitempty"`
	Completed             *bool      `json:"completed,omitempty"`
	Priority              *Priority  `json:"priority,omitempty"`
	DueDate               *string    `json:"dueDate,omitempty"`
	DueTime               *string    `json:"dueTime,omitempty"`
	ReminderMinutesBefore *int       `json:"reminderMinutesBefore,omitempty"`
	Category              *string    `json:"category,omitempty"`
	GoalID                *uuid.UUID `json:"goalId,omitempty"`
	Subtasks              []Subtask  `json:"subtasks,omitempty"`
}
