// Package calendar projects tasks and goals into a flat, date-indexed
// event list for calendar rendering.
package calendar

import (
	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

// EventType distinguishes task events from goal events
type EventType string

const (
	EventTypeTask EventType = "task"
	EventTypeGoal EventType = "goal"
)

// Event is a single calendar entry projected from a task or a goal.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Time      string          `json:"time,omitempty"`
	Type      EventType       `json:"type"`
	Completed bool            `json:"completed"`
	Priority  models.Priority `json:"priority,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Events emits one event per task with a due date, then one per goal
// with a target date. A goal counts as completed once its progress
// reaches 100. No deduplication or sorting beyond that stable emission
// order; callers index by date as needed.
func Events(tasks []models.Task, goals []models.Goal) []Event {
	events := make([]Event, 0, len(tasks)+len(goals))

	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		events = append(events, Event{
			ID:        t.ID,
			Title:     t.Title,
			Date:      t.DueDate,
			Time:      t.DueTime,
			Type:      EventTypeTask,
			Completed: t.Completed,
			Priority:  t.Priority,
		})
	}

	for _, g := range goals {
		if g.TargetDate == "" {
			continue
		}
		events = append(events, Event{
			ID:        g.ID,
			Title:     g.Title,
			Date:      g.TargetDate,
			Type:      EventTypeGoal,
			Completed: g.Progress >= 100,
			Color:     g.Color,
		})
	}

	return events
}

// TasksForDate returns the tasks due on the given calendar date.
func TasksForDate(tasks []models.Task, date string) []models.Task {
	matched := make([]models.Task, 0)
	for _, t := range tasks {
		if t.DueDate == date {
			matched = append(matched, t)
		}
	}
	return matched
}
