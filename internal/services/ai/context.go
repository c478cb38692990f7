package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/benvon/zen-planner/internal/models"
)

// TaskContext, GoalContext and HabitContext are the entity fields the
// gateway is willing to forward upstream: titles, flags, priorities,
// progress and streaks, never full entity dumps. Ids arrive as opaque
// strings because the client may have minted them before this backend
// existed.
type TaskContext struct {
	ID        string          `json:"id,omitempty"`
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	Priority  models.Priority `json:"priority,omitempty"`
	DueDate   string          `json:"dueDate,omitempty"`
	Category  string          `json:"category,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// GoalContext carries the goal fields used for summaries and analysis.
type GoalContext struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

// HabitContext carries the habit fields used for summaries and analysis.
type HabitContext struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Streak     int    `json:"streak"`
	BestStreak int    `json:"bestStreak,omitempty"`
}

// EntityContext is the user-data snapshot attached to advisor requests.
type EntityContext struct {
	Tasks  []TaskContext  `json:"tasks"`
	Goals  []GoalContext  `json:"goals"`
	Habits []HabitContext `json:"habits"`
}

// NewEntityContext projects store entities into the bounded context
// shape, dropping everything the gateway must not forward.
func NewEntityContext(tasks []models.Task, goals []models.Goal, habits []models.Habit) EntityContext {
	ec := EntityContext{
		Tasks:  make([]TaskContext, 0, len(tasks)),
		Goals:  make([]GoalContext, 0, len(goals)),
		Habits: make([]HabitContext, 0, len(habits)),
	}
	for _, t := range tasks {
		ec.Tasks = append(ec.Tasks, TaskContext{
			ID:        t.ID.String(),
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  t.Priority,
			DueDate:   t.DueDate,
			Category:  t.Category,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, g := range goals {
		ec.Goals = append(ec.Goals, GoalContext{ID: g.ID.String(), Title: g.Title, Progress: g.Progress})
	}
	for _, h := range habits {
		ec.Habits = append(ec.Habits, HabitContext{ID: h.ID.String(), Title: h.Title, Streak: h.Streak, BestStreak: h.BestStreak})
	}
	return ec
}

// Tasks converts the task context entries into model tasks so the stats
// aggregator can run on them. Unparseable timestamps are left zero.
func (ec EntityContext) ToTasks() []models.Task {
	tasks := make([]models.Task, 0, len(ec.Tasks))
	for _, t := range ec.Tasks {
		task := models.Task{
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  t.Priority,
			DueDate:   t.DueDate,
			Category:  t.Category,
		}
		if t.CreatedAt != "" {
			if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
				task.CreatedAt = ts
			} else if d, err := time.Parse(models.DateLayout, t.CreatedAt); err == nil {
				task.CreatedAt = d
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// ToGoals converts the goal context entries into model goals.
func (ec EntityContext) ToGoals() []models.Goal {
	goals := make([]models.Goal, 0, len(ec.Goals))
	for _, g := range ec.Goals {
		goals = append(goals, models.Goal{Title: g.Title, Progress: g.Progress})
	}
	return goals
}

// ToHabits converts the habit context entries into model habits.
func (ec EntityContext) ToHabits() []models.Habit {
	habits := make([]models.Habit, 0, len(ec.Habits))
	for _, h := range ec.Habits {
		habits = append(habits, models.Habit{Title: h.Title, Streak: h.Streak, BestStreak: h.BestStreak})
	}
	return habits
}

// BuildContextSummary renders the bounded textual summary of the user's
// entities that accompanies chat requests. Empty sections are omitted.
func BuildContextSummary(ec EntityContext) string {
	var b strings.Builder

	if len(ec.Tasks) > 0 {
		fmt.Fprintf(&b, "\nTasks (%d):\n", len(ec.Tasks))
		for _, t := range ec.Tasks {
			mark := "○"
			if t.Completed {
				mark = "✓"
			}
			fmt.Fprintf(&b, "- %s %s (%s)\n", mark, t.Title, t.Priority)
		}
	}
	if len(ec.Goals) > 0 {
		b.WriteString("\nGoals:\n")
		for _, g := range ec.Goals {
			fmt.Fprintf(&b, "- %s (%d%%)\n", g.Title, g.Progress)
		}
	}
	if len(ec.Habits) > 0 {
		b.WriteString("\nHabits:\n")
		for _, h := range ec.Habits {
			fmt.Fprintf(&b, "- %s (%d day streak)\n", h.Title, h.Streak)
		}
	}

	return b.String()
}

// ChatSystemPrompt builds the advisor system prompt, appending the
// context summary when there is one.
func ChatSystemPrompt(contextSummary string) string {
	prompt := "You are a helpful AI productivity advisor for Zen Planner. Be concise and helpful."
	if contextSummary != "" {
		prompt += "\n\nUser context:" + contextSummary
	}
	return prompt
}
