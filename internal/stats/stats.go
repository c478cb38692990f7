// Package stats derives read-side analytics from the store's collections:
// goal progress, task statistics, and the aggregate numbers fed into the
// productivity analysis prompt.
package stats

import (
	"math"
	"time"

	"github.com/benvon/zen-planner/internal/models"
)

// GoalProgress computes a goal's completion percentage from its
// milestones: round(100 * completed / total). With no milestones the
// prior value is retained, so callers pass the goal's current progress.
func GoalProgress(milestones []models.Milestone, prior int) int {
	if len(milestones) == 0 {
		return prior
	}
	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(milestones))))
}

// TrendPoint is one day of the weekly trend, keyed by calendar date.
type TrendPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// TaskStats is the derived statistics record for a task collection.
type TaskStats struct {
	Total             int                     `json:"totalTasks"`
	Completed         int                     `json:"completedTasks"`
	Pending           int                     `json:"pendingTasks"`
	Overdue           int                     `json:"overdueTasks"`
	CompletionRate    int                     `json:"completionRate"`
	ProductivityScore int                     `json:"productivityScore"`
	ByPriority        map[models.Priority]int `json:"tasksByPriority"`
	ByCategory        map[string]int          `json:"tasksByCategory"`
	WeeklyTrend       []TrendPoint            `json:"weeklyTrend"`
}

// ComputeTaskStats derives the statistics record from a task collection.
// Overdue uses a date-only comparison: a task is overdue when it is not
// completed and its due date is strictly before now's calendar date, so
// tasks due today are never overdue. The productivity score is the
// completion rate minus five points per overdue task, clamped to [0,100].
func ComputeTaskStats(tasks []models.Task, now time.Time) TaskStats {
	s := TaskStats{
		Total: len(tasks),
		ByPriority: map[models.Priority]int{
			models.PriorityHigh:   0,
			models.PriorityMedium: 0,
			models.PriorityLow:    0,
		},
		ByCategory: make(map[string]int),
	}

	today := now.Format(models.DateLayout)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			if t.DueDate != "" && t.DueDate < today {
				s.Overdue++
			}
			s.ByPriority[t.Priority]++
		}
		s.ByCategory[t.Category]++
	}
	s.Pending = s.Total - s.Completed

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	s.ProductivityScore = clamp(s.CompletionRate-5*s.Overdue, 0, 100)

	s.WeeklyTrend = weeklyTrend(tasks, now)
	return s
}

// weeklyTrend buckets tasks into the 7 calendar days ending at now
// (inclusive, oldest first). A task belongs to the day of its due date,
// or of its creation date when it has none.
func weeklyTrend(tasks []models.Task, now time.Time) []TrendPoint {
	trend := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(models.DateLayout)
		point := TrendPoint{Date: date}
		for _, t := range tasks {
			day := t.DueDate
			if day == "" {
				day = t.CreatedAt.Format(models.DateLayout)
			}
			if day != date {
				continue
			}
			point.Total++
			if t.Completed {
				point.Completed++
			}
		}
		trend = append(trend, point)
	}
	return trend
}

// GoalStats holds the goal aggregates reported by the analysis endpoint.
type GoalStats struct {
	Total       int `json:"totalGoals"`
	AvgProgress int `json:"avgGoalProgress"`
}

// ComputeGoalStats derives goal aggregates from a goal collection.
func ComputeGoalStats(goals []models.Goal) GoalStats {
	s := GoalStats{Total: len(goals)}
	if len(goals) == 0 {
		return s
	}
	sum := 0
	for _, g := range goals {
		sum += g.Progress
	}
	s.AvgProgress = int(math.Round(float64(sum) / float64(len(goals))))
	return s
}

// HabitStats holds the habit aggregates reported by the analysis endpoint.
type HabitStats struct {
	Total         int `json:"totalHabits"`
	AvgStreak     int `json:"avgStreak"`
	ActiveStreaks int `json:"activeStreaks"`
}

// ComputeHabitStats derives habit aggregates from a habit collection.
func ComputeHabitStats(habits []models.Habit) HabitStats {
	s := HabitStats{Total: len(habits)}
	if len(habits) == 0 {
		return s
	}
	sum := 0
	for _, h := range habits {
		sum += h.Streak
		if h.Streak > 0 {
			s.ActiveStreaks++
		}
	}
	s.AvgStreak = int(math.Round(float64(sum) / float64(len(habits))))
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
