package store

import (
	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/streak"
)

// AddHabit creates a habit from the input with an empty completion
// history and zero streaks.
func (s *Store) AddHabit(input models.HabitInput) {
	s.mutate(func() {
		s.habits = append(s.habits, models.Habit{
			ID:          s.newID(),
			Title:       input.Title,
			Description: input.Description,
			Frequency:   input.Frequency,
			Color:       input.Color,
			Completions: []models.HabitCompletion{},
			CreatedAt:   s.now(),
		})
	})
}

// UpdateHabit merges the update into the matching habit. Unknown ids
// are a silent no-op.
func (s *Store) UpdateHabit(id uuid.UUID, update models.HabitUpdate) {
	s.mutate(func() {
		for i := range s.habits {
			if s.habits[i].ID != id {
				continue
			}
			h := &s.habits[i]
			if update.Title != nil {
				h.Title = *update.Title
			}
			if update.Description != nil {
				h.Description = *update.Description
			}
			if update.Frequency != nil {
				h.Frequency = *update.Frequency
			}
			if update.Color != nil {
				h.Color = *update.Color
			}
			return
		}
	})
}

// DeleteHabit removes the matching habit. Unknown ids are a silent no-op.
func (s *Store) DeleteHabit(id uuid.UUID) {
	s.mutate(func() {
		for i := range s.habits {
			if s.habits[i].ID == id {
				s.habits = append(s.habits[:i], s.habits[i+1:]...)
				return
			}
		}
	})
}

// ToggleHabitCompletion flips the completion entry for the given date,
// inserting a completed entry if none exists, then recomputes the
// habit's streak and ratchets its best streak. The best streak is a
// lifetime high-water mark of observed streaks, not a function of the
// final completion set (see DESIGN.md).
func (s *Store) ToggleHabitCompletion(id uuid.UUID, date string) {
	s.mutate(func() {
		for i := range s.habits {
			if s.habits[i].ID != id {
				continue
			}
			h := &s.habits[i]

			found := false
			for j := range h.Completions {
				if h.Completions[j].Date == date {
					h.Completions[j].Completed = !h.Completions[j].Completed
					found = true
					break
				}
			}
			if !found {
				h.Completions = append(h.Completions, models.HabitCompletion{
					Date:      date,
					Completed: true,
				})
			}

			h.Streak = streak.Current(h.Completions, s.now())
			h.BestStreak = streak.Ratchet(h.BestStreak, h.Streak)
			return
		}
	})
}
