package store

import (
	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

// AddTask creates a task from the input: fresh id, createdAt = updatedAt
// = now, order = current task count. Empty categories fall back to the
// default "other" category.
func (s *Store) AddTask(input models.TaskInput) {
	s.mutate(func() {
		now := s.now()
		category := input.Category
		if category == "" {
			category = models.DefaultCategoryOther
		}
		subtasks := input.Subtasks
		if subtasks == nil {
			subtasks = []models.Subtask{}
		}
		s.tasks = append(s.tasks, models.Task{
			ID:                    s.newID(),
			Title:                 input.Title,
			Description:           input.Description,
			Completed:             input.Completed,
			Priority:              input.Priority,
			DueDate:               input.DueDate,
			DueTime:               input.DueTime,
			ReminderMinutesBefore: input.ReminderMinutesBefore,
			Category:              category,
			GoalID:                input.GoalID,
			Subtasks:              subtasks,
			CreatedAt:             now,
			UpdatedAt:             now,
			Order:                 len(s.tasks),
		})
	})
}

// UpdateTask merges the update into the matching task and refreshes
// updatedAt. Unknown ids are a silent no-op.
func (s *Store) UpdateTask(id uuid.UUID, update models.TaskUpdate) {
	s.mutate(func() {
		for i := range s.tasks {
			if s.tasks[i].ID != id {
				continue
			}
			t := &s.tasks[i]
			if update.Title != nil {
				t.Title = *update.Title
			}
			if update.Description != nil {
				t.Description = *update.Description
			}
			if update.Completed != nil {
				t.Completed = *update.Completed
			}
			if update.Priority != nil {
				t.Priority = *update.Priority
			}
			if update.DueDate != nil {
				t.DueDate = *update.DueDate
			}
			if update.DueTime != nil {
				t.DueTime = *update.DueTime
			}
			if update.ReminderMinutesBefore != nil {
				t.ReminderMinutesBefore = *update.ReminderMinutesBefore
			}
			if update.Category != nil {
				t.Category = *update.Category
			}
			if update.GoalID != nil {
				t.GoalID = update.GoalID
			}
			if update.Subtasks != nil {
				t.Subtasks = update.Subtasks
			}
			t.UpdatedAt = s.now()
			return
		}
	})
}

// DeleteTask removes the matching task. Unknown ids are a silent no-op.
// Reminders referencing the task are kept; they carry their own
// denormalized title and are dismissed independently.
func (s *Store) DeleteTask(id uuid.UUID) {
	s.mutate(func() {
		for i := range s.tasks {
			if s.tasks[i].ID == id {
				s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
				return
			}
		}
	})
}

// ToggleTask flips the task's completed flag and refreshes updatedAt.
func (s *Store) ToggleTask(id uuid.UUID) {
	s.mutate(func() {
		for i := range s.tasks {
			if s.tasks[i].ID == id {
				s.tasks[i].Completed = !s.tasks[i].Completed
				s.tasks[i].UpdatedAt = s.now()
				return
			}
		}
	})
}

// ReorderTasks replaces the entire task collection with the given list.
// The caller is responsible for renumbering Order.
func (s *Store) ReorderTasks(tasks []models.Task) {
	s.mutate(func() {
		s.tasks = append([]models.Task(nil), tasks...)
	})
}
