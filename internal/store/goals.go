package store

import (
	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/stats"
)

// AddGoal creates a goal from the input. Progress is derived from the
// supplied milestones (zero when there are none), never taken from the
// caller.
func (s *Store) AddGoal(input models.GoalInput) {
	s.mutate(func() {
		milestones := input.Milestones
		if milestones == nil {
			milestones = []models.Milestone{}
		}
		s.goals = append(s.goals, models.Goal{
			ID:          s.newID(),
			Title:       input.Title,
			Description: input.Description,
			Color:       input.Color,
			Milestones:  milestones,
			Progress:    stats.GoalProgress(milestones, 0),
			CreatedAt:   s.now(),
			TargetDate:  input.TargetDate,
		})
	})
}

// UpdateGoal merges the update into the matching goal. Replacing the
// milestone list recomputes progress. Unknown ids are a silent no-op.
func (s *Store) UpdateGoal(id uuid.UUID, update models.GoalUpdate) {
	s.mutate(func() {
		for i := range s.goals {
			if s.goals[i].ID != id {
				continue
			}
			g := &s.goals[i]
			if update.Title != nil {
				g.Title = *update.Title
			}
			if update.Description != nil {
				g.Description = *update.Description
			}
			if update.Color != nil {
				g.Color = *update.Color
			}
			if update.TargetDate != nil {
				g.TargetDate = *update.TargetDate
			}
			if update.Milestones != nil {
				g.Milestones = update.Milestones
				g.Progress = stats.GoalProgress(g.Milestones, g.Progress)
			}
			return
		}
	})
}

// DeleteGoal removes the matching goal and clears the soft GoalID
// reference on any tasks that pointed at it, so no dangling references
// survive the delete.
func (s *Store) DeleteGoal(id uuid.UUID) {
	s.mutate(func() {
		for i := range s.goals {
			if s.goals[i].ID != id {
				continue
			}
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			for j := range s.tasks {
				if s.tasks[j].GoalID != nil && *s.tasks[j].GoalID == id {
					s.tasks[j].GoalID = nil
				}
			}
			return
		}
	})
}

// ToggleMilestone flips the milestone's completed flag and recomputes
// the parent goal's progress. A no-op if either id is unmatched.
func (s *Store) ToggleMilestone(goalID, milestoneID uuid.UUID) {
	s.mutate(func() {
		for i := range s.goals {
			if s.goals[i].ID != goalID {
				continue
			}
			g := &s.goals[i]
			for j := range g.Milestones {
				if g.Milestones[j].ID == milestoneID {
					g.Milestones[j].Completed = !g.Milestones[j].Completed
					g.Progress = stats.GoalProgress(g.Milestones, g.Progress)
					return
				}
			}
			return
		}
	})
}
