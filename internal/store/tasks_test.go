package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

func TestAddTaskDefaults(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "write report", Priority: models.PriorityHigh})

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	task := tasks[0]
	if task.ID == uuid.Nil {
		t.Error("task should get a fresh id")
	}
	if task.Category != models.DefaultCategoryOther {
		t.Errorf("Category = %q, want fallback %q", task.Category, models.DefaultCategoryOther)
	}
	if task.Subtasks == nil {
		t.Error("Subtasks should be an empty slice, not nil")
	}
	if !task.CreatedAt.Equal(testNow) || !task.UpdatedAt.Equal(testNow) {
		t.Error("timestamps should come from the store clock")
	}
	if task.Order != 0 {
		t.Errorf("Order = %d, want 0", task.Order)
	}

	s.AddTask(models.TaskInput{Title: "second", Priority: models.PriorityLow, Category: "work"})
	tasks = s.Tasks()
	if tasks[1].Order != 1 {
		t.Errorf("second task Order = %d, want 1", tasks[1].Order)
	}
	if tasks[1].Category != "work" {
		t.Errorf("explicit category = %q, want work", tasks[1].Category)
	}
}

func TestUpdateTaskMergesPointerFields(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "original", Description: "desc", Priority: models.PriorityLow})
	id := s.Tasks()[0].ID

	title := "renamed"
	prio := models.PriorityHigh
	s.UpdateTask(id, models.TaskUpdate{Title: &title, Priority: &prio})

	task := s.Tasks()[0]
	if task.Title != "renamed" {
		t.Errorf("Title = %q, want renamed", task.Title)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want high", task.Priority)
	}
	if task.Description != "desc" {
		t.Errorf("Description = %q, untouched fields must survive", task.Description)
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "only", Priority: models.PriorityLow})

	title := "ghost"
	s.UpdateTask(uuid.New(), models.TaskUpdate{Title: &title})
	if s.Tasks()[0].Title != "only" {
		t.Error("update with unknown id must not change anything")
	}
}

func TestToggleTask(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "flip me", Priority: models.PriorityLow})
	id := s.Tasks()[0].ID

	s.ToggleTask(id)
	if !s.Tasks()[0].Completed {
		t.Error("first toggle should complete the task")
	}
	s.ToggleTask(id)
	if s.Tasks()[0].Completed {
		t.Error("second toggle should uncomplete the task")
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "a", Priority: models.PriorityLow})
	s.AddTask(models.TaskInput{Title: "b", Priority: models.PriorityLow})
	id := s.Tasks()[0].ID

	s.DeleteTask(id)
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "b" {
		t.Errorf("tasks after delete = %+v, want just b", tasks)
	}

	s.DeleteTask(uuid.New())
	if len(s.Tasks()) != 1 {
		t.Error("deleting an unknown id must be a no-op")
	}
}

func TestReorderTasks(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.AddTask(models.TaskInput{Title: "a", Priority: models.PriorityLow})
	s.AddTask(models.TaskInput{Title: "b", Priority: models.PriorityLow})
	s.AddTask(models.TaskInput{Title: "c", Priority: models.PriorityLow})

	tasks := s.Tasks()
	reordered := []models.Task{tasks[2], tasks[0], tasks[1]}
	for i := range reordered {
		reordered[i].Order = i
	}
	s.ReorderTasks(reordered)

	got := s.Tasks()
	if got[0].Title != "c" || got[1].Title != "a" || got[2].Title != "b" {
		t.Errorf("order after reorder = %q %q %q", got[0].Title, got[1].Title, got[2].Title)
	}
	for i, task := range got {
		if task.Order != i {
			t.Errorf("task %q Order = %d, want %d", task.Title, task.Order, i)
		}
	}
}
