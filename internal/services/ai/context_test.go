package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/models"
)

func TestNewEntityContext(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tasks := []models.Task{{
		ID:          uuid.New(),
		Title:       "ship release",
		Description: "secret notes that must not be forwarded",
		Priority:    models.PriorityHigh,
		DueDate:     "2025-06-20",
		Category:    "work",
		CreatedAt:   created,
	}}
	goals := []models.Goal{{ID: uuid.New(), Title: "learn go", Progress: 60}}
	habits := []models.Habit{{ID: uuid.New(), Title: "run", Streak: 5, BestStreak: 9}}

	ec := NewEntityContext(tasks, goals, habits)

	if len(ec.Tasks) != 1 || len(ec.Goals) != 1 || len(ec.Habits) != 1 {
		t.Fatalf("context sizes = %d/%d/%d", len(ec.Tasks), len(ec.Goals), len(ec.Habits))
	}
	tc := ec.Tasks[0]
	if tc.Title != "ship release" || tc.Priority != models.PriorityHigh || tc.DueDate != "2025-06-20" {
		t.Errorf("task context = %+v", tc)
	}
	if tc.CreatedAt != created.Format(time.RFC3339) {
		t.Errorf("CreatedAt = %q, want RFC3339", tc.CreatedAt)
	}
	if ec.Goals[0].Progress != 60 || ec.Habits[0].Streak != 5 {
		t.Error("goal/habit fields not projected")
	}
}

func TestToTasks(t *testing.T) {
	t.Parallel()

	ec := EntityContext{Tasks: []TaskContext{
		{Title: "rfc3339", Completed: true, Priority: models.PriorityLow, CreatedAt: "2025-06-01T10:00:00Z"},
		{Title: "date only", CreatedAt: "2025-06-02"},
		{Title: "garbage timestamp", CreatedAt: "not a date"},
		{Title: "client-minted id", ID: "local-123"},
	}}

	tasks := ec.ToTasks()
	if len(tasks) != 4 {
		t.Fatalf("len(tasks) = %d, want 4", len(tasks))
	}
	if tasks[0].CreatedAt.IsZero() || !tasks[0].Completed {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
	if tasks[1].CreatedAt.Format(models.DateLayout) != "2025-06-02" {
		t.Errorf("date-only CreatedAt = %v", tasks[1].CreatedAt)
	}
	if !tasks[2].CreatedAt.IsZero() {
		t.Error("unparseable timestamps should stay zero")
	}
}

func TestBuildContextSummary(t *testing.T) {
	t.Parallel()

	ec := EntityContext{
		Tasks: []TaskContext{
			{Title: "done thing", Completed: true, Priority: models.PriorityLow},
			{Title: "open thing", Priority: models.PriorityHigh},
		},
		Goals:  []GoalContext{{Title: "big goal", Progress: 40}},
		Habits: []HabitContext{{Title: "daily walk", Streak: 7}},
	}

	summary := BuildContextSummary(ec)

	for _, want := range []string{
		"Tasks (2):",
		"- ✓ done thing (low)",
		"- ○ open thing (high)",
		"- big goal (40%)",
		"- daily walk (7 day streak)",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q\n%s", want, summary)
		}
	}
}

func TestBuildContextSummaryOmitsEmptySections(t *testing.T) {
	t.Parallel()

	if got := BuildContextSummary(EntityContext{}); got != "" {
		t.Errorf("empty context summary = %q, want empty", got)
	}

	ec := EntityContext{Goals: []GoalContext{{Title: "only goal", Progress: 10}}}
	summary := BuildContextSummary(ec)
	if strings.Contains(summary, "Tasks") || strings.Contains(summary, "Habits") {
		t.Errorf("summary should omit empty sections:\n%s", summary)
	}
}

func TestChatSystemPrompt(t *testing.T) {
	t.Parallel()

	base := ChatSystemPrompt("")
	if !strings.Contains(base, "AI productivity advisor for Zen Planner") {
		t.Errorf("base prompt = %q", base)
	}
	if strings.Contains(base, "User context:") {
		t.Error("empty context should not add the context block")
	}

	withCtx := ChatSystemPrompt("\nTasks (1):\n- ○ t (low)\n")
	if !strings.Contains(withCtx, "User context:") {
		t.Error("context block missing")
	}
}
