package streak

import (
	"testing"
	"time"

	"github.com/benvon/zen-planner/internal/models"
)

func day(t *testing.T, offset int) string {
	t.Helper()
	return baseDay.AddDate(0, 0, offset).Format(models.DateLayout)
}

var baseDay = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		completions func(t *testing.T) []models.HabitCompletion
		want        int
	}{
		{
			name:        "no completions",
			completions: func(t *testing.T) []models.HabitCompletion { return nil },
			want:        0,
		},
		{
			name: "today only",
			completions: func(t *testing.T) []models.HabitCompletion {
				return []models.HabitCompletion{{Date: day(t, 0), Completed: true}}
			},
			want: 1,
		},
		{
			name: "three consecutive days ending today",
			completions: func(t *testing.T) []models.HabitCompletion {
				return []models.HabitCompletion{
					{Date: day(t, -2), Completed: true},
					{Date: day(t, -1), Completed: true},
					{Date: day(t, 0), Completed: true},
				}
			},
			want: 3,
		},
		{
			name: "gap breaks the run",
			completions: func(t *testing.T) []models.HabitCompletion {
				return []models.HabitCompletion{
					{Date: day(t, -3), Completed: true},
					{Date: day(t, -1), Completed: true},
					{Date: day(t, 0), Completed: true},
				}
			},
			want: 2,
		},
		{
			name: "streak broken today",
			completions: func(t *testing.T) []models.HabitCompletion {
				return []models.HabitCompletion{
					{Date: day(t, -2), Completed: true},
					{Date: day(t, -1), Completed: true},
				}
			},
			want: 0,
		},
		{
			name: "uncompleted entry counts as a miss",
			completions: func(t *testing.T) []models.HabitCompletion {
				return []models.HabitCompletion{
					{Date: day(t, -1), Completed: true},
					{Date: day(t, 0), Completed: false},
				}
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Current(tt.completions(t), baseDay)
			if got != tt.want {
				t.Errorf("Current() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRatchet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous int
		current  int
		want     int
	}{
		{"current exceeds best", 3, 5, 5},
		{"current below best", 5, 2, 5},
		{"current drops to zero", 4, 0, 4},
		{"equal", 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ratchet(tt.previous, tt.current); got != tt.want {
				t.Errorf("Ratchet(%d, %d) = %d, want %d", tt.previous, tt.current, got, tt.want)
			}
		})
	}
}
