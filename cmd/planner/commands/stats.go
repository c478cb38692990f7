package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/stats"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			taskStats := stats.ComputeTaskStats(st.Tasks(), time.Now())
			goalStats := stats.ComputeGoalStats(st.Goals())
			habitStats := stats.ComputeHabitStats(st.Habits())

			bold := color.New(color.Bold, color.Underline)

			_, _ = bold.Println("Tasks")
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("Total", fmt.Sprintf("%d", taskStats.Total))
			tbl.AddRow("Completed", fmt.Sprintf("%d", taskStats.Completed))
			tbl.AddRow("Pending", fmt.Sprintf("%d", taskStats.Pending))
			tbl.AddRow("Overdue", overdueLabel(taskStats.Overdue))
			tbl.AddRow("Completion rate", fmt.Sprintf("%d%%", taskStats.CompletionRate))
			tbl.AddRow("Productivity score", scoreLabel(taskStats.ProductivityScore))
			fmt.Fprintln(color.Output, tbl)
			fmt.Println()

			_, _ = bold.Println("Pending by priority")
			ptbl := uitable.New()
			ptbl.Separator = "  "
			for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
				ptbl.AddRow(priorityLabel(p), fmt.Sprintf("%d", taskStats.ByPriority[p]))
			}
			fmt.Fprintln(color.Output, ptbl)
			fmt.Println()

			_, _ = bold.Println("Last 7 days")
			ttbl := uitable.New()
			ttbl.Separator = "  "
			for _, point := range taskStats.WeeklyTrend {
				ttbl.AddRow(point.Date, fmt.Sprintf("%d/%d", point.Completed, point.Total))
			}
			fmt.Fprintln(color.Output, ttbl)
			fmt.Println()

			_, _ = bold.Println("Goals and habits")
			gtbl := uitable.New()
			gtbl.Separator = "  "
			gtbl.AddRow("Goals", fmt.Sprintf("%d", goalStats.Total))
			gtbl.AddRow("Avg goal progress", fmt.Sprintf("%d%%", goalStats.AvgProgress))
			gtbl.AddRow("Habits", fmt.Sprintf("%d", habitStats.Total))
			gtbl.AddRow("Active streaks", fmt.Sprintf("%d", habitStats.ActiveStreaks))
			gtbl.AddRow("Avg streak", fmt.Sprintf("%d days", habitStats.AvgStreak))
			fmt.Fprintln(color.Output, gtbl)

			return nil
		},
	}
}

func overdueLabel(overdue int) string {
	if overdue > 0 {
		return color.RedString("%d", overdue)
	}
	return "0"
}

func scoreLabel(score int) string {
	switch {
	case score >= 70:
		return color.GreenString("%d", score)
	case score >= 40:
		return color.YellowString("%d", score)
	default:
		return color.RedString("%d", score)
	}
}
