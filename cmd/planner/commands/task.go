package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/validation"
)

// NewTaskCmd creates the task command group
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskRmCmd())

	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		dueDate     string
		dueTime     string
		category    string
		remind      int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidatePriority(priority); err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			input := models.TaskInput{
				Title:                 validation.SanitizeText(strings.Join(args, " ")),
				Description:           validation.SanitizeText(description),
				Priority:              models.Priority(priority),
				DueDate:               dueDate,
				DueTime:               dueTime,
				ReminderMinutesBefore: remind,
				Category:              category,
			}
			if err := validation.Validate.Struct(input); err != nil {
				return fmt.Errorf("invalid task: %w", err)
			}

			st.AddTask(input)
			fmt.Println("Task added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "priority (low, medium, high)")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueTime, "time", "", "due time (HH:MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	cmd.Flags().IntVar(&remind, "remind", 0, "reminder lead time in minutes")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			tasks := st.Tasks()
			if len(tasks) == 0 {
				fmt.Println("No tasks yet")
				return nil
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			bold := color.New(color.Bold)
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint(" "), bold.Sprint("TITLE"), bold.Sprint("PRIORITY"), bold.Sprint("DUE"), bold.Sprint("CATEGORY"))
			shown := 0
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				shown++
				tbl.AddRow(shortID(t.ID), taskMark(t.Completed), t.Title, priorityLabel(t.Priority), dueLabel(t.DueDate, t.DueTime), t.Category)
			}
			if shown == 0 {
				fmt.Println("No pending tasks")
				return nil
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed tasks")

	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], taskIDs(st.Tasks()))
			if err != nil {
				return err
			}
			st.ToggleTask(id)
			fmt.Println("Task toggled")
			return nil
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], taskIDs(st.Tasks()))
			if err != nil {
				return err
			}
			st.DeleteTask(id)
			fmt.Println("Task deleted")
			return nil
		},
	}
}

func taskIDs(tasks []models.Task) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func taskMark(completed bool) string {
	if completed {
		return color.GreenString("✓")
	}
	return "○"
}

func priorityLabel(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return color.RedString(string(p))
	case models.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.GreenString(string(p))
	}
}

func dueLabel(date, t string) string {
	if date == "" {
		return ""
	}
	if t == "" {
		return date
	}
	return date + " " + t
}
