package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
)

// NewReminderCmd creates the reminder command group
func NewReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage task reminders",
	}

	cmd.AddCommand(newReminderAddCmd())
	cmd.AddCommand(newReminderListCmd())
	cmd.AddCommand(newReminderDismissCmd())

	return cmd
}

func newReminderAddCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "add <task-id>",
		Short: "Schedule a reminder for a task with a due date",
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

			var task *models.Task
			for _, t := range st.Tasks() {
				if t.ID == id {
					task = &t
					break
				}
			}
			if task == nil {
				return fmt.Errorf("no task matches id %q", args[0])
			}
			if task.DueDate == "" {
				return fmt.Errorf("task %q has no due date", task.Title)
			}

			lead := minutes
			if lead == 0 {
				lead = task.ReminderMinutesBefore
			}
			fireAt, err := models.ReminderFireTime(task.DueDate, task.DueTime, lead)
			if err != nil {
				return fmt.Errorf("invalid due date on task %q: %w", task.Title, err)
			}

			st.AddReminder(models.ReminderInput{
				TaskID:     task.ID,
				TaskTitle:  task.Title,
				DueDate:    task.DueDate,
				DueTime:    task.DueTime,
				ReminderAt: fireAt,
			})
			fmt.Printf("Reminder set for %s\n", fireAt.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "lead time in minutes (defaults to the task's setting)")

	return cmd
}

func newReminderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			reminders := st.Reminders()
			if len(reminders) == 0 {
				fmt.Println("No reminders scheduled")
				return nil
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint("TASK"), bold.Sprint("FIRES AT"))
			for _, r := range reminders {
				fires := r.ReminderAt.Format("2006-01-02 15:04")
				if r.ReminderAt.Before(time.Now()) {
					fires = color.RedString(fires)
				}
				tbl.AddRow(shortID(r.ID), r.TaskTitle, fires)
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
}

func newReminderDismissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], reminderIDs(st.Reminders()))
			if err != nil {
				return err
			}
			st.DismissReminder(id)
			fmt.Println("Reminder dismissed")
			return nil
		},
	}
}

func reminderIDs(reminders []models.Reminder) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(reminders))
	for _, r := range reminders {
		ids = append(ids, r.ID)
	}
	return ids
}
