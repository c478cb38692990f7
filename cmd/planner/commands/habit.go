package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/validation"
)

// NewHabitCmd creates the habit command group
func NewHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits and streaks",
	}

	cmd.AddCommand(newHabitAddCmd())
	cmd.AddCommand(newHabitListCmd())
	cmd.AddCommand(newHabitCheckCmd())
	cmd.AddCommand(newHabitRmCmd())

	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var (
		description string
		frequency   string
		habitColor  string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateFrequency(frequency); err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			input := models.HabitInput{
				Title:       validation.SanitizeText(strings.Join(args, " ")),
				Description: validation.SanitizeText(description),
				Frequency:   models.Frequency(frequency),
				Color:       habitColor,
			}
			if err := validation.Validate.Struct(input); err != nil {
				return fmt.Errorf("invalid habit: %w", err)
			}

			st.AddHabit(input)
			fmt.Println("Habit added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "habit description")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", string(models.FrequencyDaily), "frequency (daily, weekly, monthly)")
	cmd.Flags().StringVar(&habitColor, "color", "", "display color (hex)")

	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			habits := st.Habits()
			if len(habits) == 0 {
				fmt.Println("No habits yet")
				return nil
			}

			today := time.Now().Format(models.DateLayout)
			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint(" "), bold.Sprint("TITLE"), bold.Sprint("FREQUENCY"), bold.Sprint("STREAK"), bold.Sprint("BEST"))
			for _, h := range habits {
				doneToday := false
				for _, c := range h.Completions {
					if c.Date == today && c.Completed {
						doneToday = true
						break
					}
				}
				tbl.AddRow(shortID(h.ID), taskMark(doneToday), h.Title, string(h.Frequency), streakLabel(h.Streak), fmt.Sprintf("%d", h.BestStreak))
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
}

func newHabitCheckCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Toggle a habit completion for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(models.DateLayout)
			}
			if _, err := time.Parse(models.DateLayout, date); err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], habitIDs(st.Habits()))
			if err != nil {
				return err
			}

			st.ToggleHabitCompletion(id, date)
			for _, h := range st.Habits() {
				if h.ID == id {
					fmt.Printf("Habit toggled for %s (streak: %d, best: %d)\n", date, h.Streak, h.BestStreak)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "completion date (YYYY-MM-DD), defaults to today")

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], habitIDs(st.Habits()))
			if err != nil {
				return err
			}
			st.DeleteHabit(id)
			fmt.Println("Habit deleted")
			return nil
		},
	}
}

func habitIDs(habits []models.Habit) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	return ids
}

func streakLabel(streak int) string {
	if streak > 0 {
		return color.HiYellowString("%d", streak)
	}
	return "0"
}
