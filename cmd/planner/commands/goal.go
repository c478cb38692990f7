package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/validation"
)

// NewGoalCmd creates the goal command group
func NewGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals and milestones",
	}

	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalMilestoneCmd())
	cmd.AddCommand(newGoalRmCmd())

	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var (
		description string
		goalColor   string
		targetDate  string
		milestones  []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			ms := make([]models.Milestone, 0, len(milestones))
			for _, title := range milestones {
				ms = append(ms, models.Milestone{
					ID:    uuid.New(),
					Title: validation.SanitizeText(title),
				})
			}

			input := models.GoalInput{
				Title:       validation.SanitizeText(strings.Join(args, " ")),
				Description: validation.SanitizeText(description),
				Color:       goalColor,
				Milestones:  ms,
				TargetDate:  targetDate,
			}
			if err := validation.Validate.Struct(input); err != nil {
				return fmt.Errorf("invalid goal: %w", err)
			}

			st.AddGoal(input)
			fmt.Println("Goal added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "goal description")
	cmd.Flags().StringVar(&goalColor, "color", "", "display color (hex)")
	cmd.Flags().StringVar(&targetDate, "target", "", "target date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVarP(&milestones, "milestone", "m", nil, "milestone title (repeatable)")

	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			goals := st.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals yet")
				return nil
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)
			for _, g := range goals {
				_, _ = bold.Printf("%s  %s", shortID(g.ID), g.Title)
				_, _ = faint.Printf("  %d%%", g.Progress)
				if g.TargetDate != "" {
					_, _ = faint.Printf("  (target %s)", g.TargetDate)
				}
				fmt.Println()
				for _, m := range g.Milestones {
					fmt.Printf("  %s %s %s\n", shortID(m.ID), taskMark(m.Completed), m.Title)
				}
			}
			return nil
		},
	}
}

func newGoalMilestoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "milestone <goal-id> <milestone-id>",
		Short: "Toggle a milestone's completed state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			goalID, err := resolveID(args[0], goalIDs(st.Goals()))
			if err != nil {
				return err
			}
			var milestoneIDs []uuid.UUID
			for _, g := range st.Goals() {
				if g.ID == goalID {
					for _, m := range g.Milestones {
						milestoneIDs = append(milestoneIDs, m.ID)
					}
				}
			}
			milestoneID, err := resolveID(args[1], milestoneIDs)
			if err != nil {
				return err
			}

			st.ToggleMilestone(goalID, milestoneID)
			fmt.Println("Milestone toggled")
			return nil
		},
	}
}

func newGoalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal and unlink its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveID(args[0], goalIDs(st.Goals()))
			if err != nil {
				return err
			}
			st.DeleteGoal(id)
			fmt.Println("Goal deleted")
			return nil
		},
	}
}

func goalIDs(goals []models.Goal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return ids
}
