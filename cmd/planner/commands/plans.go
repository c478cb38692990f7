package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/validation"
)

// NewPlansCmd creates the plans command group
func NewPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Show subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			current := st.Subscription()

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			tbl.AddRow(bold.Sprint("PLAN"), bold.Sprint("PRICE"), bold.Sprint("FEATURES"))
			for _, p := range models.SubscriptionPlans() {
				name := p.Name
				if p.Highlighted {
					name = color.HiYellowString(name)
				}
				if p.ID == current {
					name += color.GreenString(" (current)")
				}
				tbl.AddRow(name, fmt.Sprintf("$%.2f/%s", p.Price, p.BillingCycle), strings.Join(p.Features, ", "))
			}
			fmt.Fprintln(color.Output, tbl)
			if current == models.TierFree {
				fmt.Println("\nCurrent plan: free")
			}
			return nil
		},
	}

	cmd.AddCommand(newPlansSetCmd())

	return cmd
}

func newPlansSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <tier>",
		Short: "Set the active subscription tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateSubscriptionTier(args[0]); err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}
			st.SetSubscription(models.SubscriptionTier(args[0]))
			fmt.Printf("Subscription set to %s\n", args[0])
			return nil
		},
	}
}
