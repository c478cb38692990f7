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

// NewCategoryCmd creates the category command group
func NewCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}

	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategoryListCmd())

	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	var (
		categoryColor string
		icon          string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			input := models.CategoryInput{
				Name:  validation.SanitizeText(strings.Join(args, " ")),
				Color: categoryColor,
				Icon:  icon,
			}
			if err := validation.Validate.Struct(input); err != nil {
				return fmt.Errorf("invalid category: %w", err)
			}

			st.AddCategory(input)
			fmt.Println("Category added")
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryColor, "color", "", "display color (hex)")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("COLOR"))
			for _, c := range st.Categories() {
				tbl.AddRow(c.ID, c.Name, c.Color)
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
}
