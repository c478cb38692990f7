package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/cmd/planner/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "planner",
		Short: "Zen Planner command line",
		Long:  "CLI for managing tasks, goals, habits and the AI advisor from the terminal",
	}

	rootCmd.AddCommand(commands.NewTaskCmd())
	rootCmd.AddCommand(commands.NewGoalCmd())
	rootCmd.AddCommand(commands.NewHabitCmd())
	rootCmd.AddCommand(commands.NewCategoryCmd())
	rootCmd.AddCommand(commands.NewReminderCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewCalendarCmd())
	rootCmd.AddCommand(commands.NewChatCmd())
	rootCmd.AddCommand(commands.NewPlansCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
