package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/models"
	"github.com/benvon/zen-planner/internal/services/ai"
)

// NewChatCmd creates the chat command group
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the AI advisor",
		Long:  "Send a message to the AI productivity advisor. The advisor sees a summary of your tasks, goals and habits.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			st, cfg, err := openStore()
			if err != nil {
				return err
			}
			if cfg.OpenAIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is not configured")
			}

			provider := ai.NewOpenAIProviderWithLogger(cfg.OpenAIKey, cfg.AIBaseURL, cfg.AIModel, nil, false)
			session := ai.NewAdvisorSession(st, provider, nil)

			ctx, cancel := context.WithTimeout(context.Background(), ai.DefaultTimeout)
			defer cancel()

			reply, err := session.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}

	cmd.AddCommand(newChatHistoryCmd())
	cmd.AddCommand(newChatClearCmd())

	return cmd
}

func newChatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the chat transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			messages := st.ChatMessages()
			if len(messages) == 0 {
				fmt.Println("No messages yet")
				return nil
			}

			user := color.New(color.Bold, color.FgCyan)
			assistant := color.New(color.Bold, color.FgGreen)
			faint := color.New(color.Faint)
			for _, m := range messages {
				label := user
				if m.Role == models.ChatRoleAssistant {
					label = assistant
				}
				_, _ = label.Printf("%s", m.Role)
				_, _ = faint.Printf("  %s\n", m.Timestamp.Local().Format(time.RFC822))
				fmt.Println(m.Content)
				fmt.Println()
			}
			return nil
		},
	}
}

func newChatClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the chat transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			st.ClearChat()
			fmt.Println("Chat cleared")
			return nil
		},
	}
}
