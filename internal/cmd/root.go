package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "teamup",
	Short: "Find teammates and build project teams from your terminal",
	Long: `teamup is a command-line client for the TeamMaker platform.
It lets you register an account, maintain your profile, browse people and
projects, and join or leave project teams without leaving the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ~/.teamup/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "TeamMaker API base URL (overrides config)")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-input", false, "disable interactive prompts")
}
