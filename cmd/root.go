package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arjun/codequest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codequest",
	Short: "Adaptive Go practice in the terminal",
	Long:  "CodeQuest is a terminal app that drills Go fundamentals with AI-generated questions, adapting topic progression to your streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Best effort: a local .env can hold API keys during development.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (overrides CODEQUEST_CONFIG env var)")

	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODEQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
