package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arjun/codequest/internal/app"
)

var autoCmd = &cobra.Command{
	Use:   "auto [slot]",
	Short: "Start practicing immediately, skipping the dashboard",
	Long:  "Starts or resumes a run on the given save slot (the configured default slot when omitted) and drops straight into practice.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, cfg, cleanup, err := buildOrchestrator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		saveID := cfg.DefaultSlot
		if len(args) == 1 {
			saveID = args[0]
		}
		return app.RunAuto(orch, saveID)
	},
}
