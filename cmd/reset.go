package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjun/codequest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <slot>",
	Short: "Delete a save slot's run",
	Long:  "Deletes the stored run for a save slot. The next session on that slot starts from the first topic.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		saveID := args[0]
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Reset slot %q? All progress is lost. [y/N] ", saveID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.RunRepo().Delete(context.Background(), saveID); err != nil {
			return fmt.Errorf("delete slot: %w", err)
		}

		fmt.Printf("Slot %q reset.\n", saveID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
