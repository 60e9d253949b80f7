package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjun/codequest/internal/curriculum"
	"github.com/arjun/codequest/internal/run"
	"github.com/arjun/codequest/internal/store"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		slots, err := s.RunRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list slots: %w", err)
		}

		if len(slots) == 0 {
			fmt.Println("No save slots yet. Run `codequest` to start playing.")
			return nil
		}

		total := curriculum.Len()
		fmt.Printf("%-20s  %-11s  %-10s  %-10s  %s\n",
			"Slot", "Topic", "Questions", "Status", "Last played")
		fmt.Println(strings.Repeat("─", 72))
		for _, slot := range slots {
			topic := fmt.Sprintf("%d/%d", slot.TopicPointer, total)
			status := string(slot.Status)
			if slot.Status == run.StatusCompleted {
				topic = fmt.Sprintf("%d/%d", total, total)
			}
			fmt.Printf("%-20s  %-11s  %-10d  %-10s  %s\n",
				slot.SaveID,
				topic,
				slot.CompletedQuestions,
				status,
				slot.LastUpdatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}
