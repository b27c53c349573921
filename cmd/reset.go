package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset mastery records and history",
	Long:  "Reset mastery records and round history. Without flags every record is removed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		work, _ := cmd.Flags().GetString("work")
		part, _ := cmd.Flags().GetString("part")
		if part != "" && work == "" {
			return fmt.Errorf("--part requires --work")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if work != "" {
			if part != "" {
				if _, err := e.catalog.Part(work, part); err != nil {
					return err
				}
			} else if _, err := e.catalog.Work(work); err != nil {
				return err
			}
		}

		repo := e.store.ProgressRepo()
		table := repo.Load(ctx)
		n := table.Delete(work, part)
		if err := repo.Save(ctx, table); err != nil {
			return err
		}
		if err := e.store.EventRepo().DeleteHistory(ctx, work, part); err != nil {
			return err
		}

		e.log.Info("progress reset", zap.String("work", work), zap.String("part", part), zap.Int("records", n))
		fmt.Printf("Removed %d record(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("work", "", "Only reset this work")
	resetCmd.Flags().String("part", "", "Only reset this part (requires --work)")
}
