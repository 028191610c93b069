package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id := resolveTaskID(svc, args[0])
			task := svc.TaskByID(id)
			if task == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no matching task"))
				return nil
			}
			title := task.Title
			svc.DeleteTask(ctx, id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("🗑 Deleted"), title)
			return nil
		},
	}

	return cmd
}
