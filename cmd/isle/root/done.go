package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
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
			res := svc.ToggleTask(ctx, id)
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no matching task"))
				return nil
			}

			task := svc.TaskByID(res.TaskID)
			if res.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Completed"),
					task.Title,
					ui.Gold.Render(fmt.Sprintf("+%d seeds, +%d exp", res.SeedsEarned, res.ExpEarned)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Warn.Render("↩ Reopened"),
					task.Title,
					ui.Muted.Render("(earned rewards are kept)"))
			}
			return nil
		},
	}

	return cmd
}
