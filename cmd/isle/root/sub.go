package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <task-id> <subtask-id>",
		Short: "Toggle a subtask",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and subtask id are required")
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

			taskID := resolveTaskID(svc, args[0])
			task := svc.TaskByID(taskID)
			if task == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no matching task"))
				return nil
			}

			subID := ""
			for _, st := range task.SubTasks {
				if st.ID == args[1] || strings.HasPrefix(st.ID, args[1]) {
					subID = st.ID
					break
				}
			}

			res := svc.ToggleSubTask(ctx, taskID, subID)
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no matching subtask"))
				return nil
			}

			state := ui.Good.Render(ui.IconDone + " Checked")
			if !res.Completed {
				state = ui.Warn.Render("↩ Unchecked")
			}
			line := fmt.Sprintf("%s %s (%d/%d)", state, task.Title, res.CompletedSubTasks, len(task.SubTasks))
			if res.SeedsEarned > 0 {
				line += " " + ui.Gold.Render(fmt.Sprintf("+%d seeds", res.SeedsEarned))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	return cmd
}
