package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/storage"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [YYYY-MM-DD]",
		Short: "List a day's tasks (all-day first, then by start time)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day := time.Now()
			if len(args) == 1 {
				day, err = time.ParseInLocation("2006-01-02", args[0], time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", args[0])
				}
			}

			tasks := engine.SortForDay(engine.TasksForDay(svc.Tasks(), day))

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, engine.FormatDateShort(day)))
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks)"))
				return nil
			}
			for _, t := range tasks {
				fmt.Fprintln(cmd.OutOrStdout(), renderTaskLine(t))
				for _, st := range t.SubTasks {
					fmt.Fprintf(cmd.OutOrStdout(), "      %s %s %s\n",
						ui.Checkbox(st.Completed), st.Title, ui.Muted.Render(shortID(st.ID)))
				}
			}
			return nil
		},
	}

	return cmd
}

func renderTaskLine(t storage.Task) string {
	when := "all day"
	if !t.IsAllDay {
		when = t.StartTime.Format("15:04") + "–" + t.EndTime.Format("15:04")
	}
	info := engine.DifficultyConfig[engine.Difficulty(t.Difficulty)]

	line := fmt.Sprintf("%s %s %s %s",
		ui.Checkbox(t.Completed),
		ui.Muted.Render(when),
		ui.TaskColor(t.Color).Render("●"),
		t.Title)
	meta := fmt.Sprintf("[%s", info.Label)
	if t.Category != "" {
		meta += ", " + t.Category
	}
	if len(t.SubTasks) > 0 {
		meta += fmt.Sprintf(", %d/%d", t.CompletedSubTasks, len(t.SubTasks))
	}
	meta += ", id " + shortID(t.ID) + "]"
	return line + " " + ui.Muted.Render(meta)
}
