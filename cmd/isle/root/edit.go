package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newEditCmd() *cobra.Command {
	var (
		title    string
		desc     string
		diff     string
		date     string
		start    string
		end      string
		allDay   bool
		category string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields (only the flags you pass change)",
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

			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &desc
			}
			if cmd.Flags().Changed("diff") {
				d := engine.ParseDifficulty(diff)
				in.Difficulty = &d
			}
			if cmd.Flags().Changed("category") {
				in.Category = &category
			}
			if cmd.Flags().Changed("color") {
				in.Color = &color
			}
			if cmd.Flags().Changed("all-day") {
				in.IsAllDay = &allDay
			}

			day := task.StartTime
			if cmd.Flags().Changed("date") {
				day, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
				}
			}
			if cmd.Flags().Changed("date") || cmd.Flags().Changed("start") {
				hhmm := task.StartTime.Format("15:04")
				if cmd.Flags().Changed("start") {
					hhmm = start
				}
				st, err := combineDayTime(day, hhmm, 9, 0)
				if err != nil {
					return fmt.Errorf("invalid --start %q (want HH:MM)", start)
				}
				in.StartTime = &st
			}
			if cmd.Flags().Changed("date") || cmd.Flags().Changed("end") {
				hhmm := task.EndTime.Format("15:04")
				if cmd.Flags().Changed("end") {
					hhmm = end
				}
				et, err := combineDayTime(day, hhmm, 10, 0)
				if err != nil {
					return fmt.Errorf("invalid --end %q (want HH:MM)", end)
				}
				in.EndTime = &et
			}

			updated := svc.UpdateTask(ctx, id, in)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Updated"),
				updated.Title,
				ui.Muted.Render("("+engine.FormatDateShort(updated.StartTime)+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVarP(&diff, "diff", "d", "", "New difficulty (easy|normal|hard|hell)")
	cmd.Flags().StringVar(&date, "date", "", "New day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day task")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVar(&color, "color", "", "New color tag")

	return cmd
}
