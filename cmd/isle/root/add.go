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

func newAddCmd() *cobra.Command {
	var (
		taskType string
		diff     string
		date     string
		start    string
		end      string
		allDay   bool
		category string
		color    string
		desc     string
		subs     []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task (or a self-challenge)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
				}
			}

			startTime, err := combineDayTime(day, start, 9, 0)
			if err != nil {
				return fmt.Errorf("invalid --start %q (want HH:MM)", start)
			}
			endTime, err := combineDayTime(day, end, 0, 0)
			if err != nil {
				return fmt.Errorf("invalid --end %q (want HH:MM)", end)
			}
			if end == "" {
				endTime = startTime.Add(time.Hour)
			}

			task, err := svc.AddTask(ctx, engine.AddTaskInput{
				Type:        engine.ParseTaskType(taskType),
				Title:       args[0],
				Description: desc,
				Difficulty:  engine.ParseDifficulty(diff),
				StartTime:   startTime,
				EndTime:     endTime,
				IsAllDay:    allDay,
				Category:    category,
				Color:       color,
				SubTasks:    subs,
			})
			if err != nil {
				return err
			}

			info := engine.DifficultyConfig[engine.Difficulty(task.Difficulty)]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				task.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %s, id %s)", info.Label, engine.FormatDateShort(task.StartTime), shortID(task.ID))))
			if len(task.SubTasks) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("  %d subtasks", len(task.SubTasks))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "task", "Task type (task|challenge)")
	cmd.Flags().StringVarP(&diff, "diff", "d", "normal", "Difficulty (easy|normal|hard|hell)")
	cmd.Flags().StringVar(&date, "date", "", "Day of the task (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, default 09:00)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, default start +1h)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day task (start/end span the whole day)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label (study|fitness|work|…)")
	cmd.Flags().StringVar(&color, "color", "", "Color tag (red|orange|yellow|green|teal|blue|purple|pink|brown|gray)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringArrayVar(&subs, "sub", nil, "Subtask title (repeatable)")

	return cmd
}

func combineDayTime(day time.Time, hhmm string, defHour, defMin int) (time.Time, error) {
	h, m := defHour, defMin
	if hhmm != "" {
		t, err := time.Parse("15:04", hhmm)
		if err != nil {
			return time.Time{}, err
		}
		h, m = t.Hour(), t.Minute()
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
