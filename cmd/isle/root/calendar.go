package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the month grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				t, err := time.ParseInLocation("2006-01", args[0], time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", args[0])
				}
				year, month = t.Year(), t.Month()
			}

			days := engine.MonthGrid(year, month)
			tasks := svc.Tasks()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("%s %d", engine.MonthName(month), year)))

			var header strings.Builder
			for d := time.Sunday; d <= time.Saturday; d++ {
				header.WriteString(fmt.Sprintf("%4s", engine.WeekdayName(d)))
			}
			fmt.Fprintln(out, ui.H2.Render(header.String()))

			for row := 0; row < engine.MonthGridSize/7; row++ {
				var line strings.Builder
				for col := 0; col < 7; col++ {
					day := days[row*7+col]
					cell := fmt.Sprintf("%3d", day.Date.Day())
					if engine.HasTasksOnDay(tasks, day.Date) {
						cell += "•"
					} else {
						cell += " "
					}
					switch {
					case day.IsToday:
						cell = ui.TodayCell.Render(cell)
					case !day.IsCurrentMonth:
						cell = ui.Dim.Render(cell)
					case day.IsWeekend:
						cell = ui.Warn.Render(cell)
					}
					line.WriteString(cell)
				}
				fmt.Fprintln(out, line.String())
			}

			fmt.Fprintln(out, ui.Muted.Render("• day has tasks — isle list YYYY-MM-DD for details"))
			return nil
		},
	}

	return cmd
}
