package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the hamster profile and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			profile := svc.Profile()
			stats := svc.Stats()

			fmt.Fprintln(out, ui.Heading(ui.IconHamster, profile.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", profile.Level))
			fmt.Fprintln(out, ui.LabelValue("Experience", profile.Experience))
			fmt.Fprintln(out, ui.LabelValue("Seeds", fmt.Sprintf("%d %s", profile.Coins, ui.IconSeed)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", stats.TotalTasksCompleted))
			fmt.Fprintln(out, ui.LabelValue("Pomodoro sessions", len(svc.Sessions())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconShop+" Items"))
			if len(profile.Items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing yet — isle shop)"))
				return nil
			}
			for _, it := range profile.Items {
				fmt.Fprintf(out, "- %s %s\n", it.Name, ui.Muted.Render("("+it.Type+")"))
			}
			return nil
		},
	}

	return cmd
}
