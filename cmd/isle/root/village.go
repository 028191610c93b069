package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newVillageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "village",
		Short: "Meet the hamster residents you've unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("🏡", "Hamster Village"))
			fmt.Fprintln(out, "")

			for _, c := range engine.Characters {
				if svc.IsCharacterUnlocked(c) {
					fmt.Fprintf(out, "%s %s — %s\n", c.Avatar, ui.Key.Render(c.Name), c.Personality)
					fmt.Fprintf(out, "   %s\n", ui.Muted.Render("“"+c.Motto+"”"))
				} else {
					fmt.Fprintf(out, "❓ %s %s\n",
						ui.Dim.Render("???"),
						ui.Muted.Render(fmt.Sprintf("(read %d story fragments to meet them)", c.FragmentGate)))
				}
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Residents met: %d / %d", svc.UnlockedCharacterCount(), len(engine.Characters))))
			return nil
		},
	}

	return cmd
}
