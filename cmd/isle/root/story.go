package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newStoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Browse the island story",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, ch := range engine.Chapters {
				unlocked := svc.UnlockedFragmentCount(ch.ID)
				fmt.Fprintln(out, ui.Heading(ui.IconBook, fmt.Sprintf("Chapter %d — %s", ch.ChapterNumber, ch.Title)))
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Progress: %d / %d", unlocked, ch.TotalFragments)))
				fmt.Fprintln(out, "")
				for _, f := range engine.StoryFragments {
					if f.ChapterID != ch.ID {
						continue
					}
					if svc.IsFragmentUnlocked(f.ID) {
						fmt.Fprintf(out, "%2d. %s %s\n", f.FragmentNumber, f.Title, ui.Muted.Render("("+f.ID+")"))
					} else {
						fmt.Fprintf(out, "%2d. %s %s\n", f.FragmentNumber,
							ui.Dim.Render("??? "+ui.IconLock),
							ui.Muted.Render(fmt.Sprintf("(%s, %d seeds)", f.ID, f.PowerCost)))
					}
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newStoryReadCmd(), newStoryUnlockCmd())
	return cmd
}

func newStoryReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <fragment-id>",
		Short: "Read an unlocked fragment",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("fragment id is required")
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

			f := engine.FragmentByID(args[0])
			if f == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no such fragment"))
				return nil
			}
			if !svc.IsFragmentUnlocked(f.ID) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.Warn.Render(ui.IconLock+" Locked."),
					ui.Muted.Render(fmt.Sprintf("isle story unlock %s (%d seeds)", f.ID, f.PowerCost)))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, f.Title))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(f.Content))
			return nil
		},
	}
}

func newStoryUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <fragment-id>",
		Short: "Spend seeds to unlock the next fragment",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("fragment id is required")
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

			f, err := svc.UnlockFragment(ctx, args[0])
			if err != nil {
				return err
			}
			if f == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no such fragment"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Unlocked"),
				f.Title,
				ui.Muted.Render(fmt.Sprintf("(seeds left: %d)", svc.Profile().Coins)))
			return nil
		},
	}
}
