package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/tui"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newPomodoroCmd() *cobra.Command {
	var (
		taskArg      string
		mode         string
		focusMinutes int
		breakMinutes int
		autoBreak    bool
		autoNext     bool
		sound        bool
		animation    bool
	)

	cmd := &cobra.Command{
		Use:     "pomodoro",
		Aliases: []string{"pomo"},
		Short:   "Run the island pomodoro timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := svc.Settings()
			if cmd.Flags().Changed("mode") {
				m := engine.Mode(mode)
				if m != engine.ModeFocus && m != engine.ModeRelax {
					return fmt.Errorf("invalid --mode %q (want focus|relax)", mode)
				}
				settings.Mode = string(m)
			}
			if cmd.Flags().Changed("focus") {
				if focusMinutes < 5 || focusMinutes > 120 {
					return fmt.Errorf("--focus must be 5–120 minutes")
				}
				settings.FocusMinutes = focusMinutes
			}
			if cmd.Flags().Changed("break") {
				if breakMinutes < 1 || breakMinutes > 30 {
					return fmt.Errorf("--break must be 1–30 minutes")
				}
				settings.BreakMinutes = breakMinutes
			}
			if cmd.Flags().Changed("auto-break") {
				settings.AutoStartBreak = autoBreak
			}
			if cmd.Flags().Changed("auto-next") {
				settings.AutoStartNextPomodoro = autoNext
			}
			if cmd.Flags().Changed("sound") {
				settings.SoundEnabled = sound
			}
			if cmd.Flags().Changed("animation") {
				settings.AnimationEnabled = animation
			}
			svc.UpdatePomodoroSettings(ctx, settings)

			taskID := ""
			if taskArg != "" {
				taskID = resolveTaskID(svc, taskArg)
				if taskID == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no matching task; starting unlinked"))
				}
			}

			return tui.RunPomodoro(ctx, svc, taskID, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&taskArg, "task", "", "Link the session to a task id")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Session mode (focus|relax)")
	cmd.Flags().IntVar(&focusMinutes, "focus", 25, "Focus phase length in minutes")
	cmd.Flags().IntVar(&breakMinutes, "break", 5, "Break phase length in minutes")
	cmd.Flags().BoolVar(&autoBreak, "auto-break", false, "Start the break automatically")
	cmd.Flags().BoolVar(&autoNext, "auto-next", false, "Start the next pomodoro automatically")
	cmd.Flags().BoolVar(&sound, "sound", true, "Ring on phase completion")
	cmd.Flags().BoolVar(&animation, "animation", true, "Show the celebration banner")

	return cmd
}
