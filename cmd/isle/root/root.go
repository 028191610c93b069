package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "isle",
	Short:         "Hamster Isle — a cozy gamified day planner",
	Long:          "Hamster Isle is a local-first calendar task manager with a pomodoro timer,\na seed economy, and an island story that unlocks as you get things done.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newCalendarCmd(),
		newDoneCmd(),
		newSubCmd(),
		newEditCmd(),
		newRmCmd(),
		newStatusCmd(),
		newPomodoroCmd(),
		newStoryCmd(),
		newVillageCmd(),
		newShopCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
