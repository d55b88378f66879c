package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stepquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "StepQuest — daily social courage quests",
	Long:          "StepQuest is a local-first CLI/TUI companion that turns small social challenges into daily quests with RPG progression.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newNewCmd(),
		newListCmd(),
		newDoCmd(),
		newJournalCmd(),
		newStatusCmd(),
		newPracticeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
