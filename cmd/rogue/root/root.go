package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rogue",
	Short:         "Rogue — terminal dungeon crawler, run history and saves",
	Long:          "Rogue is a terminal dungeon crawler. This tool inspects its saves, leaderboard and run history.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatsCmd(),
		newTopCmd(),
		newRankCmd(),
		newLevelsCmd(),
		newHistoryCmd(),
		newBoardCmd(),
		newSavesCmd(),
		newClearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
