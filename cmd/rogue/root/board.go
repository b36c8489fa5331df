package root

import (
	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLeaderboard()
			if err != nil {
				return err
			}
			return tui.RunBoard(store, cmd.OutOrStdout())
		},
	}
	return cmd
}
