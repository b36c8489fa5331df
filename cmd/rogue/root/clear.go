package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLeaderboard()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Leaderboard cleared."))
			return nil
		},
	}
	return cmd
}
