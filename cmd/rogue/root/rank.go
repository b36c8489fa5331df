package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <treasure>",
		Short: "Show where a treasure value would rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			treasure, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid treasure value %q", args[0])
			}

			store, err := openLeaderboard()
			if err != nil {
				return err
			}

			rank := store.PlayerRank(treasure)
			total := len(store.Load())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Rank"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d would rank %s of %d runs\n",
				ui.IconGold, treasure, ui.Gold.Render("#"+strconv.Itoa(rank)), total)
			return nil
		},
	}
	return cmd
}
