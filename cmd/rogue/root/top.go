package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/storage"
	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [n]",
		Short: "Show the best runs by treasure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := storage.DefaultTopRunsCount
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				n = parsed
			}

			store, err := openLeaderboard()
			if err != nil {
				return err
			}

			runs := store.TopRuns(n)
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No completed runs yet."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Top %d Runs", len(runs))))
			for i, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %-6d lvl %-2d %s %s\n",
					i+1, ui.IconGold, run.TreasureCollected, run.LevelReached,
					ui.Outcome(run.Victory), ui.Muted.Render(run.Timestamp))
			}
			return nil
		},
	}
	return cmd
}
