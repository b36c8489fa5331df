package root

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Break runs down by deepest level reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLeaderboard()
			if err != nil {
				return err
			}

			byLevel := store.StatsByLevel()
			if len(byLevel) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No completed runs yet."))
				return nil
			}

			levels := make([]int, 0, len(byLevel))
			for level := range byLevel {
				levels = append(levels, level)
			}
			sort.Ints(levels)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDungeon, "Runs by Level"))
			for _, level := range levels {
				ls := byLevel[level]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-3d runs %-4d victories %-3d %s avg %.1f\n",
					ui.Key.Render("lvl"), level, ls.Runs, ls.Victories, ui.IconGold, ls.AvgTreasure)
			}
			return nil
		},
	}
	return cmd
}
