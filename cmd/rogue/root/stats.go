package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics across all runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLeaderboard()
			if err != nil {
				return err
			}

			totals := store.Totals()
			if totals == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No completed runs yet."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "All-Time Statistics"))
			fmt.Fprintln(out, ui.LabelValue("Runs", totals.TotalRuns))
			fmt.Fprintln(out, ui.LabelValue("Victories", totals.TotalVictories))
			fmt.Fprintln(out, ui.LabelValue("Deaths", totals.TotalDeaths))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconGold+" Treasure"))
			fmt.Fprintln(out, ui.LabelValue("Total", totals.TotalTreasure))
			fmt.Fprintln(out, ui.LabelValue("Best run", totals.MostTreasure))
			fmt.Fprintln(out, ui.LabelValue("Average per run", fmt.Sprintf("%.1f", totals.AvgTreasurePerRun)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSword+" Combat"))
			fmt.Fprintln(out, ui.LabelValue("Enemies defeated", totals.TotalEnemiesDefeated))
			fmt.Fprintln(out, ui.LabelValue("Attacks", totals.TotalAttacks))
			fmt.Fprintln(out, ui.LabelValue("Damage dealt", totals.TotalDamageDealt))
			fmt.Fprintln(out, ui.LabelValue("Damage received", totals.TotalDamageReceived))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconDungeon+" Exploration"))
			fmt.Fprintln(out, ui.LabelValue("Deepest level", totals.DeepestLevel))
			fmt.Fprintln(out, ui.LabelValue("Average level", fmt.Sprintf("%.1f", totals.AvgLevelReached)))
			fmt.Fprintln(out, ui.LabelValue("Tiles moved", totals.TotalTilesMoved))
			fmt.Fprintln(out, ui.LabelValue("Items collected", totals.TotalItemsCollected))
			fmt.Fprintln(out, ui.LabelValue("Food consumed", totals.TotalFoodConsumed))
			return nil
		},
	}
	return cmd
}
