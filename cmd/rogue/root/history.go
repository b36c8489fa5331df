package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/config"
	"github.com/IgorBio/Rogue-sub001/internal/storage"
	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show run-history analytics from the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			archive, err := storage.OpenArchive(ctx, cfg.SaveDir)
			if err != nil {
				return err
			}
			defer archive.Close()

			totals, err := archive.AggregateTotals(ctx)
			if err != nil {
				return err
			}
			if totals == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run archive is empty."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Run History"))
			fmt.Fprintln(out, ui.LabelValue("Archived runs", totals.Runs))
			fmt.Fprintln(out, ui.LabelValue("Victories", totals.Victories))
			fmt.Fprintln(out, ui.LabelValue("Best treasure", totals.MostTreasure))
			fmt.Fprintln(out, ui.LabelValue("Deepest level", totals.DeepestLevel))
			fmt.Fprintln(out, ui.LabelValue("Avg treasure", fmt.Sprintf("%.1f", totals.AvgTreasure)))
			fmt.Fprintln(out, ui.LabelValue("Avg level", fmt.Sprintf("%.1f", totals.AvgLevel)))
			fmt.Fprintln(out, "")

			bests, err := archive.BestByLevel(ctx)
			if err != nil {
				return err
			}
			if len(bests) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconDungeon+" Best by level"))
				for _, lb := range bests {
					fmt.Fprintf(out, "%s %-3d runs %-4d best %s%-6d victories %d\n",
						ui.Key.Render("lvl"), lb.Level, lb.Runs, ui.IconGold, lb.BestTreasure, lb.Victories)
				}
			}
			return nil
		},
	}
	return cmd
}
