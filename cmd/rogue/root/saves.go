package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

func newSavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Show autosave status",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openSaveManager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSave, "Saves"))
			if !mgr.SaveExists("") {
				fmt.Fprintln(out, ui.Muted.Render("No autosave found."))
				return nil
			}

			snap, err := mgr.LoadGame("")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Format version", snap.Version))
			fmt.Fprintln(out, ui.LabelValue("Saved at", snap.Timestamp))
			fmt.Fprintln(out, ui.LabelValue("Dungeon level", snap.CurrentLevelNumber))
			mode := snap.RenderingMode
			if mode == "" {
				mode = "2d"
			}
			fmt.Fprintln(out, ui.LabelValue("Rendering mode", mode))
			return nil
		},
	}
	return cmd
}
