package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IgorBio/Rogue-sub001/internal/storage"
)

// RunBoard opens the interactive leaderboard browser.
func RunBoard(store *storage.LeaderboardStore, out io.Writer) error {
	m := newBoardModel(store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
