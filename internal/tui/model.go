package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IgorBio/Rogue-sub001/internal/stats"
	"github.com/IgorBio/Rogue-sub001/internal/storage"
	"github.com/IgorBio/Rogue-sub001/internal/ui"
)

type boardModel struct {
	store *storage.LeaderboardStore

	width  int
	height int

	runs   []*stats.Statistics
	totals *storage.Totals

	selected int
	showRun  bool

	lastLog string
	loading bool
}

type loadedMsg struct {
	runs   []*stats.Statistics
	totals *storage.Totals
}

func newBoardModel(store *storage.LeaderboardStore) boardModel {
	return boardModel{
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{runs: m.store.Load(), totals: m.store.Totals()}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.runs = msg.runs
		m.totals = msg.totals
		if m.selected >= len(m.runs) {
			m.selected = len(m.runs) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.runs)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if len(m.runs) > 0 {
				m.showRun = !m.showRun
			}
			return m, nil
		case "esc":
			m.showRun = false
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconTrophy, "Leaderboard") + "\n\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
		return b.String()
	}

	if len(m.runs) == 0 {
		b.WriteString(ui.Muted.Render("No completed runs yet.") + "\n\n")
		b.WriteString(m.footer())
		return b.String()
	}

	if m.showRun {
		b.WriteString(m.runView())
		b.WriteString("\n" + m.footer())
		return b.String()
	}

	for i, run := range m.runs {
		line := fmt.Sprintf("%2d. %s %-6d  lvl %-2d  %s  %s",
			i+1, ui.IconGold, run.TreasureCollected, run.LevelReached,
			ui.Outcome(run.Victory), ui.Muted.Render(run.Timestamp))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.totals != nil {
		b.WriteString("\n" + ui.H2.Render(ui.IconChart+" Totals") + "\n")
		b.WriteString(fmt.Sprintf("runs %d  victories %d  best %s%d  deepest lvl %d\n",
			m.totals.TotalRuns, m.totals.TotalVictories,
			ui.IconGold, m.totals.MostTreasure, m.totals.DeepestLevel))
	}

	b.WriteString("\n" + m.footer())
	return b.String()
}

func (m boardModel) runView() string {
	run := m.runs[m.selected]
	panel := strings.Join(run.Summary(), "\n")
	return ui.Panel.Render(panel) + "\n"
}

func (m boardModel) footer() string {
	help := "↑/↓ select · enter details · r refresh · q quit"
	return ui.Muted.Render(help) + "\n" + ui.Muted.Render(m.lastLog) + "\n"
}
