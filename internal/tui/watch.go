package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockdrop/internal/game"
	"github.com/hersh/blockdrop/internal/netclient"
	"github.com/hersh/blockdrop/internal/protocol"
)

// WatchModel shows a game streamed from a spectator hub. It is read-only.
type WatchModel struct {
	snapshot     *protocol.SnapshotPayload
	viewerID     string
	quit         key.Binding
	width        int
	height       int
	err          error
	disconnected bool
}

func NewWatchModel() WatchModel {
	return WatchModel{quit: DefaultKeyMap().Quit}
}

func (m WatchModel) Init() tea.Cmd {
	return nil
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case netclient.ConnectedMsg:
		m.viewerID = msg.ViewerID
	case netclient.SnapshotMsg:
		snap := msg.Snapshot
		m.snapshot = &snap
	case netclient.DisconnectedMsg:
		m.disconnected = true
		m.err = msg.Err
	}
	return m, nil
}

func (m WatchModel) View() string {
	var content string
	switch {
	case m.disconnected:
		content = "Disconnected from game."
		if m.err != nil {
			content += fmt.Sprintf("\n%v", m.err)
		}
		content += "\nPress Q to exit."
	case m.snapshot == nil:
		content = "Waiting for the game..."
	default:
		content = m.renderGame()
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m WatchModel) renderGame() string {
	snap := game.Snapshot{
		Board: m.snapshot.Rows(),
		Score: m.snapshot.Score,
		Lines: m.snapshot.Lines,
	}
	if m.snapshot.Phase == game.PhaseGameOver.String() {
		snap.Phase = game.PhaseGameOver
	}

	info := titleStyle.Render("SPECTATING") + "\n" + RenderInfo(snap)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(info),
		lipgloss.NewStyle().Padding(1, 2).Render(RenderBoard(snap, false)),
	)
}
