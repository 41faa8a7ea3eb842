package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockdrop/internal/game"
)

const (
	frameInterval    = 16 * time.Millisecond
	snapshotInterval = 100 * time.Millisecond
)

// FrameMsg is one display refresh.
type FrameMsg time.Time

// SnapshotTickMsg triggers publishing the board to spectators.
type SnapshotTickMsg time.Time

// Music is the play/mute switch of the background track.
type Music interface {
	Play()
	Mute()
	Playing() bool
}

// Publisher receives snapshots for spectators.
type Publisher interface {
	Publish(game.Snapshot)
}

type Model struct {
	loop      *game.Loop
	keys      KeyMap
	music     Music
	publisher Publisher
	width     int
	height    int
}

// NewModel creates the game UI. music and publisher may be nil.
func NewModel(loop *game.Loop, music Music, publisher Publisher) Model {
	return Model{
		loop:      loop,
		keys:      DefaultKeyMap(),
		music:     music,
		publisher: publisher,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd()}
	if m.publisher != nil {
		cmds = append(cmds, snapshotTickCmd())
	}
	return tea.Batch(cmds...)
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func snapshotTickCmd() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg {
		return SnapshotTickMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case FrameMsg:
		if res, dropped := m.loop.Frame(time.Time(msg)); dropped {
			logDrop(res, m.loop.State)
		}
		return m, frameCmd()
	case SnapshotTickMsg:
		if m.publisher != nil {
			m.publisher.Publish(m.loop.State.Snapshot())
		}
		return m, snapshotTickCmd()
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Play):
		if m.music != nil {
			m.music.Play()
		}
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.music != nil {
			m.music.Mute()
		}
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg); ok {
		logDrop(m.loop.Command(cmd), m.loop.State)
	}
	return m, nil
}

func logDrop(res game.DropResult, gs *game.GameState) {
	switch {
	case res.GameOver:
		slog.Info("game over", "pieces", gs.Pieces, "lines", gs.Lines, "games", gs.GameOvers)
	case res.Cleared > 0:
		slog.Debug("rows cleared", "rows", res.Cleared, "score", gs.Player.Score)
	}
}

// --- View ---

func (m Model) View() string {
	snap := m.loop.State.Snapshot()
	playing := m.music != nil && m.music.Playing()

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(RenderInfo(snap) + RenderMusic(playing) + "\n\n" + RenderControls(m.keys.Help()))

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(snap, true))

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(mainContent)
}
