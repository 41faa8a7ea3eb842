package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockdrop/internal/game"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	ghostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	cellStyles = func() [len(game.Colors)]lipgloss.Style {
		var styles [len(game.Colors)]lipgloss.Style
		for i, c := range game.Colors {
			styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		}
		return styles
	}()
)

// RenderBoard draws the settled cells at offset (0,0) and the falling piece
// at its own position. With ghost set, the landing spot is outlined.
func RenderBoard(s game.Snapshot, ghost bool) string {
	var sb strings.Builder

	for y, row := range s.Board {
		for x, v := range row {
			char := "  "
			style := cellStyles[0]

			if v != 0 {
				char = "██"
				style = cellStyles[v]
			}
			if pv := pieceAt(s, x, y, s.Pos.Y); pv != 0 {
				char = "██"
				style = cellStyles[pv]
			} else if ghost && v == 0 && pieceAt(s, x, y, s.GhostY) != 0 {
				char = "[]"
				style = ghostStyle
			}

			sb.WriteString(style.Render(char))
		}
		if y < len(s.Board)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// pieceAt returns the piece cell covering board (x, y) with the piece at row top.
func pieceAt(s game.Snapshot, x, y, top int) int {
	py, px := y-top, x-s.Pos.X
	if py < 0 || py >= len(s.Piece) || px < 0 || px >= len(s.Piece[py]) {
		return 0
	}
	return s.Piece[py][px]
}

func RenderInfo(s game.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("BLOCKDROP") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", s.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", s.Lines)) + "\n")

	if s.Phase == game.PhaseGameOver {
		sb.WriteString("\n" + gameOverStyle.Render("GAME OVER") + "\n")
	}
	return sb.String()
}

func RenderMusic(playing bool) string {
	status := "off"
	if playing {
		status = "on"
	}
	return infoStyle.Render(fmt.Sprintf("Music: %s", status))
}

func RenderControls(bindings []key.Binding) string {
	var sb strings.Builder
	sb.WriteString("Controls:\n")
	for _, b := range bindings {
		h := b.Help()
		sb.WriteString(fmt.Sprintf("  %-6s %s\n", h.Key, h.Desc))
	}
	return infoStyle.Render(sb.String())
}
