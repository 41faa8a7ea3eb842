package protocol

import "github.com/hersh/blockdrop/internal/game"

// MessageType identifies the kind of message sent over the wire.
type MessageType string

const (
	// Server -> Viewer messages
	MsgAssignID MessageType = "assign_id"
	MsgSnapshot MessageType = "snapshot"
)

// Envelope is the top-level wire format for all messages.
type Envelope struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// AssignIDPayload is sent when a viewer first connects.
type AssignIDPayload struct {
	ViewerID string `json:"viewer_id"`
}

// SnapshotPayload is the game as a viewer should draw it.
type SnapshotPayload struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Score  int    `json:"score"`
	Lines  int    `json:"lines"`
	Phase  string `json:"phase"`
	// Board is a flat array: Height * Width cells with the falling piece
	// drawn in. Each value is a color index (0 = empty).
	Board []int `json:"board"`
}

// NewSnapshotPayload flattens a game snapshot for the wire.
func NewSnapshotPayload(s game.Snapshot) SnapshotPayload {
	return SnapshotPayload{
		Width:  s.Board.Width(),
		Height: s.Board.Height(),
		Score:  s.Score,
		Lines:  s.Lines,
		Phase:  s.Phase.String(),
		Board:  s.Flat(),
	}
}

// Rows rebuilds the board matrix from the flat array.
func (p SnapshotPayload) Rows() game.Matrix {
	return game.BoardFromFlat(p.Board, p.Width, p.Height).Rows()
}
