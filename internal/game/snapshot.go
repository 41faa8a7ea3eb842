package game

// Snapshot is a copy of everything a renderer or score display needs.
// It shares no memory with the live game.
type Snapshot struct {
	Board  Matrix
	Piece  Matrix
	Type   PieceType
	Pos    Position
	GhostY int
	Score  int
	Lines  int
	Phase  Phase
}

// Snapshot copies the current state.
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Board:  gs.Board.Rows().Clone(),
		Piece:  gs.Player.Shape.Clone(),
		Type:   gs.Player.Type,
		Pos:    gs.Player.Pos,
		GhostY: gs.GhostY(),
		Score:  gs.Player.Score,
		Lines:  gs.Lines,
		Phase:  gs.Phase,
	}
}

// Composite returns the board with the active piece drawn over it.
// Piece cells outside the board are left out.
func (s Snapshot) Composite() Matrix {
	out := s.Board.Clone()
	for y, row := range s.Piece {
		for x, v := range row {
			by, bx := s.Pos.Y+y, s.Pos.X+x
			if v == 0 || by < 0 || by >= out.Height() || bx < 0 || bx >= out.Width() {
				continue
			}
			out[by][bx] = v
		}
	}
	return out
}

// Flat returns Composite as a row-major array.
func (s Snapshot) Flat() []int {
	m := s.Composite()
	w := m.Width()
	flat := make([]int, w*m.Height())
	for y, row := range m {
		copy(flat[y*w:], row)
	}
	return flat
}
