package game

const (
	BoardWidth  = 12
	BoardHeight = 20

	// pointsPerRow is awarded for every row cleared by a landing piece.
	pointsPerRow = 10
)

// Phase is the state of the active piece.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseResolving
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Command is one of the logical inputs the game accepts.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case SoftDrop:
		return "soft_drop"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	}
	return "unknown"
}

// Player is the falling piece and the score it has earned.
type Player struct {
	Type  PieceType
	Shape Matrix
	Pos   Position
	Score int
}

// DropResult describes what a single drop did.
type DropResult struct {
	Landed     bool
	Cleared    int
	ScoreDelta int
	GameOver   bool
}

type GameState struct {
	Board  *Board
	Player Player
	Phase  Phase

	Lines     int
	Pieces    int
	GameOvers int

	rng Randomizer
}

// NewGameState creates a board of the fixed size and spawns the first piece.
func NewGameState(rng Randomizer) *GameState {
	gs := &GameState{
		Board: NewBoard(BoardWidth, BoardHeight),
		rng:   rng,
	}
	gs.Reset()
	return gs
}

func (gs *GameState) collides() bool {
	return gs.Board.Collides(gs.Player.Shape, gs.Player.Pos)
}

// resume leaves the game-over phase once play continues.
func (gs *GameState) resume() {
	if gs.Phase == PhaseGameOver {
		gs.Phase = PhaseFalling
	}
}

// Move shifts the piece one column in dir (-1 or +1). A blocked move is a
// no-op. It reports whether the piece moved.
func (gs *GameState) Move(dir int) bool {
	gs.resume()
	gs.Player.Pos.X += dir
	if gs.collides() {
		gs.Player.Pos.X -= dir
		return false
	}
	return true
}

// Drop moves the piece down one row. When the piece cannot fall it is merged
// into the board, full rows are cleared and scored, and a new piece spawns.
func (gs *GameState) Drop() DropResult {
	gs.resume()
	gs.Player.Pos.Y++
	if !gs.collides() {
		return DropResult{}
	}
	gs.Player.Pos.Y--

	gs.Phase = PhaseResolving
	gs.Board.Merge(gs.Player.Shape, gs.Player.Pos)
	cleared := gs.Board.ClearFullRows()
	delta := cleared * pointsPerRow
	gs.Player.Score += delta
	gs.Lines += cleared
	gs.Pieces++

	res := DropResult{Landed: true, Cleared: cleared, ScoreDelta: delta}
	res.GameOver = gs.Reset()
	return res
}

// Rotate turns the piece a quarter turn (clockwise for dir > 0). If the
// rotated piece collides, horizontal kicks of +1, -1, +2, -2 ... up to the
// shape width are tried; when none fits the rotation is undone.
func (gs *GameState) Rotate(dir int) bool {
	gs.resume()
	x := gs.Player.Pos.X
	Rotate(gs.Player.Shape, dir)
	if !gs.collides() {
		return true
	}
	width := gs.Player.Shape.Width()
	for k := 1; k <= width; k++ {
		for _, off := range [2]int{k, -k} {
			gs.Player.Pos.X = x + off
			if !gs.collides() {
				return true
			}
		}
	}
	Rotate(gs.Player.Shape, -dir)
	gs.Player.Pos.X = x
	return false
}

// Reset spawns a new random piece centered on the top row. If it collides
// immediately the game is over: the board is emptied and the score zeroed.
// The new piece stays where it spawned. Reset reports whether the game ended.
func (gs *GameState) Reset() bool {
	t := gs.rng.Next()
	gs.Player.Type = t
	gs.Player.Shape = NewShape(t)
	gs.Player.Pos.Y = 0
	gs.Player.Pos.X = gs.Board.Width()/2 - gs.Player.Shape.Width()/2

	if gs.collides() {
		gs.Board.Reset()
		gs.Player.Score = 0
		gs.GameOvers++
		gs.Phase = PhaseGameOver
		return true
	}
	gs.Phase = PhaseFalling
	return false
}

// Apply executes a logical input command.
func (gs *GameState) Apply(cmd Command) {
	switch cmd {
	case MoveLeft:
		gs.Move(-1)
	case MoveRight:
		gs.Move(1)
	case SoftDrop:
		gs.Drop()
	case RotateCW:
		gs.Rotate(1)
	case RotateCCW:
		gs.Rotate(-1)
	}
}

// GhostY returns the row the piece would land on if dropped straight down.
func (gs *GameState) GhostY() int {
	pos := gs.Player.Pos
	for {
		pos.Y++
		if gs.Board.Collides(gs.Player.Shape, pos) {
			return pos.Y - 1
		}
	}
}
