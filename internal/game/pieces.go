package game

import "fmt"

// PieceType is one letter of Catalog.
type PieceType byte

const (
	PieceT PieceType = 'T'
	PieceJ PieceType = 'J'
	PieceL PieceType = 'L'
	PieceO PieceType = 'O'
	PieceS PieceType = 'S'
	PieceZ PieceType = 'Z'
	PieceI PieceType = 'I'
)

// Catalog lists every piece type. A piece's color index is its 1-based
// position in this string.
const Catalog = "TJLOSZI"

// Colors maps a cell value to a display color. Index 0 is the empty cell.
var Colors = [8]string{
	"#000000",
	"#FF0D72",
	"#0DC2FF",
	"#0DFF72",
	"#F538FF",
	"#FF8E0D",
	"#FFE138",
	"#3877FF",
}

var pieceShapes = map[PieceType]Matrix{
	PieceT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	PieceJ: {
		{0, 2, 0},
		{0, 2, 0},
		{2, 2, 0},
	},
	PieceL: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	PieceO: {
		{4, 4},
		{4, 4},
	},
	PieceS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{6, 6, 0},
		{0, 6, 6},
		{0, 0, 0},
	},
	PieceI: {
		{0, 7, 0, 0},
		{0, 7, 0, 0},
		{0, 7, 0, 0},
		{0, 7, 0, 0},
	},
}

// Color returns the cell value used by pieces of this type.
func (t PieceType) Color() int {
	for i := 0; i < len(Catalog); i++ {
		if Catalog[i] == byte(t) {
			return i + 1
		}
	}
	return 0
}

func (t PieceType) String() string {
	return string(t)
}

// NewShape returns a fresh copy of the canonical matrix for t.
// It panics if t is not a member of Catalog.
func NewShape(t PieceType) Matrix {
	shape, ok := pieceShapes[t]
	if !ok {
		panic(fmt.Sprintf("game: unknown piece type %q", byte(t)))
	}
	return shape.Clone()
}
