package game

// Position is the top-left offset of a piece shape on the board.
type Position struct {
	X, Y int
}

// Board is the arena of settled cells. Its dimensions are fixed at creation.
type Board struct {
	cells  Matrix
	width  int
	height int
}

// NewBoard creates an empty board with h rows of w cells.
func NewBoard(w, h int) *Board {
	return &Board{
		cells:  NewMatrix(w, h),
		width:  w,
		height: h,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the value at (x, y), or 0 if the coordinate is off the board.
func (b *Board) Cell(x, y int) int {
	if !b.inside(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Set writes v at (x, y). Off-board coordinates are ignored.
func (b *Board) Set(x, y, v int) {
	if b.inside(x, y) {
		b.cells[y][x] = v
	}
}

// Rows exposes the cells for renderers. Callers must not modify them.
func (b *Board) Rows() Matrix {
	return b.cells
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Collides reports whether shape placed at pos overlaps a filled cell, a
// wall or the floor. Cells above the top row never collide so a spawning
// piece may hang over the board.
func (b *Board) Collides(shape Matrix, pos Position) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			switch {
			case by < 0:
				continue
			case by >= b.height:
				return true
			case bx < 0 || bx >= b.width:
				return true
			case b.cells[by][bx] != 0:
				return true
			}
		}
	}
	return false
}

// Merge writes the non-zero cells of shape into the board at pos.
// The placement must not collide; cells above the top row are dropped.
func (b *Board) Merge(shape Matrix, pos Position) {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 || pos.Y+y < 0 {
				continue
			}
			b.cells[pos.Y+y][pos.X+x] = v
		}
	}
}

// ClearFullRows removes every full row, inserting an empty row at the top
// for each one, and returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		row := b.cells[y]
		for x := range row {
			row[x] = 0
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = row
		cleared++
		// the row that slid into y has not been checked yet
		y++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, v := range b.cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.cells {
		for x := range row {
			row[x] = 0
		}
	}
}

// ToFlat returns the board as a row-major array of cell values.
func (b *Board) ToFlat() []int {
	flat := make([]int, b.height*b.width)
	for y := 0; y < b.height; y++ {
		copy(flat[y*b.width:], b.cells[y])
	}
	return flat
}

// BoardFromFlat rebuilds a board from a row-major cell array.
func BoardFromFlat(flat []int, width, height int) *Board {
	b := NewBoard(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx < len(flat) {
				b.cells[y][x] = flat[idx]
			}
		}
	}
	return b
}
