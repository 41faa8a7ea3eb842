package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(x, y, 1)
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(12, 20)
	assert.Equal(t, 12, b.Width())
	assert.Equal(t, 20, b.Height())
	require.Len(t, b.Rows(), 20)
	for _, row := range b.Rows() {
		require.Len(t, row, 12)
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestCollides(t *testing.T) {
	o := NewShape(PieceO)
	tests := []struct {
		name string
		pos  Position
		prep func(b *Board)
		want bool
	}{
		{name: "empty board", pos: Position{5, 5}},
		{name: "filled cell", pos: Position{5, 5}, prep: func(b *Board) { b.Set(6, 6, 3) }, want: true},
		{name: "left wall", pos: Position{-1, 5}, want: true},
		{name: "right wall", pos: Position{11, 5}, want: true},
		{name: "floor", pos: Position{5, 19}, want: true},
		{name: "resting on floor", pos: Position{5, 18}},
		{name: "hanging above top", pos: Position{5, -1}},
		{name: "far above top", pos: Position{5, -40}},
		{name: "far outside left", pos: Position{-100, 3}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(12, 20)
			if tt.prep != nil {
				tt.prep(b)
			}
			assert.Equal(t, tt.want, b.Collides(o, tt.pos))
		})
	}
}

func TestCollidesIgnoresEmptyShapeCells(t *testing.T) {
	b := NewBoard(12, 20)
	// column 0 of the I shape is empty, so x = -1 keeps every filled cell on the board
	i := NewShape(PieceI)
	assert.NotPanics(t, func() { b.Collides(i, Position{-1, 0}) })
	assert.False(t, b.Collides(i, Position{-1, 0}))
	assert.True(t, b.Collides(i, Position{-2, 0}))
}

func TestMergedPieceCollidesWithItself(t *testing.T) {
	for _, c := range Catalog {
		b := NewBoard(12, 20)
		shape := NewShape(PieceType(c))
		pos := Position{4, 7}
		require.False(t, b.Collides(shape, pos))
		b.Merge(shape, pos)
		assert.True(t, b.Collides(shape, pos), "piece %c", c)
	}
}

func TestMerge(t *testing.T) {
	b := NewBoard(12, 20)
	b.Merge(NewShape(PieceT), Position{2, 3})
	assert.Equal(t, 1, b.Cell(3, 3))
	assert.Equal(t, 1, b.Cell(2, 4))
	assert.Equal(t, 1, b.Cell(3, 4))
	assert.Equal(t, 1, b.Cell(4, 4))
	assert.Equal(t, 0, b.Cell(2, 3))
	assert.Equal(t, 0, b.Cell(3, 5))
}

func TestClearFullRows(t *testing.T) {
	t.Run("no full rows leaves board unchanged", func(t *testing.T) {
		b := NewBoard(12, 20)
		fillRow(b, 19, 4)
		b.Set(3, 10, 2)
		before := b.Rows().Clone()
		assert.Equal(t, 0, b.ClearFullRows())
		assert.True(t, before.Equal(b.Rows()))
	})

	t.Run("single row shifts rows above down", func(t *testing.T) {
		b := NewBoard(12, 20)
		fillRow(b, 19)
		b.Set(0, 18, 5)
		assert.Equal(t, 1, b.ClearFullRows())
		assert.Equal(t, 5, b.Cell(0, 19))
		assert.Equal(t, 0, b.Cell(1, 19))
		assert.Equal(t, 0, b.Cell(0, 18))
	})

	t.Run("adjacent full rows", func(t *testing.T) {
		b := NewBoard(12, 20)
		fillRow(b, 19)
		fillRow(b, 18)
		fillRow(b, 17, 0)
		b.Set(7, 16, 6)
		assert.Equal(t, 2, b.ClearFullRows())
		assert.Equal(t, 0, b.Cell(0, 19))
		assert.Equal(t, 1, b.Cell(1, 19))
		assert.Equal(t, 6, b.Cell(7, 18))
		for y := 0; y < 18; y++ {
			for x := 0; x < 12; x++ {
				assert.Zero(t, b.Cell(x, y))
			}
		}
	})

	t.Run("separated full rows", func(t *testing.T) {
		b := NewBoard(12, 20)
		fillRow(b, 19)
		fillRow(b, 18, 2)
		fillRow(b, 17)
		assert.Equal(t, 2, b.ClearFullRows())
		assert.Equal(t, 0, b.Cell(2, 19))
		assert.Equal(t, 1, b.Cell(3, 19))
		assert.Zero(t, b.Cell(3, 18))
	})

	t.Run("top row is checked", func(t *testing.T) {
		b := NewBoard(4, 3)
		fillRow(b, 0)
		assert.Equal(t, 1, b.ClearFullRows())
		assert.Zero(t, b.Cell(0, 0))
	})

	t.Run("row count never changes", func(t *testing.T) {
		b := NewBoard(12, 20)
		for y := 0; y < 20; y++ {
			fillRow(b, y)
		}
		assert.Equal(t, 20, b.ClearFullRows())
		assert.Len(t, b.Rows(), 20)
		assert.Equal(t, make([]int, 12*20), b.ToFlat())
	})
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(12, 20)
	fillRow(b, 3)
	b.Reset()
	assert.Equal(t, make([]int, 12*20), b.ToFlat())
}

func TestFlatRoundTrip(t *testing.T) {
	b := NewBoard(12, 20)
	b.Set(0, 0, 1)
	b.Set(11, 19, 7)
	flat := b.ToFlat()
	assert.Equal(t, 1, flat[0])
	assert.Equal(t, 7, flat[len(flat)-1])
	assert.True(t, b.Rows().Equal(BoardFromFlat(flat, 12, 20).Rows()))
}
