package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShape(t *testing.T) {
	for i, c := range Catalog {
		t.Run(string(c), func(t *testing.T) {
			shape := NewShape(PieceType(c))
			assert.Equal(t, shape.Width(), shape.Height(), "shapes are square")
			filled := 0
			for _, row := range shape {
				for _, v := range row {
					if v != 0 {
						assert.Equal(t, i+1, v)
						filled++
					}
				}
			}
			assert.Equal(t, 4, filled)
			assert.Equal(t, i+1, PieceType(c).Color())
		})
	}
}

func TestNewShapeReturnsCopy(t *testing.T) {
	a := NewShape(PieceO)
	a[0][0] = 0
	assert.Equal(t, Matrix{{4, 4}, {4, 4}}, NewShape(PieceO))
}

func TestNewShapeUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { NewShape('X') })
}

func TestRotate(t *testing.T) {
	m := NewShape(PieceT)
	Rotate(m, 1)
	assert.Equal(t, Matrix{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}, m)

	m = NewShape(PieceT)
	Rotate(m, -1)
	assert.Equal(t, Matrix{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, m)
}

func TestRotateRoundTrip(t *testing.T) {
	for _, c := range Catalog {
		orig := NewShape(PieceType(c))
		m := orig.Clone()
		Rotate(m, 1)
		Rotate(m, -1)
		assert.Equal(t, orig, m, "piece %c", c)

		for range 4 {
			Rotate(m, 1)
		}
		assert.Equal(t, orig, m, "four turns of %c", c)
	}
}

func TestRotateZeroIsNoop(t *testing.T) {
	m := NewShape(PieceL)
	Rotate(m, 0)
	assert.Equal(t, NewShape(PieceL), m)
}

func TestBagRandomizer(t *testing.T) {
	a := NewBagRandomizer(42)
	b := NewBagRandomizer(42)
	seen := make(map[PieceType]int)
	for range 7 {
		assert.Equal(t, a.Peek(), b.Peek())
		p := a.Next()
		assert.Equal(t, p, b.Next())
		seen[p]++
	}
	assert.Len(t, seen, 7)
}

func TestUniformRandomizer(t *testing.T) {
	u := NewUniformRandomizer(7)
	for range 200 {
		assert.Contains(t, Catalog, string(u.Next()))
	}
}
