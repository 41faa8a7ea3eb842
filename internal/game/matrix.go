package game

// Matrix is a rectangular grid of cell values indexed [y][x].
// 0 is empty, 1-7 is a filled cell carrying a piece color index.
type Matrix [][]int

// NewMatrix creates an all-zero matrix with h rows of w cells.
func NewMatrix(w, h int) Matrix {
	m := make(Matrix, h)
	for y := range m {
		m[y] = make([]int, w)
	}
	return m
}

func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y := range m {
		out[y] = make([]int, len(m[y]))
		copy(out[y], m[y])
	}
	return out
}

// Equal reports whether m and o have the same shape and cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(o[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate turns a square matrix a quarter turn in place: clockwise for
// dir > 0, counter-clockwise for dir < 0. dir == 0 leaves m untouched.
func Rotate(m Matrix, dir int) {
	if dir == 0 {
		return
	}
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}
	if dir > 0 {
		for _, row := range m {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}
