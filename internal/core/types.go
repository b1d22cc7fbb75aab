package core

// Size describes the dimensions of a grid or viewport, in cells.
type Size struct {
	W int
	H int
}

// Area returns W*H, or zero when either side is non-positive.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Contains reports whether (x, y) addresses a cell inside the size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}
