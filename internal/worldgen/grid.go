package worldgen

import (
	"slices"

	"tidewalker/internal/core"
	"tidewalker/internal/tiles"
)

// Grid stores the classified world in column-major order so that the backing
// slice index is x*H + y. It is never mutated after Generate returns.
type Grid struct {
	W, H  int
	cells []tiles.Kind
}

func newGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]tiles.Kind, core.Size{W: w, H: h}.Area())}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.H }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x*g.H + y }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Size().Contains(x, y)
}

// At returns the tile at (x, y). The boolean is false for coordinates
// outside the grid, in which case the kind is meaningless.
func (g *Grid) At(x, y int) (tiles.Kind, bool) {
	if g == nil || !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[g.Index(x, y)], true
}

// Props returns the catalog record for the tile at (x, y).
func (g *Grid) Props(x, y int) (tiles.Properties, bool) {
	k, ok := g.At(x, y)
	if !ok {
		return tiles.Properties{}, false
	}
	return tiles.Props(k), true
}

// Cells exposes the backing slice read-only by convention.
func (g *Grid) Cells() []tiles.Kind { return g.cells }

// Counts returns how many cells of each kind the grid holds.
func (g *Grid) Counts() map[tiles.Kind]int {
	counts := make(map[tiles.Kind]int)
	for _, k := range g.cells {
		counts[k]++
	}
	return counts
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.W == o.W && g.H == o.H && slices.Equal(g.cells, o.cells)
}

func (g *Grid) set(x, y int, k tiles.Kind) { g.cells[g.Index(x, y)] = k }
