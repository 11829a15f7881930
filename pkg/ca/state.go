package ca

import "fmt"

// NewState validates a 1D ring configuration. Cells must be 0 or 1 and the
// ring must be non-empty. The returned slice is a copy, so later mutation of
// the input does not leak into a run.
func NewState(cells []uint8) ([]uint8, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("state must contain at least one cell")
	}
	out := make([]uint8, len(cells))
	for i, c := range cells {
		if c > 1 {
			return nil, fmt.Errorf("cell %d has value %d, want 0 or 1", i, c)
		}
		out[i] = c
	}
	return out, nil
}

// SingleSeed returns a width-n state with a single live cell at the center.
func SingleSeed(n int) ([]uint8, error) {
	if n <= 0 {
		return nil, fmt.Errorf("state width must be positive, got %d", n)
	}
	s := make([]uint8, n)
	s[n/2] = 1
	return s, nil
}

// Grid stores a 2D binary configuration in row-major order. Both axes wrap,
// so the topology is a torus.
type Grid struct {
	W, H  int
	cells []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions %dx%d must be positive", w, h)
	}
	return Grid{W: w, H: h, cells: make([]uint8, w*h)}, nil
}

// GridFromRows builds a grid from row slices. Empty grids, ragged rows and
// non-binary cells are rejected.
func GridFromRows(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("grid must contain at least one row and column")
	}
	w := len(rows[0])
	g := Grid{W: w, H: len(rows), cells: make([]uint8, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("row %d has length %d, want %d", y, len(row), w)
		}
		for x, c := range row {
			if c > 1 {
				return Grid{}, fmt.Errorf("cell (%d,%d) has value %d, want 0 or 1", x, y, c)
			}
			g.cells[y*w+x] = c
		}
	}
	return g, nil
}

// Cells exposes the backing slice in row-major order.
func (g Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the cell at (x, y) with wrapping.
func (g Grid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.cells[y*g.W+x]
}

// Set writes the cell at (x, y) with wrapping. Values other than 0 are
// stored as 1.
func (g Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	if v != 0 {
		v = 1
	}
	g.cells[y*g.W+x] = v
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := Grid{W: g.W, H: g.H, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

func (g Grid) validate() error {
	if g.W <= 0 || g.H <= 0 || len(g.cells) != g.W*g.H {
		return fmt.Errorf("grid %dx%d with %d cells is malformed", g.W, g.H, len(g.cells))
	}
	return nil
}
