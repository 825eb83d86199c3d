package core

// ByteGrid stores byte-sized cell values for a toroidal board in row-major
// order. It is the backing store for both generation buffers.
type ByteGrid struct {
	size Size
	data []uint8
}

// NewByteGrid allocates a cleared grid, clamping non-positive dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{size: Size{W: w, H: h}, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return g.size }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.size.W + x }

// Wrap applies toroidal wrapping, so any integer coordinates land on the
// board. The double modulo keeps negative inputs positive.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.size.W + g.size.W) % g.size.W
	y = (y%g.size.H + g.size.H) % g.size.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Count returns how many cells currently hold the value v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Swap exchanges the backing slices of two same-sized grids. It is the
// generation-commit operation: the freshly written buffer becomes current.
func (g *ByteGrid) Swap(o *ByteGrid) {
	g.data, o.data = o.data, g.data
}
