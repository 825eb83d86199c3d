// Package life implements Conway's Game of Life on a toroidal grid.
package life

import "term-life/internal/core"

const (
	dead  = 0
	alive = 1
)

// Grid holds two same-shaped cell buffers. All reads during a generation
// pass go to cur; writes go to nxt; the buffers swap only after the full
// pass, so neighbor counts always reflect the generation being replaced.
type Grid struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a cleared Grid with the provided dimensions. Dimension policy
// (the interactive [10,100] bounds) is enforced by the session layer, not
// here, so small boards remain constructible for kernel verification.
func New(w, h int) *Grid {
	return &Grid{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.cur.Size() }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cur.Size().W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cur.Size().H }

// Set assigns the state of cell (x, y) in the current buffer.
func (g *Grid) Set(x, y int, v bool) {
	if v {
		g.cur.Cells()[g.cur.Index(x, y)] = alive
		return
	}
	g.cur.Cells()[g.cur.Index(x, y)] = dead
}

// Get reports whether cell (x, y) is alive in the current buffer.
func (g *Grid) Get(x, y int) bool {
	return g.cur.Cells()[g.cur.Index(x, y)] == alive
}

// Alive returns the number of live cells in the current buffer.
func (g *Grid) Alive() int { return g.cur.Count(alive) }

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.nxt.Clear()
}

// CountNeighbors returns how many of the 8 toroidally wrapped neighbors of
// (x, y) are alive in the current buffer. The result is in [0, 8].
func (g *Grid) CountNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.cur.Wrap(x+dx, y+dy)
			n += int(g.cur.Cells()[g.cur.Index(nx, ny)])
		}
	}
	return n
}

// Step advances the grid by one generation: a live cell survives with 2 or 3
// live neighbors, a dead cell is born with exactly 3. The pass writes only
// to nxt and swaps buffers once every cell has been evaluated.
func (g *Grid) Step() {
	sz := g.cur.Size()
	w, h := sz.W, sz.H
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.CountNeighbors(x, y)
			idx := g.cur.Index(x, y)
			if (cur[idx] == alive && (n == 2 || n == 3)) || (cur[idx] == dead && n == 3) {
				nxt[idx] = alive
			} else {
				nxt[idx] = dead
			}
		}
	}
	g.cur.Swap(g.nxt)
}

// Frame is a read-only copy of one generation's cell states, safe to hand
// to a renderer while the grid keeps stepping.
type Frame struct {
	W, H  int
	Cells []uint8
}

// Alive reports whether cell (x, y) is alive in the frame.
func (f Frame) Alive(x, y int) bool { return f.Cells[y*f.W+x] == alive }

// Snapshot copies the current buffer into a Frame.
func (g *Grid) Snapshot() Frame {
	return Frame{
		W:     g.cur.Size().W,
		H:     g.cur.Size().H,
		Cells: append([]uint8(nil), g.cur.Cells()...),
	}
}
