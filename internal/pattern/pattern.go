// Package pattern holds the fixed library of seed patterns and their
// placement logic.
package pattern

import (
	"errors"
	"fmt"

	"term-life/internal/life"
)

// ErrSelection reports a pattern choice outside the fixed library.
var ErrSelection = errors.New("pattern: selection out of range")

// Kind identifies one of the built-in patterns.
type Kind int

const (
	Glider Kind = iota
	Blinker
	Block
	Beacon
)

// Offset is a live-cell coordinate relative to the placement anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named, immutable set of live-cell offsets.
type Pattern struct {
	Name    string
	Offsets []Offset
}

var library = map[Kind]Pattern{
	Glider: {Name: "Glider", Offsets: []Offset{
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	}},
	Blinker: {Name: "Blinker", Offsets: []Offset{
		{0, 0}, {1, 0}, {2, 0},
	}},
	Block: {Name: "Block", Offsets: []Offset{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	}},
	Beacon: {Name: "Beacon", Offsets: []Offset{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{2, 2}, {3, 2}, {2, 3}, {3, 3},
	}},
}

// Kinds lists the library in menu order.
func Kinds() []Kind { return []Kind{Glider, Blinker, Block, Beacon} }

// Get returns the pattern definition for a kind.
func Get(k Kind) Pattern { return library[k] }

// String returns the pattern's display name.
func (k Kind) String() string {
	p, ok := library[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return p.Name
}

// FromChoice maps a 1-based menu choice onto a Kind.
func FromChoice(n int) (Kind, error) {
	kinds := Kinds()
	if n < 1 || n > len(kinds) {
		return 0, fmt.Errorf("%w: %d", ErrSelection, n)
	}
	return kinds[n-1], nil
}

// bounds returns the bounding box of the pattern's offsets.
func (p Pattern) bounds() (minX, minY, maxX, maxY int) {
	minX, minY = p.Offsets[0].DX, p.Offsets[0].DY
	maxX, maxY = minX, minY
	for _, o := range p.Offsets[1:] {
		if o.DX < minX {
			minX = o.DX
		}
		if o.DX > maxX {
			maxX = o.DX
		}
		if o.DY < minY {
			minY = o.DY
		}
		if o.DY > maxY {
			maxY = o.DY
		}
	}
	return minX, minY, maxX, maxY
}

// Anchor computes where the pattern lands on a w×h board: centered, pulled
// inward so every offset stays in bounds. When the board cannot fit the
// pattern even after adjustment it falls back to a fixed anchor two cells
// in from the top-left corner. The fallback is deterministic; cells that
// still wander off a hopelessly small board are clipped by Place.
func (p Pattern) Anchor(w, h int) (int, int) {
	minX, minY, maxX, maxY := p.bounds()

	ax := w/2 - (minX+maxX)/2
	ay := h/2 - (minY+maxY)/2

	if ax+maxX >= w {
		ax = w - 1 - maxX
	}
	if ay+maxY >= h {
		ay = h - 1 - maxY
	}
	if ax+minX < 0 || ay+minY < 0 {
		ax, ay = 2-minX, 2-minY
	}
	return ax, ay
}

// Place clears nothing; it writes the kind's live cells into the grid at
// the computed anchor. Callers clear the board first when loading a fresh
// pattern.
func Place(g *life.Grid, k Kind) {
	p := Get(k)
	w, h := g.Width(), g.Height()
	ax, ay := p.Anchor(w, h)
	for _, o := range p.Offsets {
		x, y := ax+o.DX, ay+o.DY
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		g.Set(x, y, true)
	}
}
