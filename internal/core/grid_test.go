package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(7, 5)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 6, 0},
		{7, 0, 0, 0},
		{0, -1, 0, 4},
		{0, 5, 0, 0},
		{-8, -6, 6, 4},
		{14, 10, 0, 0},
	}
	for _, c := range cases {
		wx, wy := g.Wrap(c.x, c.y)
		if wx != c.wx || wy != c.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestByteGridIndexCoversEveryCell(t *testing.T) {
	g := NewByteGrid(4, 3)
	seen := map[int]bool{}
	for y := 0; y < g.Size().H; y++ {
		for x := 0; x < g.Size().W; x++ {
			idx := g.Index(x, y)
			if idx < 0 || idx >= len(g.Cells()) {
				t.Fatalf("Index(%d,%d) = %d out of range", x, y, idx)
			}
			if seen[idx] {
				t.Fatalf("Index(%d,%d) = %d already used", x, y, idx)
			}
			seen[idx] = true
		}
	}
}

func TestByteGridSwap(t *testing.T) {
	a := NewByteGrid(3, 3)
	b := NewByteGrid(3, 3)
	a.Cells()[0] = 7
	b.Cells()[8] = 9

	a.Swap(b)

	if a.Cells()[0] != 0 || a.Cells()[8] != 9 {
		t.Fatal("Swap did not exchange backing slices")
	}
	if b.Cells()[0] != 7 {
		t.Fatal("Swap lost the original contents")
	}
}

func TestByteGridCount(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Cells()[1] = 1
	g.Cells()[4] = 1
	if n := g.Count(1); n != 2 {
		t.Fatalf("Count(1) = %d, expected 2", n)
	}
	g.Clear()
	if n := g.Count(1); n != 0 {
		t.Fatalf("Count(1) = %d after Clear, expected 0", n)
	}
}
