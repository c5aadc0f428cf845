package beach

import (
	"testing"

	"coastline/pkg/core"
)

func TestImplicitVerticalBoundaries(t *testing.T) {
	g := NewSandGrid(8, 8)
	if g.IsOccupied(-1, 3) {
		t.Fatal("space above the grid must read empty")
	}
	if !g.IsOccupied(8, 3) {
		t.Fatal("space below the grid must read solid")
	}
	if !g.IsOccupied(100, 0) {
		t.Fatal("deep below the grid must read solid")
	}
}

func TestIsEdge(t *testing.T) {
	g := NewSandGrid(8, 8)
	// Solid block occupying rows 4..7 across all columns.
	for row := 4; row < 8; row++ {
		for col := 0; col < 8; col++ {
			g.SetOccupied(row, col, true)
		}
	}
	if !g.IsEdge(4, 3) {
		t.Fatal("surface cell with empty space above must be an edge")
	}
	if g.IsEdge(6, 3) {
		t.Fatal("interior cell must not be an edge")
	}
	if g.IsEdge(7, 0) {
		t.Fatal("bottom corner cell rests on the floor and wall, not an edge")
	}
	if g.IsEdge(2, 2) {
		t.Fatal("empty cell can never be an edge")
	}
}

func TestIsAdjacentToSolid(t *testing.T) {
	g := NewSandGrid(8, 8)
	g.SetOccupied(5, 4, true)

	if !g.IsAdjacentToSolid(4, 4) {
		t.Fatal("empty cell above sand must be a deposit site")
	}
	if !g.IsAdjacentToSolid(5, 3) {
		t.Fatal("empty cell left of sand must be a deposit site")
	}
	if g.IsAdjacentToSolid(2, 2) {
		t.Fatal("isolated empty cell must not be a deposit site")
	}
	if g.IsAdjacentToSolid(5, 4) {
		t.Fatal("occupied cell must not be a deposit site")
	}
	// The implicit floor counts as support for the bottom row.
	if !g.IsAdjacentToSolid(7, 0) {
		t.Fatal("bottom-row empty cell touches the implicit floor")
	}
	// Side walls do not count: an empty corner cell away from the floor has
	// no solid neighbor.
	if g.IsAdjacentToSolid(0, 0) {
		t.Fatal("side walls must not make a cell a deposit site")
	}
}

func TestSetOccupiedMaintainsCount(t *testing.T) {
	g := NewSandGrid(4, 4)
	g.SetOccupied(1, 1, true)
	g.SetOccupied(1, 1, true)
	if g.OccupiedCells() != 1 {
		t.Fatalf("expected 1 occupied cell, got %d", g.OccupiedCells())
	}
	g.SetOccupied(2, 2, true)
	g.SetOccupied(1, 1, false)
	if g.OccupiedCells() != 1 {
		t.Fatalf("expected 1 occupied cell after toggle, got %d", g.OccupiedCells())
	}
	// Out-of-range rows are ignored, not counted.
	g.SetOccupied(-1, 0, true)
	g.SetOccupied(4, 0, true)
	if g.OccupiedCells() != 1 {
		t.Fatalf("expected out-of-range writes to be ignored, got %d", g.OccupiedCells())
	}
}

func TestSurfaceRow(t *testing.T) {
	g := NewSandGrid(8, 4)
	if g.SurfaceRow(2) != 8 {
		t.Fatalf("empty column surface must sit at the bottom boundary, got %d", g.SurfaceRow(2))
	}
	g.SetOccupied(6, 2, true)
	g.SetOccupied(3, 2, true)
	if g.SurfaceRow(2) != 3 {
		t.Fatalf("expected surface at row 3, got %d", g.SurfaceRow(2))
	}
}

func TestSeedSlope(t *testing.T) {
	g := NewSandGrid(60, 80)
	rng := core.NewRNG(42)
	g.SeedSlope(rng, 20, 50, 10, 3)

	if g.SurfaceRow(0) != 20 {
		t.Fatalf("left end must anchor at row 20, got %d", g.SurfaceRow(0))
	}
	if g.SurfaceRow(79) != 50 {
		t.Fatalf("right end must anchor at row 50, got %d", g.SurfaceRow(79))
	}
	count := 0
	for col := 0; col < 80; col++ {
		top := g.SurfaceRow(col)
		if top < 20-4 || top > 50+4 {
			t.Fatalf("column %d surface %d outside the bump band", col, top)
		}
		for row := top; row < 60; row++ {
			if !g.IsOccupied(row, col) {
				t.Fatalf("column %d must be solid below its surface, hole at row %d", col, row)
			}
			count++
		}
	}
	if count != g.OccupiedCells() {
		t.Fatalf("occupied count %d does not match filled cells %d", g.OccupiedCells(), count)
	}
}

func TestSeedSlopeDeterministic(t *testing.T) {
	a := NewSandGrid(40, 50)
	b := NewSandGrid(40, 50)
	a.SeedSlope(core.NewRNG(7), 10, 30, 8, 2)
	b.SeedSlope(core.NewRNG(7), 10, 30, 8, 2)
	for col := 0; col < 50; col++ {
		if a.SurfaceRow(col) != b.SurfaceRow(col) {
			t.Fatalf("column %d differs between identically seeded slopes", col)
		}
	}
}

func TestMarkDirtyClipsToGrid(t *testing.T) {
	g := NewSandGrid(8, 8)
	d := NewDirtySet()
	d.MarkDirty(g, 0, 0)
	if d.Len() != 4 {
		t.Fatalf("corner mark must cover 4 in-range cells, got %d", d.Len())
	}
	d.Clear()
	d.MarkDirty(g, 4, 4)
	if d.Len() != 9 {
		t.Fatalf("interior mark must cover 9 cells, got %d", d.Len())
	}
}

func TestDirtySetDrainOrder(t *testing.T) {
	g := NewSandGrid(16, 16)
	d := NewDirtySet()
	d.MarkDirty(g, 3, 7)
	d.MarkDirty(g, 10, 2)

	refs := d.Drain()
	if len(refs) != 18 {
		t.Fatalf("expected 18 drained cells, got %d", len(refs))
	}
	for i := 1; i < len(refs); i++ {
		prev, cur := refs[i-1], refs[i]
		if cur.row > prev.row {
			t.Fatalf("drain order must be bottom-up: %v before %v", prev, cur)
		}
		if cur.row == prev.row && cur.col <= prev.col {
			t.Fatalf("drain order must break row ties by ascending column: %v before %v", prev, cur)
		}
	}
	if d.Len() != 0 {
		t.Fatalf("drain must empty the set, %d cells remain", d.Len())
	}
	if refs := d.Drain(); refs != nil {
		t.Fatalf("draining an empty set must return nil, got %d cells", len(refs))
	}
}
