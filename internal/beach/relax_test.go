package beach

import "testing"

func TestBottomRowAlwaysStable(t *testing.T) {
	w := testWorld(8, 8)
	w.grid.SetOccupied(7, 3, true)
	if !w.isStable(7, 3) {
		t.Fatal("bottom row cells must always be stable")
	}
	w.dirty.MarkDirty(w.grid, 7, 3)
	w.relaxSand()
	if !w.grid.IsOccupied(7, 3) {
		t.Fatal("stable bottom cell must not move")
	}
}

func TestIsolatedCellFallsToTheFloor(t *testing.T) {
	w := testWorld(8, 8)
	w.grid.SetOccupied(2, 3, true)
	w.dirty.MarkDirty(w.grid, 2, 3)

	// One pass moves the cell one row; the re-marked dirty set carries the
	// fall across passes.
	for i := 0; i < 8; i++ {
		w.relaxSand()
	}
	if !w.grid.IsOccupied(7, 3) {
		t.Fatal("unsupported cell must come to rest on the bottom row")
	}
	if w.grid.OccupiedCells() != 1 {
		t.Fatalf("fall must conserve sand, got %d cells", w.grid.OccupiedCells())
	}
}

func TestSlideDownLeftPreferred(t *testing.T) {
	w := testWorld(8, 7)
	w.grid.SetOccupied(6, 3, true)
	w.grid.SetOccupied(5, 3, true)
	w.dirty.MarkDirty(w.grid, 5, 3)

	w.relaxSand()
	if w.grid.IsOccupied(5, 3) {
		t.Fatal("unsupported stacked cell must slide off")
	}
	if !w.grid.IsOccupied(6, 2) {
		t.Fatal("cell must slide down-left when both diagonals are open")
	}
}

func TestWallCountsAsSupport(t *testing.T) {
	w := testWorld(8, 7)
	w.grid.SetOccupied(6, 0, true)
	w.grid.SetOccupied(5, 0, true)
	// Below is solid and the down-left diagonal reads solid through the side
	// wall, so the stacked cell holds against the boundary.
	if !w.isStable(5, 0) {
		t.Fatal("cell stacked against the wall must be stable")
	}
	w.dirty.MarkDirty(w.grid, 5, 0)
	w.relaxSand()
	if !w.grid.IsOccupied(5, 0) {
		t.Fatal("wall-supported cell must not move")
	}
}

func TestSupportedCellStays(t *testing.T) {
	w := testWorld(8, 8)
	for col := 0; col < 8; col++ {
		w.grid.SetOccupied(7, col, true)
	}
	w.grid.SetOccupied(6, 4, true)
	before := w.grid.OccupiedCells()
	w.dirty.MarkDirty(w.grid, 6, 4)

	w.relaxSand()
	if !w.grid.IsOccupied(6, 4) {
		t.Fatal("cell resting on a full row must stay put")
	}
	if w.grid.OccupiedCells() != before {
		t.Fatal("relaxation of a stable bed must not move sand")
	}
}

func TestRelaxationConverges(t *testing.T) {
	w := testWorld(20, 20)
	// Flat bed with a one-wide tower on top; the tower cells have no diagonal
	// support and must cascade into a stable pile.
	for col := 0; col < 20; col++ {
		for row := 15; row < 20; row++ {
			w.grid.SetOccupied(row, col, true)
		}
	}
	for row := 10; row < 15; row++ {
		w.grid.SetOccupied(row, 10, true)
		w.dirty.MarkDirty(w.grid, row, 10)
	}
	before := w.grid.OccupiedCells()

	for i := 0; i < 100; i++ {
		w.relaxSand()
		if w.dirty.Len() == 0 {
			break
		}
	}
	if w.dirty.Len() != 0 {
		t.Fatalf("relaxation did not converge, %d dirty cells remain", w.dirty.Len())
	}
	if w.grid.OccupiedCells() != before {
		t.Fatalf("settling must conserve sand: %d -> %d", before, w.grid.OccupiedCells())
	}
	for col := 0; col < 20; col++ {
		for row := w.grid.SurfaceRow(col); row < 20; row++ {
			if !w.isStable(row, col) {
				t.Fatalf("cell (%d,%d) still unstable after convergence", row, col)
			}
		}
	}
}
