package beach

// isStable reports whether an occupied cell has enough support to stay put:
// the cell below plus one diagonal below, or a same-side pair of a diagonal
// and a lateral neighbor. The bottom row is always stable and the side walls
// count as support.
func (w *World) isStable(row, col int) bool {
	g := w.grid
	if row >= g.rows-1 {
		return true
	}
	below := g.solidAt(row+1, col)
	belowLeft := g.solidAt(row+1, col-1)
	belowRight := g.solidAt(row+1, col+1)
	if below && (belowLeft || belowRight) {
		return true
	}
	if belowLeft && g.solidAt(row, col-1) {
		return true
	}
	if belowRight && g.solidAt(row, col+1) {
		return true
	}
	return false
}

// relaxSand settles unstable dirty cells by one move each, bottom rows first.
// A cell falls straight down when the cell below is empty and otherwise slides
// down-left, with down-right as the fallback. Moves re-mark both
// neighborhoods dirty, so large disturbances cascade over the following
// frames instead of looping inside one. Single-pass convergence is a
// heuristic, not a guarantee; big erosion events may settle over several
// frames, which is fine for a real-time view.
func (w *World) relaxSand() {
	for _, ref := range w.dirty.Drain() {
		row, col := ref.row, ref.col
		if !w.grid.IsOccupied(row, col) || w.isStable(row, col) {
			continue
		}
		var target cellRef
		switch {
		case !w.grid.solidAt(row+1, col):
			target = cellRef{row + 1, col}
		case !w.grid.solidAt(row+1, col-1):
			target = cellRef{row + 1, col - 1}
		case !w.grid.solidAt(row+1, col+1):
			target = cellRef{row + 1, col + 1}
		default:
			continue
		}
		w.grid.SetOccupied(row, col, false)
		w.grid.SetOccupied(target.row, target.col, true)
		w.dirty.MarkDirty(w.grid, row, col)
		w.dirty.MarkDirty(w.grid, target.row, target.col)
		w.changed = true
	}
}
