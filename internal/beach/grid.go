package beach

import (
	"sort"

	"coastline/pkg/core"
)

// cellRef identifies one grid cell by row and column.
type cellRef struct {
	row, col int
}

// SandGrid stores beach occupancy in row-major order. Row 0 is the top of the
// world. Rows at or below the grid bottom are implicitly solid, rows above the
// top are implicitly empty; columns are never queried out of range through the
// public operations.
type SandGrid struct {
	rows, cols int
	occ        []bool
	occupied   int
}

// NewSandGrid allocates an empty grid with the given dimensions.
func NewSandGrid(rows, cols int) *SandGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &SandGrid{rows: rows, cols: cols, occ: make([]bool, rows*cols)}
}

// Rows reports the grid height in cells.
func (g *SandGrid) Rows() int { return g.rows }

// Cols reports the grid width in cells.
func (g *SandGrid) Cols() int { return g.cols }

// OccupiedCells reports how many cells currently hold sand.
func (g *SandGrid) OccupiedCells() int { return g.occupied }

// IsOccupied reports cell occupancy, applying the implicit vertical boundary
// rule: everything below the grid is solid, everything above it is empty.
func (g *SandGrid) IsOccupied(row, col int) bool {
	if row < 0 {
		return false
	}
	if row >= g.rows {
		return true
	}
	return g.occ[row*g.cols+col]
}

// solidAt is IsOccupied with the side walls treated as solid. The stability
// and edge helpers use it so cells in the outermost columns rest against the
// world boundary instead of reading out of range.
func (g *SandGrid) solidAt(row, col int) bool {
	if col < 0 || col >= g.cols {
		return true
	}
	return g.IsOccupied(row, col)
}

// IsEdge reports whether an occupied cell has at least one empty 4-neighbor
// and is therefore exposed to erosion.
func (g *SandGrid) IsEdge(row, col int) bool {
	if !g.IsOccupied(row, col) {
		return false
	}
	return !g.solidAt(row-1, col) || !g.solidAt(row+1, col) ||
		!g.solidAt(row, col-1) || !g.solidAt(row, col+1)
}

// IsAdjacentToSolid reports whether an empty cell touches sand (or the
// implicit floor) on at least one 4-neighbor, making it a deposit site.
func (g *SandGrid) IsAdjacentToSolid(row, col int) bool {
	if g.IsOccupied(row, col) {
		return false
	}
	if g.IsOccupied(row-1, col) || g.IsOccupied(row+1, col) {
		return true
	}
	if col > 0 && g.IsOccupied(row, col-1) {
		return true
	}
	if col < g.cols-1 && g.IsOccupied(row, col+1) {
		return true
	}
	return false
}

// SetOccupied writes cell occupancy. Writes outside the grid rows are ignored;
// the implicit boundary rows are not writable.
func (g *SandGrid) SetOccupied(row, col int, solid bool) {
	if row < 0 || row >= g.rows {
		return
	}
	idx := row*g.cols + col
	if g.occ[idx] == solid {
		return
	}
	g.occ[idx] = solid
	if solid {
		g.occupied++
	} else {
		g.occupied--
	}
}

// SurfaceRow returns the topmost occupied row of a column, or Rows when the
// column holds no sand (surface at the bottom boundary).
func (g *SandGrid) SurfaceRow(col int) int {
	for row := 0; row < g.rows; row++ {
		if g.occ[row*g.cols+col] {
			return row
		}
	}
	return g.rows
}

// SeedSlope fills the grid from a gently undulating surface: a linear slope
// from leftRow to rightRow, perturbed at bumpCount+1 control points by up to
// bumpHeight cells (zero at both ends) and interpolated per column. Every cell
// at or below the surface row becomes solid.
func (g *SandGrid) SeedSlope(rng *core.RNG, leftRow, rightRow float64, bumpCount int, bumpHeight float64) {
	for i := range g.occ {
		g.occ[i] = false
	}
	g.occupied = 0

	if bumpCount < 1 {
		bumpCount = 1
	}
	ctrl := make([]float64, bumpCount+1)
	for i := range ctrl {
		t := float64(i) / float64(bumpCount)
		h := leftRow + t*(rightRow-leftRow)
		if i != 0 && i != bumpCount {
			h += rng.Range(-bumpHeight, bumpHeight)
		}
		ctrl[i] = h
	}

	span := g.cols - 1
	if span < 1 {
		span = 1
	}
	for col := 0; col < g.cols; col++ {
		t := float64(col) / float64(span) * float64(bumpCount)
		i := int(t)
		if i >= bumpCount {
			i = bumpCount - 1
		}
		frac := t - float64(i)
		surf := ctrl[i] + frac*(ctrl[i+1]-ctrl[i])
		top := int(surf + 0.5)
		if top < 0 {
			top = 0
		}
		for row := top; row < g.rows; row++ {
			g.occ[row*g.cols+col] = true
			g.occupied++
		}
	}
}

// DirtySet collects cells pending a stability re-check after nearby occupancy
// changes. Draining returns them bottom-up so support relationships resolve in
// a single pass.
type DirtySet struct {
	cells map[cellRef]struct{}
}

// NewDirtySet allocates an empty set.
func NewDirtySet() *DirtySet {
	return &DirtySet{cells: make(map[cellRef]struct{})}
}

// MarkDirty adds the cell and its eight neighbors, clipped to the grid.
func (d *DirtySet) MarkDirty(g *SandGrid, row, col int) {
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			d.cells[cellRef{r, c}] = struct{}{}
		}
	}
}

// Len reports how many cells are pending.
func (d *DirtySet) Len() int { return len(d.cells) }

// Clear drops all pending cells.
func (d *DirtySet) Clear() { clear(d.cells) }

// Drain clears the set and returns the pending cells ordered by descending
// row, then ascending column. The full ordering keeps relaxation deterministic
// under a fixed seed; map iteration alone would not be.
func (d *DirtySet) Drain() []cellRef {
	if len(d.cells) == 0 {
		return nil
	}
	refs := make([]cellRef, 0, len(d.cells))
	for ref := range d.cells {
		refs = append(refs, ref)
	}
	clear(d.cells)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].row != refs[j].row {
			return refs[i].row > refs[j].row
		}
		return refs[i].col < refs[j].col
	})
	return refs
}
