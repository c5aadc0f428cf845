package beach

import (
	"github.com/jakecoffman/cp/v2"

	"coastline/internal/phys"
)

// rebuildSurface derives fresh collision geometry from the column surface
// profile and swaps it into the physics space: the old segments are removed
// before the new set is added, so the engine never sees a partial surface.
// One segment joins each adjacent pair of column surface points at one-cell
// thickness; where the profile steps by more than one cell a vertical blocker
// seals the face of the step so fast particles cannot slip through it.
func (w *World) rebuildSurface() {
	for _, shape := range w.surface {
		w.space.RemoveShape(shape)
	}
	w.surface = w.surface[:0]

	cell := w.cfg.CellSize
	mat := phys.Material{Friction: surfaceFriction, Elasticity: surfaceElasticity}
	filter := phys.FilterSand()

	cols := w.grid.cols
	tops := make([]int, cols)
	for col := 0; col < cols; col++ {
		tops[col] = w.grid.SurfaceRow(col)
	}

	for col := 0; col+1 < cols; col++ {
		a := cp.Vector{X: (float64(col) + 0.5) * cell, Y: float64(tops[col]) * cell}
		b := cp.Vector{X: (float64(col) + 1.5) * cell, Y: float64(tops[col+1]) * cell}
		w.surface = append(w.surface, phys.AddStaticSegment(w.space, a, b, cell/2, mat, filter))

		diff := tops[col] - tops[col+1]
		if diff > 1 || diff < -1 {
			x := float64(col+1) * cell
			top := cp.Vector{X: x, Y: float64(min(tops[col], tops[col+1])) * cell}
			bottom := cp.Vector{X: x, Y: float64(max(tops[col], tops[col+1])) * cell}
			w.surface = append(w.surface, phys.AddStaticSegment(w.space, top, bottom, cell/2, mat, filter))
		}
	}
}
