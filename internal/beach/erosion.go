package beach

// sandinessMax bounds the per-particle sand load. Pickup stops at the upper
// bound, deposit at zero, so the scalar can never leave [0, sandinessMax].
const sandinessMax = 10

// exchangeProbs derives the pickup and deposit probabilities for a particle's
// current load. Clean particles lean toward pickup, loaded ones toward
// deposit, which makes the exchange self-limiting.
func exchangeProbs(sandiness int, p Params) (pickup, deposit float64) {
	load := float64(sandiness) / sandinessMax
	pickup = p.PickupProbMax - load*(p.PickupProbMax-p.PickupProbMin)
	deposit = p.DepositProbMin + load*(p.DepositProbMax-p.DepositProbMin)
	return pickup, deposit
}

// processErosion runs the stochastic pickup/deposit exchange for every water
// particle. Each particle mutates at most one cell per frame; the changed flag
// accumulates across particles so the collision surface is rebuilt once.
func (w *World) processErosion() {
	radius := w.cfg.Params.ScanRadius
	if radius < 1 {
		radius = 1
	}
	cell := w.cfg.CellSize
	for _, p := range w.particles {
		pos := p.body.Position()
		row := int(pos.Y / cell)
		col := int(pos.X / cell)
		if w.exchangeAt(p, row, col, radius) {
			w.changed = true
		}
	}
}

// exchangeAt scans the neighborhood around the particle's cell and applies at
// most one pickup or deposit. It reports whether the grid changed.
func (w *World) exchangeAt(p *Particle, row, col, radius int) bool {
	pickupProb, depositProb := exchangeProbs(p.sandiness, w.cfg.Params)
	for dr := -radius; dr <= radius; dr++ {
		r := row + dr
		if r < 0 || r >= w.grid.rows {
			continue
		}
		for dc := -radius; dc <= radius; dc++ {
			c := col + dc
			if c < 0 || c >= w.grid.cols {
				continue
			}
			if w.grid.IsOccupied(r, c) {
				if p.sandiness >= sandinessMax || !w.grid.IsEdge(r, c) {
					continue
				}
				if w.rng.Float64() < pickupProb {
					w.grid.SetOccupied(r, c, false)
					w.dirty.MarkDirty(w.grid, r, c)
					p.sandiness++
					return true
				}
			} else {
				if p.sandiness <= 0 || !w.grid.IsAdjacentToSolid(r, c) {
					continue
				}
				if w.rng.Float64() < depositProb {
					w.grid.SetOccupied(r, c, true)
					w.dirty.MarkDirty(w.grid, r, c)
					p.sandiness--
					return true
				}
			}
		}
	}
	return false
}
