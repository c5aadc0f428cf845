// Package beach implements the granular coastline engine: a sand occupancy
// automaton coupled to a rigid-body water simulation through a stochastic
// erosion/deposition exchange, with a kinematically driven wall generating
// waves.
package beach

import (
	"github.com/jakecoffman/cp/v2"

	"coastline/internal/core"
	"coastline/internal/phys"
	pkgcore "coastline/pkg/core"
)

// Physical constants carried from the original tuning. Distances are pixels,
// the y axis grows downward, gravity is positive-down.
const (
	gravityY         = 900.0
	solverIterations = 10

	particleRadius     = 2.5
	particleMass       = 0.5
	particleFriction   = 0.07
	particleElasticity = 0.05
	particleSpacing    = particleRadius * 2.8

	surfaceFriction   = 0.8
	surfaceElasticity = 0.1

	boundaryFriction   = 0.5
	boundaryElasticity = 0.1

	wallThickness  = 20.0
	wallFriction   = 0.3
	wallElasticity = 0.2
	wallMargin     = 40.0

	substepDuration = 1.0 / 60
	maxFrameDelta   = 1.0 / 30
	frameDelta      = 1.0 / 60

	penetrationDamp = 0.25
)

// Particle couples a water body in the physics space with the core-owned
// sandiness scalar.
type Particle struct {
	body      *cp.Body
	shape     *cp.Shape
	sandiness int
}

// World is the frame orchestrator. It owns the sand grid, the dirty set, the
// water particles and the wave wall, and sequences wave drive, physics
// substeps, erosion, relaxation, geometry rebuild and safety clamps each tick.
type World struct {
	cfg Config

	grid    *SandGrid
	dirty   *DirtySet
	changed bool

	space     *cp.Space
	particles []*Particle
	wallBody  *cp.Body
	wallShape *cp.Shape
	surface   []*cp.Shape

	wallBaseX float64
	elapsed   float64
	seed      int64
	rng       *pkgcore.RNG

	display      []uint8
	displayStale bool
}

// New returns a beach world with the given grid dimensions using defaults.
func New(cols, rows int) *World {
	cfg := DefaultConfig()
	cfg.Cols = cols
	cfg.Rows = rows
	return NewWithConfig(cfg)
}

// NewWithConfig returns a beach world configured from the provided options.
// Call Reset before stepping.
func NewWithConfig(cfg Config) *World {
	if cfg.Cols <= 0 {
		cfg.Cols = 1
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 5
	}
	w := &World{
		cfg:     cfg,
		grid:    NewSandGrid(cfg.Rows, cfg.Cols),
		dirty:   NewDirtySet(),
		space:   phys.NewSpace(gravityY, solverIterations),
		rng:     pkgcore.NewRNG(cfg.Seed),
		display: make([]uint8, cfg.Rows*cfg.Cols),
	}
	w.createBounds()
	w.createWall()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "beach" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.cols, H: w.grid.rows} }

// CellSize reports the continuous span of one grid cell in pixels.
func (w *World) CellSize() float64 { return w.cfg.CellSize }

// Grid exposes the sand occupancy grid.
func (w *World) Grid() *SandGrid { return w.grid }

// Elapsed reports the simulated time since the last reset.
func (w *World) Elapsed() float64 { return w.elapsed }

// ParticleCount reports how many water particles exist.
func (w *World) ParticleCount() int { return len(w.particles) }

// worldSize returns the continuous extent in pixels.
func (w *World) worldSize() (width, height float64) {
	return float64(w.grid.cols) * w.cfg.CellSize, float64(w.grid.rows) * w.cfg.CellSize
}

func (w *World) createBounds() {
	width, height := w.worldSize()
	mat := phys.Material{Friction: boundaryFriction, Elasticity: boundaryElasticity}
	filter := phys.FilterBoundary()
	// Left wall, top lid, floor beneath the grid, and a backup wall at the far
	// right that catches anything slipping past the wave wall.
	phys.AddStaticSegment(w.space, cp.Vector{X: -10, Y: 0}, cp.Vector{X: -10, Y: height}, 10, mat, filter)
	phys.AddStaticSegment(w.space, cp.Vector{X: 0, Y: -10}, cp.Vector{X: width, Y: -10}, 10, mat, filter)
	phys.AddStaticSegment(w.space, cp.Vector{X: 0, Y: height + 20}, cp.Vector{X: width, Y: height + 20}, 20, mat, filter)
	phys.AddStaticSegment(w.space, cp.Vector{X: width + 10, Y: 0}, cp.Vector{X: width + 10, Y: height}, 10, mat, filter)
}

func (w *World) createWall() {
	width, height := w.worldSize()
	w.wallBaseX = width - wallMargin - w.cfg.Params.WaveSlowAmp
	w.wallBody, w.wallShape = phys.AddKinematicSegment(w.space,
		cp.Vector{X: w.wallBaseX, Y: height / 2},
		cp.Vector{Y: -height / 2}, cp.Vector{Y: height / 2},
		wallThickness,
		phys.Material{Friction: wallFriction, Elasticity: wallElasticity},
		phys.FilterWall())
}

func (w *World) waveParams() WaveParams {
	p := w.cfg.Params
	return WaveParams{
		FastAmp:    p.WaveFastAmp,
		FastFreq:   p.WaveFastFreq,
		SlowAmp:    p.WaveSlowAmp,
		SlowPeriod: p.WaveSlowPeriod,
	}
}

// updateWaveWall writes the driven pose into the kinematic wall body. The
// engine applies no forces to it; it only pushes the water it touches.
func (w *World) updateWaveWall() {
	offset, velocity := WaveOffset(w.elapsed, w.waveParams())
	pos := w.wallBody.Position()
	w.wallBody.SetPosition(cp.Vector{X: w.wallBaseX + offset, Y: pos.Y})
	w.wallBody.SetVelocity(velocity, 0)
}

func (w *World) spawnWater() {
	_, height := w.worldSize()
	mat := phys.Material{Friction: particleFriction, Elasticity: particleElasticity}
	filter := phys.FilterWater()
	reach := w.cfg.Params.WaveFastAmp + w.cfg.Params.WaveSlowAmp
	maxX := w.wallBaseX - reach - wallThickness - particleRadius*2
	fillTop := w.cfg.Params.FillTopFrac * height
	cell := w.cfg.CellSize
	for x := particleRadius * 2; x < maxX; x += particleSpacing {
		col := int(x / cell)
		if col >= w.grid.cols {
			col = w.grid.cols - 1
		}
		surfaceY := float64(w.grid.SurfaceRow(col)) * cell
		for y := fillTop; y < surfaceY-particleRadius*2; y += particleSpacing {
			px := x + w.rng.Range(-1, 1)
			py := y + w.rng.Range(-1, 1)
			body, shape := phys.AddCircleBody(w.space, cp.Vector{X: px, Y: py}, particleRadius, particleMass, mat, filter)
			w.particles = append(w.particles, &Particle{body: body, shape: shape})
		}
	}
}

// Reset rebuilds the beach from scratch: a fresh undulating slope, a full
// complement of water particles, and the wall back at phase zero. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.rng = pkgcore.NewRNG(seed)
	w.elapsed = 0

	for _, p := range w.particles {
		w.space.RemoveShape(p.shape)
		w.space.RemoveBody(p.body)
	}
	w.particles = w.particles[:0]
	w.dirty.Clear()
	w.changed = false

	rows := float64(w.grid.rows)
	w.grid.SeedSlope(w.rng,
		w.cfg.Params.ShoreLeftFrac*rows,
		w.cfg.Params.ShoreRightFrac*rows,
		w.cfg.Params.BumpCount,
		w.cfg.Params.BumpHeight)

	width, height := w.worldSize()
	w.wallBaseX = width - wallMargin - w.cfg.Params.WaveSlowAmp
	w.wallBody.SetPosition(cp.Vector{X: w.wallBaseX, Y: height / 2})
	w.wallBody.SetVelocity(0, 0)

	w.rebuildSurface()
	w.spawnWater()
	w.displayStale = true
}

// Step advances one nominal frame. The GUI adapter calls Advance with the
// real clamped delta instead.
func (w *World) Step() { w.Advance(frameDelta) }

// Advance runs one orchestrator tick: clamp the delta, drive the wall, run
// the physics substeps, exchange material, settle the bed, rebuild collision
// geometry if anything moved, then apply the safety clamps. Substep count is
// max(1, floor(dt/substep)); leftover time is dropped rather than accumulated.
func (w *World) Advance(dt float64) {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	w.elapsed += dt
	w.updateWaveWall()

	steps := int(dt / substepDuration)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		w.space.Step(substepDuration)
	}

	w.processErosion()
	w.relaxSand()
	if w.changed {
		w.rebuildSurface()
		w.changed = false
		w.displayStale = true
	}
	w.clampToWall()
	w.clampToSurface()
}

// clampToWall pushes any particle that slipped past the wall's inner face
// back inside it with the outward velocity component zeroed.
func (w *World) clampToWall() {
	limit := w.wallBody.Position().X - wallThickness - particleRadius - 1
	for _, p := range w.particles {
		pos := p.body.Position()
		if pos.X <= limit {
			continue
		}
		p.body.SetPosition(cp.Vector{X: limit, Y: pos.Y})
		vel := p.body.Velocity()
		if vel.X > 0 {
			p.body.SetVelocity(0, vel.Y)
		}
	}
}

// clampToSurface lifts any particle found inside solid sand to just above the
// local surface, damping (not zeroing) its downward velocity so it does not
// stick to the bed.
func (w *World) clampToSurface() {
	cell := w.cfg.CellSize
	for _, p := range w.particles {
		pos := p.body.Position()
		col := int(pos.X / cell)
		if col < 0 || col >= w.grid.cols {
			continue
		}
		row := int(pos.Y / cell)
		if row < 0 || !w.grid.IsOccupied(row, col) {
			continue
		}
		top := float64(w.grid.SurfaceRow(col))*cell - particleRadius
		p.body.SetPosition(cp.Vector{X: pos.X, Y: top})
		vel := p.body.Velocity()
		if vel.Y > 0 {
			p.body.SetVelocity(vel.X, vel.Y*penetrationDamp)
		}
	}
}

// Cells exposes the occupancy display buffer: 1 for sand, 0 for open space.
func (w *World) Cells() []uint8 {
	if w.displayStale {
		for i, solid := range w.grid.occ {
			if solid {
				w.display[i] = 1
			} else {
				w.display[i] = 0
			}
		}
		w.displayStale = false
	}
	return w.display
}

// Particles returns a render snapshot of water positions and loads, queried
// pull-based once per rendered frame.
func (w *World) Particles() []core.Particle {
	out := make([]core.Particle, len(w.particles))
	for i, p := range w.particles {
		pos := p.body.Position()
		out[i] = core.Particle{X: pos.X, Y: pos.Y, Sandiness: p.sandiness}
	}
	return out
}

// WallSpan reports the wave wall's current center x and half-thickness.
func (w *World) WallSpan() (x, thickness float64) {
	return w.wallBody.Position().X, wallThickness
}

func init() {
	core.Register("beach", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
