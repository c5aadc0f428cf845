package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement for the app
// layer: an identity, a cell grid for the painter, and tick/reset hooks.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// DeltaSim is implemented by simulations that advance by a real elapsed-time
// delta instead of a fixed tick. The app prefers it over Step when present.
type DeltaSim interface {
	Advance(dt float64)
}

// Particle is a render snapshot of one water particle in continuous space.
type Particle struct {
	X, Y      float64
	Sandiness int
}

// ParticleViewer exposes particle positions for rendering on top of the cell
// grid. Probed by type assertion, like the other optional view interfaces.
type ParticleViewer interface {
	Particles() []Particle
}

// WallViewer exposes the wave wall pose for rendering.
type WallViewer interface {
	WallSpan() (x, thickness float64)
}

// CellMetric reports the continuous span of one grid cell, letting the app
// convert between cell pixels and simulation coordinates.
type CellMetric interface {
	CellSize() float64
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
