//go:build ebiten

package app

import (
	"image/color"
	"time"

	"coastline/internal/core"
	"coastline/internal/render"
	"coastline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	skyColor   = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	sandColor  = color.RGBA{R: 238, G: 203, B: 173, A: 255}
	waterColor = color.RGBA{R: 64, G: 164, B: 223, A: 255}
	wallColor  = color.RGBA{R: 100, G: 100, B: 150, A: 255}
)

// Game adapts a core simulation to the ebiten.Game interface. It renders the
// sand grid as a scaled image and draws water particles and the wave wall on
// top of it in continuous coordinates.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	dots    *render.DotPainter
	hud     *ui.HUD
	clock   *core.FrameClock

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, showHUD bool) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		dots:    render.NewDotPainter(),
		clock:   core.NewFrameClock(time.Second / 30),
		scale:   scale,
		seed:    seed,
	}
	if showHUD {
		g.hud = ui.NewHUD(sim, HUDWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation. Sims that
// implement core.DeltaSim get the measured wall-clock delta; others tick at
// their fixed step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}

	dt := g.clock.Delta()
	if (!g.paused) || g.tickOnce {
		if ds, ok := g.sim.(core.DeltaSim); ok && !g.tickOnce {
			ds.Advance(dt)
		} else {
			g.sim.Step()
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.painter.Blit(screen, g.sim.Cells(), sandColor, skyColor, g.scale)

	// Continuous overlays use world pixels; one grid cell spans CellSize of
	// them, so the world-to-screen factor is scale/CellSize.
	factor := float64(g.scale)
	if metric, ok := g.sim.(core.CellMetric); ok && metric.CellSize() > 0 {
		factor = float64(g.scale) / metric.CellSize()
	}
	height := float64(g.sim.Size().H * g.scale)

	if walls, ok := g.sim.(core.WallViewer); ok {
		x, thickness := walls.WallSpan()
		g.dots.Rect(screen, (x-thickness)*factor, 0, 2*thickness*factor, height, wallColor)
	}
	if viewer, ok := g.sim.(core.ParticleViewer); ok {
		size := 5 * factor
		for _, p := range viewer.Particles() {
			g.dots.Dot(screen, p.X*factor, p.Y*factor, size, particleColor(p.Sandiness))
		}
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.sim.Size().H*g.scale)
	}
}

// particleColor tints water toward the sand color as its load grows.
func particleColor(sandiness int) color.RGBA {
	t := float64(sandiness) / 10 * 0.6
	if t > 0.6 {
		t = 0.6
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: lerp(waterColor.R, sandColor.R),
		G: lerp(waterColor.G, sandColor.G),
		B: lerp(waterColor.B, sandColor.B),
		A: 255,
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += HUDWidth
	}
	return w, s.H * g.scale
}
