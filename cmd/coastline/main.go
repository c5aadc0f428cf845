//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"coastline/internal/app"
	"coastline/internal/beach"
	"coastline/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sim core.Sim
	if cfg.ConfigFile != "" {
		beachCfg, err := beach.LoadFile(cfg.ConfigFile)
		if err != nil {
			log.Fatal(err)
		}
		sim = beach.NewWithConfig(beachCfg)
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim = factory(nil)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	size := sim.Size()

	width := size.W * cfg.Scale
	if cfg.HUD {
		width += app.HUDWidth
	}
	ebiten.SetWindowTitle("coastline — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(width, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
