//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, logger, colony, err := app.Bootstrap(flags)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	defer colony.Close()

	game := app.New(colony, colony.Matrix().CellSize(), flags.Scale, flags.HUDWidth, cfg.Sim.Seed)
	size := colony.Size()

	tps := cfg.Sim.TPS
	if tps <= 0 {
		tps = 30
	}
	ebiten.SetWindowTitle("lifegrid: " + colony.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*flags.Scale+flags.HUDWidth, size.H*flags.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
