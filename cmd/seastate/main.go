//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seastate/internal/app"
	"seastate/pkg/ocean"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	waveCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	field, err := ocean.Generate(waveCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(waveCfg, field, cfg)

	ebiten.SetWindowTitle("seastate — " + cfg.Preset)
	ebiten.SetWindowSize(cfg.GridW*cfg.Scale, cfg.GridH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
