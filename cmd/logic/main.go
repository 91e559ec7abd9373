//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"pixlogic/internal/app"
	"pixlogic/internal/circuit"
	"pixlogic/internal/imageio"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}

	engine := circuit.New(cfg.CircuitConfig(), circuit.WithLogger(logger.WithField("component", "circuit")))
	if cfg.Image != "" {
		pix, w, h, err := imageio.DecodeFile(cfg.Image)
		if err == nil {
			err = engine.Load(pix, w, h)
		}
		if err != nil {
			logger.WithError(err).Fatal("cannot load circuit")
		}
	}

	game := app.New(engine, cfg, logger)
	size := engine.Size()

	ebiten.SetWindowTitle("pixlogic")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
