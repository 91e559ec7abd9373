package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"pixlogic/internal/app"
	"pixlogic/internal/circuit"
	"pixlogic/internal/imageio"
	"pixlogic/internal/render"
)

type cellList [][2]int

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c[0], c[1])
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(value string) error {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return errors.Errorf("cell %q is not in x,y form", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return errors.Wrapf(err, "cell %q", value)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return errors.Wrapf(err, "cell %q", value)
	}
	*l = append(*l, [2]int{x, y})
	return nil
}

// simulate runs ticks updates of the engine's configured step count. The held
// cells are forced before the first update and again after every update, so
// each tick reads them and the final state shows them.
func simulate(engine *circuit.Engine, ticks int, high, low cellList) {
	hold := func() {
		for _, c := range high {
			engine.ForceAt(c[0], c[1], true)
		}
		for _, c := range low {
			engine.ForceAt(c[0], c[1], false)
		}
	}
	steps := engine.Config().StepsPerTick
	hold()
	for i := 0; i < ticks; i++ {
		engine.Step(steps)
		hold()
	}
}

// countHigh returns the number of networks, excluding NoNetwork, that are HIGH.
func countHigh(states []bool) int {
	n := 0
	for id, on := range states {
		if id != int(circuit.NoNetwork) && on {
			n++
		}
	}
	return n
}

func main() {
	cfg := app.NewConfig()
	fs := flag.CommandLine
	cfg.Bind(fs)
	ticks := fs.Int("ticks", 16, "ticks to simulate")
	out := fs.String("out", "", "write the final frame to this PNG file")
	var high, low cellList
	fs.Var(&high, "high", "hold the network under x,y HIGH every tick (repeatable)")
	fs.Var(&low, "low", "hold the network under x,y LOW every tick (repeatable)")
	if err := cfg.Parse(fs, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Image == "" {
		logger.Fatal("-image is required")
	}

	engine := circuit.New(cfg.CircuitConfig(), circuit.WithLogger(logger.WithField("component", "circuit")))
	pix, w, h, err := imageio.DecodeFile(cfg.Image)
	if err == nil {
		err = engine.Load(pix, w, h)
	}
	if err == nil {
		err = engine.Start()
	}
	if err != nil {
		logger.WithError(err).Fatal("cannot load circuit")
	}

	simulate(engine, *ticks, high, low)

	fields := log.Fields{"high": countHigh(engine.States())}
	for _, g := range engine.Parameters().Groups {
		for _, p := range g.Params {
			fields[p.Key] = p.Value
		}
	}
	logger.WithFields(fields).Info("simulation finished")

	if *out != "" {
		size := engine.Size()
		frame := render.ComposeRGBA(engine.Grid().Pix(), engine.Networks(), engine.States())
		if err := imageio.WritePNGFile(*out, frame, size.W, size.H); err != nil {
			logger.WithError(err).Fatal("cannot write frame")
		}
		logger.WithField("file", *out).Info("frame written")
	}
}
