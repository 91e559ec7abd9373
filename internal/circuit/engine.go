package circuit

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pixlogic/internal/core"
)

// Engine owns a circuit image together with everything derived from it: the
// network map, the gate list and the simulation state. It is not safe for
// concurrent use.
type Engine struct {
	cfg Config
	log logrus.FieldLogger
	rng *rand.Rand

	grid  *core.ColorGrid
	nets  *NetworkMap
	gates []Gate
	state *State

	running bool
	ticks   uint64
	cells   []uint8
}

// Option customises an Engine.
type Option func(e *Engine)

// WithLogger routes engine logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRand sets the random source used to shuffle gates.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New returns an engine holding a blank, opaque black grid of cfg.Size cells
// per side, in editing mode. A zero Threshold means DefaultWireThreshold and
// Size is clamped to 1..MaxSide.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.Threshold == 0 {
		cfg.Threshold = core.DefaultWireThreshold
	}
	cfg.Size = min(max(cfg.Size, 1), MaxSide)
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.WithField("component", "circuit")
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = core.NewRNG(seed).Source()
	}

	grid := core.NewColorGrid(cfg.Size, cfg.Size)
	grid.Threshold = cfg.Threshold
	// A blank grid holds no wire.
	nets := &NetworkMap{W: grid.W, H: grid.H, ids: make([]NetworkID, grid.W*grid.H)}
	e.install(grid, nets, nil)
	e.ShowAll()
	return e
}

func (e *Engine) derive(grid *core.ColorGrid) (*NetworkMap, []Gate, error) {
	nets, err := MapNetworks(grid)
	if err != nil {
		return nil, nil, err
	}
	return nets, ExtractGates(grid, nets, e.rng), nil
}

func (e *Engine) install(grid *core.ColorGrid, nets *NetworkMap, gates []Gate) {
	e.grid = grid
	e.nets = nets
	e.gates = gates
	e.state = NewState(nets.Count() + 1)
	e.ticks = 0
	if len(e.cells) != grid.W*grid.H {
		e.cells = make([]uint8, grid.W*grid.H)
	}
	e.log.WithFields(logrus.Fields{
		"size":     grid.W,
		"networks": nets.Count(),
		"gates":    len(gates),
	}).Debug("circuit rebuilt")
}

// Load replaces the circuit with a w×h RGBA image. The image must be square.
// On failure the engine is left exactly as it was.
func (e *Engine) Load(pix []byte, w, h int) error {
	if !(core.Size{W: w, H: h}).Square() {
		return errors.Wrapf(ErrInvalidGeometry, "image is %dx%d, only square images are supported", w, h)
	}
	if w > MaxSide {
		return errors.Wrapf(ErrInvalidGeometry, "image is %dx%d, the largest supported side is %d", w, h, MaxSide)
	}
	if len(pix) != w*h*4 {
		return errors.Wrapf(ErrInvalidGeometry, "buffer holds %d bytes, %dx%d RGBA needs %d", len(pix), w, h, w*h*4)
	}
	grid := core.ColorGridFrom(pix, w, h)
	grid.Threshold = e.cfg.Threshold
	nets, gates, err := e.derive(grid)
	if err != nil {
		e.log.WithError(err).Warn("circuit load failed")
		return errors.Wrap(err, "load circuit")
	}
	e.install(grid, nets, gates)
	if !e.running {
		e.ShowAll()
	}
	return nil
}

// Rebuild recomputes networks and gates from the current grid and resets
// every signal to LOW. On failure the previous structures stay installed.
func (e *Engine) Rebuild() error {
	nets, gates, err := e.derive(e.grid)
	if err != nil {
		e.log.WithError(err).Warn("circuit rebuild failed")
		return errors.Wrap(err, "rebuild circuit")
	}
	e.install(e.grid, nets, gates)
	return nil
}

// Step advances the simulation by n ticks.
func (e *Engine) Step(n int) {
	for i := 0; i < n; i++ {
		e.state.Tick(e.gates)
		e.ticks++
	}
}

// Start rebuilds the circuit from the edited grid and enters running mode.
func (e *Engine) Start() error {
	if err := e.Rebuild(); err != nil {
		return err
	}
	e.running = true
	return nil
}

// Stop leaves running mode and shows every wire HIGH for editing.
func (e *Engine) Stop() {
	e.running = false
	e.ShowAll()
}

// Running reports whether the engine is simulating.
func (e *Engine) Running() bool { return e.running }

// ShowAll forces every network HIGH.
func (e *Engine) ShowAll() { e.state.Fill(true) }

// Color returns the colour of a cell.
func (e *Engine) Color(x, y int) color.RGBA { return e.grid.At(x, y) }

// SetColor paints a cell. Edits are refused while running and outside the
// grid. The caller must Start (or Rebuild) before the edit takes effect.
func (e *Engine) SetColor(x, y int, c color.RGBA) bool {
	if e.running {
		return false
	}
	return e.grid.Set(x, y, c)
}

// IsWire reports whether the cell at (x, y) conducts.
func (e *Engine) IsWire(x, y int) bool { return e.grid.IsWire(x, y) }

// NetworkAt returns the network at (x, y), or NoNetwork.
func (e *Engine) NetworkAt(x, y int) NetworkID { return e.nets.At(x, y) }

// Force drives network id HIGH or LOW for the current tick; the next tick
// evaluates gates against it.
func (e *Engine) Force(id NetworkID, high bool) bool { return e.state.Set(id, high) }

// ForceAt forces the network under (x, y). It reports false off-wire.
func (e *Engine) ForceAt(x, y int, high bool) bool {
	id := e.nets.At(x, y)
	if id == NoNetwork {
		return false
	}
	return e.Force(id, high)
}

// High reports the current signal of a network.
func (e *Engine) High(id NetworkID) bool { return e.state.High(id) }

// States exposes the current signal of every network, indexed by id.
func (e *Engine) States() []bool { return e.state.Current() }

// Networks exposes the per-cell network id grid.
func (e *Engine) Networks() []NetworkID { return e.nets.IDs() }

// PointerBytes encodes the network id grid two bytes per cell.
func (e *Engine) PointerBytes() []byte { return e.nets.PointerBytes() }

// Gates returns the gate list in evaluation order.
func (e *Engine) Gates() []Gate { return e.gates }

// NetworkCount returns the number of wire networks.
func (e *Engine) NetworkCount() int { return e.nets.Count() }

// Ticks returns the number of ticks run since the last rebuild.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Grid exposes the colour grid.
func (e *Engine) Grid() *core.ColorGrid { return e.grid }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }
