//go:build ebiten

package app

import (
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"pixlogic/internal/circuit"
	"pixlogic/internal/core"
	"pixlogic/internal/imageio"
	"pixlogic/internal/render"
	"pixlogic/internal/ui"
)

var background = color.RGBA{R: 13, G: 13, B: 13, A: 255}

// Game adapts a circuit engine to the ebiten.Game interface: an editor while
// stopped and a running simulation with a mouse probe otherwise.
type Game struct {
	engine  *circuit.Engine
	painter *render.GridPainter
	camera  *render.Camera
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	log     logrus.FieldLogger

	steps int
	tool  tool
	color color.RGBA

	cellX, cellY int
	panning      bool
	lastCX       int
	lastCY       int
}

// New constructs a Game for the provided engine.
func New(e *circuit.Engine, cfg *Config, log logrus.FieldLogger) *Game {
	g := &Game{
		engine:  e,
		camera:  render.NewCamera(float64(cfg.Scale)),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(e),
		timer:   core.NewFixedStep(cfg.TPS),
		log:     log,
		steps:   e.Config().StepsPerTick,
		color:   palette[0],
	}
	g.resetPainter()
	return g
}

func (g *Game) resetPainter() {
	size := g.engine.Size()
	g.painter = render.NewGridPainter(size.W, size.H)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.togglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.Step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.tool = toolPaint
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.tool = toolPick
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.color = nextPaletteColor(g.color)
	}
	g.handleDrop()
	g.handleCamera()

	cx, cy := ebiten.CursorPosition()
	g.cellX, g.cellY = g.camera.ScreenToCell(float64(cx), float64(cy))

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if g.engine.Running() {
		if g.timer.ShouldStep() {
			g.engine.Step(g.steps)
		}
		// Probe: hold the network under the cursor for the next tick.
		if left || right {
			g.engine.ForceAt(g.cellX, g.cellY, left)
		}
	} else if left || right {
		g.edit(left)
	}

	g.overlay.Update()
	g.hud.Update(g.engine.Parameters(), ui.Status{
		Running: g.engine.Running(),
		Tool:    g.tool.String(),
		Color:   g.color,
		Hover:   int(g.engine.NetworkAt(g.cellX, g.cellY)),
	})
	return nil
}

func (g *Game) togglePlay() {
	if g.engine.Running() {
		g.engine.Stop()
		return
	}
	if err := g.engine.Start(); err != nil {
		g.log.WithError(err).Error("cannot start simulation")
	}
}

func (g *Game) edit(left bool) {
	switch g.tool {
	case toolPaint:
		c := black
		if left {
			c = g.color
		}
		g.engine.SetColor(g.cellX, g.cellY, c)
	case toolPick:
		if g.engine.Grid().In(g.cellX, g.cellY) {
			g.color = g.engine.Color(g.cellX, g.cellY)
		}
	}
}

func (g *Game) handleCamera() {
	cx, cy := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.camera.ZoomAt(float64(cx), float64(cy), 1+dy*0.1)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if g.panning {
			g.camera.Pan(float64(cx-g.lastCX), float64(cy-g.lastCY))
		}
		g.panning = true
	} else {
		g.panning = false
	}
	g.lastCX, g.lastCY = cx, cy
}

func (g *Game) handleDrop() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil || len(entries) == 0 {
		return
	}
	name := entries[0].Name()
	f, err := files.Open(name)
	if err != nil {
		g.log.WithError(err).WithField("file", name).Error("cannot open dropped file")
		return
	}
	defer f.Close()
	pix, w, h, err := imageio.Decode(f)
	if err == nil {
		err = g.engine.Load(pix, w, h)
	}
	if err != nil {
		g.log.WithError(err).WithField("file", name).Error("cannot load circuit")
		return
	}
	g.log.WithField("file", name).Info("circuit loaded")
	g.resetPainter()
}

// Draw renders the circuit, the gate overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.painter.Blit(screen, g.engine.Grid().Pix(), g.engine.Networks(), g.engine.States(), g.camera)
	g.overlay.Draw(screen, g.camera)
	g.hud.Draw(screen)
}

// Layout keeps the logical screen at the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
