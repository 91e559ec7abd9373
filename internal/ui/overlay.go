//go:build ebiten

package ui

import (
	"image/color"

	"pixlogic/internal/circuit"
	"pixlogic/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	gateHighColor = color.RGBA{R: 64, G: 220, B: 96, A: 200}
	gateLowColor  = color.RGBA{R: 220, G: 64, B: 64, A: 200}
)

// Overlay marks the output cell of every NOT gate, coloured by its signal.
type Overlay struct {
	engine *circuit.Engine
	show   bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(e *circuit.Engine) *Overlay {
	o := &Overlay{engine: e}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam *render.Camera) {
	if !o.show {
		return
	}
	size := cam.CellSize()
	for _, g := range o.engine.Gates() {
		x, y := g.OutputCell()
		clr := gateLowColor
		if o.engine.High(g.Out) {
			clr = gateHighColor
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(cam.OffsetX+float64(x)*size, cam.OffsetY+float64(y)*size)
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(o.pixel, op)
	}
}
