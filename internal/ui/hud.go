//go:build ebiten

package ui

import (
	"image/color"

	"pixlogic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	swatchSize    = 10
)

// HUD draws the status panel in the top-left corner of the window.
type HUD struct {
	lines  []string
	status Status
	help   bool
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{help: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the panel text.
func (h *HUD) Update(params core.ParameterSnapshot, st Status) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.help = !h.help
	}
	h.status = st
	h.lines = statusLines(params, st, h.help)
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if len(h.lines) == 0 {
		return
	}
	width := 0
	for _, l := range h.lines {
		if w := len(l) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}
	height := len(h.lines)*hudLineHeight + hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudPadding), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 180})
	screen.DrawImage(h.pixel, op)

	for i, l := range h.lines {
		text.Draw(screen, l, basicfont.Face7x13, hudPadding, hudPadding+(i+1)*hudLineHeight-3, color.White)
	}

	if !h.status.Running {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatchSize, swatchSize)
		op.GeoM.Translate(float64(width+3*hudPadding), hudPadding+hudLineHeight)
		op.ColorScale.ScaleWithColor(h.status.Color)
		screen.DrawImage(h.pixel, op)
	}
}
