//go:build ebiten

package render

import (
	"pixlogic/internal/circuit"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from circuit colours and signals.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the shaded circuit into the painter image and draws it through
// the camera.
func (gp *GridPainter) Blit(dst *ebiten.Image, colors []byte, ids []circuit.NetworkID, states []bool, cam *Camera) {
	if len(ids) != gp.w*gp.h || len(colors) != len(gp.buf) {
		return
	}
	fillStateRGBA(gp.buf, colors, ids, states)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cam.CellSize(), cam.CellSize())
	op.GeoM.Translate(cam.OffsetX, cam.OffsetY)
	dst.DrawImage(gp.img, op)
}
