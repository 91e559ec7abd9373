package core

import "image/color"

// DefaultWireThreshold is the channel brightness a cell must exceed to
// conduct.
const DefaultWireThreshold = 223

// ColorGrid stores RGBA cell colours in row-major order, four bytes per cell.
type ColorGrid struct {
	W, H      int
	Threshold uint8
	data      []uint8
}

// NewColorGrid allocates an opaque black grid with the given dimensions.
func NewColorGrid(w, h int) *ColorGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &ColorGrid{W: w, H: h, Threshold: DefaultWireThreshold, data: make([]uint8, w*h*4)}
	g.Clear()
	return g
}

// ColorGridFrom wraps a copy of pix. The caller has already validated that
// len(pix) == w*h*4.
func ColorGridFrom(pix []uint8, w, h int) *ColorGrid {
	data := make([]uint8, len(pix))
	copy(data, pix)
	return &ColorGrid{W: w, H: h, Threshold: DefaultWireThreshold, data: data}
}

// Pix exposes the backing RGBA buffer.
func (g *ColorGrid) Pix() []uint8 { return g.data }

// Index returns the linear cell index for coordinates (x, y).
func (g *ColorGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ColorGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// IsWire reports whether the cell conducts. Out-of-bounds cells never do.
func (g *ColorGrid) IsWire(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	i := g.Index(x, y) * 4
	t := g.Threshold
	return g.data[i] > t || g.data[i+1] > t || g.data[i+2] > t
}

// At returns the colour of a cell, or transparent black when out of bounds.
func (g *ColorGrid) At(x, y int) color.RGBA {
	if !g.In(x, y) {
		return color.RGBA{}
	}
	i := g.Index(x, y) * 4
	return color.RGBA{R: g.data[i], G: g.data[i+1], B: g.data[i+2], A: g.data[i+3]}
}

// Set stores a cell colour. It reports false when (x, y) is out of bounds.
func (g *ColorGrid) Set(x, y int, c color.RGBA) bool {
	if !g.In(x, y) {
		return false
	}
	i := g.Index(x, y) * 4
	g.data[i+0] = c.R
	g.data[i+1] = c.G
	g.data[i+2] = c.B
	g.data[i+3] = c.A
	return true
}

// Clear fills the grid with opaque black.
func (g *ColorGrid) Clear() {
	for i := 0; i < len(g.data); i += 4 {
		g.data[i+0] = 0
		g.data[i+1] = 0
		g.data[i+2] = 0
		g.data[i+3] = 255
	}
}
