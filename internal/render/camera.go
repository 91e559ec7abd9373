package render

import "math"

const (
	minZoom = 0.5
	maxZoom = 16.0
)

// Camera maps grid cells to screen pixels. Cell (0, 0) is drawn at
// (OffsetX, OffsetY) and every cell spans Base*Zoom pixels.
type Camera struct {
	OffsetX, OffsetY float64
	Base             float64
	Zoom             float64
}

// NewCamera returns a camera drawing cells base pixels wide.
func NewCamera(base float64) *Camera {
	if base <= 0 {
		base = 1
	}
	return &Camera{Base: base, Zoom: 1}
}

// CellSize returns the on-screen width of one cell.
func (c *Camera) CellSize() float64 { return c.Base * c.Zoom }

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomAt multiplies the zoom by factor, clamped to [0.5, 16], keeping the
// point under (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	next := math.Max(minZoom, math.Min(maxZoom, c.Zoom*factor))
	ratio := next / c.Zoom
	c.OffsetX = sx - (sx-c.OffsetX)*ratio
	c.OffsetY = sy - (sy-c.OffsetY)*ratio
	c.Zoom = next
}

// ScreenToCell returns the cell under screen position (sx, sy). The result
// may lie outside the grid.
func (c *Camera) ScreenToCell(sx, sy float64) (int, int) {
	size := c.CellSize()
	return int(math.Floor((sx - c.OffsetX) / size)), int(math.Floor((sy - c.OffsetY) / size))
}
