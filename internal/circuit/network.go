package circuit

import (
	"github.com/pkg/errors"

	"pixlogic/internal/core"
)

// NetworkID is a dense handle for a wire network. Zero means "no network".
type NetworkID uint16

// NoNetwork is the id stored for every non-wire cell.
const NoNetwork NetworkID = 0

// MaxNetworks is the number of distinct networks a grid may contain.
const MaxNetworks = 1<<16 - 1

// Bytes splits the id into its low and high byte.
func (id NetworkID) Bytes() (lo, hi uint8) {
	return uint8(id), uint8(id >> 8)
}

// IDFromBytes joins a low and high byte into a NetworkID.
func IDFromBytes(lo, hi uint8) NetworkID {
	return NetworkID(lo) | NetworkID(hi)<<8
}

// NetworkMap assigns every cell of a grid to a wire network.
type NetworkMap struct {
	W, H  int
	ids   []NetworkID
	count int
}

// At returns the network at (x, y), or NoNetwork outside the grid.
func (m *NetworkMap) At(x, y int) NetworkID {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return NoNetwork
	}
	return m.ids[y*m.W+x]
}

// Count returns the number of networks allocated. Valid ids are 1..Count.
func (m *NetworkMap) Count() int { return m.count }

// IDs exposes the per-cell id grid in row-major order.
func (m *NetworkMap) IDs() []NetworkID { return m.ids }

// PointerBytes encodes the id grid as two bytes per cell, low byte first.
func (m *NetworkMap) PointerBytes() []byte {
	buf := make([]byte, len(m.ids)*2)
	for i, id := range m.ids {
		buf[i*2], buf[i*2+1] = id.Bytes()
	}
	return buf
}

type point struct{ x, y int }

// isCrossing reports whether (x, y) is the empty centre of a "+" where two
// wires pass over each other without connecting.
func isCrossing(g *core.ColorGrid, x, y int) bool {
	return !g.IsWire(x, y) &&
		g.IsWire(x+1, y) && g.IsWire(x-1, y) && g.IsWire(x, y+1) && g.IsWire(x, y-1) &&
		!g.IsWire(x-1, y-1) && !g.IsWire(x+1, y-1) && !g.IsWire(x+1, y+1) && !g.IsWire(x-1, y+1)
}

var directions = [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// MapNetworks flood-fills the wire cells of g into networks. Two wires meeting
// at a crossing centre are bridged along their own axis only, so the
// horizontal and vertical lines stay separate networks.
func MapNetworks(g *core.ColorGrid) (*NetworkMap, error) {
	m := &NetworkMap{W: g.W, H: g.H, ids: make([]NetworkID, g.W*g.H)}
	next := 1
	var stack []point

	claim := func(x, y int, id NetworkID) {
		m.ids[y*m.W+x] = id
		stack = append(stack, point{x, y})
	}

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if !g.IsWire(x, y) || m.ids[y*m.W+x] != NoNetwork {
				continue
			}
			if next > MaxNetworks {
				return nil, errors.Wrapf(ErrNetworkSpaceExhausted, "network %d starting at (%d,%d)", next, x, y)
			}
			id := NetworkID(next)
			claim(x, y, id)

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				for _, d := range directions {
					nx, ny := p.x+d.x, p.y+d.y
					if g.IsWire(nx, ny) && m.At(nx, ny) == NoNetwork {
						claim(nx, ny, id)
						continue
					}
					// Jump over a crossing centre to the arm on the far side.
					fx, fy := p.x+2*d.x, p.y+2*d.y
					if isCrossing(g, nx, ny) && m.At(fx, fy) == NoNetwork {
						claim(fx, fy, id)
					}
				}
			}
			next++
		}
	}
	m.count = next - 1
	return m, nil
}
