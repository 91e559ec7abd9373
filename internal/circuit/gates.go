package circuit

import (
	"math/rand/v2"

	"pixlogic/internal/core"
)

// Facing is the direction a NOT gate drives its output.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingRight
	FacingLeft
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Gate is a NOT gate: Out is held HIGH during a tick when In was LOW at the
// end of the previous one. X and Y locate the top-left of its 3×3 motif.
type Gate struct {
	In, Out NetworkID
	X, Y    int
	Facing  Facing
}

// gateTaps holds, per facing, the offsets of the input and output cells
// from the top-left of the motif.
var gateTaps = [...]struct{ in, out point }{
	FacingDown:  {point{0, 0}, point{1, 2}},
	FacingUp:    {point{0, 1}, point{1, 0}},
	FacingRight: {point{0, 0}, point{2, 1}},
	FacingLeft:  {point{1, 0}, point{0, 1}},
}

// InputCell returns a cell on the gate's input network.
func (g Gate) InputCell() (int, int) {
	t := gateTaps[g.Facing].in
	return g.X + t.x, g.Y + t.y
}

// OutputCell returns the cell the gate drives.
func (g Gate) OutputCell() (int, int) {
	t := gateTaps[g.Facing].out
	return g.X + t.x, g.Y + t.y
}

// matchGate classifies the 3×3 window whose top-left corner is (x, y). It
// reports ok=false when the window is a plain crossing or no gate at all.
func matchGate(g *core.ColorGrid, x, y int) (facing Facing, ok bool) {
	cross := g.IsWire(x+1, y) && g.IsWire(x, y+1) && g.IsWire(x+1, y+2) && g.IsWire(x+2, y+1) &&
		!g.IsWire(x+1, y+1)
	if !cross {
		return 0, false
	}
	topLeft := g.IsWire(x, y)
	topRight := g.IsWire(x+2, y)
	bottomLeft := g.IsWire(x, y+2)
	bottomRight := g.IsWire(x+2, y+2)

	switch {
	case topLeft && topRight && !bottomLeft && !bottomRight:
		return FacingDown, true
	case !topLeft && !topRight && bottomLeft && bottomRight:
		return FacingUp, true
	case topLeft && !topRight && bottomLeft && !bottomRight:
		return FacingRight, true
	case !topLeft && topRight && !bottomLeft && bottomRight:
		return FacingLeft, true
	}
	return 0, false
}

// ExtractGates scans g for NOT gate motifs and resolves their endpoints
// through m. The result is shuffled with r when r is non-nil; gates later in
// the list observe the outputs of earlier ones within a tick, so a fixed scan
// order would favour one propagation direction.
func ExtractGates(g *core.ColorGrid, m *NetworkMap, r *rand.Rand) []Gate {
	var gates []Gate
	for x := 0; x < g.W-2; x++ {
		for y := 0; y < g.H-2; y++ {
			facing, ok := matchGate(g, x, y)
			if !ok {
				continue
			}
			gate := Gate{X: x, Y: y, Facing: facing}
			gate.In = m.At(gate.InputCell())
			gate.Out = m.At(gate.OutputCell())
			gates = append(gates, gate)
		}
	}
	if r != nil {
		r.Shuffle(len(gates), func(i, j int) {
			gates[i], gates[j] = gates[j], gates[i]
		})
	}
	return gates
}
