package render

import "pixlogic/internal/circuit"

// lowNumerator/lowDenominator dim a LOW wire to 40% of its colour.
const (
	lowNumerator   = 2
	lowDenominator = 5
)

// ComposeRGBA returns a new buffer holding colors shaded by network signal.
func ComposeRGBA(colors []byte, ids []circuit.NetworkID, states []bool) []byte {
	buf := make([]byte, len(colors))
	fillStateRGBA(buf, colors, ids, states)
	return buf
}

// fillStateRGBA shades each cell of colors by the signal of its network:
// HIGH keeps the full colour, LOW scales it to 40%. Output is opaque.
func fillStateRGBA(buf, colors []byte, ids []circuit.NetworkID, states []bool) {
	for i, id := range ids {
		base := i * 4
		high := int(id) < len(states) && states[id]
		for c := 0; c < 3; c++ {
			v := colors[base+c]
			if !high {
				v = uint8(int(v) * lowNumerator / lowDenominator)
			}
			buf[base+c] = v
		}
		buf[base+3] = 255
	}
}
