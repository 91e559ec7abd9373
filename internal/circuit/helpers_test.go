package circuit

import (
	"pixlogic/internal/core"
)

// pixFrom builds an RGBA buffer from rows of '#' (white wire) and '.' (black).
func pixFrom(rows ...string) ([]byte, int, int) {
	h := len(rows)
	w := len(rows[0])
	pix := make([]byte, w*h*4)
	for y, row := range rows {
		for x, ch := range row {
			i := (y*w + x) * 4
			if ch == '#' {
				pix[i+0], pix[i+1], pix[i+2] = 255, 255, 255
			}
			pix[i+3] = 255
		}
	}
	return pix, w, h
}

func gridFrom(rows ...string) *core.ColorGrid {
	pix, w, h := pixFrom(rows...)
	return core.ColorGridFrom(pix, w, h)
}

// dotGrid returns a side×side grid with an isolated wire cell on every even
// coordinate, minus the cells listed in skip.
func dotGrid(side int, skip ...[2]int) ([]byte, int) {
	pix := make([]byte, side*side*4)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := (y*side + x) * 4
			pix[i+3] = 255
			if x%2 == 0 && y%2 == 0 {
				pix[i+0] = 255
			}
		}
	}
	for _, p := range skip {
		pix[(p[1]*side+p[0])*4] = 0
	}
	return pix, side
}

// chainRows is two down-facing NOT gates in series: the top bar feeds the
// first gate, whose stem is the second gate's top bar.
var chainRows = []string{
	"###...",
	"#.#...",
	".#....",
	"###...",
	"#.#...",
	".#....",
}
