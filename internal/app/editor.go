package app

import "image/color"

type tool int

const (
	toolPaint tool = iota
	toolPick
)

func (t tool) String() string {
	if t == toolPick {
		return "pick"
	}
	return "paint"
}

var (
	black = color.RGBA{A: 255}

	// palette cycles through wire colours plus one dim colour for labels
	// that should not conduct.
	palette = []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 64, B: 64, A: 255},
		{R: 64, G: 255, B: 64, A: 255},
		{R: 64, G: 128, B: 255, A: 255},
		{R: 255, G: 230, B: 64, A: 255},
		{R: 96, G: 96, B: 96, A: 255},
	}
)

// nextPaletteColor returns the palette entry after c, or the first entry when
// c is not in the palette.
func nextPaletteColor(c color.RGBA) color.RGBA {
	for i, p := range palette {
		if p == c {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
