package render

import (
	"image/color"

	"roomgen/pkg/core"
)

// Palette maps the two cell states to colours.
type Palette struct {
	Open    color.Color
	Blocked color.Color
}

// DefaultPalette draws floor light and walls dark.
func DefaultPalette() Palette {
	return Palette{
		Open:    color.RGBA{R: 200, G: 190, B: 170, A: 255},
		Blocked: color.RGBA{R: 40, G: 36, B: 44, A: 255},
	}
}

// FillRGBA converts grid cells into RGBA pixels in buf, top row (highest y)
// first so that up points up on screen. buf must hold 4*W*H bytes.
func FillRGBA(buf []byte, grid *core.Grid, pal Palette) {
	rOpen, gOpen, bOpen, aOpen := pal.Open.RGBA()
	rBlk, gBlk, bBlk, aBlk := pal.Blocked.RGBA()
	for y := 0; y < grid.H; y++ {
		row := grid.H - 1 - y
		for x := 0; x < grid.W; x++ {
			base := (row*grid.W + x) * 4
			if grid.At(x, y) == core.Blocked {
				buf[base+0] = uint8(rBlk >> 8)
				buf[base+1] = uint8(gBlk >> 8)
				buf[base+2] = uint8(bBlk >> 8)
				buf[base+3] = uint8(aBlk >> 8)
				continue
			}
			buf[base+0] = uint8(rOpen >> 8)
			buf[base+1] = uint8(gOpen >> 8)
			buf[base+2] = uint8(bOpen >> 8)
			buf[base+3] = uint8(aOpen >> 8)
		}
	}
}
