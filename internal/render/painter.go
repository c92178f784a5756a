//go:build ebiten

package render

import (
	"roomgen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from grid snapshots.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), pal: pal}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads grid into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.Grid, scale int) {
	if grid == nil || grid.W != gp.w || grid.H != gp.h {
		return
	}
	FillRGBA(gp.buf, grid, gp.pal)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
