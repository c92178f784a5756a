//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"roomgen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter and status panel to the right of the grid view.
type HUD struct {
	gen        core.Generator
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	snapshot   core.ParameterSnapshot
	status     []string
}

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(gen core.Generator, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	h.SetGenerator(gen)
	return h
}

// SetGenerator switches the panel to a new generator instance.
func (h *HUD) SetGenerator(gen core.Generator) {
	h.gen = gen
	h.title = buildTitle(gen)
	h.snapshot = core.ParameterSnapshot{}
	if provider, ok := gen.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
}

// Update refreshes the status lines from the latest grid.
func (h *HUD) Update(grid *core.Grid, seed int64, playing bool) {
	if h == nil || h.width <= 0 || grid == nil {
		return
	}
	mode := "paused"
	if playing {
		mode = "playing"
	}
	h.status = h.status[:0]
	h.status = append(h.status,
		fmt.Sprintf("seed %d (%s)", seed, mode),
		fmt.Sprintf("open %.3f", grid.OpenFraction()),
	)
	if provider, ok := h.gen.(core.StatsProvider); ok {
		stats := provider.Stats()
		h.status = append(h.status, fmt.Sprintf("iterations %d", stats.Iterations))
		if stats.Agents > 0 {
			h.status = append(h.status, fmt.Sprintf("agents %d", stats.Agents))
		}
	}
	h.status = append(h.status, "", "N next  R regen  S seed", "SPACE play  Q quit")
}

// Draw paints the HUD panel anchored to the right edge of the grid view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight
	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-len(p.Value)*glyphWidth, y, valueColor)
			y += lineHeight
		}
	}
	y += lineHeight / 2
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(gen core.Generator) string {
	if gen == nil || gen.Name() == "" {
		return "Parameters"
	}
	name := gen.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " generator"
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 240, G: 210, B: 150, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
	glyphWidth   = 7
)
