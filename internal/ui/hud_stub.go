//go:build !ebiten

package ui

import "roomgen/pkg/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Generator, int) *HUD { return nil }

// SetGenerator is a no-op in the headless build.
func (h *HUD) SetGenerator(core.Generator) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(*core.Grid, int64, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
