//go:build !ebiten

package ui

import "seastate/internal/core"

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns a no-op HUD.
func NewHUD() *HUD { return &HUD{} }

// SetSnapshot is a no-op placeholder.
func (h *HUD) SetSnapshot(core.ParameterSnapshot) {}

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the GUI build's call shape.
func (h *HUD) Draw(any, float64, float64, bool) {}
