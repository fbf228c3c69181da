//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"seastate/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD draws the sea-state parameter panel and runtime status text.
type HUD struct {
	visible  bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a hidden HUD; press H to show it.
func NewHUD() *HUD {
	return &HUD{}
}

// SetSnapshot replaces the displayed parameter panel contents.
func (h *HUD) SetSnapshot(s core.ParameterSnapshot) {
	h.snapshot = s
}

// Update processes HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line and, when visible, the parameter panel.
func (h *HUD) Draw(screen *ebiten.Image, simTime, peakHeight float64, paused bool) {
	status := fmt.Sprintf("t=%6.2fs  peak=%.3fm  fps=%.0f", simTime, peakHeight, ebiten.ActualFPS())
	if paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)

	if !h.visible {
		return
	}
	var b strings.Builder
	for _, group := range h.snapshot.Groups {
		fmt.Fprintf(&b, "%s\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(&b, "  %-16s %s\n", p.Label, p.Value)
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 24)
}
