//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"lifegrid/internal/core"
)

const (
	hudLineHeight = 16
	hudPadding    = 8
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	title    string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw renders the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})

	y := hudPadding
	ebitenutil.DebugPrintAt(h.panel, h.title, hudPadding, y)
	y += hudLineHeight * 2
	for _, group := range h.snapshot.Groups {
		ebitenutil.DebugPrintAt(h.panel, strings.ToUpper(group.Name), hudPadding, y)
		y += hudLineHeight
		for _, p := range group.Params {
			ebitenutil.DebugPrintAt(h.panel, fmt.Sprintf("  %-18s %s", p.Label, p.Value), hudPadding, y)
			y += hudLineHeight
		}
		y += hudLineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil {
		return "lifegrid"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
}
