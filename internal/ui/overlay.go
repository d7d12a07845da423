//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifegrid/internal/core"
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	gridTint color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, gridTint: color.RGBA{R: 80, G: 80, B: 80, A: 255}}
}

// Update toggles overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.scale < 3 {
		return
	}
	size := o.sim.Size()
	w, h := float32(size.W*o.scale), float32(size.H*o.scale)
	for col := 1; col < size.W; col++ {
		x := float32(col * o.scale)
		vector.StrokeLine(screen, x, 0, x, h, 1, o.gridTint, false)
	}
	for row := 1; row < size.H; row++ {
		y := float32(row * o.scale)
		vector.StrokeLine(screen, 0, y, w, y, 1, o.gridTint, false)
	}
}
