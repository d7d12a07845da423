//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/core"
)

// GridPainter draws a simulation into a single image, one pixel per cell.
type GridPainter struct {
	canvas *PixelCanvas
	img    *ebiten.Image
	bg     color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h, cellSize int, bg color.Color) *GridPainter {
	return &GridPainter{
		canvas: NewPixelCanvas(w, h, cellSize),
		img:    ebiten.NewImage(w, h),
		bg:     bg,
	}
}

// Blit lets every entity draw itself, uploads the result and draws it
// scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	gp.canvas.Clear(gp.bg)
	sim.Draw(gp.canvas)
	gp.img.WritePixels(gp.canvas.Pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
