package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// PixelCanvas rasterizes entity draw calls into an RGBA buffer with one
// pixel per cell. Glyphs are ignored; only the tint is used.
type PixelCanvas struct {
	w, h     int
	cellSize int
	buf      []byte
}

var _ core.Canvas = (*PixelCanvas)(nil)

// NewPixelCanvas allocates a canvas for a w*h cell grid whose cells are
// cellSize world units wide.
func NewPixelCanvas(w, h, cellSize int) *PixelCanvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &PixelCanvas{w: w, h: h, cellSize: cellSize, buf: make([]byte, 4*w*h)}
}

// Clear fills every pixel with bg.
func (pc *PixelCanvas) Clear(bg color.Color) {
	r, g, b, a := bg.RGBA()
	for i := 0; i < len(pc.buf); i += 4 {
		pc.buf[i+0] = uint8(r >> 8)
		pc.buf[i+1] = uint8(g >> 8)
		pc.buf[i+2] = uint8(b >> 8)
		pc.buf[i+3] = uint8(a >> 8)
	}
}

// Plot colours the cell containing world position (x, y). Positions outside
// the grid are ignored.
func (pc *PixelCanvas) Plot(x, y int, _ rune, tint color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/pc.cellSize, y/pc.cellSize
	if col >= pc.w || row >= pc.h {
		return
	}
	base := (row*pc.w + col) * 4
	pc.buf[base+0] = tint.R
	pc.buf[base+1] = tint.G
	pc.buf[base+2] = tint.B
	pc.buf[base+3] = tint.A
}

// Pixels exposes the RGBA buffer in row-major order.
func (pc *PixelCanvas) Pixels() []byte { return pc.buf }
