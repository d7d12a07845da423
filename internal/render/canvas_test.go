package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelCanvasPlot(t *testing.T) {
	pc := NewPixelCanvas(4, 3, 10)
	pc.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 255})

	pc.Plot(25, 15, 'o', color.RGBA{R: 200, G: 100, B: 50, A: 255})

	px := pc.Pixels()
	base := (1*4 + 2) * 4
	assert.Equal(t, []byte{200, 100, 50, 255}, px[base:base+4])
	assert.Equal(t, []byte{1, 2, 3, 255}, px[0:4])
	assert.Len(t, px, 4*3*4)
}

func TestPixelCanvasIgnoresOffGrid(t *testing.T) {
	pc := NewPixelCanvas(2, 2, 1)
	before := append([]byte(nil), pc.Pixels()...)

	pc.Plot(-1, 0, 'o', color.RGBA{R: 255, A: 255})
	pc.Plot(0, 2, 'o', color.RGBA{R: 255, A: 255})
	pc.Plot(2, 0, 'o', color.RGBA{R: 255, A: 255})

	assert.Equal(t, before, pc.Pixels())
}
