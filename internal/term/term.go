// Package term shows a simulation in a terminal, one character per cell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"lifegrid/internal/core"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// statusRows is the number of screen rows above the grid.
const statusRows = 1

// Viewer renders a core.Sim onto a tcell screen and advances it at a fixed
// rate.
type Viewer struct {
	screen   tcell.Screen
	sim      core.Sim
	cellSize int
	step     *core.FixedStep
	seed     int64
	paused   bool
	log      *zap.Logger
}

// NewViewer wraps an initialized screen.
func NewViewer(screen tcell.Screen, sim core.Sim, cellSize, tps int, seed int64, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Viewer{
		screen:   screen,
		sim:      sim,
		cellSize: cellSize,
		step:     core.NewFixedStep(tps),
		seed:     seed,
		log:      log,
	}
}

// Run draws and steps until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if !v.paused {
				for n := v.step.Due(now); n > 0; n-- {
					v.sim.Step()
				}
			}
			v.Draw()
			v.screen.Show()
		}
	}
}

// HandleEvent reacts to input. It returns false when the viewer should
// exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.sim.Step()
		case 'r':
			v.sim.Reset(v.seed)
			v.log.Debug("colony reset", zap.Int64("seed", v.seed))
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Draw renders the status line and lets every entity plot itself.
func (v *Viewer) Draw() {
	v.screen.Clear()
	alive := 0
	for _, c := range v.sim.Cells() {
		if c != 0 {
			alive++
		}
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf("%s  gen %d  alive %d  %s  [space] pause [n] step [r] reset [q] quit",
		v.sim.Name(), v.sim.Generation(), alive, state)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range status {
		v.screen.SetContent(i, 0, r, nil, style)
	}
	v.sim.Draw(screenCanvas{screen: v.screen, cellSize: v.cellSize})
}

// screenCanvas maps world positions onto terminal cells below the status
// line.
type screenCanvas struct {
	screen   tcell.Screen
	cellSize int
}

func (c screenCanvas) Plot(x, y int, glyph rune, tint color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	w, h := c.screen.Size()
	col, row := x/c.cellSize, y/c.cellSize+statusRows
	if col >= w || row >= h {
		return
	}
	fg := tcell.NewRGBColor(int32(tint.R), int32(tint.G), int32(tint.B))
	c.screen.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg))
}
