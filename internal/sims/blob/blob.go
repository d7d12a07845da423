// Package blob implements the default life type: a Conway-style cell that is
// born with exactly three living neighbours and survives with two or three.
package blob

import (
	"image/color"

	"lifegrid/internal/core"
)

// Name is the registered type name.
const Name = "blob"

const (
	birthNeighbours = 3
	surviveMin      = 2
	surviveMax      = 3
)

// Config holds the blob's tunables.
type Config struct {
	// MaxAge caps health; a surviving blob gains one health per generation.
	MaxAge int
}

// DefaultConfig returns the standard blob settings.
func DefaultConfig() Config {
	return Config{MaxAge: 9}
}

// Blob is a Conway life cell whose health doubles as its age.
type Blob struct {
	*core.Base
	maxAge int
}

// New returns a blob at world position (x, y).
func New(cfg Config, x, y, health int) *Blob {
	if cfg.MaxAge < 1 {
		cfg.MaxAge = 1
	}
	b := &Blob{maxAge: cfg.MaxAge}
	b.Base = core.NewBase(Name, x, y, health, b)
	return b
}

// Spawn builds a blob with default settings.
func Spawn(x, y, health int) core.Life {
	return New(DefaultConfig(), x, y, health)
}

// Spawner returns a spawn function bound to cfg.
func Spawner(cfg Config) core.SpawnFunc {
	return func(x, y, health int) core.Life {
		return New(cfg, x, y, health)
	}
}

// Register adds the blob type to f.
func Register(f *core.Factory, cfg Config) error {
	return f.Register(Name, Spawner(cfg))
}

// CountNeighbours classifies neighbours by type.
func (b *Blob) CountNeighbours(neighbours []core.Life) core.NeighbourClassMap {
	return core.CountNeighbours(neighbours)
}

// InteractWithNeighbours applies B3/S23 over living neighbours of any type.
func (b *Blob) InteractWithNeighbours(neighbours []core.Life, _ core.NeighbourClassMap) int {
	living := core.CountLiving(neighbours)
	if !b.IsAlive() {
		if living == birthNeighbours {
			return 1
		}
		return 0
	}
	if living >= surviveMin && living <= surviveMax {
		return b.Health() + 1
	}
	return 0
}

// UpdateHealthChange clamps health to [0, MaxAge].
func (b *Blob) UpdateHealthChange(health int) int {
	return core.Clamp(health, 0, b.maxAge)
}

// Draw plots living blobs; older blobs are drawn brighter.
func (b *Blob) Draw(c core.Canvas) {
	if !b.IsAlive() {
		return
	}
	x, y := b.Position()
	shade := uint8(96 + 159*b.Health()/b.maxAge)
	c.Plot(x, y, 'o', color.RGBA{R: shade / 3, G: shade, B: shade / 2, A: 255})
}
