// Package hungry implements a predator life type. A hungry eats neighbouring
// prey to gain health, starves without it, and wanders toward prey it can
// see.
package hungry

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/blob"
)

// Name is the registered type name.
const Name = "hungry"

// Config holds the hungry's tunables.
type Config struct {
	Prey       string
	Gain       int
	Starve     int
	MaxHealth  int
	SeekRadius int
}

// DefaultConfig returns the standard hungry settings.
func DefaultConfig() Config {
	return Config{
		Prey:       blob.Name,
		Gain:       2,
		Starve:     1,
		MaxHealth:  20,
		SeekRadius: 2,
	}
}

// Hungry is a predator whose health is its stored food.
type Hungry struct {
	*core.Base
	cfg Config
}

// New returns a hungry at world position (x, y).
func New(cfg Config, x, y, health int) *Hungry {
	if cfg.MaxHealth < 1 {
		cfg.MaxHealth = 1
	}
	h := &Hungry{cfg: cfg}
	h.Base = core.NewBase(Name, x, y, health, h)
	return h
}

// Spawn builds a hungry with default settings.
func Spawn(x, y, health int) core.Life {
	return New(DefaultConfig(), x, y, health)
}

// Spawner returns a spawn function bound to cfg.
func Spawner(cfg Config) core.SpawnFunc {
	return func(x, y, health int) core.Life {
		return New(cfg, x, y, health)
	}
}

// Register adds the hungry type to f.
func Register(f *core.Factory, cfg Config) error {
	return f.Register(Name, Spawner(cfg))
}

// CountNeighbours classifies neighbours by type.
func (h *Hungry) CountNeighbours(neighbours []core.Life) core.NeighbourClassMap {
	return core.CountNeighbours(neighbours)
}

// InteractWithNeighbours eats the first living prey in neighbour order and
// gains Gain for every living prey around. Without prey it loses Starve and
// steps toward the nearest prey in sight.
func (h *Hungry) InteractWithNeighbours(neighbours []core.Life, classes core.NeighbourClassMap) int {
	if !h.IsAlive() {
		return 0
	}
	env := h.Env()
	if classes[h.cfg.Prey] > 0 {
		if living := core.CountLivingOfType(neighbours, h.cfg.Prey); living > 0 {
			for _, n := range neighbours {
				if n != nil && n.IsAlive() && n.Name() == h.cfg.Prey {
					if env != nil {
						env.Kill(n)
					}
					break
				}
			}
			return h.Health() + h.cfg.Gain*living
		}
	}
	next := h.Health() - h.cfg.Starve
	if next > 0 && env != nil && h.cfg.SeekRadius > 0 {
		if err := h.seek(env); err != nil {
			// Not in the grid; starve in place.
			return next
		}
	}
	return next
}

// seek moves one cell toward the nearest living prey within SeekRadius,
// swapping with the dead occupant of that cell. A hungry that steps right
// or down is visited again later in the same pass. The move fails only when
// h is bound to env without occupying its cell.
func (h *Hungry) seek(env core.Environment) error {
	x, y := h.Position()
	var target core.Life
	best := 0
	for _, n := range env.NeighboursWithinDistance(h, h.cfg.SeekRadius) {
		if !n.IsAlive() || n.Name() != h.cfg.Prey {
			continue
		}
		nx, ny := n.Position()
		d := (nx-x)*(nx-x) + (ny-y)*(ny-y)
		if target == nil || d < best {
			target = n
			best = d
		}
	}
	if target == nil {
		return nil
	}
	tx, ty := target.Position()
	step := env.NeighbourAt(h, sign(tx-x), sign(ty-y))
	if step == nil || step.IsAlive() {
		return nil
	}
	sx, sy := step.Position()
	if _, err := env.Move(h, sx, sy, true); err != nil {
		return fmt.Errorf("seek %s: %w", h.cfg.Prey, err)
	}
	return nil
}

// UpdateHealthChange clamps health to [0, MaxHealth].
func (h *Hungry) UpdateHealthChange(health int) int {
	return core.Clamp(health, 0, h.cfg.MaxHealth)
}

// Draw plots living hungries in red, brighter when well fed.
func (h *Hungry) Draw(c core.Canvas) {
	if !h.IsAlive() {
		return
	}
	x, y := h.Position()
	shade := uint8(96 + 159*h.Health()/h.cfg.MaxHealth)
	c.Plot(x, y, '@', color.RGBA{R: shade, G: shade / 5, B: shade / 4, A: 255})
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
