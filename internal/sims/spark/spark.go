// Package spark implements Brian's Brain as a life type. A spark fires, then
// cools down for Tail generations, then waits until exactly two neighbouring
// sparks are firing.
package spark

import (
	"image/color"

	"lifegrid/internal/core"
)

// Name is the registered type name.
const Name = "spark"

const ignition = 2

// Config holds the spark's tunables.
type Config struct {
	// Tail is the number of refractory generations after firing.
	Tail int
}

// DefaultConfig returns classic Brian's Brain: one refractory generation.
func DefaultConfig() Config {
	return Config{Tail: 1}
}

// Spark is a Brian's Brain cell. Health Tail+1 means firing, lower positive
// values are the refractory tail and zero is ready.
type Spark struct {
	*core.Base
	firing int
}

// New returns a spark at world position (x, y).
func New(cfg Config, x, y, health int) *Spark {
	if cfg.Tail < 1 {
		cfg.Tail = 1
	}
	s := &Spark{firing: cfg.Tail + 1}
	s.Base = core.NewBase(Name, x, y, health, s)
	return s
}

// Spawn builds a spark with default settings.
func Spawn(x, y, health int) core.Life {
	return New(DefaultConfig(), x, y, health)
}

// Spawner returns a spawn function bound to cfg.
func Spawner(cfg Config) core.SpawnFunc {
	return func(x, y, health int) core.Life {
		return New(cfg, x, y, health)
	}
}

// Register adds the spark type to f.
func Register(f *core.Factory, cfg Config) error {
	return f.Register(Name, Spawner(cfg))
}

// Firing reports whether the spark is in its firing state.
func (s *Spark) Firing() bool { return s.Health() == s.firing }

// CountNeighbours counts firing sparks under the "firing" key next to the
// usual per-type tally.
func (s *Spark) CountNeighbours(neighbours []core.Life) core.NeighbourClassMap {
	classes := core.CountNeighbours(neighbours)
	for _, n := range neighbours {
		if sp, ok := n.(*Spark); ok && sp.Firing() {
			classes["firing"]++
		}
	}
	return classes
}

// InteractWithNeighbours decays a lit spark by one and ignites a ready one
// next to exactly two firing sparks.
func (s *Spark) InteractWithNeighbours(_ []core.Life, classes core.NeighbourClassMap) int {
	if s.IsAlive() {
		return s.Health() - 1
	}
	if classes["firing"] == ignition {
		return s.firing
	}
	return 0
}

// UpdateHealthChange clamps health to [0, Tail+1].
func (s *Spark) UpdateHealthChange(health int) int {
	return core.Clamp(health, 0, s.firing)
}

// Draw plots firing sparks bright and cooling ones dim.
func (s *Spark) Draw(c core.Canvas) {
	if !s.IsAlive() {
		return
	}
	x, y := s.Position()
	if s.Firing() {
		c.Plot(x, y, '+', color.RGBA{R: 120, G: 200, B: 255, A: 255})
		return
	}
	c.Plot(x, y, '.', color.RGBA{R: 40, G: 70, B: 140, A: 255})
}
