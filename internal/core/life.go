package core

import "image/color"

// Life is a single entity occupying one matrix cell. Every cell holds exactly
// one Life; dead cells hold an entity with zero health.
type Life interface {
	Name() string
	Position() (x, y int)
	SetPosition(x, y int)
	Health() int
	IsAlive() bool

	// Bind hands the entity the environment it lives in. The matrix calls it
	// whenever the entity is placed into a cell.
	Bind(env Environment)
	Setup()
	Reset()

	// Simulate stages the next health value from the given neighbours. The
	// slice is owned by the caller and must not be retained.
	Simulate(neighbours []Life)
	// ApplySimulationChanges commits whatever Simulate staged.
	ApplySimulationChanges()

	Draw(c Canvas)
}

// Rules is the variant-specific part of a Life. Base drives these three
// steps from Simulate.
type Rules interface {
	CountNeighbours(neighbours []Life) NeighbourClassMap
	InteractWithNeighbours(neighbours []Life, classes NeighbourClassMap) int
	UpdateHealthChange(health int) int
}

// SetupHook is implemented by Rules that need one-time initialization once
// the entity is bound to an environment.
type SetupHook interface {
	OnSetup()
}

// Canvas receives draw calls from entities. Coordinates are world positions.
type Canvas interface {
	Plot(x, y int, glyph rune, tint color.RGBA)
}

// NeighbourClassMap tallies neighbours by type name.
type NeighbourClassMap map[string]int

// CountNeighbours classifies the present neighbours by type name, living or
// not. Nil slots mark positions beyond the matrix edge and are skipped.
func CountNeighbours(neighbours []Life) NeighbourClassMap {
	classes := make(NeighbourClassMap, 2)
	for _, n := range neighbours {
		if n == nil {
			continue
		}
		classes[n.Name()]++
	}
	return classes
}

// CountLiving returns how many present neighbours are alive.
func CountLiving(neighbours []Life) int {
	count := 0
	for _, n := range neighbours {
		if n != nil && n.IsAlive() {
			count++
		}
	}
	return count
}

// CountLivingOfType returns how many present neighbours named name are alive.
func CountLivingOfType(neighbours []Life, name string) int {
	count := 0
	for _, n := range neighbours {
		if n != nil && n.IsAlive() && n.Name() == name {
			count++
		}
	}
	return count
}

// Base carries the state shared by every variant and implements the
// two-phase update on top of a Rules value. Variants embed *Base and
// provide Rules and Draw.
type Base struct {
	name   string
	x, y   int
	health int

	next   int
	staged bool
	ready  bool

	rules Rules
	env   Environment
}

// NewBase builds the shared state for a variant. The initial health goes
// through the variant's clamping policy.
func NewBase(name string, x, y, health int, rules Rules) *Base {
	return &Base{name: name, x: x, y: y, health: rules.UpdateHealthChange(health), rules: rules}
}

// Name returns the type name.
func (b *Base) Name() string { return b.name }

// Position returns the world coordinates of the entity.
func (b *Base) Position() (int, int) { return b.x, b.y }

// SetPosition moves the entity. Only the matrix should call this so the cell
// and the stored position stay in step.
func (b *Base) SetPosition(x, y int) {
	b.x = x
	b.y = y
}

// Health returns the committed health.
func (b *Base) Health() int { return b.health }

// IsAlive reports whether health is non-zero.
func (b *Base) IsAlive() bool { return b.health != 0 }

// Bind records the environment the entity can query and act on.
func (b *Base) Bind(env Environment) { b.env = env }

// Env returns the bound environment, or nil for detached entities.
func (b *Base) Env() Environment { return b.env }

// Setup runs the variant's OnSetup hook the first time it is called.
func (b *Base) Setup() {
	if b.ready {
		return
	}
	b.ready = true
	if hook, ok := b.rules.(SetupHook); ok {
		hook.OnSetup()
	}
}

// Reset kills the entity. A staged change is dropped as well, otherwise an
// entity killed mid-generation would come back at commit.
func (b *Base) Reset() {
	b.health = 0
	b.next = 0
	b.staged = false
}

// Simulate stages the next health. Calling it twice before a commit keeps
// the last result.
func (b *Base) Simulate(neighbours []Life) {
	classes := b.rules.CountNeighbours(neighbours)
	proposed := b.rules.InteractWithNeighbours(neighbours, classes)
	b.next = b.rules.UpdateHealthChange(proposed)
	b.staged = true
}

// ApplySimulationChanges commits the staged health. Without a staged value
// it does nothing.
func (b *Base) ApplySimulationChanges() {
	if !b.staged {
		return
	}
	b.health = b.next
	b.staged = false
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
