package core

import "fmt"

// SpawnFunc constructs a Life of one registered type.
type SpawnFunc func(x, y, health int) Life

// Intn is satisfied by *rand.Rand and the seeded RNG in pkg/core.
type Intn interface {
	IntN(n int) int
}

// Factory maps type names to spawners and tracks the default type used to
// fill empty cells. Registering a name twice is rejected.
type Factory struct {
	spawners    map[string]SpawnFunc
	ids         map[string]uint32
	names       []string
	defaultName string
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{
		spawners: make(map[string]SpawnFunc),
		ids:      make(map[string]uint32),
	}
}

// Register adds a spawner under name.
func (f *Factory) Register(name string, fn SpawnFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("register %q: %w", name, ErrInvalidType)
	}
	if _, ok := f.spawners[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateType)
	}
	f.spawners[name] = fn
	f.ids[name] = uint32(len(f.names))
	f.names = append(f.names, name)
	return nil
}

// SetDefault marks a registered type as the default.
func (f *Factory) SetDefault(name string) error {
	if _, ok := f.spawners[name]; !ok {
		return fmt.Errorf("set default %q: %w", name, ErrUnknownType)
	}
	f.defaultName = name
	return nil
}

// DefaultName returns the default type.
func (f *Factory) DefaultName() (string, error) {
	if f.defaultName == "" {
		return "", ErrNoDefault
	}
	return f.defaultName, nil
}

// RandomName picks a registered type uniformly.
func (f *Factory) RandomName(rng Intn) (string, error) {
	if len(f.names) == 0 {
		return "", ErrEmptyRegistry
	}
	return f.names[rng.IntN(len(f.names))], nil
}

// Spawn constructs a new Life of the named type.
func (f *Factory) Spawn(name string, x, y, health int) (Life, error) {
	fn, ok := f.spawners[name]
	if !ok {
		return nil, fmt.Errorf("spawn %q: %w", name, ErrUnknownType)
	}
	return fn(x, y, health), nil
}

// SpawnDefault constructs a Life of the default type.
func (f *Factory) SpawnDefault(x, y, health int) (Life, error) {
	name, err := f.DefaultName()
	if err != nil {
		return nil, err
	}
	return f.Spawn(name, x, y, health)
}

// Types returns the registered names in registration order.
func (f *Factory) Types() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// TypeID returns the dense id assigned to name at registration.
func (f *Factory) TypeID(name string) (uint32, bool) {
	id, ok := f.ids[name]
	return id, ok
}

// Len returns the number of registered types.
func (f *Factory) Len() int { return len(f.names) }
