// Package scripted implements life types whose rule lives in a Lua script.
//
// A script defines a global function
//
//	function interact(self, neighbours) ... return health end
//
// where self is {name, health, x, y} and neighbours maps each neighbouring
// type name to its count, plus "alive" holding the number of living
// neighbours. The returned number is the proposed health, clamped to
// [0, max_health].
package scripted

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"lifegrid/internal/core"
)

const interactFunc = "interact"

// ErrNoInteract is returned when a script does not define interact.
var ErrNoInteract = errors.New("script does not define interact")

// Config describes one scripted type.
type Config struct {
	Name      string
	Source    string
	MaxHealth int
	Glyph     rune
	Tint      color.RGBA
}

// Engine wraps the Lua VM backing one scripted type. Single-goroutine access
// only.
type Engine struct {
	cfg Config
	vm  *lua.LState
	fn  lua.LValue
	log *zap.Logger
}

// NewEngine compiles cfg.Source and checks that it defines interact.
func NewEngine(cfg Config, log *zap.Logger) (*Engine, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("scripted type: %w", core.ErrInvalidType)
	}
	if cfg.MaxHealth < 1 {
		cfg.MaxHealth = 1
	}
	if cfg.Glyph == 0 {
		cfg.Glyph = '*'
	}
	if cfg.Tint == (color.RGBA{}) {
		cfg.Tint = color.RGBA{R: 170, G: 110, B: 230, A: 255}
	}
	if log == nil {
		log = zap.NewNop()
	}

	vm := lua.NewState()
	vm.SetGlobal("TYPE_NAME", lua.LString(cfg.Name))
	if err := vm.DoString(cfg.Source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script %s: %w", cfg.Name, err)
	}
	fn := vm.GetGlobal(interactFunc)
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("load script %s: %w", cfg.Name, ErrNoInteract)
	}
	log.Debug("loaded lua rule", zap.String("type", cfg.Name))
	return &Engine{cfg: cfg, vm: vm, fn: fn, log: log}, nil
}

// LoadFile reads the script at path into cfg.Source and builds the engine.
func LoadFile(cfg Config, path string, log *zap.Logger) (*Engine, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	cfg.Source = string(src)
	return NewEngine(cfg, log)
}

// Name returns the type name the engine spawns.
func (e *Engine) Name() string { return e.cfg.Name }

// Close releases the Lua VM.
func (e *Engine) Close() { e.vm.Close() }

// Spawn builds a scripted entity at world position (x, y).
func (e *Engine) Spawn(x, y, health int) core.Life {
	s := &Scripted{engine: e}
	s.Base = core.NewBase(e.cfg.Name, x, y, health, s)
	return s
}

// Register adds the engine's type to f.
func (e *Engine) Register(f *core.Factory) error {
	return f.Register(e.cfg.Name, e.Spawn)
}

func (e *Engine) interact(s *Scripted, neighbours []core.Life, classes core.NeighbourClassMap) (int, error) {
	self := e.vm.NewTable()
	x, y := s.Position()
	self.RawSetString("name", lua.LString(s.Name()))
	self.RawSetString("health", lua.LNumber(s.Health()))
	self.RawSetString("x", lua.LNumber(x))
	self.RawSetString("y", lua.LNumber(y))

	counts := e.vm.NewTable()
	for name, n := range classes {
		counts.RawSetString(name, lua.LNumber(n))
	}
	counts.RawSetString("alive", lua.LNumber(core.CountLiving(neighbours)))

	if err := e.vm.CallByParam(lua.P{
		Fn:      e.fn,
		NRet:    1,
		Protect: true,
	}, self, counts); err != nil {
		return 0, err
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)

	num, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s returned %s, want number", interactFunc, ret.Type())
	}
	f := float64(num)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s returned non-finite %v", interactFunc, f)
	}
	// Saturate before converting; the rules clamp to max health afterwards.
	return int(math.Max(math.MinInt32, math.Min(f, math.MaxInt32))), nil
}

// Scripted is a life whose interaction rule is evaluated by its Engine.
type Scripted struct {
	*core.Base
	engine *Engine
}

// CountNeighbours classifies neighbours by type.
func (s *Scripted) CountNeighbours(neighbours []core.Life) core.NeighbourClassMap {
	return core.CountNeighbours(neighbours)
}

// InteractWithNeighbours runs the script. A failing script keeps the current
// health.
func (s *Scripted) InteractWithNeighbours(neighbours []core.Life, classes core.NeighbourClassMap) int {
	health, err := s.engine.interact(s, neighbours, classes)
	if err != nil {
		s.engine.log.Error("lua interact error", zap.String("type", s.Name()), zap.Error(err))
		return s.Health()
	}
	return health
}

// UpdateHealthChange clamps health to [0, MaxHealth].
func (s *Scripted) UpdateHealthChange(health int) int {
	return core.Clamp(health, 0, s.engine.cfg.MaxHealth)
}

// Draw plots living entities with the configured glyph.
func (s *Scripted) Draw(c core.Canvas) {
	if !s.IsAlive() {
		return
	}
	x, y := s.Position()
	c.Plot(x, y, s.engine.cfg.Glyph, s.engine.cfg.Tint)
}
