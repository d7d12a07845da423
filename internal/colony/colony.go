// Package colony wires the factory, variants and matrix together from a
// config and exposes the result to drivers as a core.Sim.
package colony

import (
	"fmt"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/sims/blob"
	"lifegrid/internal/sims/hungry"
	"lifegrid/internal/sims/scripted"
	"lifegrid/internal/sims/spark"
	rng "lifegrid/pkg/core"
)

// Colony is a seeded matrix of life.
type Colony struct {
	cfg config.Config
	log *zap.Logger

	factory *core.Factory
	matrix  *core.Matrix
	engines []*scripted.Engine
	pattern *pattern.Pattern
	census  *Census

	cells []uint8
	seed  int64
}

var (
	_ core.Sim               = (*Colony)(nil)
	_ core.ParameterProvider = (*Colony)(nil)
)

// New registers every configured type, builds the matrix and seeds it with
// cfg.Sim.Seed.
func New(cfg config.Config, log *zap.Logger) (*Colony, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Colony{cfg: cfg, log: log, factory: core.NewFactory()}

	if err := c.registerTypes(); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.factory.SetDefault(cfg.Sim.DefaultType); err != nil {
		c.Close()
		return nil, err
	}
	if cfg.Sim.Pattern != "" {
		p, err := pattern.Load(cfg.Sim.Pattern)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.pattern = p
	}

	m, err := core.NewMatrix(cfg.Grid.CellSize, cfg.Grid.Width, cfg.Grid.Height, core.WithLogger(log))
	if err != nil {
		c.Close()
		return nil, err
	}
	if err := m.Setup(c.factory); err != nil {
		c.Close()
		return nil, err
	}
	c.matrix = m
	c.census = newCensus(c.factory)
	c.cells = make([]uint8, m.Width()*m.Height())

	if err := c.Seed(cfg.Sim.Seed); err != nil {
		c.Close()
		return nil, err
	}
	log.Info("colony ready",
		zap.Int("cols", m.Width()),
		zap.Int("rows", m.Height()),
		zap.Strings("types", c.factory.Types()),
		zap.String("default", cfg.Sim.DefaultType),
	)
	return c, nil
}

func (c *Colony) registerTypes() error {
	if err := blob.Register(c.factory, blob.Config{MaxAge: c.cfg.Blob.MaxAge}); err != nil {
		return err
	}
	h := c.cfg.Hungry
	if err := hungry.Register(c.factory, hungry.Config{
		Prey:       h.Prey,
		Gain:       h.Gain,
		Starve:     h.Starve,
		MaxHealth:  h.MaxHealth,
		SeekRadius: h.SeekRadius,
	}); err != nil {
		return err
	}
	if err := spark.Register(c.factory, spark.Config{Tail: c.cfg.Spark.Tail}); err != nil {
		return err
	}
	for _, sc := range c.cfg.Scripted {
		var glyph rune
		for _, r := range sc.Glyph {
			glyph = r
			break
		}
		e, err := scripted.LoadFile(scripted.Config{
			Name:      sc.Name,
			MaxHealth: sc.MaxHealth,
			Glyph:     glyph,
		}, sc.File, c.log)
		if err != nil {
			return err
		}
		c.engines = append(c.engines, e)
		if err := e.Register(c.factory); err != nil {
			return err
		}
	}
	return nil
}

// Seed clears the matrix and populates it again, either from the configured
// pattern or randomly from seed.
func (c *Colony) Seed(seed int64) error {
	if err := c.matrix.Reset(); err != nil {
		return err
	}
	c.seed = seed
	if c.pattern != nil {
		if err := c.pattern.Apply(c.matrix); err != nil {
			return err
		}
	} else if err := c.scatter(seed); err != nil {
		return err
	}
	c.census.Record(c.matrix)
	return nil
}

func (c *Colony) scatter(seed int64) error {
	r := rng.NewRNG(seed)
	m := c.matrix
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			if !r.Chance(c.cfg.Sim.Density) {
				continue
			}
			name, err := c.factory.RandomName(r)
			if err != nil {
				return err
			}
			l, err := m.CreateType(name, m.ColX(col), m.RowY(row), r.Between(1, c.cfg.Sim.SpawnHealth))
			if err != nil {
				return err
			}
			if _, err := m.Place(l); err != nil {
				return fmt.Errorf("scatter: %w", err)
			}
		}
	}
	return nil
}

// Name identifies the simulation.
func (c *Colony) Name() string { return "lifegrid" }

// Size returns the matrix dimensions in cells.
func (c *Colony) Size() core.Size {
	return core.Size{W: c.matrix.Width(), H: c.matrix.Height()}
}

// Reset reseeds the colony. Failures are logged and leave the matrix
// cleared.
func (c *Colony) Reset(seed int64) {
	if err := c.Seed(seed); err != nil {
		c.log.Error("colony reset failed", zap.Int64("seed", seed), zap.Error(err))
	}
}

// Step runs one generation and takes a census.
func (c *Colony) Step() {
	c.matrix.Update()
	c.census.Record(c.matrix)
}

// Generation returns the number of generations since the last seed.
func (c *Colony) Generation() int { return c.matrix.Generation() }

// Cells returns one value per cell: 0 when dead, otherwise type id + 1.
func (c *Colony) Cells() []uint8 {
	i := 0
	c.matrix.ForEach(func(_, _ int, l core.Life) {
		c.cells[i] = 0
		if l.IsAlive() {
			if id, ok := c.factory.TypeID(l.Name()); ok && id < 255 {
				c.cells[i] = uint8(id + 1)
			}
		}
		i++
	})
	return c.cells
}

// Draw forwards to every entity.
func (c *Colony) Draw(cv core.Canvas) { c.matrix.Draw(cv) }

// Matrix exposes the underlying matrix.
func (c *Colony) Matrix() *core.Matrix { return c.matrix }

// Factory exposes the type registry.
func (c *Colony) Factory() *core.Factory { return c.factory }

// Census returns the census of the latest generation.
func (c *Colony) Census() *Census { return c.census }

// Parameters reports the colony settings and latest census.
func (c *Colony) Parameters() core.ParameterSnapshot {
	m := c.matrix
	census := []core.Parameter{
		core.IntParam("generation", "Generation", m.Generation()),
		core.IntParam("alive", "Alive", c.census.Total()),
	}
	for _, name := range c.factory.Types() {
		census = append(census, core.IntParam("alive_"+name, name, c.census.Count(name)))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", m.Width()),
				core.IntParam("rows", "Rows", m.Height()),
				core.IntParam("cell_size", "Cell size", m.CellSize()),
				core.Int64Param("seed", "Seed", c.seed),
				core.FloatParam("density", "Density", c.cfg.Sim.Density),
				core.StringParam("default_type", "Default type", c.cfg.Sim.DefaultType),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam("blob_max_age", "Blob max age", c.cfg.Blob.MaxAge),
				core.IntParam("hungry_gain", "Hungry gain", c.cfg.Hungry.Gain),
				core.IntParam("hungry_starve", "Hungry starve", c.cfg.Hungry.Starve),
				core.IntParam("hungry_max_health", "Hungry max health", c.cfg.Hungry.MaxHealth),
				core.IntParam("hungry_seek_radius", "Hungry seek radius", c.cfg.Hungry.SeekRadius),
				core.IntParam("spark_tail", "Spark tail", c.cfg.Spark.Tail),
			},
		},
		{Name: "Census", Params: census},
	}}
}

// Close releases the Lua engines.
func (c *Colony) Close() {
	for _, e := range c.engines {
		e.Close()
	}
	c.engines = nil
}
