package colony

import (
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"

	"lifegrid/internal/core"
)

// Census tallies living entities per registered type after a generation.
type Census struct {
	factory    *core.Factory
	counts     *intmap.Map[uint32, int]
	total      int
	generation int
}

func newCensus(f *core.Factory) *Census {
	return &Census{factory: f, counts: intmap.New[uint32, int](f.Len())}
}

// Record recounts m.
func (c *Census) Record(m *core.Matrix) {
	c.counts.Clear()
	c.total = 0
	m.ForEach(func(_, _ int, l core.Life) {
		if !l.IsAlive() {
			return
		}
		id, ok := c.factory.TypeID(l.Name())
		if !ok {
			return
		}
		n, _ := c.counts.Get(id)
		c.counts.Put(id, n+1)
		c.total++
	})
	c.generation = m.Generation()
}

// Count returns the living count of the named type.
func (c *Census) Count(name string) int {
	id, ok := c.factory.TypeID(name)
	if !ok {
		return 0
	}
	n, _ := c.counts.Get(id)
	return n
}

// Total returns the number of living entities.
func (c *Census) Total() int { return c.total }

// Generation returns the generation the census was taken at.
func (c *Census) Generation() int { return c.generation }

// Fields renders the census as log fields, one per type in registration
// order.
func (c *Census) Fields() []zap.Field {
	names := c.factory.Types()
	fields := make([]zap.Field, 0, len(names)+2)
	fields = append(fields, zap.Int("generation", c.generation), zap.Int("alive", c.total))
	for _, name := range names {
		fields = append(fields, zap.Int(name, c.Count(name)))
	}
	return fields
}
