package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/blob"
	"lifegrid/internal/sims/hungry"
)

const (
	recorderName = "recorder"
	killerName   = "killer"
)

// recorder remembers the health of every present neighbour it was shown and
// grows by one each generation while alive.
type recorder struct {
	*core.Base
	observed []int
	classes  core.NeighbourClassMap
}

func newRecorder(x, y, health int) core.Life {
	return recorderNamed(recorderName)(x, y, health)
}

func recorderNamed(name string) core.SpawnFunc {
	return func(x, y, health int) core.Life {
		r := &recorder{}
		r.Base = core.NewBase(name, x, y, health, r)
		return r
	}
}

func (r *recorder) CountNeighbours(n []core.Life) core.NeighbourClassMap {
	return core.CountNeighbours(n)
}

func (r *recorder) InteractWithNeighbours(n []core.Life, classes core.NeighbourClassMap) int {
	r.observed = r.observed[:0]
	for _, l := range n {
		if l != nil {
			r.observed = append(r.observed, l.Health())
		}
	}
	r.classes = classes
	if !r.IsAlive() {
		return 0
	}
	return r.Health() + 1
}

func (r *recorder) UpdateHealthChange(h int) int { return core.Clamp(h, 0, 100) }

func (r *recorder) Draw(core.Canvas) {}

// killer kills its eastern neighbour while deciding.
type killer struct {
	*core.Base
}

func newKiller(x, y, health int) core.Life {
	k := &killer{}
	k.Base = core.NewBase(killerName, x, y, health, k)
	return k
}

func (k *killer) CountNeighbours(n []core.Life) core.NeighbourClassMap {
	return core.CountNeighbours(n)
}

func (k *killer) InteractWithNeighbours(_ []core.Life, _ core.NeighbourClassMap) int {
	if env := k.Env(); env != nil {
		env.Kill(env.NeighbourAt(k, 1, 0))
	}
	return k.Health()
}

func (k *killer) UpdateHealthChange(h int) int { return core.Clamp(h, 0, 100) }

func (k *killer) Draw(core.Canvas) {}

// newFactory registers blob (default), hungry, recorder and killer.
func newFactory(t *testing.T, def string) *core.Factory {
	t.Helper()
	f := core.NewFactory()
	require.NoError(t, blob.Register(f, blob.DefaultConfig()))
	require.NoError(t, hungry.Register(f, hungry.DefaultConfig()))
	require.NoError(t, f.Register(recorderName, newRecorder))
	require.NoError(t, f.Register(killerName, newKiller))
	require.NoError(t, f.SetDefault(def))
	return f
}

func newMatrix(t *testing.T, cellSize, width, height int, def string) *core.Matrix {
	t.Helper()
	m, err := core.NewMatrix(cellSize, width, height)
	require.NoError(t, err)
	require.NoError(t, m.Setup(newFactory(t, def)))
	return m
}

// put spawns name at (col, row) with health and places it.
func put(t *testing.T, m *core.Matrix, name string, col, row, health int) core.Life {
	t.Helper()
	l, err := m.CreateType(name, m.ColX(col), m.RowY(row), health)
	require.NoError(t, err)
	_, err = m.Place(l)
	require.NoError(t, err)
	return l
}

// requireInvariants checks that every cell is occupied by an entity whose
// position maps back to that cell, and that the living count matches.
func requireInvariants(t *testing.T, m *core.Matrix) {
	t.Helper()
	alive := 0
	m.ForEach(func(row, col int, l core.Life) {
		require.NotNil(t, l, "cell (%d,%d) empty", col, row)
		x, y := l.Position()
		require.Equal(t, col, m.XCol(x), "cell (%d,%d) holds entity at x=%d", col, row, x)
		require.Equal(t, row, m.YRow(y), "cell (%d,%d) holds entity at y=%d", col, row, y)
		if l.IsAlive() {
			alive++
		}
	})
	require.Equal(t, alive, m.LivingCellCount())
}
