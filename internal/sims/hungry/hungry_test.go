package hungry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/blob"
	"lifegrid/internal/sims/hungry"
)

func newMatrix(t *testing.T, cols, rows int) *core.Matrix {
	t.Helper()
	f := core.NewFactory()
	require.NoError(t, blob.Register(f, blob.DefaultConfig()))
	require.NoError(t, hungry.Register(f, hungry.DefaultConfig()))
	require.NoError(t, f.SetDefault(blob.Name))
	m, err := core.NewMatrix(10, cols*10, rows*10)
	require.NoError(t, err)
	require.NoError(t, m.Setup(f))
	return m
}

func put(t *testing.T, m *core.Matrix, name string, col, row, health int) core.Life {
	t.Helper()
	l, err := m.CreateType(name, m.ColX(col), m.RowY(row), health)
	require.NoError(t, err)
	_, err = m.Place(l)
	require.NoError(t, err)
	return l
}

func TestEatsFirstPreyAndGainsPerPrey(t *testing.T) {
	m := newMatrix(t, 3, 3)
	h := put(t, m, hungry.Name, 1, 1, 5)
	put(t, m, blob.Name, 0, 0, 1)
	put(t, m, blob.Name, 2, 2, 1)

	m.Update()

	assert.Equal(t, 5+2*2, h.Health())
	assert.Equal(t, 0, m.LifeCount(blob.Name))
	assert.Same(t, h, m.LifeAt(1, 1))
}

func TestStarvesWithoutPrey(t *testing.T) {
	m := newMatrix(t, 3, 3)
	h := put(t, m, hungry.Name, 1, 1, 3)

	m.Update()
	assert.Equal(t, 2, h.Health())

	m.Update()
	m.Update()
	assert.False(t, h.IsAlive())
	assert.Equal(t, hungry.Name, m.LifeAt(1, 1).Name())

	m.Update()
	assert.Equal(t, 0, h.Health(), "dead hungries stay dead")
}

func TestStepsTowardPrey(t *testing.T) {
	m := newMatrix(t, 5, 1)
	h := put(t, m, hungry.Name, 4, 0, 5)
	put(t, m, blob.Name, 2, 0, 1)

	m.Update()

	assert.Same(t, h, m.LifeAt(0, 3))
	x, y := h.Position()
	assert.Equal(t, m.ColX(3), x)
	assert.Equal(t, m.RowY(0), y)
	assert.Equal(t, 4, h.Health())
	assert.Equal(t, blob.Name, m.LifeAt(0, 4).Name(), "swapped dead cell takes the old place")
}

func TestDoesNotStepOntoLivingCell(t *testing.T) {
	m := newMatrix(t, 3, 1)
	first := put(t, m, hungry.Name, 0, 0, 5)
	second := put(t, m, hungry.Name, 1, 0, 5)
	put(t, m, blob.Name, 2, 0, 1)

	m.Update()

	assert.Same(t, first, m.LifeAt(0, 0))
	assert.Equal(t, 4, first.Health())
	assert.Equal(t, 5+2, second.Health())
	assert.Equal(t, 0, m.LifeCount(blob.Name))
}

func TestUnplacedHungryStarvesInPlace(t *testing.T) {
	m := newMatrix(t, 5, 1)
	put(t, m, blob.Name, 2, 0, 1)
	h, err := m.CreateType(hungry.Name, m.ColX(4), m.RowY(0), 5)
	require.NoError(t, err)
	h.Bind(m)
	h.Setup()
	occupant := m.LifeAt(0, 4)

	require.NotPanics(t, func() {
		h.Simulate(m.NeighboursWithinDistance(h, 1))
		h.ApplySimulationChanges()
	})

	assert.Equal(t, 4, h.Health())
	assert.Same(t, occupant, m.LifeAt(0, 4))
	assert.False(t, m.LifeAt(0, 3).IsAlive())
	x, _ := h.Position()
	assert.Equal(t, m.ColX(4), x)
}

func TestPreyOutOfSightIsIgnored(t *testing.T) {
	m := newMatrix(t, 6, 1)
	h := put(t, m, hungry.Name, 5, 0, 5)
	put(t, m, blob.Name, 0, 0, 1)

	m.Update()

	assert.Same(t, h, m.LifeAt(0, 5))
	assert.Equal(t, 4, h.Health())
}

func TestConfigurablePrey(t *testing.T) {
	cfg := hungry.DefaultConfig()
	cfg.Prey = hungry.Name
	cfg.Gain = 3

	eater := hungry.New(cfg, 0, 0, 2)
	meal := hungry.New(cfg, 10, 0, 1)
	eater.Simulate([]core.Life{nil, nil, nil, nil, meal, nil, nil, nil})
	eater.ApplySimulationChanges()

	assert.Equal(t, 5, eater.Health())
}

func TestClampsHealth(t *testing.T) {
	assert.Equal(t, 20, hungry.Spawn(0, 0, 100).Health())
	assert.Equal(t, 0, hungry.Spawn(0, 0, -1).Health())
	assert.Equal(t, 1, hungry.New(hungry.Config{}, 0, 0, 7).Health())
}
