package blob_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/blob"
)

func newMatrix(t *testing.T, w, h int) *core.Matrix {
	t.Helper()
	f := core.NewFactory()
	require.NoError(t, blob.Register(f, blob.DefaultConfig()))
	require.NoError(t, f.SetDefault(blob.Name))
	m, err := core.NewMatrix(1, w, h)
	require.NoError(t, err)
	require.NoError(t, m.Setup(f))
	return m
}

func set(t *testing.T, m *core.Matrix, col, row int) {
	t.Helper()
	l, err := m.CreateType(blob.Name, m.ColX(col), m.RowY(row), 1)
	require.NoError(t, err)
	_, err = m.Place(l)
	require.NoError(t, err)
}

func requireAlive(t *testing.T, m *core.Matrix, expects map[[2]int]bool) {
	t.Helper()
	m.ForEach(func(row, col int, l core.Life) {
		_, shouldBeAlive := expects[[2]int{col, row}]
		require.Equal(t, shouldBeAlive, l.IsAlive(), "cell (%d,%d)", col, row)
	})
}

func TestBlinkerOscillation(t *testing.T) {
	m := newMatrix(t, 5, 5)
	set(t, m, 2, 1)
	set(t, m, 2, 2)
	set(t, m, 2, 3)

	m.Update()
	requireAlive(t, m, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
	assert.Equal(t, 2, m.LifeAt(2, 2).Health(), "survivor ages")
	assert.Equal(t, 1, m.LifeAt(2, 1).Health(), "newborn starts at one")

	m.Update()
	requireAlive(t, m, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockAgesUpToMax(t *testing.T) {
	m := newMatrix(t, 4, 4)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		set(t, m, c[0], c[1])
	}

	for i := 0; i < 20; i++ {
		m.Update()
	}

	assert.Equal(t, 4, m.LivingCellCount())
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Equal(t, blob.DefaultConfig().MaxAge, m.LifeAt(c[1], c[0]).Health())
	}
}

func TestLoneBlobDies(t *testing.T) {
	m := newMatrix(t, 3, 3)
	set(t, m, 1, 1)

	m.Update()
	assert.Equal(t, 0, m.LivingCellCount())
	assert.Equal(t, blob.Name, m.LifeAt(1, 1).Name())
}

func TestRuleCountsAnyLivingType(t *testing.T) {
	alive := func() core.Life { return blob.New(blob.DefaultConfig(), 0, 0, 1) }
	dead := blob.New(blob.DefaultConfig(), 0, 0, 0)

	dead.Simulate([]core.Life{alive(), alive(), alive(), nil, nil, nil, nil, nil})
	dead.ApplySimulationChanges()
	assert.Equal(t, 1, dead.Health())

	crowded := blob.New(blob.DefaultConfig(), 0, 0, 4)
	crowded.Simulate([]core.Life{alive(), alive(), alive(), alive(), nil, nil, nil, nil})
	crowded.ApplySimulationChanges()
	assert.Equal(t, 0, crowded.Health())
}

func TestClampsHealth(t *testing.T) {
	assert.Equal(t, 9, blob.New(blob.DefaultConfig(), 0, 0, 50).Health())
	assert.Equal(t, 1, blob.New(blob.Config{}, 0, 0, 50).Health())
	assert.Equal(t, 0, blob.Spawn(0, 0, -4).Health())
}

type plotRecorder struct {
	glyphs []rune
}

func (p *plotRecorder) Plot(_, _ int, glyph rune, _ color.RGBA) { p.glyphs = append(p.glyphs, glyph) }

func TestDrawSkipsDead(t *testing.T) {
	var c plotRecorder
	blob.Spawn(3, 4, 0).Draw(&c)
	assert.Empty(t, c.glyphs)

	blob.Spawn(3, 4, 2).Draw(&c)
	assert.Equal(t, []rune{'o'}, c.glyphs)
}
