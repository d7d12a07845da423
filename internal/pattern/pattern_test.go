package pattern

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/blob"
	"lifegrid/internal/sims/hungry"
)

const glider = `
name: glider
origin: {col: 1, row: 2}
legend:
  o: blob
art:
  - ".o."
  - "..o"
  - "ooo"
cells:
  - {type: hungry, col: 5, row: 0, health: 7}
  - {type: blob, col: 0, row: 0}
`

func newMatrix(t *testing.T) *core.Matrix {
	t.Helper()
	f := core.NewFactory()
	require.NoError(t, blob.Register(f, blob.DefaultConfig()))
	require.NoError(t, hungry.Register(f, hungry.DefaultConfig()))
	require.NoError(t, f.SetDefault(blob.Name))
	m, err := core.NewMatrix(10, 80, 80)
	require.NoError(t, err)
	require.NoError(t, m.Setup(f))
	return m
}

func TestPlacements(t *testing.T) {
	p, err := Parse([]byte(glider))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Health)

	got, err := p.Placements()
	require.NoError(t, err)
	assert.Equal(t, []Placement{
		{Type: "blob", Col: 2, Row: 2, Health: 1},
		{Type: "blob", Col: 3, Row: 3, Health: 1},
		{Type: "blob", Col: 1, Row: 4, Health: 1},
		{Type: "blob", Col: 2, Row: 4, Health: 1},
		{Type: "blob", Col: 3, Row: 4, Health: 1},
		{Type: "hungry", Col: 6, Row: 2, Health: 7},
		{Type: "blob", Col: 1, Row: 2, Health: 1},
	}, got)
}

func TestPlacementsCountRunesNotBytes(t *testing.T) {
	p, err := Parse([]byte("legend: {\"●\": blob, \"·\": blob, \"█\": hungry}\nart: [\"●·●█\"]\n"))
	require.NoError(t, err)

	got, err := p.Placements()
	require.NoError(t, err)
	assert.Equal(t, []Placement{
		{Type: "blob", Col: 0, Row: 0, Health: 1},
		{Type: "blob", Col: 1, Row: 0, Health: 1},
		{Type: "blob", Col: 2, Row: 0, Health: 1},
		{Type: "hungry", Col: 3, Row: 0, Health: 1},
	}, got)

	m := newMatrix(t)
	require.NoError(t, p.Apply(m))
	assert.Equal(t, hungry.Name, m.LifeAt(0, 3).Name())
	assert.Equal(t, 4, m.LivingCellCount())
}

func TestPlacementsErrors(t *testing.T) {
	p, err := Parse([]byte("name: bad\nart: [\"x\"]\n"))
	require.NoError(t, err)
	_, err = p.Placements()
	assert.Error(t, err)

	p, err = Parse([]byte("name: bad\ncells: [{col: 1, row: 1}]\n"))
	require.NoError(t, err)
	_, err = p.Placements()
	assert.Error(t, err)

	_, err = Parse([]byte("art: [unclosed"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	p, err := Parse([]byte(glider))
	require.NoError(t, err)
	m := newMatrix(t)

	require.NoError(t, p.Apply(m))

	assert.Equal(t, 6, m.LifeCount(blob.Name))
	assert.Equal(t, 1, m.LifeCount(hungry.Name))
	h := m.LifeAt(2, 6)
	assert.Equal(t, hungry.Name, h.Name())
	assert.Equal(t, 7, h.Health())
	x, y := h.Position()
	assert.Equal(t, m.ColX(6), x)
	assert.Equal(t, m.RowY(2), y)
}

func TestApplyOutOfBoundsLeavesMatrixUntouched(t *testing.T) {
	p, err := Parse([]byte(`
name: spill
legend: {o: blob}
art: ["oo"]
cells:
  - {type: hungry, col: 8, row: 0, health: 3}
`))
	require.NoError(t, err)
	m := newMatrix(t)

	assert.ErrorIs(t, p.Apply(m), core.ErrOutOfBounds)
	assert.Equal(t, 0, m.LivingCellCount())
}

func TestApplyUnknownType(t *testing.T) {
	p, err := Parse([]byte("name: ghost\ncells: [{type: ghost, col: 1, row: 1}]\n"))
	require.NoError(t, err)
	m := newMatrix(t)

	assert.ErrorIs(t, p.Apply(m), core.ErrUnknownType)
	assert.Equal(t, 0, m.LivingCellCount())
}

func TestLoadShippedPattern(t *testing.T) {
	p, err := Load(filepath.Join("..", "..", "configs", "patterns", "glider.yaml"))
	require.NoError(t, err)
	got, err := p.Placements()
	require.NoError(t, err)
	assert.Len(t, got, 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
