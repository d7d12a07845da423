package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	rng "lifegrid/pkg/core"
)

func TestFactoryRoundTrip(t *testing.T) {
	f := core.NewFactory()
	require.NoError(t, f.Register("X", recorderNamed("X")))

	l, err := f.Spawn("X", 15, 25, 7)
	require.NoError(t, err)

	assert.Equal(t, "X", l.Name())
	x, y := l.Position()
	assert.Equal(t, 15, x)
	assert.Equal(t, 25, y)
	assert.Equal(t, 7, l.Health())
}

func TestFactorySpawnClampsHealth(t *testing.T) {
	f := core.NewFactory()
	require.NoError(t, f.Register(recorderName, newRecorder))

	l, err := f.Spawn(recorderName, 0, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, l.Health())
}

func TestFactoryRejectsDuplicates(t *testing.T) {
	f := core.NewFactory()
	require.NoError(t, f.Register(recorderName, newRecorder))

	err := f.Register(recorderName, newKiller)
	assert.ErrorIs(t, err, core.ErrDuplicateType)

	l, err := f.Spawn(recorderName, 0, 0, 1)
	require.NoError(t, err)
	_, isRecorder := l.(*recorder)
	assert.True(t, isRecorder, "first registration must win")
}

func TestFactoryRejectsInvalidRegistration(t *testing.T) {
	f := core.NewFactory()
	assert.ErrorIs(t, f.Register("", newRecorder), core.ErrInvalidType)
	assert.ErrorIs(t, f.Register("x", nil), core.ErrInvalidType)
	assert.Empty(t, f.Types())
}

func TestFactoryUnknownType(t *testing.T) {
	f := core.NewFactory()
	require.NoError(t, f.Register(recorderName, newRecorder))

	_, err := f.Spawn("ghost", 0, 0, 0)
	assert.ErrorIs(t, err, core.ErrUnknownType)
	assert.Contains(t, err.Error(), "ghost")

	assert.ErrorIs(t, f.SetDefault("ghost"), core.ErrUnknownType)
	_, err = f.DefaultName()
	assert.ErrorIs(t, err, core.ErrNoDefault, "failed SetDefault must not set a default")
}

func TestFactoryDefault(t *testing.T) {
	f := core.NewFactory()
	require.NoError(t, f.Register(recorderName, newRecorder))
	require.NoError(t, f.Register(killerName, newKiller))

	_, err := f.SpawnDefault(0, 0, 0)
	assert.ErrorIs(t, err, core.ErrNoDefault)

	require.NoError(t, f.SetDefault(killerName))
	name, err := f.DefaultName()
	require.NoError(t, err)
	assert.Equal(t, killerName, name)

	l, err := f.SpawnDefault(3, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, killerName, l.Name())
}

func TestFactoryTypesAreDeterministic(t *testing.T) {
	f := core.NewFactory()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, f.Register(name, newRecorder))
	}

	assert.Equal(t, []string{"c", "a", "b"}, f.Types())
	assert.Equal(t, f.Types(), f.Types())

	types := f.Types()
	types[0] = "mutated"
	assert.Equal(t, "c", f.Types()[0], "Types must return a copy")

	id, ok := f.TypeID("b")
	assert.True(t, ok)
	assert.Equal(t, uint32(2), id)
	_, ok = f.TypeID("nope")
	assert.False(t, ok)
}

func TestFactoryRandomName(t *testing.T) {
	f := core.NewFactory()
	_, err := f.RandomName(rng.NewRNG(1))
	assert.ErrorIs(t, err, core.ErrEmptyRegistry)

	require.NoError(t, f.Register(recorderName, newRecorder))
	require.NoError(t, f.Register(killerName, newKiller))

	r := rng.NewRNG(7)
	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		name, err := f.RandomName(r)
		require.NoError(t, err)
		seen[name]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[recorderName], 50)
	assert.Greater(t, seen[killerName], 50)
}
