package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim is the contract drivers (GUI, terminal, headless runner) consume.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Generation() int
	// Cells returns one value per cell in row-major order: 0 for dead cells,
	// otherwise a palette index for the occupant's type.
	Cells() []uint8
	Draw(c Canvas)
}
