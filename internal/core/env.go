package core

// Query is the read-only view of the matrix offered to entities and drivers.
type Query interface {
	LifeTypes() []string
	NeighboursWithinDistance(l Life, distance int) []Life
	NeighbourAt(l Life, dx, dy int) Life
	NearestOfType(l Life, name string) Life
	SiblingCount(l Life) int
	LifeCount(name string) int
	TypeCount(name string) int
	LifeType(l Life) string
}

// Action mutates the matrix. Effects are immediate, including during the
// decide phase of a generation: cells scanned later in the same pass see
// them.
type Action interface {
	CreateType(name string, x, y, health int) (Life, error)
	Place(l Life) (Life, error)
	Move(l Life, x, y int, swap bool) (Life, error)
	Kill(l Life)
	KillAt(x, y int) error
}

// Environment is everything an entity may do to its surroundings.
type Environment interface {
	Query
	Action
}
