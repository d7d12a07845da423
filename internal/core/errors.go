package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a matrix is built with a
	// non-positive cell size, width or height.
	ErrInvalidDimensions = errors.New("invalid matrix dimensions")
	// ErrUnknownType is returned when a type name has no registered spawner.
	ErrUnknownType = errors.New("unknown life type")
	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("life type already registered")
	// ErrInvalidType is returned for an empty type name or a nil spawner.
	ErrInvalidType = errors.New("invalid life type registration")
	// ErrNoDefault is returned when no default type has been chosen.
	ErrNoDefault = errors.New("no default life type")
	// ErrEmptyRegistry is returned when picking from a factory with no types.
	ErrEmptyRegistry = errors.New("no life types registered")
	// ErrOutOfBounds is returned by actions aimed at a position off the grid.
	ErrOutOfBounds = errors.New("position outside matrix")
	// ErrDetached is returned when moving an entity that is not in its cell.
	ErrDetached = errors.New("life is not on the matrix")
	// ErrNotSetup is returned when the matrix is used before Setup.
	ErrNotSetup = errors.New("matrix not set up")
)
