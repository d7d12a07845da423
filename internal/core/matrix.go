package core

import (
	"fmt"

	"go.uber.org/zap"
)

// mooreOffsets lists the eight neighbour offsets in the order entities
// receive them: NW, N, NE, W, E, SW, S, SE.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// MatrixOption configures a Matrix.
type MatrixOption func(*Matrix)

// WithLogger attaches a logger to the matrix.
func WithLogger(log *zap.Logger) MatrixOption {
	return func(m *Matrix) {
		if log != nil {
			m.log = log
		}
	}
}

// Matrix owns the grid of entities and drives generations. It is the
// Environment every placed entity is bound to.
type Matrix struct {
	cellSize   int
	cols, rows int

	cells      *Grid[Life]
	factory    *Factory
	neighbours []Life
	generation int

	log *zap.Logger
}

var _ Environment = (*Matrix)(nil)

// NewMatrix sizes a matrix of width/cellSize by height/cellSize cells. Any
// remainder of the division is dropped.
func NewMatrix(cellSize, width, height int, opts ...MatrixOption) (*Matrix, error) {
	if cellSize <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cell size %d, size %dx%d: %w", cellSize, width, height, ErrInvalidDimensions)
	}
	cols, rows := width/cellSize, height/cellSize
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("cell size %d leaves no cells in %dx%d: %w", cellSize, width, height, ErrInvalidDimensions)
	}
	m := &Matrix{
		cellSize:   cellSize,
		cols:       cols,
		rows:       rows,
		neighbours: make([]Life, len(mooreOffsets)),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Setup fills every cell with a default entity centred in the cell. On error
// the matrix is left as it was.
func (m *Matrix) Setup(f *Factory) error {
	if f == nil {
		return fmt.Errorf("setup: %w", ErrNoDefault)
	}
	cells := NewGrid[Life](m.cols, m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			l, err := f.SpawnDefault(m.ColX(col), m.RowY(row), 0)
			if err != nil {
				return fmt.Errorf("setup cell (%d,%d): %w", col, row, err)
			}
			cells.Set(col, row, l)
		}
	}
	m.factory = f
	m.cells = cells
	m.generation = 0
	for _, l := range cells.Cells() {
		l.Bind(m)
		l.Setup()
	}
	m.log.Debug("matrix setup",
		zap.Int("cols", m.cols),
		zap.Int("rows", m.rows),
		zap.Int("cell_size", m.cellSize),
	)
	return nil
}

// Reset replaces every non-default occupant with a fresh default entity and
// then resets every cell.
func (m *Matrix) Reset() error {
	if m.cells == nil {
		return ErrNotSetup
	}
	def, err := m.factory.DefaultName()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	type replacement struct {
		col, row int
		life     Life
	}
	var pending []replacement
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.cells.At(col, row).Name() == def {
				continue
			}
			l, err := m.factory.Spawn(def, m.ColX(col), m.RowY(row), 0)
			if err != nil {
				return fmt.Errorf("reset cell (%d,%d): %w", col, row, err)
			}
			pending = append(pending, replacement{col: col, row: row, life: l})
		}
	}
	for _, r := range pending {
		r.life.Bind(m)
		r.life.Setup()
		m.cells.Set(r.col, r.row, r.life)
	}
	for _, l := range m.cells.Cells() {
		l.Reset()
	}
	m.generation = 0
	m.log.Debug("matrix reset", zap.Int("replaced", len(pending)))
	return nil
}

// Update runs one generation. Every cell first decides its next state from
// its neighbours in row-major order, then every cell commits in the same
// order. Actions taken while deciding apply at once.
func (m *Matrix) Update() {
	if m.cells == nil {
		return
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			m.gather(col, row)
			m.cells.At(col, row).Simulate(m.neighbours)
		}
	}
	for _, l := range m.cells.Cells() {
		l.ApplySimulationChanges()
	}
	m.generation++
}

func (m *Matrix) gather(col, row int) {
	for i, off := range mooreOffsets {
		c, r := col+off[0], row+off[1]
		if !m.cells.InBounds(c, r) {
			m.neighbours[i] = nil
			continue
		}
		m.neighbours[i] = m.cells.At(c, r)
	}
}

// Draw asks every entity to draw itself.
func (m *Matrix) Draw(c Canvas) {
	if m.cells == nil {
		return
	}
	for _, l := range m.cells.Cells() {
		l.Draw(c)
	}
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.cols }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.rows }

// CellSize returns the side of a cell in world units.
func (m *Matrix) CellSize() int { return m.cellSize }

// Generation returns the number of completed updates since setup or reset.
func (m *Matrix) Generation() int { return m.generation }

// ColX returns the world x of a column's centre.
func (m *Matrix) ColX(col int) int { return col*m.cellSize + m.cellSize/2 }

// RowY returns the world y of a row's centre.
func (m *Matrix) RowY(row int) int { return row*m.cellSize + m.cellSize/2 }

// XCol returns the column containing world x.
func (m *Matrix) XCol(x int) int { return x / m.cellSize }

// YRow returns the row containing world y.
func (m *Matrix) YRow(y int) int { return y / m.cellSize }

// LifeAt returns the entity at (row, col), or nil outside the matrix.
func (m *Matrix) LifeAt(row, col int) Life {
	if m.cells == nil || !m.cells.InBounds(col, row) {
		return nil
	}
	return m.cells.At(col, row)
}

// ForEach visits every cell in row-major order.
func (m *Matrix) ForEach(fn func(row, col int, l Life)) {
	if m.cells == nil {
		return
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			fn(row, col, m.cells.At(col, row))
		}
	}
}

// LivingCellCount returns the number of cells holding a living entity.
func (m *Matrix) LivingCellCount() int {
	if m.cells == nil {
		return 0
	}
	count := 0
	for _, l := range m.cells.Cells() {
		if l.IsAlive() {
			count++
		}
	}
	return count
}

// cellAt maps world coordinates to a cell, reporting false when off-grid.
// Negative coordinates are checked before dividing since integer division
// truncates toward zero.
func (m *Matrix) cellAt(x, y int) (col, row int, ok bool) {
	if x < 0 || y < 0 || m.cells == nil {
		return 0, 0, false
	}
	col, row = m.XCol(x), m.YRow(y)
	return col, row, m.cells.InBounds(col, row)
}

func (m *Matrix) cellOf(l Life) (col, row int, ok bool) {
	x, y := l.Position()
	return m.cellAt(x, y)
}

// Query

// LifeTypes returns every registered type name.
func (m *Matrix) LifeTypes() []string {
	if m.factory == nil {
		return nil
	}
	return m.factory.Types()
}

// NeighboursWithinDistance returns all entities, living or dead, in the
// square of the given radius around l, excluding l, in row-major order.
func (m *Matrix) NeighboursWithinDistance(l Life, distance int) []Life {
	if l == nil || distance < 0 {
		return nil
	}
	col, row, ok := m.cellOf(l)
	if !ok {
		return nil
	}
	firstRow, lastRow := max(row-distance, 0), min(row+distance, m.rows-1)
	firstCol, lastCol := max(col-distance, 0), min(col+distance, m.cols-1)

	out := make([]Life, 0, (lastRow-firstRow+1)*(lastCol-firstCol+1))
	for r := firstRow; r <= lastRow; r++ {
		for c := firstCol; c <= lastCol; c++ {
			n := m.cells.At(c, r)
			if n == l {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// NeighbourAt returns the entity dx columns and dy rows away from l, or nil
// if that lands outside the matrix.
func (m *Matrix) NeighbourAt(l Life, dx, dy int) Life {
	if l == nil {
		return nil
	}
	col, row, ok := m.cellOf(l)
	if !ok {
		return nil
	}
	return m.LifeAt(row+dy, col+dx)
}

// NearestOfType returns the closest other entity named name. Ties go to the
// first one met in row-major order.
func (m *Matrix) NearestOfType(l Life, name string) Life {
	if l == nil {
		return nil
	}
	col, row, ok := m.cellOf(l)
	if !ok {
		return nil
	}
	var nearest Life
	best := 0
	m.ForEach(func(r, c int, n Life) {
		if n == l || n.Name() != name {
			return
		}
		dc, dr := c-col, r-row
		d := dc*dc + dr*dr
		if nearest == nil || d < best {
			nearest = n
			best = d
		}
	})
	return nearest
}

// SiblingCount returns how many entities share l's type, l included.
func (m *Matrix) SiblingCount(l Life) int {
	if l == nil {
		return 0
	}
	return m.TypeCount(l.Name())
}

// LifeCount returns how many living entities are named name.
func (m *Matrix) LifeCount(name string) int {
	count := 0
	m.ForEach(func(_, _ int, n Life) {
		if n.IsAlive() && n.Name() == name {
			count++
		}
	})
	return count
}

// TypeCount returns how many entities, living or dead, are named name.
func (m *Matrix) TypeCount(name string) int {
	count := 0
	m.ForEach(func(_, _ int, n Life) {
		if n.Name() == name {
			count++
		}
	})
	return count
}

// LifeType returns l's type name, or "" for nil.
func (m *Matrix) LifeType(l Life) string {
	if l == nil {
		return ""
	}
	return l.Name()
}

// Action

// CreateType spawns a new entity through the factory. The entity is not
// placed; hand it to Place to put it on the matrix.
func (m *Matrix) CreateType(name string, x, y, health int) (Life, error) {
	if m.factory == nil {
		return nil, ErrNotSetup
	}
	l, err := m.factory.Spawn(name, x, y, health)
	if err != nil {
		m.log.Warn("create type failed", zap.String("type", name), zap.Error(err))
		return nil, err
	}
	return l, nil
}

// Place installs l in the cell containing its position and returns the
// entity it replaced.
func (m *Matrix) Place(l Life) (Life, error) {
	if l == nil {
		return nil, fmt.Errorf("place: %w", ErrInvalidType)
	}
	col, row, ok := m.cellOf(l)
	if !ok {
		x, y := l.Position()
		return nil, fmt.Errorf("place %s at (%d,%d): %w", l.Name(), x, y, ErrOutOfBounds)
	}
	old := m.cells.At(col, row)
	m.cells.Set(col, row, l)
	l.Bind(m)
	l.Setup()
	return old, nil
}

// Move relocates l to the cell containing (x, y). With swap the previous
// occupant takes l's old place and is returned. Otherwise the occupant is
// dropped, l's old cell gets a fresh default entity, and that is returned.
func (m *Matrix) Move(l Life, x, y int, swap bool) (Life, error) {
	if l == nil {
		return nil, fmt.Errorf("move: %w", ErrDetached)
	}
	colNew, rowNew, ok := m.cellAt(x, y)
	if !ok {
		return nil, fmt.Errorf("move %s to (%d,%d): %w", l.Name(), x, y, ErrOutOfBounds)
	}
	xOld, yOld := l.Position()
	colOld, rowOld, ok := m.cellAt(xOld, yOld)
	if !ok || m.cells.At(colOld, rowOld) != l {
		return nil, fmt.Errorf("move %s from (%d,%d): %w", l.Name(), xOld, yOld, ErrDetached)
	}
	if colNew == colOld && rowNew == rowOld {
		l.SetPosition(x, y)
		return l, nil
	}

	var fresh Life
	if !swap {
		var err error
		fresh, err = m.factory.SpawnDefault(xOld, yOld, 0)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", l.Name(), err)
		}
	}

	displaced := m.cells.At(colNew, rowNew)
	m.cells.Set(colNew, rowNew, l)
	l.SetPosition(x, y)

	if swap {
		m.cells.Set(colOld, rowOld, displaced)
		displaced.SetPosition(xOld, yOld)
		return displaced, nil
	}
	fresh.Bind(m)
	fresh.Setup()
	m.cells.Set(colOld, rowOld, fresh)
	return fresh, nil
}

// Kill resets l to its dead state. Its type is kept.
func (m *Matrix) Kill(l Life) {
	if l == nil {
		return
	}
	l.Reset()
}

// KillAt resets the entity in the cell containing (x, y).
func (m *Matrix) KillAt(x, y int) error {
	col, row, ok := m.cellAt(x, y)
	if !ok {
		return fmt.Errorf("kill at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.cells.At(col, row).Reset()
	return nil
}
