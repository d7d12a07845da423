// Package pattern loads YAML seed patterns and places them on a matrix.
//
// A pattern lists explicit cells, draws them as text art with a legend, or
// both:
//
//	name: glider
//	origin: {col: 1, row: 1}
//	legend: {o: blob}
//	art:
//	  - ".o."
//	  - "..o"
//	  - "ooo"
//	cells:
//	  - {type: hungry, col: 6, row: 6, health: 10}
package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lifegrid/internal/core"
)

// Placement puts one entity of Type at cell (Col, Row).
type Placement struct {
	Type   string `yaml:"type"`
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
	Health int    `yaml:"health"`
}

// Origin offsets every placement of a pattern.
type Origin struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Pattern is a named arrangement of living cells.
type Pattern struct {
	Name   string            `yaml:"name"`
	Origin Origin            `yaml:"origin"`
	Health int               `yaml:"health"` // health for art cells; defaults to 1
	Legend map[string]string `yaml:"legend"`
	Art    []string          `yaml:"art"`
	Cells  []Placement       `yaml:"cells"`
}

// Load reads a pattern file.
func Load(path string) (*Pattern, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse pattern %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a pattern document.
func Parse(raw []byte) (*Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.Health == 0 {
		p.Health = 1
	}
	return &p, nil
}

// Placements expands art and explicit cells into absolute cell placements.
// Art rows come first, then cells, so a cell entry overrides art at the same
// spot when applied.
func (p *Pattern) Placements() ([]Placement, error) {
	var out []Placement
	for row, line := range p.Art {
		for col, ch := range []rune(line) {
			if ch == '.' || ch == ' ' {
				continue
			}
			typ, ok := p.Legend[string(ch)]
			if !ok {
				return nil, fmt.Errorf("pattern %q: no legend entry for %q at (%d,%d)", p.Name, ch, col, row)
			}
			out = append(out, Placement{
				Type:   typ,
				Col:    p.Origin.Col + col,
				Row:    p.Origin.Row + row,
				Health: p.Health,
			})
		}
	}
	for _, c := range p.Cells {
		if c.Type == "" {
			return nil, fmt.Errorf("pattern %q: cell (%d,%d) has no type", p.Name, c.Col, c.Row)
		}
		c.Col += p.Origin.Col
		c.Row += p.Origin.Row
		if c.Health == 0 {
			c.Health = p.Health
		}
		out = append(out, c)
	}
	return out, nil
}

// Apply places the pattern on m. Every entity is built and bounds-checked
// before the first one is placed, so a failing pattern leaves m untouched.
func (p *Pattern) Apply(m *core.Matrix) error {
	placements, err := p.Placements()
	if err != nil {
		return err
	}
	lives := make([]core.Life, 0, len(placements))
	for _, pl := range placements {
		if m.LifeAt(pl.Row, pl.Col) == nil {
			return fmt.Errorf("pattern %q: cell (%d,%d): %w", p.Name, pl.Col, pl.Row, core.ErrOutOfBounds)
		}
		l, err := m.CreateType(pl.Type, m.ColX(pl.Col), m.RowY(pl.Row), pl.Health)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		lives = append(lives, l)
	}
	for _, l := range lives {
		if _, err := m.Place(l); err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}
	return nil
}
