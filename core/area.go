package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Area is the axis-aligned playfield rectangle
// Cells on the rectangle itself are wall; only the strict interior is playable
type Area struct {
	from, to Cell
}

// NewArea validates the corners and returns the rectangle
// At least one interior cell is required on each axis
func NewArea(from, to Cell) (Area, error) {
	if from.X >= to.X || from.Y >= to.Y {
		return Area{}, errors.Errorf("area %v..%v: from must be above-left of to", from, to)
	}
	if to.X-from.X < 2 || to.Y-from.Y < 2 {
		return Area{}, errors.Errorf("area %v..%v has no interior", from, to)
	}
	return Area{from: from, to: to}, nil
}

// MustArea is NewArea that panics on invalid corners, for fixed layouts and tests
func MustArea(from, to Cell) Area {
	a, err := NewArea(from, to)
	if err != nil {
		panic(err)
	}
	return a
}

// From returns the top-left corner
func (a Area) From() Cell { return a.from }

// To returns the bottom-right corner
func (a Area) To() Cell { return a.to }

// Collides implements Collider: the border and everything outside it is wall
func (a Area) Collides(c Cell) bool {
	return c.X <= a.from.X || c.X >= a.to.X || c.Y <= a.from.Y || c.Y >= a.to.Y
}

// InteriorWidth returns the number of playable columns
func (a Area) InteriorWidth() int { return int(a.to.X) - int(a.from.X) - 1 }

// InteriorHeight returns the number of playable rows
func (a Area) InteriorHeight() int { return int(a.to.Y) - int(a.from.Y) - 1 }

// InteriorSize returns the number of playable cells
func (a Area) InteriorSize() int { return a.InteriorWidth() * a.InteriorHeight() }

// Interior returns the playable cell at row-major index i, 0 <= i < InteriorSize()
func (a Area) Interior(i int) Cell {
	w := a.InteriorWidth()
	return Cell{
		X: a.from.X + 1 + uint16(i%w),
		Y: a.from.Y + 1 + uint16(i/w),
	}
}

// Perimeter returns every boundary cell once, corners included
// Order: top and bottom rows pairwise, then the side columns without corners
func (a Area) Perimeter() []Cell {
	w := int(a.to.X) - int(a.from.X) + 1
	h := int(a.to.Y) - int(a.from.Y) + 1
	cells := make([]Cell, 0, 2*w+2*(h-2))

	for x := int(a.from.X); x <= int(a.to.X); x++ {
		cells = append(cells, Cell{uint16(x), a.from.Y}, Cell{uint16(x), a.to.Y})
	}
	for y := int(a.from.Y) + 1; y < int(a.to.Y); y++ {
		cells = append(cells, Cell{a.from.X, uint16(y)}, Cell{a.to.X, uint16(y)})
	}
	return cells
}

func (a Area) String() string {
	return fmt.Sprintf("%v..%v", a.from, a.to)
}
