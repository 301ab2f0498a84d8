package core

import (
	"fmt"
	"math"
)

// Cell represents a position on the integer grid
// Value type: comparable and usable as a map key
type Cell struct {
	X, Y uint16
}

// Offset returns the cell shifted by (dx, dy), saturating at 0 and math.MaxUint16
// A saturated coordinate never wraps, so an off-grid step lands on the wall instead
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: saturate(int(c.X) + dx), Y: saturate(int(c.Y) + dy)}
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Offset(dx, dy)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func saturate(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
