package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/core"
)

// MaxSpawnAttempts bounds rejection sampling before falling back to enumerating free cells
const MaxSpawnAttempts = 64

// ErrBoardFull is returned by Spawn when no interior cell is free
var ErrBoardFull = errors.New("no free cell for food")

// Food holds the edible cells
type Food struct {
	cells *core.LookupQueue
}

// NewFood creates an empty food set
func NewFood() *Food {
	return &Food{cells: core.NewLookupQueue()}
}

// Spawn places one food cell uniformly at random in the strict interior of area
// Candidates colliding with avoid or with existing food are rejected
func (f *Food) Spawn(area core.Area, avoid core.Collider, rng Rand) (core.Cell, error) {
	blocked := core.Colliders{area, avoid, f}

	w, h := area.InteriorWidth(), area.InteriorHeight()
	from := area.From()
	for range MaxSpawnAttempts {
		c := core.Cell{
			X: from.X + 1 + uint16(rng.IntN(w)),
			Y: from.Y + 1 + uint16(rng.IntN(h)),
		}
		if !blocked.Collides(c) {
			f.cells.PushFront(c)
			return c, nil
		}
	}

	// Crowded board: pick directly among the cells still free
	free := make([]core.Cell, 0, area.InteriorSize())
	for i := 0; i < area.InteriorSize(); i++ {
		if c := area.Interior(i); !blocked.Collides(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrBoardFull
	}
	c := free[rng.IntN(len(free))]
	f.cells.PushFront(c)
	return c, nil
}

// Consume removes c from the food set and returns it
// The caller respawns
func (f *Food) Consume(c core.Cell) (core.Cell, bool) {
	if !f.cells.Remove(c) {
		return core.Cell{}, false
	}
	return c, true
}

// Collides implements core.Collider
func (f *Food) Collides(c core.Cell) bool {
	return f.cells.Contains(c)
}

// Len returns the number of food cells
func (f *Food) Len() int {
	return f.cells.Len()
}

// Cells returns a copy of the food cells, newest first
func (f *Food) Cells() []core.Cell {
	return f.cells.Cells()
}
