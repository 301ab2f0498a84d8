package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
)

// Body is the snake: ordered cell history, head first, with O(1) lookup
type Body struct {
	cells *core.LookupQueue
}

// NewBody creates a body of length one at seed
func NewBody(seed core.Cell) *Body {
	return &Body{cells: core.NewLookupQueue(seed)}
}

// Head returns the head cell, false only for an empty body
func (b *Body) Head() (core.Cell, bool) {
	return b.cells.Head()
}

// Advance returns the cell the head would enter moving in d
// Pure: the body is not modified. Coordinates saturate instead of wrapping
func (b *Body) Advance(d core.Direction) core.Cell {
	head, _ := b.cells.Head()
	return head.Step(d)
}

// GrowTo pushes c as the new head and keeps the tail, length +1
func (b *Body) GrowTo(c core.Cell) {
	if !b.cells.PushFront(c) {
		panic(fmt.Sprintf("body: grow into occupied cell %v", c))
	}
}

// MoveTo pushes c as the new head and drops the tail, length unchanged
func (b *Body) MoveTo(c core.Cell) {
	if !b.cells.PushFront(c) {
		panic(fmt.Sprintf("body: move into occupied cell %v", c))
	}
	b.cells.PopBack()
}

// Collides implements core.Collider against the current cells, tail included
func (b *Body) Collides(c core.Cell) bool {
	return b.cells.Contains(c)
}

// Len returns the number of segments
func (b *Body) Len() int {
	return b.cells.Len()
}

// Cells returns a head-first copy of the segments
func (b *Body) Cells() []core.Cell {
	return b.cells.Cells()
}

func (b *Body) consistent() bool {
	return b.cells.Consistent()
}
