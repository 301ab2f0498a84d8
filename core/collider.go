package core

// Collider answers whether a cell is claimed by the implementer
// Implementations must be pure queries
type Collider interface {
	Collides(c Cell) bool
}

// Colliders reports a collision if any member collides
type Colliders []Collider

// Collides implements Collider
func (cs Colliders) Collides(c Cell) bool {
	for _, col := range cs {
		if col != nil && col.Collides(c) {
			return true
		}
	}
	return false
}

// ColliderFunc adapts a plain function to Collider
type ColliderFunc func(Cell) bool

// Collides implements Collider
func (f ColliderFunc) Collides(c Cell) bool {
	return f(c)
}
