package core

// LookupQueue is an ordered cell sequence with O(1) membership
// Backed by a ring buffer so both ends mutate in O(1); the ring and the set
// are only ever mutated together
type LookupQueue struct {
	ring  []Cell
	front int // ring index of the front cell
	n     int
	set   map[Cell]struct{}
}

// NewLookupQueue builds a queue from cells in front-to-back order
// Duplicates are dropped so the ring and set stay in lockstep
func NewLookupQueue(cells ...Cell) *LookupQueue {
	q := &LookupQueue{
		ring: make([]Cell, max(len(cells), 4)),
		set:  make(map[Cell]struct{}, len(cells)),
	}
	for _, c := range cells {
		if _, ok := q.set[c]; ok {
			continue
		}
		q.ring[q.n] = c
		q.n++
		q.set[c] = struct{}{}
	}
	return q
}

func (q *LookupQueue) at(i int) Cell {
	return q.ring[(q.front+i)%len(q.ring)]
}

// grow doubles the ring and unrolls it so front sits at index 0
func (q *LookupQueue) grow() {
	ring := make([]Cell, 2*len(q.ring))
	for i := 0; i < q.n; i++ {
		ring[i] = q.at(i)
	}
	q.ring = ring
	q.front = 0
}

// Head returns the front cell, false when empty
func (q *LookupQueue) Head() (Cell, bool) {
	if q.n == 0 {
		return Cell{}, false
	}
	return q.ring[q.front], true
}

// Tail returns the back cell, false when empty
func (q *LookupQueue) Tail() (Cell, bool) {
	if q.n == 0 {
		return Cell{}, false
	}
	return q.at(q.n - 1), true
}

// PushFront inserts c at the front
// Returns false without mutating if c is already present
func (q *LookupQueue) PushFront(c Cell) bool {
	if _, ok := q.set[c]; ok {
		return false
	}
	if q.n == len(q.ring) {
		q.grow()
	}
	q.front = (q.front - 1 + len(q.ring)) % len(q.ring)
	q.ring[q.front] = c
	q.n++
	q.set[c] = struct{}{}
	return true
}

// PopBack removes and returns the back cell
func (q *LookupQueue) PopBack() (Cell, bool) {
	if q.n == 0 {
		return Cell{}, false
	}
	c := q.at(q.n - 1)
	q.n--
	delete(q.set, c)
	return c, true
}

// Remove deletes c wherever it sits in the sequence
// Linear in the distance from c to the back
func (q *LookupQueue) Remove(c Cell) bool {
	if _, ok := q.set[c]; !ok {
		return false
	}
	for i := 0; i < q.n; i++ {
		if q.at(i) != c {
			continue
		}
		for j := i; j < q.n-1; j++ {
			q.ring[(q.front+j)%len(q.ring)] = q.at(j + 1)
		}
		q.n--
		break
	}
	delete(q.set, c)
	return true
}

// Contains reports membership in O(1)
func (q *LookupQueue) Contains(c Cell) bool {
	_, ok := q.set[c]
	return ok
}

// Len returns the number of cells
func (q *LookupQueue) Len() int {
	return q.n
}

// Cells returns a front-to-back copy
func (q *LookupQueue) Cells() []Cell {
	out := make([]Cell, q.n)
	for i := range out {
		out[i] = q.at(i)
	}
	return out
}

// Consistent reports whether the sequence and set hold exactly the same cells
func (q *LookupQueue) Consistent() bool {
	if q.n != len(q.set) {
		return false
	}
	for i := 0; i < q.n; i++ {
		if _, ok := q.set[q.at(i)]; !ok {
			return false
		}
	}
	return true
}
