package core

// Direction is the heading of the moving body
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

// Delta returns the unit step on the grid for the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversed heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection maps a lowercase name back to a Direction
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return Down, false
}
