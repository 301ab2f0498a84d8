package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/core"
)

// Status is the engine state machine position
type Status uint8

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Reason explains a Terminated status
type Reason uint8

const (
	ReasonNone Reason = iota
	SelfCollision
	WallCollision
	BoardFull
)

func (r Reason) String() string {
	switch r {
	case SelfCollision:
		return "self collision"
	case WallCollision:
		return "wall collision"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Event classifies what a tick did
type Event uint8

const (
	EventMoved Event = iota
	EventAte
	EventCrashed
)

// Outcome is the result of a single Tick, consumed by the session for audio and logging
type Outcome struct {
	Event  Event
	Head   core.Cell // head after the tick; unchanged on a crash
	Reason Reason    // set when the tick ended the game
}

// ErrInvariant reports corrupted body bookkeeping; unreachable unless a contract is broken
var ErrInvariant = errors.New("engine invariant violated")

// Options configures a new Engine
type Options struct {
	Area         core.Area
	Seed         core.Cell
	Direction    core.Direction
	FoodCount    int
	ReverseGuard bool // ignore a heading change straight back into the neck
	Rand         Rand
}

// Engine owns the game state and advances it one tick at a time
// Not safe for concurrent use; the session loop is the only caller
type Engine struct {
	area         core.Area
	body         *Body
	food         *Food
	direction    core.Direction
	reverseGuard bool
	rng          Rand

	status Status
	reason Reason
	ticks  uint64
}

// New validates opts, seeds the body and spawns the initial food
func New(opts Options) (*Engine, error) {
	if opts.Rand == nil {
		return nil, errors.New("engine: nil random source")
	}
	if opts.Area.Collides(opts.Seed) {
		return nil, errors.Errorf("engine: seed %v is not inside area %v", opts.Seed, opts.Area)
	}
	if opts.FoodCount < 1 {
		opts.FoodCount = 1
	}

	e := &Engine{
		area:         opts.Area,
		body:         NewBody(opts.Seed),
		food:         NewFood(),
		direction:    opts.Direction,
		reverseGuard: opts.ReverseGuard,
		rng:          opts.Rand,
		status:       Running,
	}

	for i := 0; i < opts.FoodCount; i++ {
		if _, err := e.food.Spawn(e.area, e.body, e.rng); err != nil {
			return nil, errors.Wrapf(err, "engine: initial food %d of %d", i+1, opts.FoodCount)
		}
	}
	return e, nil
}

// Tick advances the state by one step
// Terminated is absorbing: further calls return the terminal outcome without mutating
func (e *Engine) Tick() Outcome {
	head, _ := e.body.Head()
	if e.status == Terminated {
		return Outcome{Event: EventCrashed, Head: head, Reason: e.reason}
	}

	next := e.body.Advance(e.direction)

	// Self check runs against the pre-move body, so the tail cell still counts
	if e.body.Collides(next) {
		return e.terminate(SelfCollision, head)
	}
	if e.area.Collides(next) {
		return e.terminate(WallCollision, head)
	}

	e.ticks++
	if !e.food.Collides(next) {
		e.body.MoveTo(next)
		return Outcome{Event: EventMoved, Head: next}
	}

	e.body.GrowTo(next)
	e.food.Consume(next)
	if _, err := e.food.Spawn(e.area, e.body, e.rng); err != nil {
		// The growth stands; only the respawn failed
		e.status = Terminated
		e.reason = BoardFull
		return Outcome{Event: EventAte, Head: next, Reason: BoardFull}
	}
	return Outcome{Event: EventAte, Head: next}
}

func (e *Engine) terminate(r Reason, head core.Cell) Outcome {
	e.status = Terminated
	e.reason = r
	return Outcome{Event: EventCrashed, Head: head, Reason: r}
}

// SetDirection changes the heading applied on the next tick
// Returns false when the change is refused by the reverse guard
func (e *Engine) SetDirection(d core.Direction) bool {
	if e.reverseGuard && e.body.Len() > 1 && d == e.direction.Opposite() {
		return false
	}
	e.direction = d
	return true
}

// Direction returns the current heading
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// Status returns the state machine position and, when terminated, why
func (e *Engine) Status() (Status, Reason) {
	return e.status, e.reason
}

// Ticks returns the number of committed moves
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Body exposes the snake for read-only queries
func (e *Engine) Body() *Body {
	return e.body
}

// Food exposes the food set for read-only queries
func (e *Engine) Food() *Food {
	return e.food
}

// Area returns the playfield
func (e *Engine) Area() core.Area {
	return e.area
}

// State returns a snapshot of everything the renderer needs
func (e *Engine) State() GameState {
	return GameState{
		Area:      e.area,
		Body:      e.body.Cells(),
		Food:      e.food.Cells(),
		Direction: e.direction,
		Status:    e.status,
		Reason:    e.reason,
		Ticks:     e.ticks,
	}
}

// Verify checks the body and food bookkeeping
func (e *Engine) Verify() error {
	if !e.body.consistent() {
		return errors.Wrapf(ErrInvariant, "body sequence/set mismatch at tick %d", e.ticks)
	}
	if !e.food.cells.Consistent() {
		return errors.Wrapf(ErrInvariant, "food sequence/set mismatch at tick %d", e.ticks)
	}
	for _, c := range e.food.Cells() {
		if e.area.Collides(c) {
			return errors.Wrapf(ErrInvariant, "food %v on wall", c)
		}
		if e.body.Collides(c) {
			return errors.Wrapf(ErrInvariant, "food %v under body", c)
		}
	}
	return nil
}

// GameState is an immutable snapshot of the engine
type GameState struct {
	Area      core.Area
	Body      []core.Cell // head first
	Food      []core.Cell
	Direction core.Direction
	Status    Status
	Reason    Reason
	Ticks     uint64
}
