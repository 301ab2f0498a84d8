package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/core"
)

func TestSpawnStaysInsideAndOffBody(t *testing.T) {
	area := core.MustArea(core.Cell{X: 0, Y: 0}, core.Cell{X: 6, Y: 5})
	body := NewBody(core.Cell{X: 1, Y: 1})
	body.GrowTo(core.Cell{X: 2, Y: 1})
	body.GrowTo(core.Cell{X: 3, Y: 1})
	rng := NewRand(7)

	for i := 0; i < 200; i++ {
		food := NewFood()
		c, err := food.Spawn(area, body, rng)
		require.NoError(t, err)
		assert.False(t, area.Collides(c), "food %v on wall", c)
		assert.False(t, body.Collides(c), "food %v under body", c)
		assert.True(t, food.Collides(c))
	}
}

func TestSpawnAvoidsExistingFood(t *testing.T) {
	area := core.MustArea(core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5})
	food := NewFood()
	rng := NewRand(3)

	// 16 interior cells, fill them all
	for i := 0; i < area.InteriorSize(); i++ {
		_, err := food.Spawn(area, nil, rng)
		require.NoError(t, err, "spawn %d", i)
	}
	assert.Equal(t, 16, food.Len())

	_, err := food.Spawn(area, nil, rng)
	assert.ErrorIs(t, err, ErrBoardFull)
	assert.Equal(t, 16, food.Len())
}

func TestSpawnFallsBackToFreeCells(t *testing.T) {
	area := core.MustArea(core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 4})
	free := core.Cell{X: 3, Y: 3}
	occupied := core.ColliderFunc(func(c core.Cell) bool { return c != free })

	// fixedRand(0) always proposes (1,1), so sampling alone would never succeed
	food := NewFood()
	start := time.Now()
	c, err := food.Spawn(area, occupied, fixedRand(0))
	require.NoError(t, err)
	assert.Equal(t, free, c)
	assert.Less(t, time.Since(start), time.Second)
}

func TestConsume(t *testing.T) {
	food := &Food{cells: core.NewLookupQueue(core.Cell{X: 2, Y: 2}, core.Cell{X: 3, Y: 3})}

	c, ok := food.Consume(core.Cell{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, core.Cell{X: 2, Y: 2}, c)
	assert.False(t, food.Collides(c))
	assert.Equal(t, 1, food.Len())

	_, ok = food.Consume(core.Cell{X: 9, Y: 9})
	assert.False(t, ok)
}

func TestBodyMoveAndGrow(t *testing.T) {
	b := NewBody(core.Cell{X: 5, Y: 5})
	assert.Equal(t, core.Cell{X: 5, Y: 6}, b.Advance(core.Down))
	assert.Equal(t, 1, b.Len(), "advance must not mutate")

	b.GrowTo(core.Cell{X: 5, Y: 6})
	b.GrowTo(core.Cell{X: 5, Y: 7})
	assert.Equal(t, []core.Cell{{X: 5, Y: 7}, {X: 5, Y: 6}, {X: 5, Y: 5}}, b.Cells())

	b.MoveTo(core.Cell{X: 6, Y: 7})
	assert.Equal(t, []core.Cell{{X: 6, Y: 7}, {X: 5, Y: 7}, {X: 5, Y: 6}}, b.Cells())
	assert.False(t, b.Collides(core.Cell{X: 5, Y: 5}), "popped tail must leave the set")
	assert.True(t, b.consistent())

	assert.Panics(t, func() { b.GrowTo(core.Cell{X: 5, Y: 7}) })
}

func TestMockTimeProviderSleep(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)

	m.Sleep(50 * time.Millisecond)
	m.Sleep(-time.Second)
	m.Advance(10 * time.Millisecond)

	assert.Equal(t, start.Add(60*time.Millisecond), m.Now())
	assert.Equal(t, 50*time.Millisecond, m.Slept())
}

func TestMockTimeProviderStep(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)
	m.SetStep(5 * time.Millisecond)

	assert.Equal(t, start, m.Now())
	assert.Equal(t, start.Add(5*time.Millisecond), m.Now())

	m.Sleep(20 * time.Millisecond)
	m.Sleep(30 * time.Millisecond)
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 30 * time.Millisecond}, m.Sleeps())
	assert.Equal(t, start.Add(60*time.Millisecond), m.Now())
}
