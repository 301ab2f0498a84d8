package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
)

// trackedScreen records lifecycle calls on a simulation screen sized on Init
type trackedScreen struct {
	tcell.SimulationScreen
	cols, rows int
	initErr    error
	inited     int
	finalized  int
}

func newTrackedScreen(cols, rows int) *trackedScreen {
	return &trackedScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		cols:             cols,
		rows:             rows,
	}
}

func (s *trackedScreen) Init() error {
	s.inited++
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(s.cols, s.rows)
	return nil
}

func (s *trackedScreen) Fini() {
	s.finalized++
	s.SimulationScreen.Fini()
}

// scriptedInput replays commands one per poll, then reports no input
type scriptedInput struct {
	script []input.Command
	polls  int
	closed bool
}

func (s *scriptedInput) Poll(ctx context.Context, _ time.Duration) input.Command {
	if ctx.Err() != nil {
		return input.Command{Action: input.ActionQuit}
	}
	s.polls++
	if len(s.script) == 0 {
		return input.Command{}
	}
	cmd := s.script[0]
	s.script = s.script[1:]
	return cmd
}

func (s *scriptedInput) Close() { s.closed = true }

type recordingPlayer struct {
	played []audio.Sound
}

func (p *recordingPlayer) Play(s audio.Sound) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close()             {}

type panickingPlayer struct{}

func (panickingPlayer) Play(audio.Sound) { panic("speaker exploded") }
func (panickingPlayer) Close()           {}

// farRand always picks the last candidate, which keeps food out of the seed column
type farRand struct{}

func (farRand) IntN(n int) int { return n - 1 }

type fixture struct {
	screen *trackedScreen
	input  *scriptedInput
	clock  *engine.MockTimeProvider
	player *recordingPlayer
	opts   Options
}

func newFixture(script ...input.Command) *fixture {
	f := &fixture{
		screen: newTrackedScreen(80, 24),
		input:  &scriptedInput{script: script},
		clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		player: &recordingPlayer{},
	}
	f.opts = Options{
		Config:   config.Default(),
		Screen:   f.screen,
		Player:   f.player,
		Clock:    f.clock,
		Rand:     farRand{},
		Verify:   true,
		NewInput: func(tcell.Screen) InputSource { return f.input },
	}
	return f
}

func turn(d core.Direction) input.Command {
	return input.Command{Action: input.ActionTurn, Direction: d}
}

func TestRunCrashesIntoWallWithoutInput(t *testing.T) {
	f := newFixture()

	res, err := Run(context.Background(), f.opts)
	require.NoError(t, err)

	// 80x24 fraction area spans rows 6..18; seed row 7 heading down
	assert.False(t, res.Quit)
	assert.Equal(t, engine.WallCollision, res.Reason)
	assert.Equal(t, uint64(10), res.Ticks)
	assert.Equal(t, 1, res.Length)
	assert.NotEmpty(t, res.ID)

	assert.Equal(t, 1, f.screen.finalized)
	assert.True(t, f.input.closed)
	assert.Equal(t, 10*f.opts.Config.Tick, f.clock.Slept(), "each surviving tick sleeps out its budget")
	assert.Equal(t, []audio.Sound{audio.SoundCrash}, f.player.played)
}

func TestRunAppliesTurns(t *testing.T) {
	f := newFixture(turn(core.Right))

	res, err := Run(context.Background(), f.opts)
	require.NoError(t, err)

	// One step down, then columns 22..59 to the right wall at 60
	assert.Equal(t, engine.WallCollision, res.Reason)
	assert.Equal(t, uint64(39), res.Ticks)
}

func TestRunSleepsOnlyWhatIsLeftOfTheBudget(t *testing.T) {
	f := newFixture()
	// Each clock read costs 30ms: start, poll budget, sleep budget
	f.clock.SetStep(30 * time.Millisecond)

	res, err := Run(context.Background(), f.opts)
	require.NoError(t, err)

	sleeps := f.clock.Sleeps()
	require.Len(t, sleeps, int(res.Ticks))
	for _, d := range sleeps {
		assert.Equal(t, f.opts.Config.Tick-60*time.Millisecond, d)
	}
}

func TestRunQuit(t *testing.T) {
	f := newFixture(input.Command{Action: input.ActionQuit})

	res, err := Run(context.Background(), f.opts)
	require.NoError(t, err)

	assert.True(t, res.Quit)
	assert.Equal(t, engine.ReasonNone, res.Reason)
	assert.Equal(t, uint64(1), res.Ticks)
	assert.Equal(t, 1, f.screen.finalized)
}

func TestRunCancelledContext(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, f.opts)
	require.NoError(t, err)

	assert.True(t, res.Quit)
	assert.Zero(t, res.Ticks)
	assert.Equal(t, 1, f.screen.finalized)
}

func TestRunInitFailure(t *testing.T) {
	f := newFixture()
	f.screen.initErr = errors.New("no tty")

	_, err := Run(context.Background(), f.opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal init")
	assert.Zero(t, f.screen.finalized, "nothing to restore when init failed")
}

func TestRunTerminalTooSmall(t *testing.T) {
	f := newFixture()
	f.screen.cols, f.screen.rows = 2, 2

	_, err := Run(context.Background(), f.opts)
	require.Error(t, err)
	assert.Equal(t, 1, f.screen.finalized)
	assert.Zero(t, f.input.polls)
}

func TestRunRecoversPanic(t *testing.T) {
	f := newFixture()
	f.opts.Player = panickingPlayer{}

	_, err := Run(context.Background(), f.opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speaker exploded")
	assert.Equal(t, 1, f.screen.finalized, "terminal restored before the panic is reported")
}

func TestRunRequiresScreen(t *testing.T) {
	_, err := Run(context.Background(), Options{Config: config.Default()})
	assert.Error(t, err)
}
