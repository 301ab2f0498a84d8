package game

import (
	"context"
	"io"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// InputSource is the bounded-wait command poller used between ticks
type InputSource interface {
	Poll(ctx context.Context, timeout time.Duration) input.Command
	Close()
}

// Options wires a session to its collaborators
// Only Config and Screen are required
type Options struct {
	Config *config.Config
	Screen tcell.Screen

	Player audio.Player
	Logger *logrus.Logger
	Clock  engine.TimeProvider
	Rand   engine.Rand

	// NewInput overrides the terminal-backed input source
	NewInput func(tcell.Screen) InputSource

	// Verify checks engine bookkeeping after every tick
	Verify bool
}

// Result summarizes a finished session
type Result struct {
	ID     string
	Quit   bool          // user or signal ended the session
	Reason engine.Reason // set when the game itself ended
	Length int
	Ticks  uint64
}

// Run plays one game on the screen until a terminal state or quit
// The screen is initialized here and always finalized before Run returns,
// including when a panic unwinds the loop
func Run(ctx context.Context, opts Options) (res Result, err error) {
	if opts.Config == nil || opts.Screen == nil {
		return Result{}, errors.New("session: config and screen are required")
	}
	applyDefaults(&opts)

	res.ID = uuid.NewString()
	log := opts.Logger.WithField("session", res.ID)

	if err := opts.Screen.Init(); err != nil {
		return res, errors.Wrap(err, "terminal init")
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("session panic: %v\n%s", r, debug.Stack())
			log.WithError(err).Error("session crashed")
		}
	}()
	defer opts.Screen.Fini()

	opts.Screen.HideCursor()
	opts.Screen.Clear()

	cols, rows := opts.Screen.Size()
	area, err := opts.Config.Area(cols, rows)
	if err != nil {
		return res, err
	}
	theme, err := render.NewTheme(opts.Config.Theme)
	if err != nil {
		return res, err
	}

	eng, err := engine.New(engine.Options{
		Area:         area,
		Seed:         config.SeedCell(area),
		Direction:    opts.Config.InitialDirection(),
		FoodCount:    opts.Config.FoodCount,
		ReverseGuard: opts.Config.ReverseGuard,
		Rand:         opts.Rand,
	})
	if err != nil {
		return res, err
	}

	src := opts.NewInput(opts.Screen)
	defer src.Close()

	renderer := render.NewTerminalRenderer(opts.Screen, theme)
	renderer.RenderFrame(eng.State())

	log.WithFields(logrus.Fields{
		"terminal": [2]int{cols, rows},
		"area":     area.String(),
		"seed":     opts.Config.Seed,
		"tick":     opts.Config.Tick,
	}).Info("session start")

	l := &loop{
		eng:      eng,
		renderer: renderer,
		input:    src,
		player:   opts.Player,
		clock:    opts.Clock,
		tick:     opts.Config.Tick,
		verify:   opts.Verify,
		log:      log,
	}
	res.Quit, err = l.run(ctx)

	_, res.Reason = eng.Status()
	res.Length = eng.Body().Len()
	res.Ticks = eng.Ticks()

	log.WithFields(logrus.Fields{
		"quit":   res.Quit,
		"reason": res.Reason.String(),
		"length": res.Length,
		"ticks":  res.Ticks,
	}).Info("session end")
	return res, err
}

func applyDefaults(opts *Options) {
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Rand == nil {
		opts.Rand = engine.NewRand(opts.Config.Seed)
	}
	if opts.NewInput == nil {
		opts.NewInput = func(s tcell.Screen) InputSource { return input.NewSource(s) }
	}
}

// loop is the paced tick cycle: tick, render, poll, sleep
type loop struct {
	eng      *engine.Engine
	renderer *render.TerminalRenderer
	input    InputSource
	player   audio.Player
	clock    engine.TimeProvider
	tick     time.Duration
	verify   bool
	log      *logrus.Entry
}

// run returns quit=true when the session ended by request rather than by the game
func (l *loop) run(ctx context.Context) (quit bool, err error) {
	for {
		if ctx.Err() != nil {
			return true, nil
		}
		start := l.clock.Now()

		out := l.eng.Tick()
		l.react(out)

		if l.verify {
			if err := l.eng.Verify(); err != nil {
				l.log.WithError(err).Error("verify failed")
				return false, err
			}
		}

		l.renderer.RenderFrame(l.eng.State())

		if status, _ := l.eng.Status(); status == engine.Terminated {
			return false, nil
		}

		cmd := l.input.Poll(ctx, l.remaining(start))
		switch cmd.Action {
		case input.ActionQuit:
			return true, nil
		case input.ActionTurn:
			if !l.eng.SetDirection(cmd.Direction) {
				l.log.WithField("direction", cmd.Direction.String()).Debug("reverse refused")
			}
		}

		l.clock.Sleep(l.remaining(start))
	}
}

func (l *loop) remaining(start time.Time) time.Duration {
	return l.tick - l.clock.Now().Sub(start)
}

// react turns tick outcomes into sound and log lines
func (l *loop) react(out engine.Outcome) {
	switch {
	case out.Reason == engine.BoardFull:
		l.player.Play(audio.SoundBoardFull)
		l.log.WithField("length", l.eng.Body().Len()).Info("board full")
	case out.Event == engine.EventAte:
		l.player.Play(audio.SoundEat)
		l.log.WithFields(logrus.Fields{
			"at":     out.Head.String(),
			"length": l.eng.Body().Len(),
		}).Debug("food eaten")
	case out.Event == engine.EventCrashed:
		l.player.Play(audio.SoundCrash)
		l.log.WithFields(logrus.Fields{
			"reason": out.Reason.String(),
			"head":   out.Head.String(),
		}).Info("crashed")
	}
}
