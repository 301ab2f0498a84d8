package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/logging"
)

// flags holds command-line overrides; zero values leave the config untouched
type flags struct {
	configPath   string
	debug        bool
	verify       bool
	seed         int64
	tick         time.Duration
	noSound      bool
	reverseGuard bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.configPath, "config", "", "YAML config file layered over the built-in defaults")
	fs.BoolVar(&f.debug, "debug", false, "Write a session log to "+logging.DefaultDir+"/"+logging.FileName)
	fs.BoolVar(&f.verify, "verify", false, "Check engine bookkeeping after every tick")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed for food placement (0 = time based)")
	fs.DurationVar(&f.tick, "tick", 0, "Frame budget per tick, e.g. 80ms")
	fs.BoolVar(&f.noSound, "no-sound", false, "Disable audio")
	fs.BoolVar(&f.reverseGuard, "reverse-guard", false, "Refuse turning straight back into the body")
	err := fs.Parse(args)
	return f, err
}

// resolveConfig loads the config file and layers flag overrides on top
func resolveConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.tick != 0 {
		cfg.Tick = f.tick
	}
	if f.noSound {
		cfg.Sound = false
	}
	if f.reverseGuard {
		cfg.ReverseGuard = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "flags")
	}
	return cfg, nil
}

func newPlayer(cfg *config.Config) (audio.Player, error) {
	if !cfg.Sound {
		return audio.Nop{}, nil
	}
	sm, err := audio.NewSoundManager(audio.DefaultVolume)
	if err != nil {
		return audio.Nop{}, err
	}
	return sm, nil
}

func run(args []string) int {
	f, err := parseFlags(flag.NewFlagSet("vi-snake", flag.ContinueOnError), args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := resolveConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}

	logger, logFile, err := logging.Setup(logging.DefaultDir, f.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	player, err := newPlayer(cfg)
	if err != nil {
		// Audio is optional; the terminal is not ours yet so stderr is fine
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		logger.WithError(err).Warn("audio disabled")
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := game.Run(ctx, game.Options{
		Config: cfg,
		Screen: screen,
		Player: player,
		Logger: logger,
		Verify: f.verify,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", err)
		return 1
	}

	fmt.Println(summary(res))
	return 0
}

func summary(res game.Result) string {
	if res.Quit {
		return fmt.Sprintf("Quit after %d ticks, length %d", res.Ticks, res.Length)
	}
	return fmt.Sprintf("Game over (%s) after %d ticks, length %d", res.Reason, res.Ticks, res.Length)
}

func main() {
	os.Exit(run(os.Args[1:]))
}
