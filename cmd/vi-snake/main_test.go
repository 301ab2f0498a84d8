package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFlagsOverrideConfig(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"-seed", "42", "-tick", "80ms", "-no-sound", "-reverse-guard"})
	require.NoError(t, err)

	cfg, err := resolveConfig(f)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 80*time.Millisecond, cfg.Tick)
	assert.False(t, cfg.Sound)
	assert.True(t, cfg.ReverseGuard)
}

func TestFlagsLayerOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick: 200ms\nfood_count: 3\n"), 0o644))

	f, err := parseFlags(newFlagSet(), []string{"-config", path, "-tick", "50ms"})
	require.NoError(t, err)

	cfg, err := resolveConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick, "flag wins over file")
	assert.Equal(t, 3, cfg.FoodCount, "file wins over default")
}

func TestFlagsInvalidTick(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"-tick", "1ms"})
	require.NoError(t, err)

	_, err = resolveConfig(f)
	assert.Error(t, err)
}

func TestFlagsUnknown(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-bogus"})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Quit after 7 ticks, length 2",
		summary(game.Result{Quit: true, Ticks: 7, Length: 2}))
	assert.Equal(t, "Game over (wall collision) after 10 ticks, length 1",
		summary(game.Result{Reason: engine.WallCollision, Ticks: 10, Length: 1}))
}
