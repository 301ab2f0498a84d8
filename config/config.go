package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/asset"
	"github.com/lixenwraith/vi-snake/core"
)

// Area modes
const (
	AreaFraction = "fraction"
	AreaInset    = "inset"
)

// Limits enforced by Validate
const (
	MinTick      = 10 * time.Millisecond
	MaxTick      = 2 * time.Second
	MaxFoodCount = 64
)

// Config is the startup configuration of a session
type Config struct {
	Tick         time.Duration `yaml:"tick"`
	AreaMode     string        `yaml:"area_mode"`
	Inset        int           `yaml:"inset"`
	Direction    string        `yaml:"direction"`
	FoodCount    int           `yaml:"food_count"`
	ReverseGuard bool          `yaml:"reverse_guard"`
	Seed         int64         `yaml:"seed"`
	Sound        bool          `yaml:"sound"`
	Theme        Theme         `yaml:"theme"`
}

// Theme holds colors as hex strings and glyphs as single-rune strings
// Parsed and checked by render.NewTheme
type Theme struct {
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Tail       string `yaml:"tail"`
	Wall       string `yaml:"wall"`
	Food       string `yaml:"food"`
	HeadGlyph  string `yaml:"head_glyph"` // empty: head reuses its body glyph
	FoodGlyph  string `yaml:"food_glyph"`
	WallGlyph  string `yaml:"wall_glyph"`
	BodyGlyphs string `yaml:"body_glyphs"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	if err := decode(strings.NewReader(asset.DefaultConfig), cfg); err != nil {
		panic(errors.Wrap(err, "built-in config"))
	}
	return cfg
}

// Load reads a YAML file over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Tick < MinTick || c.Tick > MaxTick {
		return errors.Errorf("tick %v out of range [%v, %v]", c.Tick, MinTick, MaxTick)
	}
	switch c.AreaMode {
	case AreaFraction, AreaInset:
	default:
		return errors.Errorf("unknown area_mode %q", c.AreaMode)
	}
	if c.Inset < 0 {
		return errors.Errorf("inset %d is negative", c.Inset)
	}
	if _, ok := core.ParseDirection(c.Direction); !ok {
		return errors.Errorf("unknown direction %q", c.Direction)
	}
	if c.FoodCount < 1 || c.FoodCount > MaxFoodCount {
		return errors.Errorf("food_count %d out of range [1, %d]", c.FoodCount, MaxFoodCount)
	}
	return nil
}

// InitialDirection returns the configured heading, Down if unparsable
func (c *Config) InitialDirection() core.Direction {
	d, _ := core.ParseDirection(c.Direction)
	return d
}
