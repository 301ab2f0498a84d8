package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/config"
)

// RgbBackground is the screen clear color
var RgbBackground = tcell.ColorReset

// Theme is the resolved glyph and color set used by Project
type Theme struct {
	HeadStyle tcell.Style
	FoodStyle tcell.Style
	WallStyle tcell.Style

	HeadGlyph  rune // 0: head reuses the body glyph of its cell
	FoodGlyph  rune
	WallGlyph  rune
	BodyGlyphs []rune

	bodyColor colorful.Color
	tailColor colorful.Color
}

// NewTheme parses hex colors and checks every glyph occupies exactly one column
func NewTheme(cfg config.Theme) (*Theme, error) {
	colors := make(map[string]colorful.Color, 5)
	for name, hex := range map[string]string{
		"head": cfg.Head,
		"body": cfg.Body,
		"tail": cfg.Tail,
		"wall": cfg.Wall,
		"food": cfg.Food,
	} {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "theme %s color", name)
		}
		colors[name] = c
	}

	t := &Theme{
		HeadStyle: tcell.StyleDefault.Foreground(toTcell(colors["head"])).Bold(true),
		FoodStyle: tcell.StyleDefault.Foreground(toTcell(colors["food"])).Bold(true),
		WallStyle: tcell.StyleDefault.Background(toTcell(colors["wall"])),
		bodyColor: colors["body"],
		tailColor: colors["tail"],
	}

	var err error
	if cfg.HeadGlyph != "" {
		if t.HeadGlyph, err = singleGlyph("head_glyph", cfg.HeadGlyph); err != nil {
			return nil, err
		}
	}
	if t.FoodGlyph, err = singleGlyph("food_glyph", cfg.FoodGlyph); err != nil {
		return nil, err
	}
	if t.WallGlyph, err = singleGlyph("wall_glyph", cfg.WallGlyph); err != nil {
		return nil, err
	}

	for _, r := range cfg.BodyGlyphs {
		if runewidth.RuneWidth(r) != 1 {
			return nil, errors.Errorf("body_glyphs: %q is not a single-column glyph", r)
		}
		t.BodyGlyphs = append(t.BodyGlyphs, r)
	}
	if len(t.BodyGlyphs) == 0 {
		return nil, errors.New("body_glyphs is empty")
	}
	return t, nil
}

// MustTheme is NewTheme for known-good input such as the built-in defaults
func MustTheme(cfg config.Theme) *Theme {
	t, err := NewTheme(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// BodyStyle returns the style of segment i (1-based behind the head) of a body of length n
// Color runs from the body color behind the head to the tail color at the end
func (t *Theme) BodyStyle(i, n int) tcell.Style {
	frac := 0.0
	if n > 2 {
		frac = float64(i-1) / float64(n-2)
	}
	c := t.bodyColor.BlendLab(t.tailColor, frac).Clamped()
	return tcell.StyleDefault.Foreground(toTcell(c)).Bold(true)
}

// BodyGlyph picks a stable glyph for a cell so segments don't flicker between frames
func (t *Theme) BodyGlyph(x, y uint16) rune {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return t.BodyGlyphs[h%uint32(len(t.BodyGlyphs))]
}

func singleGlyph(name, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.Errorf("%s %q must be exactly one character", name, s)
	}
	if runewidth.RuneWidth(r) != 1 {
		return 0, errors.Errorf("%s %q is not a single-column glyph", name, s)
	}
	return r, nil
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
