package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Draw is one styled cell to write this frame
type Draw struct {
	Cell  core.Cell
	Rune  rune
	Style tcell.Style
}

// Project maps a game state to the cells to draw
// Order: wall perimeter, food, then body with the head first. Every cell written
// targets its own position, so the order only matters for overlapping writes
func Project(state engine.GameState, theme *Theme) []Draw {
	perimeter := state.Area.Perimeter()
	draws := make([]Draw, 0, len(perimeter)+len(state.Food)+len(state.Body))

	for _, c := range perimeter {
		draws = append(draws, Draw{Cell: c, Rune: theme.WallGlyph, Style: theme.WallStyle})
	}

	for _, c := range state.Food {
		draws = append(draws, Draw{Cell: c, Rune: theme.FoodGlyph, Style: theme.FoodStyle})
	}

	n := len(state.Body)
	for i, c := range state.Body {
		if i == 0 {
			glyph := theme.HeadGlyph
			if glyph == 0 {
				glyph = theme.BodyGlyph(c.X, c.Y)
			}
			draws = append(draws, Draw{Cell: c, Rune: glyph, Style: theme.HeadStyle})
			continue
		}
		draws = append(draws, Draw{Cell: c, Rune: theme.BodyGlyph(c.X, c.Y), Style: theme.BodyStyle(i, n)})
	}
	return draws
}
