package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer writes projections to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	theme  *Theme
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, theme *Theme) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, theme: theme}
}

// RenderFrame clears the screen, draws the projection and flushes
func (r *TerminalRenderer) RenderFrame(state engine.GameState) {
	r.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	r.screen.Clear()

	width, height := r.screen.Size()
	for _, d := range Project(state, r.theme) {
		x, y := int(d.Cell.X), int(d.Cell.Y)
		if x >= width || y >= height {
			continue
		}
		r.screen.SetContent(x, y, d.Rune, nil, d.Style)
	}

	r.screen.Show()
}
