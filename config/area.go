package config

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/core"
)

// Area derives the playfield from the terminal size
func (c *Config) Area(cols, rows int) (core.Area, error) {
	var x0, y0, x1, y1 int
	switch c.AreaMode {
	case AreaInset:
		x0, y0 = c.Inset, c.Inset
		x1, y1 = cols-1-c.Inset, rows-1-c.Inset
	default:
		x0, y0 = cols/4, rows/4
		x1, y1 = 3*cols/4, 3*rows/4
	}

	if x0 < 0 || y0 < 0 || x1 > math.MaxUint16 || y1 > math.MaxUint16 {
		return core.Area{}, errors.Errorf("terminal %dx%d outside grid range", cols, rows)
	}
	if x1 < x0 || y1 < y0 {
		return core.Area{}, errors.Errorf("terminal %dx%d too small for %s area", cols, rows, c.AreaMode)
	}

	area, err := core.NewArea(
		core.Cell{X: uint16(x0), Y: uint16(y0)},
		core.Cell{X: uint16(x1), Y: uint16(y1)},
	)
	if err != nil {
		return core.Area{}, errors.Wrapf(err, "terminal %dx%d", cols, rows)
	}
	return area, nil
}

// SeedCell is where the body starts: just inside the top-left corner
func SeedCell(area core.Area) core.Cell {
	return area.From().Offset(1, 1)
}
