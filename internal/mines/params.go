package mines

import (
	"fmt"
	"strings"
)

type Config struct {
	Rows      int `json:"rows" schema:"rows"`
	Columns   int `json:"columns" schema:"columns"`
	MineCount int `json:"mine_count" schema:"mine_count"`
}

// MaxCells bounds the area of a board.
const MaxCells = 1 << 20

var DefaultConfig = Config{Rows: 10, Columns: 10, MineCount: 15}

var Presets = map[string]Config{
	"beginner":     {Rows: 9, Columns: 9, MineCount: 10},
	"intermediate": {Rows: 16, Columns: 16, MineCount: 40},
	"expert":       {Rows: 16, Columns: 30, MineCount: 99},
}

func Preset(name string) (Config, error) {
	cfg, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return cfg, nil
}

// Normalize validates c and clamps the mine count to the number of cells.
func (c Config) Normalize() (Config, error) {
	if c.Rows <= 0 || c.Columns <= 0 {
		return c, fmt.Errorf("%w: rows and columns must be positive, got %dx%d",
			ErrInvalidConfig, c.Rows, c.Columns)
	}
	if c.Rows > MaxCells/c.Columns {
		return c, fmt.Errorf("%w: %dx%d board exceeds %d cells",
			ErrInvalidConfig, c.Rows, c.Columns, MaxCells)
	}
	if c.MineCount < 0 {
		return c, fmt.Errorf("%w: negative mine count %d", ErrInvalidConfig, c.MineCount)
	}
	if cells := c.Rows * c.Columns; c.MineCount > cells {
		Log.Debug("clamping mine count", "requested", c.MineCount, "cells", cells)
		c.MineCount = cells
	}
	return c, nil
}

func (c Config) SafeCells() int {
	return c.Rows*c.Columns - c.MineCount
}

// String encodes c as "rows:columns:mines", the format read by [ParseConfig].
func (c Config) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Rows, c.Columns, c.MineCount)
}

func ParseConfig(s string) (Config, error) {
	var c Config
	fields := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(fields, "%d %d %d", &c.Rows, &c.Columns, &c.MineCount)
	if n != 3 || err != nil {
		return Config{}, fmt.Errorf(
			`%w: expected "rows:columns:mines", got %q`, ErrInvalidConfig, s,
		)
	}
	return c.Normalize()
}
