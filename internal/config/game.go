package config

import (
	"fmt"
	"time"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

type Sessions struct {
	MaxLive int
	MaxIdle time.Duration
	Default mines.Config
}

func NewSessions() (*Sessions, error) {
	maxLive, err := lookupInt("MAX_SESSIONS", 10_000)
	if err != nil {
		return nil, err
	}
	maxIdle, err := lookupDuration("SESSION_MAX_IDLE", time.Hour)
	if err != nil {
		return nil, err
	}

	def := mines.DefaultConfig
	if def.Rows, err = lookupInt("DEFAULT_ROWS", def.Rows); err != nil {
		return nil, err
	}
	if def.Columns, err = lookupInt("DEFAULT_COLUMNS", def.Columns); err != nil {
		return nil, err
	}
	if def.MineCount, err = lookupInt("DEFAULT_MINES", def.MineCount); err != nil {
		return nil, err
	}
	if def, err = def.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid default board: %w", err)
	}

	sessions := &Sessions{
		MaxLive: maxLive,
		MaxIdle: maxIdle,
		Default: def,
	}

	return sessions, nil
}
