package handlers

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-mind/internal/command"
	"github.com/vancomm/minesweeper-mind/internal/config"
	"github.com/vancomm/minesweeper-mind/internal/metrics"
	"github.com/vancomm/minesweeper-mind/internal/mines"
	"github.com/vancomm/minesweeper-mind/internal/store"
)

func newTestHandler(t *testing.T, idle time.Duration) (*GameHandler, *store.Registry) {
	t.Helper()
	registry := store.New(0)
	handler := NewGameHandler(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry,
		metrics.New(),
		&config.WebSocket{IdleTimeout: idle},
		mines.DefaultConfig,
	)
	return handler, registry
}

func addLayout(t *testing.T, registry *store.Registry, rows, cols int, at ...mines.Point) *store.Entry {
	t.Helper()
	s, err := mines.NewSessionWithLayout(rows, cols, at, nil)
	require.NoError(t, err)
	entry, err := registry.Add(s)
	require.NoError(t, err)
	return entry
}

func TestRunLinesStopsAfterGameEnds(t *testing.T) {
	g, registry := newTestHandler(t, 0)
	entry := addLayout(t, registry, 1, 2, mines.Point{Row: 0, Col: 0})

	dto, err := g.runLines(entry, "o 0 0\nr")
	require.NoError(t, err)
	assert.Equal(t, mines.Lost, dto.Board.State)
}

func TestRunLinesRestartsFinishedGame(t *testing.T) {
	g, registry := newTestHandler(t, 0)
	entry := addLayout(t, registry, 1, 2, mines.Point{Row: 0, Col: 0})

	_, err := g.runLines(entry, "o 0 0")
	require.NoError(t, err)

	dto, err := g.runLines(entry, "o 0 0\nr")
	require.NoError(t, err)
	assert.Equal(t, mines.InProgress, dto.Board.State)
	assert.Len(t, dto.Changed, 2)
}

func TestRunLinesKeepsMovesBeforeError(t *testing.T) {
	g, registry := newTestHandler(t, 0)
	entry := addLayout(t, registry, 1, 3, mines.Point{Row: 0, Col: 2})

	_, err := g.runLines(entry, "f 0 2\no 9 9\nf 0 1")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)

	dto, err := g.runLines(entry, "g")
	require.NoError(t, err)
	assert.Equal(t, 1, dto.Board.FlagsPlaced)
	assert.Equal(t, mines.Flagged, dto.Grid[2])

	_, err = g.runLines(entry, "x")
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

type deadlineConn struct {
	err      error
	deadline time.Time
}

func (c *deadlineConn) SetReadDeadline(t time.Time) error {
	c.deadline = t
	return c.err
}

func TestExtendDeadline(t *testing.T) {
	g, _ := newTestHandler(t, time.Minute)

	c := &deadlineConn{}
	assert.True(t, g.extendDeadline(c))
	assert.WithinDuration(t, time.Now().Add(time.Minute), c.deadline, 5*time.Second)

	c = &deadlineConn{err: errors.New("use of closed network connection")}
	assert.False(t, g.extendDeadline(c))

	g, _ = newTestHandler(t, 0)
	c = &deadlineConn{}
	assert.True(t, g.extendDeadline(c))
	assert.True(t, c.deadline.IsZero())
}
