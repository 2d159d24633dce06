package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

func TestParseNewGame(t *testing.T) {
	def := mines.Config{Rows: 5, Columns: 6, MineCount: 7}

	tests := []struct {
		name  string
		query string
		want  mines.Config
	}{
		{"defaults", "", def},
		{"partial", "rows=3", mines.Config{Rows: 3, Columns: 6, MineCount: 7}},
		{"clamped", "rows=2&columns=2&mine_count=9", mines.Config{Rows: 2, Columns: 2, MineCount: 4}},
		{"preset", "preset=Beginner&rows=40", mines.Config{Rows: 9, Columns: 9, MineCount: 10}},
		{"unknown keys", "foo=bar", def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			cfg, err := ParseNewGame(src, def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseNewGameErrors(t *testing.T) {
	for _, query := range []string{"rows=x", "columns=0", "mine_count=-3", "preset=hard"} {
		src, err := url.ParseQuery(query)
		require.NoError(t, err)
		_, err = ParseNewGame(src, mines.DefaultConfig)
		assert.Error(t, err, query)
	}

	src, _ := url.ParseQuery("columns=0")
	_, err := ParseNewGame(src, mines.DefaultConfig)
	assert.ErrorIs(t, err, mines.ErrInvalidConfig)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(url.Values{"row": {"2"}, "col": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, mines.Point{Row: 2, Col: 3}, p)

	_, err = ParsePoint(url.Values{"row": {"2"}})
	assert.Error(t, err)

	_, err = ParsePoint(url.Values{"row": {"a"}, "col": {"1"}})
	assert.Error(t, err)
}
