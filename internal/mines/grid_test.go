package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardViewString(t *testing.T) {
	s := mustLayout(t, 2, 3, Point{0, 2})
	_, err := s.ToggleFlag(Point{0, 2})
	require.NoError(t, err)
	_, err = s.Reveal(Point{1, 0})
	require.NoError(t, err)

	assert.Equal(t, "  1 F\n  1 .\n", s.Snapshot().String())
}

func TestBoardViewStatuses(t *testing.T) {
	s := mustLayout(t, 1, 3, Point{0, 0})
	_, err := s.Reveal(Point{0, 2})
	require.NoError(t, err)

	assert.Equal(t, []CellStatus{Unknown, 1, 0}, s.Snapshot().Statuses())
}

func TestBoardViewJSON(t *testing.T) {
	s := mustLayout(t, 1, 2, Point{0, 0})
	_, err := s.Reveal(Point{0, 0})
	require.NoError(t, err)

	b, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "lost", decoded["state"])
	cells := decoded["cells"].([]any)[0].([]any)
	assert.Equal(t, "lost", cells[1].(map[string]any)["mark"])
	assert.Equal(t, true, cells[0].(map[string]any)["mine_visible"])
}
