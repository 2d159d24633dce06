package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAdjacencyMatchesNeighbourScan(t *testing.T) {
	r := testRand()
	for _, mineCount := range []int{0, 5, 20, 40, 63, 64} {
		b, err := NewBoard(8, 8)
		require.NoError(t, err)
		PlaceMines(b, mineCount, r)
		ComputeAdjacency(b)

		for p := range b.Points() {
			c, _ := b.At(p)
			if c.HasMine {
				assert.Equal(t, NoCount, c.AdjacentMines)
				continue
			}
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					n, err := b.At(Point{p.Row + dr, p.Col + dc})
					if err == nil && n.HasMine {
						want++
					}
				}
			}
			assert.Equal(t, want, c.AdjacentMines, "mines=%d at %s", mineCount, p)
			assert.GreaterOrEqual(t, c.AdjacentMines, 0)
			assert.LessOrEqual(t, c.AdjacentMines, 8)
		}
	}
}

func TestComputeAdjacencyFixedLayout(t *testing.T) {
	b, _ := NewBoard(3, 3)
	require.NoError(t, PlaceMinesAt(b, []Point{{0, 0}, {0, 2}, {2, 2}}))
	ComputeAdjacency(b)

	want := [3][3]int{
		{NoCount, 2, NoCount},
		{1, 3, 2},
		{0, 1, NoCount},
	}
	for p := range b.Points() {
		c, _ := b.At(p)
		assert.Equal(t, want[p.Row][p.Col], c.AdjacentMines, p.String())
	}
}

func TestComputeAdjacencyBeforePlacementPanics(t *testing.T) {
	b, _ := NewBoard(2, 2)
	assert.Panics(t, func() { ComputeAdjacency(b) })
}
