package mines

import (
	"fmt"
	"math/rand/v2"
)

// PlaceMines distributes mineCount mines uniformly over the board. Every
// placement of mineCount mines is equally likely.
func PlaceMines(b *Board, mineCount int, r *rand.Rand) {
	assert(!b.mined, "mines placed twice on the same board")

	/*
	 * Write down the list of possible mine locations, then pick n off the
	 * list at random, moving the last remaining candidate into the hole.
	 */
	candidates := make([]Point, 0, b.Size())
	for p := range b.Points() {
		candidates = append(candidates, p)
	}

	k := len(candidates)
	for range mineCount {
		if k == 0 {
			break
		}
		i := r.IntN(k)
		b.cell(candidates[i]).HasMine = true
		k--
		candidates[i] = candidates[k]
	}

	b.mined = true
}

// PlaceMinesAt puts mines exactly on the given points.
func PlaceMinesAt(b *Board, points []Point) error {
	assert(!b.mined, "mines placed twice on the same board")

	for _, p := range points {
		c, err := b.At(p)
		if err != nil {
			return err
		}
		if c.HasMine {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfig, p)
		}
		b.cell(p).HasMine = true
	}

	b.mined = true
	return nil
}
