package mines

// ComputeAdjacency stores the number of mined neighbours of every safe cell.
// Mined cells get [NoCount].
func ComputeAdjacency(b *Board) {
	assert(b.mined, "adjacency computed before mine placement")

	for p := range b.Points() {
		c := b.cell(p)
		if c.HasMine {
			c.AdjacentMines = NoCount
			continue
		}
		c.AdjacentMines = b.countMines(p)
	}
}

func (b *Board) countMines(p Point) (n int) {
	for q := range b.Neighbors(p) {
		if b.cell(q).HasMine {
			n++
		}
	}
	return
}
