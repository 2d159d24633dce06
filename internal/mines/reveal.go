package mines

type RevealResult struct {
	Changed []Point   `json:"changed"`
	State   GameState `json:"state"`
}

// Reveal opens the cell at p. Revealing a flagged or already revealed cell,
// or any cell once the game is over, changes nothing.
func (s *Session) Reveal(p Point) (RevealResult, error) {
	c, err := s.board.At(p)
	if err != nil {
		return RevealResult{State: s.state}, err
	}
	if s.state.Terminal() || c.Revealed || c.Flagged {
		return RevealResult{State: s.state}, nil
	}

	var changed []Point
	if c.HasMine {
		s.board.cell(p).Revealed = true
		s.state = Lost
		changed = append(changed, p)
		changed = s.discloseBoard(changed)
		Log.Debug("mine hit", "point", p.String())
	} else {
		changed = s.open(p, changed)
		if s.safeCellsRevealed == s.config.SafeCells() {
			s.state = Won
			// every safe cell changes, including the ones just opened
			changed = s.highlightSafeCells(nil)
			Log.Debug("board cleared", "config", s.config.String())
		}
	}

	return RevealResult{Changed: changed, State: s.state}, nil
}

// open reveals the safe cell at start and floods outwards from every
// zero-count cell it reaches. Cells are queued at most once.
func (s *Session) open(start Point, changed []Point) []Point {
	b := s.board
	queue := []Point{start}
	b.cell(start).Revealed = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		c := b.cell(p)
		assert(!c.HasMine, "cascade reached a mine")
		s.safeCellsRevealed++
		assert(s.safeCellsRevealed <= s.config.SafeCells(), "more safe cells revealed than exist")
		changed = append(changed, p)

		if c.AdjacentMines != 0 {
			continue
		}
		for q := range b.Neighbors(p) {
			n := b.cell(q)
			if n.Revealed || n.Flagged {
				continue
			}
			n.Revealed = true
			queue = append(queue, q)
		}
	}

	return changed
}

// discloseBoard marks every still hidden cell after a loss.
func (s *Session) discloseBoard(changed []Point) []Point {
	for p := range s.board.Points() {
		c := s.board.cell(p)
		if c.Revealed {
			continue
		}
		c.Mark = MarkLost
		changed = append(changed, p)
	}
	return changed
}

func (s *Session) highlightSafeCells(changed []Point) []Point {
	for p := range s.board.Points() {
		c := s.board.cell(p)
		if c.HasMine {
			continue
		}
		c.Mark = MarkCleared
		changed = append(changed, p)
	}
	return changed
}
