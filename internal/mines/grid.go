package mines

import (
	"strconv"
	"strings"
)

// CellStatus folds a cell's visible state into a single code:
//
//   - 0 to 8 mean the cell is open and shows its mine count.
//   - negative values are hidden cells, with or without a flag.
//   - 64 and above only appear once the game is over.
type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flagged       CellStatus = -1
	CorrectFlag   CellStatus = 64 // flagged mine after a loss
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66 // flagged safe cell after a loss
	UnflaggedMine CellStatus = 67
	Disclosed     CellStatus = 68 // hidden safe cell after a loss
)

func (s CellStatus) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == CorrectFlag:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == WrongFlag:
		return "x"
	case s == UnflaggedMine:
		return "*"
	case s == Disclosed:
		return "-"
	default:
		return "!"
	}
}

type CellView struct {
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
	MineVisible   bool `json:"mine_visible"`
	AdjacentMines int  `json:"adjacent_mines"`
	Mark          Mark `json:"mark"`
}

func (c CellView) Status() CellStatus {
	switch {
	case c.Revealed && c.MineVisible:
		return ExplodedMine
	case c.Revealed:
		return CellStatus(c.AdjacentMines)
	case c.Mark == MarkLost && c.Flagged && c.MineVisible:
		return CorrectFlag
	case c.Mark == MarkLost && c.Flagged:
		return WrongFlag
	case c.Mark == MarkLost && c.MineVisible:
		return UnflaggedMine
	case c.Mark == MarkLost:
		return Disclosed
	case c.Flagged:
		return Flagged
	default:
		return Unknown
	}
}

// BoardView is a read-only copy of what the player may see.
type BoardView struct {
	Rows              int          `json:"rows"`
	Columns           int          `json:"columns"`
	MineCount         int          `json:"mine_count"`
	State             GameState    `json:"state"`
	SafeCellsRevealed int          `json:"safe_cells_revealed"`
	FlagsPlaced       int          `json:"flags_placed"`
	Cells             [][]CellView `json:"cells"`
}

func viewOf(c Cell) CellView {
	v := CellView{
		Revealed:      c.Revealed,
		Flagged:       c.Flagged,
		MineVisible:   c.HasMine && (c.Revealed || c.Mark == MarkLost),
		AdjacentMines: NoCount,
		Mark:          c.Mark,
	}
	if c.Revealed && !c.HasMine {
		v.AdjacentMines = c.AdjacentMines
	}
	return v
}

// Snapshot copies the visible board. It never exposes mines of a game in
// progress.
func (s *Session) Snapshot() BoardView {
	cells := make([][]CellView, s.board.Rows())
	for row := range cells {
		cells[row] = make([]CellView, s.board.Columns())
	}
	for p := range s.board.Points() {
		cells[p.Row][p.Col] = viewOf(*s.board.cell(p))
	}
	return BoardView{
		Rows:              s.config.Rows,
		Columns:           s.config.Columns,
		MineCount:         s.config.MineCount,
		State:             s.state,
		SafeCellsRevealed: s.safeCellsRevealed,
		FlagsPlaced:       s.flagsPlaced,
		Cells:             cells,
	}
}

// View returns the visible state of the single cell at p.
func (s *Session) View(p Point) (CellView, error) {
	c, err := s.board.At(p)
	if err != nil {
		return CellView{}, err
	}
	return viewOf(c), nil
}

func (v BoardView) Status(p Point) CellStatus {
	return v.Cells[p.Row][p.Col].Status()
}

// Statuses flattens the board in row-major order.
func (v BoardView) Statuses() []CellStatus {
	statuses := make([]CellStatus, 0, v.Rows*v.Columns)
	for _, row := range v.Cells {
		for _, c := range row {
			statuses = append(statuses, c.Status())
		}
	}
	return statuses
}

func (v BoardView) String() string {
	var b strings.Builder
	for _, row := range v.Cells {
		for col, c := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.Status().String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
