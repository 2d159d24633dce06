package mines

import (
	"fmt"
	"iter"
)

// NoCount is stored as the adjacency of mined cells.
const NoCount = -1

type Point struct {
	Row int `json:"row" schema:"row,required"`
	Col int `json:"col" schema:"col,required"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Mark is the presentation marker a cell receives when the game ends.
type Mark uint8

const (
	MarkNone    Mark = iota
	MarkLost         // disclosed after a loss
	MarkCleared      // safe cell highlighted after a win
)

func (m Mark) String() string {
	switch m {
	case MarkLost:
		return "lost"
	case MarkCleared:
		return "cleared"
	default:
		return "none"
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*m = MarkNone
	case "lost":
		*m = MarkLost
	case "cleared":
		*m = MarkCleared
	default:
		return fmt.Errorf("unknown mark %q", text)
	}
	return nil
}

type Cell struct {
	HasMine       bool
	Revealed      bool
	Flagged       bool
	AdjacentMines int
	Mark          Mark
}

type Board struct {
	rows, cols int
	cells      []Cell
	mined      bool // mines were placed at least once
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d board exceeds %d cells",
			ErrInvalidConfig, rows, cols, MaxCells)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Columns() int { return b.cols }
func (b *Board) Size() int { return len(b.cells) }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.rows && 0 <= p.Col && p.Col < b.cols
}

func (b *Board) index(p Point) (int, error) {
	if !b.InBounds(p) {
		return 0, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.rows, b.cols)
	}
	return p.Row*b.cols + p.Col, nil
}

func (b *Board) At(p Point) (Cell, error) {
	i, err := b.index(p)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

func (b *Board) Set(p Point, c Cell) error {
	i, err := b.index(p)
	if err != nil {
		return err
	}
	b.cells[i] = c
	return nil
}

// cell is At for points already known to be in bounds.
func (b *Board) cell(p Point) *Cell {
	i, err := b.index(p)
	if err != nil {
		panic(AssertionError{err.Error()})
	}
	return &b.cells[i]
}

// Points yields every coordinate in row-major order.
func (b *Board) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for row := range b.rows {
			for col := range b.cols {
				if !yield(Point{row, col}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the up to 8 in-bounds cells around p.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{p.Row + dr, p.Col + dc}
				if b.InBounds(n) && !yield(n) {
					return
				}
			}
		}
	}
}

func (b *Board) Mines() (count int) {
	for _, c := range b.cells {
		if c.HasMine {
			count++
		}
	}
	return
}
