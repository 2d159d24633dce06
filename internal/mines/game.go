package mines

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type GameState uint8

const (
	InProgress GameState = iota
	Lost
	Won
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("GameState(%d)", uint8(s))
	}
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(text []byte) error {
	for _, state := range []GameState{InProgress, Lost, Won} {
		if string(text) == state.String() {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", text)
}

func (s GameState) Terminal() bool {
	return s != InProgress
}

// Session is one minesweeper game. It is not safe for concurrent use.
type Session struct {
	board  *Board
	config Config
	state  GameState
	rnd    *rand.Rand

	safeCellsRevealed int
	flagsPlaced       int
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewSession validates cfg and deals a fresh board from r. A nil r is
// replaced by a randomly seeded generator.
func NewSession(cfg Config, r *rand.Rand) (*Session, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}
	s := &Session{config: cfg, rnd: r}
	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWithLayout starts a game with mines on exactly the given points.
// Restart deals random boards from r afterwards.
func NewSessionWithLayout(rows, cols int, mines []Point, r *rand.Rand) (*Session, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := PlaceMinesAt(board, mines); err != nil {
		return nil, err
	}
	ComputeAdjacency(board)

	if r == nil {
		r = newRand()
	}
	s := &Session{
		board:  board,
		config: Config{Rows: rows, Columns: cols, MineCount: len(mines)},
		rnd:    r,
	}
	return s, nil
}

func (s *Session) deal() error {
	board, err := NewBoard(s.config.Rows, s.config.Columns)
	if err != nil {
		return err
	}
	PlaceMines(board, s.config.MineCount, s.rnd)
	ComputeAdjacency(board)

	s.board = board
	s.state = InProgress
	s.safeCellsRevealed = 0
	s.flagsPlaced = 0
	Log.Debug("dealt board", "config", s.config.String())
	return nil
}

// Restart deals a new board with the same config.
func (s *Session) Restart() {
	if err := s.deal(); err != nil {
		// the config was normalized when the session was created
		panic(AssertionError{err.Error()})
	}
}

func (s *Session) State() GameState { return s.state }
func (s *Session) Config() Config { return s.config }
func (s *Session) SafeCellsRevealed() int { return s.safeCellsRevealed }
func (s *Session) FlagsPlaced() int { return s.flagsPlaced }

type ToggleResult struct {
	Changed []Point   `json:"changed"`
	Flagged bool      `json:"flagged"`
	State   GameState `json:"state"`
}

// ToggleFlag flips the flag on an unrevealed cell of a game in progress.
func (s *Session) ToggleFlag(p Point) (ToggleResult, error) {
	c, err := s.board.At(p)
	if err != nil {
		return ToggleResult{State: s.state}, err
	}
	if s.state.Terminal() || c.Revealed {
		return ToggleResult{Flagged: c.Flagged, State: s.state}, nil
	}

	cell := s.board.cell(p)
	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		s.flagsPlaced++
	} else {
		s.flagsPlaced--
	}

	return ToggleResult{
		Changed: []Point{p},
		Flagged: cell.Flagged,
		State:   s.state,
	}, nil
}
