// Package command parses the line protocol spoken by the websocket endpoint
// and the terminal player. Every line holds one command:
//
//	g        fetch the board, change nothing
//	o R C    reveal the cell at row R, column C
//	f R C    toggle the flag at row R, column C
//	r        restart with a fresh board
package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

type Kind uint8

const (
	Noop Kind = iota + 1
	Open
	Flag
	Restart
)

func (k Kind) String() string {
	switch k {
	case Noop:
		return "noop"
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid command arguments")
)

var commands = map[string]struct {
	kind  Kind
	nargs int
}{
	"g": {Noop, 0},
	"o": {Open, 2},
	"f": {Flag, 2},
	"r": {Restart, 0},
}

type Command struct {
	Kind  Kind
	Point mines.Point
}

func (c Command) String() string {
	switch c.Kind {
	case Open, Flag:
		return fmt.Sprintf("%s %d %d", c.Kind, c.Point.Row, c.Point.Col)
	default:
		return c.Kind.String()
	}
}

func parsePoint(args []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(args[0]); err != nil {
		return p, fmt.Errorf("%w: row must be an int", ErrBadArguments)
	}
	if p.Col, err = strconv.Atoi(args[1]); err != nil {
		return p, fmt.Errorf("%w: column must be an int", ErrBadArguments)
	}
	return p, nil
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	spec, ok := commands[strings.ToLower(parts[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if spec.nargs != len(parts)-1 {
		return Command{}, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrBadArguments, parts[0], spec.nargs, len(parts)-1)
	}

	cmd := Command{Kind: spec.kind}
	if spec.nargs == 2 {
		p, err := parsePoint(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Point = p
	}
	return cmd, nil
}

// Lines yields the non-blank lines of a multi-command message.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		found := true
		var line string
		for found {
			line, text, found = strings.Cut(text, "\n")
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Apply runs c against s and returns the cells whose visible state changed.
// A restart reports every cell as changed.
func (c Command) Apply(s *mines.Session) ([]mines.Point, error) {
	switch c.Kind {
	case Noop:
		return nil, nil
	case Open:
		res, err := s.Reveal(c.Point)
		return res.Changed, err
	case Flag:
		res, err := s.ToggleFlag(c.Point)
		return res.Changed, err
	case Restart:
		s.Restart()
		cfg := s.Config()
		changed := make([]mines.Point, 0, cfg.Rows*cfg.Columns)
		for row := range cfg.Rows {
			for col := range cfg.Columns {
				changed = append(changed, mines.Point{Row: row, Col: col})
			}
		}
		return changed, nil
	default:
		return nil, ErrUnknownCommand
	}
}
