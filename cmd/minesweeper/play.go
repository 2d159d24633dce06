package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-mind/internal/command"
	"github.com/vancomm/minesweeper-mind/internal/mines"
)

// play runs moves from in against s, printing the board to out after each
// one, until in is exhausted or the player quits.
func play(in io.Reader, out io.Writer, s *mines.Session) error {
	if err := render(out, s); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			break
		}

		cmd, err := command.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		before := s.State()
		changed, err := cmd.Apply(s)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"changed": len(changed),
		}).Debug("applied")

		if err := render(out, s); err != nil {
			return err
		}
		if after := s.State(); !before.Terminal() && after.Terminal() {
			log.WithField("state", after.String()).Info("game over")
			fmt.Fprintf(out, "game over: %s, r to play again\n", after)
		}
	}
	return scanner.Err()
}

func render(out io.Writer, s *mines.Session) error {
	view := s.Snapshot()
	_, err := fmt.Fprintf(out, "%s[%s] %d/%d cleared, %d flags, %d mines\n",
		view, view.State, view.SafeCellsRevealed,
		view.Rows*view.Columns-view.MineCount, view.FlagsPlaced, view.MineCount)
	return err
}
