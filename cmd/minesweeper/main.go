// Command minesweeper plays a single board on the terminal. Moves are read
// from stdin one per line:
//
//	o ROW COL   open a cell
//	f ROW COL   toggle a flag
//	r           start over with a fresh layout
//	g           print the board
//	q           quit
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

var (
	log = logrus.New()

	rows, columns, mineCount int
	preset, board, logFile   string
	seed                     uint64
	debug                    bool
)

func init() {
	flag.IntVar(&rows, "rows", mines.DefaultConfig.Rows, "board rows")
	flag.IntVar(&columns, "columns", mines.DefaultConfig.Columns, "board columns")
	flag.IntVar(&mineCount, "mines", mines.DefaultConfig.MineCount, "number of mines")
	flag.StringVar(&preset, "preset", "", "named difficulty (beginner, intermediate, expert)")
	flag.StringVar(&board, "board", "", "board as rows:columns:mines")
	flag.Uint64Var(&seed, "seed", 0, "layout seed, random when 0")
	flag.StringVar(&logFile, "log-file", "", "also write logs to this rotated file")
	flag.BoolVar(&debug, "debug", false, "log at debug level")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if debug {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
		if err != nil {
			log.Fatal("unable to open log file: ", err)
		}
		log.AddHook(hook)
	}

	slogLevel := slog.LevelInfo
	if debug {
		slogLevel = slog.LevelDebug
	}
	mines.Log = slog.New(slog.NewTextHandler(
		log.WriterLevel(logLevel), &slog.HandlerOptions{Level: slogLevel},
	))
}

// gameConfig picks the board from -board, then -preset, then the
// dimension flags.
func gameConfig() (mines.Config, error) {
	switch {
	case board != "":
		return mines.ParseConfig(board)
	case preset != "":
		return mines.Preset(preset)
	default:
		return mines.Config{
			Rows: rows, Columns: columns, MineCount: mineCount,
		}.Normalize()
	}
}

func main() {
	flag.Parse()
	setupLogging()

	cfg, err := gameConfig()
	if err != nil {
		log.Fatal("bad board: ", err)
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}

	session, err := mines.NewSession(cfg, rnd)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	log.WithFields(logrus.Fields{
		"rows":    cfg.Rows,
		"columns": cfg.Columns,
		"mines":   cfg.MineCount,
		"seed":    seed,
	}).Info("new game")

	if err := play(os.Stdin, os.Stdout, session); err != nil {
		log.Fatal(err)
	}
}
