package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"chess-agent/board"
	"chess-agent/engine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultQNodes keeps one search on a tactical middlegame within seconds.
const defaultQNodes = 500000

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("selectmove failed")
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred profile stop always runs.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("selectmove", flag.ContinueOnError)
	fenFlag := fs.String("fen", board.Startpos, "FEN to search")
	movesFlag := fs.String("moves", "", "UCI moves to play from the FEN before searching")
	depthFlag := fs.Int("depth", engine.DefaultDepth, "search depth in plies")
	qnodesFlag := fs.Uint64("qnodes", defaultQNodes, "quiescence node limit per search (0 = unlimited)")
	playFlag := fs.Int("play", 1, "number of consecutive moves to select")
	verbose := fs.Bool("v", false, "log search statistics")
	cpuProfile := fs.String("cpuprofile", "", "write CPU profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *depthFlag <= 0 {
		return fmt.Errorf("depth must be positive, got %d", *depthFlag)
	}
	if *playFlag <= 0 {
		return fmt.Errorf("play must be positive, got %d", *playFlag)
	}

	b, err := board.FromFEN(*fenFlag)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	sel := engine.NewSelector(b,
		engine.WithDepth(*depthFlag),
		engine.WithQuiescenceNodeLimit(*qnodesFlag),
		engine.WithLogger(log.Logger),
	)

	// Opening moves go through the selector so its running score follows them.
	for _, s := range splitMoves(*movesFlag) {
		m, err := b.ParseMove(s)
		if err != nil {
			return fmt.Errorf("play move list: %w", err)
		}
		sel.Play(m)
	}

	log.Debug().Str("fen", b.FEN()).Int32("score", sel.Score()).Msg("position loaded")

	for i := 0; i < *playFlag; i++ {
		move, err := sel.SelectMove()
		if err != nil {
			return fmt.Errorf("select move in %s: %w", b.FEN(), err)
		}
		fmt.Fprintf(stdout, "bestmove %s\n", move)
	}
	if *playFlag > 1 {
		fmt.Fprintf(stdout, "fen %s\n", b.FEN())
	}
	return nil
}
