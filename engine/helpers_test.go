package engine_test

import (
	"testing"

	"chess-agent/board"
	"chess-agent/engine"

	"github.com/stretchr/testify/require"
)

const (
	startFEN     = board.Startpos
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	scotchFEN    = "r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	castleFEN    = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	promoteFEN   = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	passantFEN   = "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"
	hangingFEN   = "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1"
	forcedFEN    = "k7/8/8/8/8/8/1q6/K6R w - - 0 1"
	mateInOneFEN = "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	bareKingsFEN = "8/8/4k3/8/8/3K4/8/8 w - - 0 1"
)

func mustBoard(t testing.TB, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	return b
}

func mustMove(t testing.TB, b *board.Board, uci string) engine.Move {
	t.Helper()
	m, err := b.ParseMove(uci)
	require.NoError(t, err)
	return m
}

// play applies a move to both the board and the tracker.
func play(t testing.TB, b *board.Board, tracker *engine.Tracker, uci string) engine.Move {
	t.Helper()
	m := mustMove(t, b, uci)
	tracker.OnApply(b, m)
	b.Apply(m)
	return m
}

func undo(b *board.Board, tracker *engine.Tracker) {
	tracker.OnUnmake(b.Unmake())
}
