package engine_test

import (
	"testing"

	"chess-agent/engine"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTrackerOpening(t *testing.T) {
	b := mustBoard(t, startFEN)
	fen := b.FEN()
	tracker := engine.NewTracker(b)
	require.Equal(t, int32(0), tracker.Absolute())
	require.Equal(t, int32(0), tracker.Score())

	play(t, b, tracker, "e2e4")
	require.Equal(t, int32(40), tracker.Absolute())
	require.Equal(t, int32(-40), tracker.Score())
	require.Equal(t, engine.Evaluate(b), tracker.Score())

	play(t, b, tracker, "e7e5")
	require.Equal(t, int32(0), tracker.Absolute())

	before := tracker.Absolute()
	play(t, b, tracker, "g1f3")
	require.Equal(t, before+50, tracker.Absolute(), "Knight g1 -> f3 is worth 50")
	require.Equal(t, int32(0), engine.MaterialBalance(b))
	require.Equal(t, engine.Balance(b), tracker.Absolute())
	require.Equal(t, 3, tracker.Depth())

	for tracker.Depth() > 0 {
		undo(b, tracker)
	}
	require.Equal(t, int32(0), tracker.Absolute())
	require.Equal(t, engine.White, tracker.SideToMove())
	require.Equal(t, fen, b.FEN())
}

func TestTrackerCastling(t *testing.T) {
	testCases := []struct {
		name  string
		side  string
		move  string
		delta int32
	}{
		{"white kingside", "w", "e1g1", 30},
		{"white queenside", "w", "e1c1", 15},
		{"black kingside", "b", "e8g8", -30},
		{"black queenside", "b", "e8c8", -15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R "+tc.side+" KQkq - 0 1")
			fen := b.FEN()
			tracker := engine.NewTracker(b)
			before := tracker.Absolute()

			play(t, b, tracker, tc.move)
			require.Equal(t, before+tc.delta, tracker.Absolute())
			require.Equal(t, engine.Balance(b), tracker.Absolute())

			undo(b, tracker)
			require.Equal(t, before, tracker.Absolute())
			require.Equal(t, fen, b.FEN())
		})
	}
}

func TestTrackerPromotion(t *testing.T) {
	b := mustBoard(t, promoteFEN)
	tracker := engine.NewTracker(b)
	before := tracker.Absolute()

	play(t, b, tracker, "a7a8q")
	require.Equal(t, before+730, tracker.Absolute())
	require.Equal(t, engine.Balance(b), tracker.Absolute())
	require.Equal(t, int32(900), engine.MaterialBalance(b))

	undo(b, tracker)
	play(t, b, tracker, "a7a8n")
	require.Equal(t, engine.Balance(b), tracker.Absolute())
}

func TestTrackerEnPassant(t *testing.T) {
	b := mustBoard(t, passantFEN)
	tracker := engine.NewTracker(b)
	before := tracker.Absolute()

	m := play(t, b, tracker, "e5d6")
	require.Equal(t, before+125, tracker.Absolute())
	require.Equal(t, engine.Balance(b), tracker.Absolute())
	require.Equal(t, int32(100), engine.MaterialBalance(b))

	require.Panics(t, func() { tracker.OnUnmake(engine.Move{From: m.To, To: m.From}) })
}

// Every reachable position must agree with a full evaluation, and unwinding
// must return the exact starting score.
func TestTrackerRandomWalk(t *testing.T) {
	fens := []string{startFEN, kiwipeteFEN, endgameFEN, castleFEN, promoteFEN, passantFEN}
	rng := rand.New(rand.NewSource(20261018))

	for _, fen := range fens {
		for game := 0; game < 8; game++ {
			b := mustBoard(t, fen)
			tracker := engine.NewTracker(b)
			start := tracker.Absolute()

			for ply := 0; ply < 60 && !b.IsGameOver(); ply++ {
				moves := b.LegalMoves()
				m := moves[rng.Intn(len(moves))]
				tracker.OnApply(b, m)
				b.Apply(m)

				require.Equal(t, engine.Balance(b), tracker.Absolute(), "%s after %v", fen, b.Moves())
				require.Equal(t, b.SideToMove(), tracker.SideToMove())
				if !b.IsGameOver() {
					require.Equal(t, engine.Evaluate(b), tracker.Score())
				}
			}

			for tracker.Depth() > 0 {
				undo(b, tracker)
				require.Equal(t, engine.Balance(b), tracker.Absolute())
			}
			require.Equal(t, start, tracker.Absolute())
			require.Equal(t, 0, b.Ply())
		}
	}
}
