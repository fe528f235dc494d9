package engine_test

import (
	"testing"

	"chess-agent/engine"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name  string
		fen   string
		moves string
		want  int32
	}{
		{"start", startFEN, "", 0},
		{"after e2e4", startFEN, "e2e4", -40},
		{"after e2e4 e7e5", startFEN, "e2e4 e7e5", 0},
		{"checkmated", foolsMateFEN, "", -engine.MateScore},
		{"stalemated", stalemateFEN, "", engine.DrawScore},
		{"bare kings", bareKingsFEN, "", engine.DrawScore},
		{"queen up", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "", 895},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.fen)
			require.NoError(t, b.PlayUCI(tc.moves))
			require.Equal(t, tc.want, engine.Evaluate(b))
		})
	}
}

func TestEvaluateIsRelative(t *testing.T) {
	white := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")

	require.Equal(t, engine.Balance(white), engine.Balance(black))
	require.Equal(t, engine.Evaluate(white), -engine.Evaluate(black))
}

func TestRelative(t *testing.T) {
	require.Equal(t, int32(120), engine.Relative(120, engine.White))
	require.Equal(t, int32(-120), engine.Relative(120, engine.Black))
	require.Equal(t, int32(0), engine.Relative(0, engine.Black))
}

func TestBalanceIsSymmetric(t *testing.T) {
	require.Equal(t, int32(0), engine.Balance(mustBoard(t, startFEN)))
	require.Equal(t, int32(0), engine.Balance(mustBoard(t, castleFEN)))
	require.Equal(t, int32(0), engine.MaterialBalance(mustBoard(t, kiwipeteFEN)))
}
