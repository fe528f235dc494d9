package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitMoves(t *testing.T) {
	require.Empty(t, splitMoves(""))
	require.Equal(t, []string{"e2e4", "e7e5"}, splitMoves("e2e4 e7e5"))
	require.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, splitMoves(" e2e4,e7e5,\tg1f3 "))
}
