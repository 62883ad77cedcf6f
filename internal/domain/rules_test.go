package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBoard fills each column bottom-up from the given stacks.
func buildBoard(t *testing.T, stacks [Columns][]PlayerID) Board {
	t.Helper()
	var b Board
	for col, stack := range stacks {
		for _, p := range stack {
			_, err := b.Drop(col, p)
			require.NoError(t, err)
		}
	}
	return b
}

func TestEvaluateEmptyBoard(t *testing.T) {
	var b Board
	require.Equal(t, InProgress, Evaluate(&b, Empty))
}

func TestEvaluateSingleWinner(t *testing.T) {
	b := buildBoard(t, [Columns][]PlayerID{
		{Player1}, {Player1}, {Player1}, {Player1},
		{Player2}, {Player2}, {},
	})
	require.Equal(t, Player1Wins, Evaluate(&b, Player1))
	// the last-mover hint never overrides a single winner
	require.Equal(t, Player1Wins, Evaluate(&b, Player2))
}

// A full board where the only line belongs to Player1: the win takes
// priority over the tie.
func TestEvaluateWinBeatsTieOnFullBoard(t *testing.T) {
	a, z := Player1, Player2
	b := buildBoard(t, [Columns][]PlayerID{
		{a, a, z, z, a, a},
		{a, z, a, a, z, z},
		{a, a, z, z, a, a},
		{a, z, a, a, z, z},
		{a, a, z, z, a, a},
		{z, z, a, a, z, z},
		{a, a, z, z, a, z},
	})
	require.True(t, b.Full())
	require.Equal(t, Player1Wins, Evaluate(&b, Player2))
}

// Lines for both players cannot occur under alternating play; the
// evaluator still resolves it toward whoever moved last.
func TestEvaluateDualWinPrefersLastMover(t *testing.T) {
	full := func(p PlayerID) []PlayerID {
		return []PlayerID{p, p, p, p, p, p}
	}
	b := buildBoard(t, [Columns][]PlayerID{
		full(Player1), full(Player2), full(Player1), full(Player2),
		full(Player1), full(Player2), full(Player1),
	})

	require.Equal(t, Player1Wins, Evaluate(&b, Player1))
	require.Equal(t, Player2Wins, Evaluate(&b, Player2))
	require.Equal(t, Player1Wins, Evaluate(&b, Empty))
}

func TestWinsThroughDirections(t *testing.T) {
	cases := []struct {
		name   string
		stacks [Columns][]PlayerID
		row    int
		col    int
	}{
		{
			name: "horizontal",
			stacks: [Columns][]PlayerID{
				{Player1}, {Player1}, {Player1}, {Player1}, {}, {}, {},
			},
			row: 0, col: 3,
		},
		{
			name: "vertical",
			stacks: [Columns][]PlayerID{
				{Player1, Player1, Player1, Player1}, {}, {}, {}, {}, {}, {},
			},
			row: 3, col: 0,
		},
		{
			name: "rising diagonal",
			stacks: [Columns][]PlayerID{
				{Player1},
				{Player2, Player1},
				{Player2, Player2, Player1},
				{Player2, Player2, Player2, Player1},
				{}, {}, {},
			},
			row: 3, col: 3,
		},
		{
			name: "falling diagonal",
			stacks: [Columns][]PlayerID{
				{Player2, Player2, Player2, Player1},
				{Player2, Player2, Player1},
				{Player2, Player1},
				{Player1},
				{}, {}, {},
			},
			row: 0, col: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buildBoard(t, tc.stacks)
			require.True(t, b.WinsThrough(tc.row, tc.col, Player1))
			require.False(t, b.WinsThrough(tc.row, tc.col, Player2))
		})
	}
}

func TestWinsThroughNoLine(t *testing.T) {
	b := buildBoard(t, [Columns][]PlayerID{
		{Player1}, {Player1}, {Player1}, {Player2}, {}, {}, {},
	})
	require.False(t, b.WinsThrough(0, 2, Player1))
}
