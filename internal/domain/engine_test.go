package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// playAll feeds a column sequence to the engine, failing the test on
// any rejected move.
func playAll(t *testing.T, e *Engine, cols ...int) {
	t.Helper()
	for i, c := range cols {
		_, err := e.PlacePiece(c)
		require.NoErrorf(t, err, "move %d (column %d)", i, c)
	}
}

// tieSequence fills all 42 cells with no four in a row anywhere.
// Columns 0-5 are filled in complementary pairs, column 6 is woven
// into the last pair so every move matches the mover's parity.
var tieSequence = []int{
	0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1,
	2, 3, 2, 3, 3, 2, 3, 2, 2, 3, 2, 3,
	6, 5, 4, 5, 4, 4, 6, 6, 5, 4, 5, 6, 6, 5, 4, 5, 4, 6,
}

func TestTurnCountMatchesPlacements(t *testing.T) {
	e := NewEngine()
	cols := []int{3, 3, 4, 2, 5, 0}
	for i, c := range cols {
		_, err := e.PlacePiece(c)
		require.NoError(t, err)
		require.Equal(t, i+1, e.Turn())
		board := e.Board()
		require.Equal(t, i+1, board.Count())
	}
}

func TestTurnAlternation(t *testing.T) {
	e := NewEngine()
	require.Equal(t, Player1, e.CurrentPlayer())
	require.Equal(t, Empty, e.LastPlayer())

	playAll(t, e, 0, 1, 0, 1)

	board := e.Board()
	require.Equal(t, Player1, board.At(0, 0))
	require.Equal(t, Player2, board.At(0, 1))
	require.Equal(t, Player1, board.At(1, 0))
	require.Equal(t, Player2, board.At(1, 1))
	require.Equal(t, Player1, e.CurrentPlayer())
	require.Equal(t, Player2, e.LastPlayer())
}

func TestGravityInvariant(t *testing.T) {
	sequences := [][]int{
		{0, 0, 0, 0, 0, 0},
		{3, 3, 4, 2, 5, 0, 6, 1, 3, 4},
		tieSequence,
	}

	for _, cols := range sequences {
		e := NewEngine()
		playAll(t, e, cols...)

		board := e.Board()
		for col := 0; col < Columns; col++ {
			sawEmpty := false
			for row := 0; row < Rows; row++ {
				if board.At(row, col) == Empty {
					sawEmpty = true
				} else {
					require.Falsef(t, sawEmpty, "gap below occupied cell in column %d", col)
				}
			}
		}
	}
}

// Player1 takes columns 0-3 on the bottom row while Player2 stacks
// elsewhere; the fourth Player1 disk completes the horizontal line.
func TestHorizontalWin(t *testing.T) {
	e := NewEngine()
	playAll(t, e, 0, 6, 1, 6, 2, 6)
	require.Equal(t, InProgress, e.Result())

	row, err := e.PlacePiece(3)
	require.NoError(t, err)
	require.Equal(t, 0, row)
	require.Equal(t, Player1Wins, e.Result())
}

func TestVerticalWin(t *testing.T) {
	e := NewEngine()
	playAll(t, e, 0, 1, 0, 2, 0, 3)
	require.Equal(t, InProgress, e.Result())

	row, err := e.PlacePiece(0)
	require.NoError(t, err)
	require.Equal(t, 3, row)
	require.Equal(t, Player1Wins, e.Result())
}

func TestDiagonalRisingWin(t *testing.T) {
	e := NewEngine()
	// builds Player1 disks at (0,0) (1,1) (2,2) and finishes at (3,3)
	playAll(t, e, 0, 1, 1, 2, 3, 2, 2, 3, 6, 3)
	require.Equal(t, InProgress, e.Result())

	row, err := e.PlacePiece(3)
	require.NoError(t, err)
	require.Equal(t, 3, row)
	require.Equal(t, Player1Wins, e.Result())
}

func TestDiagonalFallingWin(t *testing.T) {
	e := NewEngine()
	// builds Player1 disks at (0,3) (1,2) (2,1) and finishes at (3,0)
	playAll(t, e, 3, 2, 2, 1, 0, 1, 1, 0, 6, 0)
	require.Equal(t, InProgress, e.Result())

	row, err := e.PlacePiece(0)
	require.NoError(t, err)
	require.Equal(t, 3, row)
	require.Equal(t, Player1Wins, e.Result())
}

func TestThreeInARowIsNotAWin(t *testing.T) {
	e := NewEngine()
	playAll(t, e, 0, 6, 1, 6, 2)
	require.Equal(t, InProgress, e.Result())
	require.Equal(t, InProgress, e.EvaluateResult())
}

func TestSecondPlayerWin(t *testing.T) {
	e := NewEngine()
	// Player1 scatters while Player2 stacks column 5
	playAll(t, e, 0, 5, 1, 5, 3, 5, 0)
	require.Equal(t, InProgress, e.Result())

	row, err := e.PlacePiece(5)
	require.NoError(t, err)
	require.Equal(t, 3, row)
	require.Equal(t, Player2Wins, e.Result())
}

func TestTie(t *testing.T) {
	e := NewEngine()
	playAll(t, e, tieSequence...)

	require.Equal(t, 42, e.Turn())
	board := e.Board()
	require.True(t, board.Full())
	require.Equal(t, Tie, e.Result())

	_, err := e.PlacePiece(0)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestPlacementBlockedAfterWin(t *testing.T) {
	e := NewEngine()
	playAll(t, e, 0, 1, 0, 2, 0, 3, 0) // vertical Player1 win

	require.Equal(t, Player1Wins, e.Result())
	_, err := e.PlacePiece(4)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestFailedPlacementIsAtomic(t *testing.T) {
	cases := []struct {
		name    string
		setup   []int
		column  int
		wantErr error
	}{
		{"invalid column low", []int{3, 3}, -1, ErrInvalidColumn},
		{"invalid column high", []int{3, 3}, 7, ErrInvalidColumn},
		{"full column", []int{0, 0, 0, 0, 0, 0}, 0, ErrColumnFull},
		{"game over", []int{0, 1, 0, 2, 0, 3, 0}, 4, ErrGameOver},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine()
			playAll(t, e, tc.setup...)

			boardBefore := e.Board()
			turnBefore := e.Turn()
			resultBefore := e.Result()

			_, err := e.PlacePiece(tc.column)
			require.ErrorIs(t, err, tc.wantErr)

			require.Equal(t, boardBefore, e.Board())
			require.Equal(t, turnBefore, e.Turn())
			require.Equal(t, resultBefore, e.Result())
		})
	}
}

func TestResetIdempotence(t *testing.T) {
	states := [][]int{
		{},                    // fresh
		{3, 3, 4},             // mid-game
		{0, 1, 0, 2, 0, 3, 0}, // won
		tieSequence,           // tied
	}

	for _, cols := range states {
		e := NewEngine()
		playAll(t, e, cols...)

		e.Reset()
		e.Reset() // again, to confirm idempotence

		require.Equal(t, 0, e.Turn())
		require.Equal(t, InProgress, e.Result())
		require.Equal(t, Board{}, e.Board())
		require.Equal(t, Player1, e.CurrentPlayer())

		// the engine is usable again after reset
		row, err := e.PlacePiece(3)
		require.NoError(t, err)
		require.Equal(t, 0, row)
	}
}
