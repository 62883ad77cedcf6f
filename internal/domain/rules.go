package domain

// WinsThrough reports whether p has ToWin in a row passing through
// (row, column). Only the four lines crossing that cell are scanned,
// which is cheaper than a full-board sweep after a placement.
func (b *Board) WinsThrough(row, column int, p PlayerID) bool {
	// horizontal (through this row)
	count := 0
	for c := 0; c < Columns; c++ {
		if b.At(row, c) == p {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// vertical (through this column)
	count = 0
	for r := 0; r < Rows; r++ {
		if b.At(r, column) == p {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}

	// diagonal rising left-to-right
	count = 0
	r, c := row, column
	for r > 0 && c > 0 {
		r--
		c--
	}
	for r < Rows && c < Columns {
		if b.At(r, c) == p {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		r++
		c++
	}

	// diagonal falling left-to-right
	count = 0
	r, c = row, column
	for r < Rows-1 && c > 0 {
		r++
		c--
	}
	for r >= 0 && c < Columns {
		if b.At(r, c) == p {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
		r--
		c++
	}

	return false
}

// directions for the full-board scan: horizontal, vertical and the
// two diagonals, each expressed as a (dRow, dCol) step.
var scanDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Evaluate scans every group of ToWin contiguous cells in all four
// directions and derives the game result. When winning lines exist
// for both players (impossible under alternating play, handled
// defensively) the player who moved last takes precedence. A tie is
// reported only when the board is full and no line exists.
func Evaluate(b *Board, lastMover PlayerID) Result {
	var p1, p2 bool

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			start := b.At(row, col)
			if start == Empty {
				continue
			}
			for _, dir := range scanDirections {
				if lineFrom(b, row, col, dir[0], dir[1], start) {
					if start == Player1 {
						p1 = true
					} else {
						p2 = true
					}
				}
			}
		}
	}

	switch {
	case p1 && p2:
		if lastMover == Player2 {
			return Player2Wins
		}
		return Player1Wins
	case p1:
		return Player1Wins
	case p2:
		return Player2Wins
	case b.Full():
		return Tie
	}
	return InProgress
}

// lineFrom checks a single group of ToWin cells starting at (row, col)
// and stepping by (dRow, dCol).
func lineFrom(b *Board, row, col, dRow, dCol int, p PlayerID) bool {
	endRow := row + (ToWin-1)*dRow
	endCol := col + (ToWin-1)*dCol
	if endRow < 0 || endRow >= Rows || endCol >= Columns {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if b.At(row+i*dRow, col+i*dCol) != p {
			return false
		}
	}
	return true
}
