package bot

import "connectfour/internal/domain"

const (
	positionWeight   = 10
	twoInRowWeight   = 50
	threeInRowWeight = 500
)

// evaluateBoard calculates a heuristic score for the position from
// the bot's point of view.
func evaluateBoard(board domain.Board, botPlayer, opponent domain.PlayerID) int {
	score := 0

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			switch board.At(row, col) {
			case botPlayer:
				score += evaluatePosition(board, row, col, botPlayer)
			case opponent:
				score -= evaluatePosition(board, row, col, opponent)
			}
		}
	}

	// center column preference
	centerCol := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		switch board.At(row, centerCol) {
		case botPlayer:
			score += positionWeight * 2
		case opponent:
			score -= positionWeight * 2
		}
	}

	return score
}

var evalDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal rising
	{1, -1}, // diagonal falling
}

// evaluatePosition scores a single disk by the runs it takes part in.
func evaluatePosition(board domain.Board, row, col int, player domain.PlayerID) int {
	score := positionWeight

	for _, dir := range evalDirections {
		dRow, dCol := dir[0], dir[1]

		posCount := board.CountInDirection(row, col, dRow, dCol, player)
		negCount := board.CountInDirection(row, col, -dRow, -dCol, player)
		total := posCount + negCount

		// a run capped on both ends can never complete
		if !hasSpaceForExtension(board, row, col, dRow, dCol, posCount, negCount) {
			continue
		}

		if total >= 3 {
			score += threeInRowWeight
		} else if total == 2 {
			score += twoInRowWeight
		}
	}

	return score
}

// hasSpaceForExtension reports whether the run through (row, col) in
// direction (dRow, dCol) has an empty cell on at least one end.
func hasSpaceForExtension(board domain.Board, row, col, dRow, dCol, posCount, negCount int) bool {
	r, c := row+(posCount+1)*dRow, col+(posCount+1)*dCol
	if r >= 0 && r < domain.Rows && c >= 0 && c < domain.Columns && board.At(r, c) == domain.Empty {
		return true
	}

	r, c = row-(negCount+1)*dRow, col-(negCount+1)*dCol
	if r >= 0 && r < domain.Rows && c >= 0 && c < domain.Columns && board.At(r, c) == domain.Empty {
		return true
	}

	return false
}
