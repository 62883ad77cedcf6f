package bot

import "connectfour/internal/domain"

// calculateEasyMove is a one-step lookahead:
// 1. take an immediate win if there is one
// 2. block the opponent's immediate win
// 3. otherwise play a random valid column
func (b *Bot) calculateEasyMove(board domain.Board) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1
	}

	opponent := domain.Opponent(b.player)

	if col := winningColumn(board, validColumns, b.player); col >= 0 {
		return col
	}
	if col := winningColumn(board, validColumns, opponent); col >= 0 {
		return col
	}

	return validColumns[b.rng.Intn(len(validColumns))]
}

// winningColumn returns the first column where p wins immediately,
// or -1 when there is none.
func winningColumn(board domain.Board, columns []int, p domain.PlayerID) int {
	for _, col := range columns {
		testBoard, row, err := board.Simulate(col, p)
		if err != nil {
			continue
		}
		if testBoard.WinsThrough(row, col, p) {
			return col
		}
	}
	return -1
}
