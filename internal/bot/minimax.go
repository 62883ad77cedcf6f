package bot

import (
	"math"

	"connectfour/internal/domain"
)

const (
	minimaxDepth = 7
	minimaxWin   = 1000000
	minimaxLoss  = -1000000
)

// calculateHardMove runs minimax with alpha-beta pruning.
func (b *Bot) calculateHardMove(board domain.Board) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1
	}

	bestCol := validColumns[0]
	bestScore := math.MinInt32
	alpha := math.MinInt32
	beta := math.MaxInt32

	opponent := domain.Opponent(b.player)

	for _, col := range validColumns {
		testBoard, row, err := board.Simulate(col, b.player)
		if err != nil {
			continue
		}

		// an immediate win needs no search
		if testBoard.WinsThrough(row, col, b.player) {
			return col
		}

		score := minimax(testBoard, minimaxDepth-1, alpha, beta, false, b.player, opponent)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		alpha = max(alpha, bestScore)
	}

	return bestCol
}

func minimax(board domain.Board, depth, alpha, beta int, maximizing bool, botPlayer, opponent domain.PlayerID) int {
	validColumns := board.ValidMoves()

	if depth == 0 || len(validColumns) == 0 {
		return evaluateBoard(board, botPlayer, opponent)
	}

	if maximizing {
		maxEval := math.MinInt32
		for _, col := range validColumns {
			testBoard, row, err := board.Simulate(col, botPlayer)
			if err != nil {
				continue
			}
			if testBoard.WinsThrough(row, col, botPlayer) {
				return minimaxWin - (minimaxDepth - depth) // prefer quicker wins
			}

			eval := minimax(testBoard, depth-1, alpha, beta, false, botPlayer, opponent)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range validColumns {
		testBoard, row, err := board.Simulate(col, opponent)
		if err != nil {
			continue
		}
		if testBoard.WinsThrough(row, col, opponent) {
			return minimaxLoss + (minimaxDepth - depth) // prefer delaying losses
		}

		eval := minimax(testBoard, depth-1, alpha, beta, true, botPlayer, opponent)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}
