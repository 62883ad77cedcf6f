package domain

// PlayerID marks the owner of a board cell.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// board dimensions
const (
	Rows    = 6
	Columns = 7
	Cells   = Rows * Columns
	ToWin   = 4
)

// Result is the outcome of a game.
type Result string

const (
	InProgress  Result = "in_progress"
	Player1Wins Result = "player1_wins"
	Player2Wins Result = "player2_wins"
	Tie         Result = "tie"
)

// Terminal reports whether the result blocks further placement.
func (r Result) Terminal() bool {
	return r != InProgress
}

// Winner returns the winning player, or Empty for non-win results.
func (r Result) Winner() PlayerID {
	switch r {
	case Player1Wins:
		return Player1
	case Player2Wins:
		return Player2
	}
	return Empty
}

// Wins maps a player to their win result.
func Wins(p PlayerID) Result {
	if p == Player2 {
		return Player2Wins
	}
	return Player1Wins
}

// Opponent returns the other player.
func Opponent(p PlayerID) PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// basic errors that can occur during placement
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrGameOver      Error = "game is over"
	ErrColumnFull    Error = "column is full"
	ErrInvalidColumn Error = "column out of range"
)
