package domain

// Engine owns one game: the board, the placement count and the
// current result. Whose turn it is falls out of the placement count,
// even means Player1 and odd means Player2. The engine itself is not
// safe for concurrent use; each session owns exactly one instance.
type Engine struct {
	board  Board
	turn   int
	result Result
}

func NewEngine() *Engine {
	return &Engine{result: InProgress}
}

// PlacePiece drops a disk for the current player into the column and
// returns the row it landed on. A failed call mutates nothing.
func (e *Engine) PlacePiece(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}
	if e.result.Terminal() {
		return -1, ErrGameOver
	}
	if e.board.ColumnFull(column) {
		return -1, ErrColumnFull
	}

	mover := e.CurrentPlayer()
	row, err := e.board.Drop(column, mover)
	if err != nil {
		return -1, err
	}
	e.turn++

	// the new disk is the only change, so only lines through it
	// can have completed
	if e.board.WinsThrough(row, column, mover) {
		e.result = Wins(mover)
	} else if e.board.Full() {
		e.result = Tie
	}

	return row, nil
}

// EvaluateResult re-derives the result from a full-board scan and
// records it. Placement already keeps the result current, so this is
// mainly useful to callers holding a hand-assembled engine state.
func (e *Engine) EvaluateResult() Result {
	e.result = Evaluate(&e.board, e.LastPlayer())
	return e.result
}

// Reset clears the board and starts a fresh game. Safe to call in
// any state.
func (e *Engine) Reset() {
	e.board = Board{}
	e.turn = 0
	e.result = InProgress
}

// Board returns a snapshot copy of the grid.
func (e *Engine) Board() Board {
	return e.board
}

// Turn returns the number of disks placed so far.
func (e *Engine) Turn() int {
	return e.turn
}

func (e *Engine) Result() Result {
	return e.result
}

// CurrentPlayer returns who moves next.
func (e *Engine) CurrentPlayer() PlayerID {
	if e.turn%2 == 0 {
		return Player1
	}
	return Player2
}

// LastPlayer returns who moved last, or Empty on a fresh board.
func (e *Engine) LastPlayer() PlayerID {
	if e.turn == 0 {
		return Empty
	}
	if e.turn%2 == 1 {
		return Player1
	}
	return Player2
}
