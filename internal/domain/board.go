package domain

// Board is the 7x6 grid as a flat array in row-major order with row 0
// at the bottom, so cell index = row*Columns + column. Being an array
// value, assignment and passing by value both take a full snapshot.
type Board [Cells]PlayerID

// At returns the cell at (row, column). Row 0 is the bottom row.
func (b *Board) At(row, column int) PlayerID {
	return b[row*Columns+column]
}

func (b *Board) set(row, column int, p PlayerID) {
	b[row*Columns+column] = p
}

// Drop places a disk for p in the given column, scanning from the
// bottom row upward for the first empty cell. Returns the landing row.
func (b *Board) Drop(column int, p PlayerID) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}

	for row := 0; row < Rows; row++ {
		if b.At(row, column) == Empty {
			b.set(row, column, p)
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// ColumnFull reports whether the column has no empty cell left,
// which by the gravity invariant means its top row is occupied.
func (b *Board) ColumnFull(column int) bool {
	return b.At(Rows-1, column) != Empty
}

// Full reports whether all 42 cells are occupied.
func (b *Board) Full() bool {
	for c := 0; c < Columns; c++ {
		if !b.ColumnFull(c) {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, cell := range b {
		if cell != Empty {
			n++
		}
	}
	return n
}

// ValidMoves lists the columns that can still accept a disk.
func (b *Board) ValidMoves() []int {
	moves := []int{}
	for c := 0; c < Columns; c++ {
		if !b.ColumnFull(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// Simulate drops a disk on a copy of the board, leaving the receiver
// untouched. Used by the bot to explore candidate moves.
func (b Board) Simulate(column int, p PlayerID) (Board, int, error) {
	row, err := b.Drop(column, p)
	if err != nil {
		return b, -1, err
	}
	return b, row, nil
}

// CountInDirection counts consecutive disks of p starting one step
// away from (row, column) and walking along (dRow, dCol).
func (b *Board) CountInDirection(row, column, dRow, dCol int, p PlayerID) int {
	count := 0
	r, c := row+dRow, column+dCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b.At(r, c) == p {
		count++
		r += dRow
		c += dCol
	}
	return count
}
