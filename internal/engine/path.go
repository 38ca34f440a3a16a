package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isStraight reports whether from and to share a row or a column.
func isStraight(from, to chess.Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

// isDiagonal reports whether from and to lie on a common diagonal.
func isDiagonal(from, to chess.Square) bool {
	return abs(to.Row-from.Row) == abs(to.Col-from.Col)
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must lie on a common row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Square{Row: from.Row + rowDir, Col: from.Col + colDir}
	for sq != to {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq.Row += rowDir
		sq.Col += colDir
	}

	return true
}
