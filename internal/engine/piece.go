package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// rookGeometry: a straight line with nothing in between.
func rookGeometry(board *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return isStraight(from, to) && isPathClear(board, from, to)
}

// bishopGeometry: a diagonal with nothing in between.
func bishopGeometry(board *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return isDiagonal(from, to) && isPathClear(board, from, to)
}

// queenGeometry is the union of the rook and bishop rules.
func queenGeometry(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return rookGeometry(board, piece, from, to) || bishopGeometry(board, piece, from, to)
}

// knightGeometry: an L-shaped jump. Knights ignore what is in between.
func knightGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

// kingGeometry: one square in any direction.
func kingGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
}
