package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnGeometry checks pawn pushes, the double step from the start row and
// diagonal captures. A diagonal step onto an empty square is never legal.
func pawnGeometry(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	dir := chess.PawnDirection(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	target := board.Get(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row != chess.PawnStartRow(pawn.Colour) {
			return false
		}
		middle := chess.Square{Row: from.Row + dir, Col: from.Col}
		return board.Get(middle).IsEmpty() && target.IsEmpty()

	case abs(colDiff) == 1 && rowDiff == dir:
		return !target.IsEmpty() && target.Colour != pawn.Colour
	}

	return false
}

// isPromotion reports whether moving piece to sq promotes it.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)
}
