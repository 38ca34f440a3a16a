// Package engine provides chess move validation, check detection and game
// state transitions over a chess.Board.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// geometryRule decides whether piece may travel from one square to another
// on board, given that the destination does not hold a piece of its own colour.
type geometryRule func(board *chess.Board, piece chess.Piece, from, to chess.Square) bool

// movementRules maps every piece kind to its movement rule. The table is
// sized by chess.NumKinds; TestMovementRulesComplete fails if a kind is
// added without a rule.
var movementRules = [chess.NumKinds]geometryRule{
	chess.Pawn:   pawnGeometry,
	chess.Knight: knightGeometry,
	chess.Bishop: bishopGeometry,
	chess.Rook:   rookGeometry,
	chess.Queen:  queenGeometry,
	chess.King:   kingGeometry,
}

// IsLegalGeometry reports whether piece may move from one square to another
// under its movement and path rules. It never considers whether the move
// leaves the mover's own king attacked; see LeavesKingInCheck for that.
func IsLegalGeometry(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if piece.IsEmpty() || from == to || !from.Valid() || !to.Valid() {
		return false
	}

	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if piece.Kind < 0 || piece.Kind >= chess.NumKinds {
		return false
	}
	rule := movementRules[piece.Kind]
	if rule == nil {
		return false
	}
	return rule(board, piece, from, to)
}
