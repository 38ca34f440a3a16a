package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	found := false
	err := forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found, err
}

// LegalMoves returns every move colour can make that passes the movement
// rules and does not leave its own king in check. Moves are ordered by origin
// square, then destination square, in row-major order. Promoting pawn moves
// carry Promotion = Queen.
func LegalMoves(board *chess.Board, colour chess.Colour) ([]chess.Move, error) {
	var moves []chess.Move
	err := forEachLegalMove(board, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves, err
}

// LegalMovesFrom returns the legal moves of the piece on from, used to
// highlight destinations for a selected piece. An empty square yields no moves.
func LegalMovesFrom(board *chess.Board, from chess.Square) ([]chess.Move, error) {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil, nil
	}
	var moves []chess.Move
	err := forEachLegalMoveFrom(board, from, piece, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves, err
}

// LeavesKingInCheck simulates move on a copy of board and reports whether the
// mover's own king is attacked afterwards.
func LeavesKingInCheck(board *chess.Board, move chess.Move) (bool, error) {
	return IsInCheck(simulate(board, move), move.Piece.Colour)
}

// forEachLegalMove calls fn for every legal move of colour until fn returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move) bool) error {
	for _, from := range board.Pieces(colour) {
		stop := false
		err := forEachLegalMoveFrom(board, from, board.Get(from), func(m chess.Move) bool {
			if !fn(m) {
				stop = true
				return false
			}
			return true
		})
		if err != nil || stop {
			return err
		}
	}
	return nil
}

// forEachLegalMoveFrom tries every destination square for the piece on from.
func forEachLegalMoveFrom(board *chess.Board, from chess.Square, piece chess.Piece, fn func(chess.Move) bool) error {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Square{Row: row, Col: col}
			if !IsLegalGeometry(board, piece, from, to) {
				continue
			}

			move := newMove(board, piece, from, to, chess.Queen)
			inCheck, err := LeavesKingInCheck(board, move)
			if err != nil {
				return err
			}
			if inCheck {
				continue
			}
			if !fn(move) {
				return nil
			}
		}
	}
	return nil
}

// newMove builds the move of piece from one square to another on board.
// promotion is only kept when the move actually promotes.
func newMove(board *chess.Board, piece chess.Piece, from, to chess.Square, promotion chess.Kind) chess.Move {
	move := chess.Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
	}
	if isPromotion(piece, to) {
		move.Promotion = promotion
	}
	return move
}

// simulate returns a copy of board with move applied. The original board is
// never touched.
func simulate(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Clone()
	placed := move.Piece
	if move.Promotion != chess.NoKind {
		placed.Kind = move.Promotion
	}
	next.Set(move.From, chess.NoPiece)
	next.Set(move.To, placed)
	return next
}
