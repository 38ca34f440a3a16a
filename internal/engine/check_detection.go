package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Square{Row: row, Col: col}, nil
			}
		}
	}
	return chess.Square{}, fmt.Errorf("%s king: %w", colour, errors.ErrNoKingFound)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := KingSquare(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite()), nil
}

// IsSquareAttacked returns true if any piece of byColour could geometrically
// move to sq. The attacker's own king safety is deliberately ignored.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.Pieces(byColour) {
		if IsLegalGeometry(board, board.Get(from), from, sq) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check and no legal move gets it out.
func IsCheckmate(board *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || !inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// ClassifyStatus returns the status of the position for colour, the side
// about to move. Checkmate takes precedence over Check, which takes
// precedence over Stalemate.
func ClassifyStatus(board *chess.Board, colour chess.Colour) (chess.Status, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil {
		return chess.Normal, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return chess.Normal, err
	}

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate, nil
	case inCheck:
		return chess.Check, nil
	case !hasMoves:
		return chess.Stalemate, nil
	}
	return chess.Normal, nil
}
