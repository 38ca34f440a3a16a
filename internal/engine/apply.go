package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ProposeMove validates the move of the piece on from to to and, if it is
// legal, returns the game state after it. promotion is the kind a pawn
// reaching the far row becomes; chess.NoKind means no choice was made and
// promotes to a queen unless the game requires an explicit choice.
//
// On error the returned state is nil and state is left untouched. The error
// is a *errors.MoveError wrapping one of the move sentinels.
func ProposeMove(state *GameState, from, to chess.Square, promotion chess.Kind) (*GameState, error) {
	ply := len(state.moves) + 1
	reject := func(err error, piece chess.Piece) error {
		moveErr := &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: ply}
		if !piece.IsEmpty() {
			moveErr.Piece = piece.String()
		}
		return moveErr
	}

	if !from.Valid() || !to.Valid() {
		return nil, reject(errors.ErrInvalidSquare, chess.NoPiece)
	}
	if state.status.IsTerminal() {
		return nil, reject(errors.ErrGameOver, chess.NoPiece)
	}

	piece := state.board.Get(from)
	if piece.IsEmpty() {
		return nil, reject(errors.ErrEmptySource, piece)
	}
	if piece.Colour != state.turn {
		return nil, reject(errors.ErrWrongTurn, piece)
	}

	if !IsLegalGeometry(&state.board, piece, from, to) {
		return nil, reject(errors.ErrIllegalGeometry, piece)
	}

	if isPromotion(piece, to) {
		switch {
		case promotion == chess.NoKind && state.opts.RequirePromotionChoice:
			return nil, reject(errors.ErrPromotionRequired, piece)
		case promotion == chess.NoKind:
			promotion = chess.Queen
		case !promotion.IsPromotionKind():
			return nil, reject(errors.ErrInvalidPromotionChoice, piece)
		}
	}

	move := newMove(&state.board, piece, from, to, promotion)
	next := simulate(&state.board, move)

	inCheck, err := IsInCheck(next, piece.Colour)
	if err != nil {
		return nil, reject(err, piece)
	}
	if inCheck {
		return nil, reject(errors.ErrMovesIntoCheck, piece)
	}

	opponent := piece.Colour.Opposite()
	status, err := ClassifyStatus(next, opponent)
	if err != nil {
		return nil, reject(err, piece)
	}

	return commit(state, next, move, status), nil
}

// ApplyMove commits a move produced by LegalMoves or PickRandomLegalMove.
// It re-validates the move exactly as ProposeMove does.
func ApplyMove(state *GameState, move chess.Move) (*GameState, error) {
	return ProposeMove(state, move.From, move.To, move.Promotion)
}

// commit builds the successor of state. Capture lists and move history are
// copied before appending so that state keeps its own view.
func commit(state *GameState, board *chess.Board, move chess.Move, status chess.Status) *GameState {
	next := &GameState{
		board:      *board,
		turn:       state.turn.Opposite(),
		status:     status,
		captured:   state.captured,
		moves:      append(slices.Clip(state.moves), move),
		startFEN:   state.startFEN,
		generation: state.generation,
		opts:       state.opts,
	}
	if move.IsCapture() {
		mover := move.Piece.Colour
		next.captured[mover] = append(slices.Clip(state.captured[mover]), move.Captured)
	}
	return next
}
