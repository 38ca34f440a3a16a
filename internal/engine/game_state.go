package engine

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// lastGeneration numbers games so that callers holding a stale state (for
// example a delayed automated move) can tell it apart from the current game.
var lastGeneration atomic.Uint64

// Options tune how ProposeMove treats promotions.
type Options struct {
	// RequirePromotionChoice makes a promoting move without an explicit
	// choice fail with ErrPromotionRequired instead of promoting to a queen.
	RequirePromotionChoice bool
}

// GameState is an immutable snapshot of a game: the board, the side to move,
// what each side has captured and the status of the side to move.
// ProposeMove never modifies a GameState; it returns a new one.
type GameState struct {
	board      chess.Board
	turn       chess.Colour
	status     chess.Status
	captured   [2][]chess.Piece
	moves      []chess.Move
	startFEN   string
	generation uint64
	opts       Options
}

// Reset returns a fresh game: the standard starting position, no captures,
// White to move, status Normal.
func Reset(opts ...Options) *GameState {
	state := &GameState{
		board:      *chess.NewInitialBoard(),
		turn:       chess.White,
		status:     chess.Normal,
		startFEN:   InitialFEN,
		generation: lastGeneration.Add(1),
	}
	if len(opts) > 0 {
		state.opts = opts[0]
	}
	return state
}

// NewGameFromFEN starts a game from an arbitrary position. The status of the
// side to move is computed from the position. Positions that no game could
// reach are rejected with ErrInvalidFEN: each side needs exactly one king,
// and the side that just moved must not be in check.
func NewGameFromFEN(fen string, opts ...Options) (*GameState, error) {
	board, turn, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := validatePosition(board, turn); err != nil {
		return nil, err
	}
	status, err := ClassifyStatus(board, turn)
	if err != nil {
		return nil, err
	}

	state := &GameState{
		board:      *board,
		turn:       turn,
		status:     status,
		startFEN:   BoardToFEN(board, turn),
		generation: lastGeneration.Add(1),
	}
	if len(opts) > 0 {
		state.opts = opts[0]
	}
	return state, nil
}

// validatePosition checks the king invariant of a position about to be played.
func validatePosition(board *chess.Board, turn chess.Colour) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, sq := range board.Pieces(colour) {
			if board.Get(sq).Kind == chess.King {
				kings++
			}
		}
		switch {
		case kings == 0:
			return fmt.Errorf("%s king: %w: %w", colour, errors.ErrInvalidFEN, errors.ErrNoKingFound)
		case kings > 1:
			return fmt.Errorf("%d %s kings: %w", kings, colour, errors.ErrInvalidFEN)
		}
	}

	mover := turn.Opposite()
	inCheck, err := IsInCheck(board, mover)
	if err != nil {
		return err
	}
	if inCheck {
		return fmt.Errorf("%s to move but %s king is already attacked: %w", turn, mover, errors.ErrInvalidFEN)
	}
	return nil
}

// Board returns a copy of the current board.
func (s *GameState) Board() *chess.Board {
	return s.board.Clone()
}

// PieceAt returns the piece on sq, NoPiece if empty or off the board.
func (s *GameState) PieceAt(sq chess.Square) chess.Piece {
	return s.board.Get(sq)
}

// Turn returns the side to move.
func (s *GameState) Turn() chess.Colour {
	return s.turn
}

// Status returns the status of the side to move.
func (s *GameState) Status() chess.Status {
	return s.status
}

// Captured returns, in capture order, the pieces taken by colour.
func (s *GameState) Captured(colour chess.Colour) []chess.Piece {
	return slices.Clone(s.captured[colour])
}

// Moves returns the committed moves in order.
func (s *GameState) Moves() []chess.Move {
	return slices.Clone(s.moves)
}

// Ply returns the number of committed moves.
func (s *GameState) Ply() int {
	return len(s.moves)
}

// StartFEN returns the position the game started from.
func (s *GameState) StartFEN() string {
	return s.startFEN
}

// FEN returns the current position.
func (s *GameState) FEN() string {
	return BoardToFEN(&s.board, s.turn)
}

// Generation identifies the game this state belongs to. Every Reset or
// NewGameFromFEN starts a new generation; moves keep it.
func (s *GameState) Generation() uint64 {
	return s.generation
}

// Options returns the options the game was started with.
func (s *GameState) Options() Options {
	return s.opts
}

// Winner returns the side that delivered checkmate.
func (s *GameState) Winner() (chess.Colour, bool) {
	if s.status != chess.Checkmate {
		return chess.White, false
	}
	return s.turn.Opposite(), true
}

// IsOver reports whether the game has ended in checkmate or stalemate.
func (s *GameState) IsOver() bool {
	return s.status.IsTerminal()
}
