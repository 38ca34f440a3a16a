// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected moves. All of them are recoverable: the caller
// clears its selection and asks again.
var (
	// ErrEmptySource indicates there is no piece on the origin square.
	ErrEmptySource = errors.New("no piece on source square")

	// ErrWrongTurn indicates the selected piece belongs to the side not to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalGeometry indicates the move breaks the piece's movement or path rules.
	ErrIllegalGeometry = errors.New("illegal move for piece")

	// ErrMovesIntoCheck indicates the move would leave the mover's own king attacked.
	ErrMovesIntoCheck = errors.New("move leaves king in check")

	// ErrInvalidPromotionChoice indicates a promotion to something other than Q, R, B or N.
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")

	// ErrPromotionRequired indicates a promoting move was submitted without a choice
	// while a choice is required.
	ErrPromotionRequired = errors.New("promotion choice required")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("square off the board")

	// ErrGameOver indicates a move was proposed after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)

// Sentinel errors for everything else.
var (
	// ErrNoKingFound indicates a board without a king of the queried colour.
	// This is a programming error, never a user-facing outcome.
	ErrNoKingFound = errors.New("no king found")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an archive lookup for an unknown game.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps a rejected move with its context: the squares involved,
// the piece that tried to move and the ply at which it happened. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying sentinel
	From  string // Origin square, "row,col"
	To    string // Destination square, "row,col"
	Piece string // Moving piece, if there was one
	Ply   int    // 1-based ply the move would have been (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move rejected"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for FEN strings and for coordinates typed at the terminal.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMoveRejection reports whether err is one of the recoverable move errors
// a caller should answer by clearing its selection and re-prompting.
func IsMoveRejection(err error) bool {
	for _, sentinel := range []error{
		ErrEmptySource,
		ErrWrongTurn,
		ErrIllegalGeometry,
		ErrMovesIntoCheck,
		ErrInvalidPromotionChoice,
		ErrPromotionRequired,
		ErrInvalidSquare,
		ErrGameOver,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
