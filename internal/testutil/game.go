// Package testutil provides shared test utilities for the chess rules engine.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard parses the placement field of fen into a board.
// It calls t.Fatal if the FEN is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, _, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustGame starts a game from fen. It calls t.Fatal if that fails.
func MustGame(t *testing.T, fen string, opts ...engine.Options) *engine.GameState {
	t.Helper()
	state, err := engine.NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return state
}

// MustPropose plays a move that the test expects to be legal.
func MustPropose(t *testing.T, state *engine.GameState, from, to chess.Square) *engine.GameState {
	t.Helper()
	next, err := engine.ProposeMove(state, from, to, chess.NoKind)
	if err != nil {
		t.Fatalf("ProposeMove(%v, %v): %v", from, to, err)
	}
	return next
}

// AssertBoardEqual compares two boards by FEN so that a failure shows the
// differing ranks instead of 64 struct fields.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	gotFEN := engine.BoardToFEN(got, chess.White)
	wantFEN := engine.BoardToFEN(want, chess.White)
	if diff := cmp.Diff(wantFEN, gotFEN); diff != "" {
		fail(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// Destinations returns the destination squares of moves, in order.
func Destinations(moves []chess.Move) []chess.Square {
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.To)
	}
	return squares
}
