package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Failure paths cannot be exercised without a fake *testing.T, so these
// tests cover the success paths and formatMessage.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, chess.W(chess.Queen), chess.W(chess.Queen))
	AssertEqual(t, []chess.Square{chess.Sq(1, 2)}, []chess.Square{chess.Sq(1, 2)})
	AssertEqual(t, nil, nil, "nil should equal nil")
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errors.ErrWrongTurn)
	AssertErrorIs(t, err, errors.ErrWrongTurn)
	AssertErrorIs(t, &errors.MoveError{Err: errors.ErrEmptySource}, errors.ErrEmptySource, "move %d", 1)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, chess.Sq(0, 0).Valid())
	AssertFalse(t, chess.Sq(9, 0).Valid())
	AssertContains(t, "White Pawn", "Pawn")
}

func TestAssertNil_Success(t *testing.T) {
	var m *chess.Move
	AssertNil(t, nil)
	AssertNil(t, m)
	AssertNotNil(t, &chess.Move{})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}
