package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func play(t *testing.T, moves ...[2]chess.Square) *engine.GameState {
	t.Helper()
	state := engine.Reset()
	for _, m := range moves {
		state = testutil.MustPropose(t, state, m[0], m[1])
	}
	return state
}

var (
	e4  = [2]chess.Square{chess.Sq(6, 4), chess.Sq(4, 4)}
	e5  = [2]chess.Square{chess.Sq(1, 4), chess.Sq(3, 4)}
	nf3 = [2]chess.Square{chess.Sq(7, 6), chess.Sq(5, 5)}
	nc6 = [2]chess.Square{chess.Sq(0, 1), chess.Sq(2, 2)}
)

func TestPositionHash(t *testing.T) {
	initial := chess.NewInitialBoard()

	t.Run("deterministic", func(t *testing.T) {
		testutil.AssertEqual(t, PositionHash(initial, chess.White), PositionHash(initial.Clone(), chess.White))
	})

	t.Run("side to move matters", func(t *testing.T) {
		if PositionHash(initial, chess.White) == PositionHash(initial, chess.Black) {
			t.Error("hash should differ by side to move")
		}
	})

	t.Run("piece placement matters", func(t *testing.T) {
		moved := play(t, e4)
		if PositionHash(initial, chess.Black) == PositionHash(moved.Board(), chess.Black) {
			t.Error("hash should differ after a move")
		}
	})

	t.Run("transpositions match", func(t *testing.T) {
		a := play(t, e4, e5, nf3, nc6)
		b := play(t, nf3, nc6, e4, e5)
		testutil.AssertEqual(t, PositionHash(a.Board(), a.Turn()), PositionHash(b.Board(), b.Turn()))
		if MoveSequenceHash(a.Moves()) == MoveSequenceHash(b.Moves()) {
			t.Error("move sequence hash should differ for different move orders")
		}
	})
}

func TestDuplicateDetector(t *testing.T) {
	a := play(t, e4, e5, nf3, nc6)
	b := play(t, nf3, nc6, e4, e5)
	c := play(t, e4, e5)

	tests := []struct {
		name       string
		exactMatch bool
		want       []bool
		unique     int
	}{
		{"final position", false, []bool{false, true, false, true}, 2},
		{"exact moves", true, []bool{false, false, false, true}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuplicateDetector(tt.exactMatch)
			for i, state := range []*engine.GameState{a, b, c, a} {
				if got := d.CheckAndAdd(state); got != tt.want[i] {
					t.Errorf("CheckAndAdd(game %d) = %v, want %v", i, got, tt.want[i])
				}
			}
			testutil.AssertEqual(t, d.UniqueCount(), tt.unique)
			testutil.AssertEqual(t, d.DuplicateCount(), 4-tt.unique)

			d.Reset()
			testutil.AssertEqual(t, d.UniqueCount(), 0)
			testutil.AssertFalse(t, d.CheckAndAdd(a))
		})
	}
}

func TestDuplicateDetector_Nil(t *testing.T) {
	d := NewDuplicateDetector(false)
	testutil.AssertFalse(t, d.CheckAndAdd(nil))
	testutil.AssertEqual(t, d.UniqueCount(), 0)
}
