package engine

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PickRandomLegalMove returns one of colour's legal moves chosen uniformly at
// random, or nil if colour has none. A nil move together with IsInCheck tells
// checkmate (in check) apart from stalemate (not in check).
func PickRandomLegalMove(board *chess.Board, colour chess.Colour, rng *rand.Rand) (*chess.Move, error) {
	moves, err := LegalMoves(board, colour)
	if err != nil || len(moves) == 0 {
		return nil, err
	}
	move := moves[rng.Intn(len(moves))]
	return &move, nil
}

// NewRand returns a random source for PickRandomLegalMove. A zero seed picks
// a random seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
