// Package hashing provides duplicate detection for finished games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed

var (
	pieceKeys [chess.BoardSize][chess.BoardSize][2][chess.NumKinds]uint64
	blackKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for row := range pieceKeys {
		for col := range pieceKeys[row] {
			for colour := range pieceKeys[row][col] {
				for kind := range pieceKeys[row][col][colour] {
					pieceKeys[row][col][colour][kind] = rng.Uint64()
				}
			}
		}
	}
	blackKey = rng.Uint64()
}

// PositionHash returns the Zobrist hash of board with turn to move.
func PositionHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[row][col][p.Colour][p.Kind]
		}
	}
	if turn == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// MoveSequenceHash hashes the moves of a game in order.
func MoveSequenceHash(moves []chess.Move) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, v := range []int{m.From.Row, m.From.Col, m.To.Row, m.To.Col, int(m.Promotion)} {
			hash = hash*multiplier + uint64(v)
		}
	}
	return hash
}

// GameSignature identifies a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Moves hashes the move sequence
	Moves uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
}

// Signature returns the signature of state.
func Signature(state *engine.GameState) GameSignature {
	return GameSignature{
		Hash:     PositionHash(state.Board(), state.Turn()),
		Moves:    MoveSequenceHash(state.Moves()),
		PlyCount: state.Ply(),
	}
}

// DuplicateDetector tracks finished games and reports repeats. It is not
// safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by final position
	hashTable map[uint64][]GameSignature
	// exactMatch also requires the same move sequence
	exactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch
// false, two games reaching the same final position after the same number
// of plies count as duplicates; with it true their moves must match too.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd reports whether state duplicates a game already seen, and
// remembers it if not.
func (d *DuplicateDetector) CheckAndAdd(state *engine.GameState) bool {
	if state == nil {
		return false
	}
	sig := Signature(state)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.PlyCount != b.PlyCount {
		return false
	}
	return !d.exactMatch || a.Moves == b.Moves
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
