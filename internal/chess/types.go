// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square / no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionKind reports whether a pawn may be promoted to k.
func (k Kind) IsPromotionKind() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is a coloured piece. The zero value is NoPiece.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board dimensions and the rows that matter to pawns. Row 0 is black's back
// rank and row 7 is white's.
const (
	BoardSize = 8

	WhiteBackRow    = 7
	BlackBackRow    = 0
	WhitePawnRow    = 6
	BlackPawnRow    = 1
	WhitePromoteRow = BlackBackRow
	BlackPromoteRow = WhiteBackRow
)

// PawnDirection returns the row delta of a forward pawn step: -1 for White, +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which a pawn may double-step.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// PromotionRow returns the far row on which a pawn of the colour promotes.
func PromotionRow(colour Colour) int {
	if colour == White {
		return WhitePromoteRow
	}
	return BlackPromoteRow
}

// Square is a (row, column) board coordinate.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the square as "row,col".
func (s Square) String() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// Move is a committed or candidate move.
type Move struct {
	From  Square
	To    Square
	Piece Piece

	// NoPiece if the move is not a capture.
	Captured Piece

	// NoKind unless the move promotes a pawn.
	Promotion Kind
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns "from-to", with "=X" appended for promotions.
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.Promotion != NoKind {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// Status classifies a position for the side about to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "normal"
}

// IsTerminal reports whether no further moves can be played.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}
