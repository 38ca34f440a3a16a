package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := b.Get(Sq(row, col)); got != NoPiece {
					t.Errorf("Get(%d,%d) = %v; want Empty", row, col, got)
				}
			}
		}
	})

	t.Run("count is zero", func(t *testing.T) {
		if got := b.Count(); got != 0 {
			t.Errorf("Count() = %d; want 0", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// White back rank
		{"white rook a1", Sq(7, 0), W(Rook)},
		{"white knight b1", Sq(7, 1), W(Knight)},
		{"white bishop c1", Sq(7, 2), W(Bishop)},
		{"white queen d1", Sq(7, 3), W(Queen)},
		{"white king e1", Sq(7, 4), W(King)},
		{"white bishop f1", Sq(7, 5), W(Bishop)},
		{"white knight g1", Sq(7, 6), W(Knight)},
		{"white rook h1", Sq(7, 7), W(Rook)},
		// Black back rank
		{"black rook a8", Sq(0, 0), B(Rook)},
		{"black knight b8", Sq(0, 1), B(Knight)},
		{"black bishop c8", Sq(0, 2), B(Bishop)},
		{"black queen d8", Sq(0, 3), B(Queen)},
		{"black king e8", Sq(0, 4), B(King)},
		{"black bishop f8", Sq(0, 5), B(Bishop)},
		{"black knight g8", Sq(0, 6), B(Knight)},
		{"black rook h8", Sq(0, 7), B(Rook)},
		// Pawns
		{"white pawn a2", Sq(6, 0), W(Pawn)},
		{"white pawn h2", Sq(6, 7), W(Pawn)},
		{"black pawn a7", Sq(1, 0), B(Pawn)},
		{"black pawn h7", Sq(1, 7), B(Pawn)},
		// Middle
		{"empty e4", Sq(4, 4), NoPiece},
		{"empty d5", Sq(3, 3), NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if got := b.Count(); got != 32 {
		t.Errorf("Count() = %d; want 32", got)
	}
	if got := len(b.Pieces(White)); got != 16 {
		t.Errorf("len(Pieces(White)) = %d; want 16", got)
	}
	if got := len(b.Pieces(Black)); got != 16 {
		t.Errorf("len(Pieces(Black)) = %d; want 16", got)
	}
}

func TestBoardGetSetOutOfRange(t *testing.T) {
	b := NewInitialBoard()

	for _, sq := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8)} {
		if got := b.Get(sq); got != NoPiece {
			t.Errorf("Get(%v) = %v; want Empty", sq, got)
		}
		b.Set(sq, W(Queen))
	}
	if got := b.Count(); got != 32 {
		t.Errorf("Count() after off-board Set = %d; want 32", got)
	}
}

func TestBoardClone(t *testing.T) {
	b := NewInitialBoard()
	c := b.Clone()

	c.Set(Sq(6, 4), NoPiece)
	c.Set(Sq(4, 4), W(Pawn))

	if got := b.Get(Sq(6, 4)); got != W(Pawn) {
		t.Errorf("original Get(6,4) = %v after clone mutation; want White Pawn", got)
	}
	if got := b.Get(Sq(4, 4)); got != NoPiece {
		t.Errorf("original Get(4,4) = %v after clone mutation; want Empty", got)
	}
	if got := c.Get(Sq(4, 4)); got != W(Pawn) {
		t.Errorf("clone Get(4,4) = %v; want White Pawn", got)
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{B(Queen), 'q'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
		if got := KindFromLetter(tt.want); got != tt.piece.Kind {
			t.Errorf("KindFromLetter(%c) = %v; want %v", tt.want, got, tt.piece.Kind)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in     string
		want   Colour
		wantOK bool
	}{
		{"white", White, true},
		{"W", White, true},
		{"Black", Black, true},
		{" b ", Black, true},
		{"red", White, false},
	}
	for _, tt := range tests {
		got, ok := ParseColour(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColour(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSquareValid(t *testing.T) {
	if !Sq(0, 0).Valid() || !Sq(7, 7).Valid() {
		t.Error("corner squares should be valid")
	}
	if Sq(8, 0).Valid() || Sq(0, -1).Valid() {
		t.Error("off-board squares should be invalid")
	}
}

func TestPawnRows(t *testing.T) {
	if PawnDirection(White) != -1 || PawnDirection(Black) != 1 {
		t.Error("white pawns move toward row 0, black toward row 7")
	}
	if PawnStartRow(White) != 6 || PawnStartRow(Black) != 1 {
		t.Error("pawn start rows should be 6 (white) and 1 (black)")
	}
	if PromotionRow(White) != 0 || PromotionRow(Black) != 7 {
		t.Error("promotion rows should be 0 (white) and 7 (black)")
	}
}
