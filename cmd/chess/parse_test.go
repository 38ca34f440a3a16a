package main

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Square
		wantErr bool
	}{
		{"6,4", chess.Sq(6, 4), false},
		{" 0 , 7 ", chess.Sq(0, 7), false},
		{"e2", chess.Sq(6, 4), false},
		{"A8", chess.Sq(0, 0), false},
		{"h1", chess.Sq(7, 7), false},
		{"8,0", chess.Square{}, true},
		{"0,-1", chess.Square{}, true},
		{"x,1", chess.Square{}, true},
		{"i1", chess.Square{}, true},
		{"a9", chess.Square{}, true},
		{"e", chess.Square{}, true},
		{"", chess.Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSquare(tt.in)
			if tt.wantErr {
				var parseErr *errors.ParseError
				if !stderrors.As(err, &parseErr) {
					t.Fatalf("parseSquare(%q) error = %v, want *ParseError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSquare(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseSquare(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Kind
		wantErr bool
	}{
		{"", chess.NoKind, false},
		{"q", chess.Queen, false},
		{"N", chess.Knight, false},
		{"rook", chess.Rook, false},
		{"Bishop", chess.Bishop, false},
		{"k", chess.King, false}, // rejected later by the engine
		{"x", chess.NoKind, true},
		{"dragon", chess.NoKind, true},
	}
	for _, tt := range tests {
		got, err := parsePromotion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePromotion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !stderrors.Is(err, errors.ErrInvalidPromotionChoice) {
			t.Errorf("parsePromotion(%q) error = %v, want ErrInvalidPromotionChoice", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parsePromotion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    moveInput
		wantErr bool
	}{
		{"6,4 4,4", moveInput{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}, false},
		{"e2 e4", moveInput{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}, false},
		{"e2-e4", moveInput{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}, false},
		{"1,0-0,0 n", moveInput{From: chess.Sq(1, 0), To: chess.Sq(0, 0), Promotion: chess.Knight}, false},
		{"a7 a8 queen", moveInput{From: chess.Sq(1, 0), To: chess.Sq(0, 0), Promotion: chess.Queen}, false},
		{"e2", moveInput{}, true},
		{"e2 e4 q extra", moveInput{}, true},
		{"-1,0 2,0", moveInput{}, true},
		{"e2 e9", moveInput{}, true},
		{"a7 a8 z", moveInput{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMove(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseMove(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
