// parse.go - Parsing of squares, moves and commands typed at the prompt
package main

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// errInput is wrapped by every ParseError produced for prompt input.
var errInput = errors.ErrInvalidSquare

// parseSquare parses "row,col" (0-based, row 0 is black's back rank) or an
// algebraic square such as "e2".
func parseSquare(s string) (chess.Square, error) {
	s = strings.TrimSpace(s)
	fail := func(col int, expected, got string) error {
		return &errors.ParseError{Err: errInput, Input: s, Column: col, Expected: expected, Got: got}
	}

	if row, col, ok := strings.Cut(s, ","); ok {
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return chess.Square{}, fail(1, "row number", row)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return chess.Square{}, fail(len(row)+2, "column number", col)
		}
		sq := chess.Sq(r, c)
		if !sq.Valid() {
			return chess.Square{}, fail(1, "row and column in 0-7", s)
		}
		return sq, nil
	}

	if len(s) != 2 {
		return chess.Square{}, fail(1, "row,col or file and rank", s)
	}
	file, rank := s[0]|0x20, s[1]
	if file < 'a' || file > 'h' {
		return chess.Square{}, fail(1, "file a-h", string(s[0]))
	}
	if rank < '1' || rank > '8' {
		return chess.Square{}, fail(2, "rank 1-8", string(rank))
	}
	return chess.Sq(chess.BoardSize-int(rank-'0'), int(file-'a')), nil
}

// parsePromotion parses a promotion choice given as a letter or a name.
// The engine decides whether the kind is an allowed choice.
func parsePromotion(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return chess.NoKind, nil
	}
	for kind := chess.Knight; kind < chess.NumKinds; kind++ {
		if s == strings.ToLower(kind.String()) {
			return kind, nil
		}
	}
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind != chess.NoKind {
			return kind, nil
		}
	}
	return chess.NoKind, &errors.ParseError{
		Err:      errors.ErrInvalidPromotionChoice,
		Input:    s,
		Column:   1,
		Expected: "q, r, b or n",
		Got:      s,
	}
}

// moveInput is a move typed at the prompt.
type moveInput struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// parseMove parses "FROM TO [PROMOTION]", where FROM and TO are accepted by
// parseSquare. A hyphen may join the squares.
func parseMove(line string) (moveInput, error) {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		if from, to, ok := strings.Cut(fields[0], "-"); ok && from != "" {
			fields = append([]string{from, to}, fields[1:]...)
		}
	}
	if len(fields) < 2 || len(fields) > 3 {
		return moveInput{}, &errors.ParseError{
			Err:      errInput,
			Input:    line,
			Expected: "from and to squares",
			Got:      strconv.Itoa(len(fields)) + " fields",
		}
	}

	var in moveInput
	var err error
	if in.From, err = parseSquare(fields[0]); err != nil {
		return moveInput{}, err
	}
	if in.To, err = parseSquare(fields[1]); err != nil {
		return moveInput{}, err
	}
	if len(fields) == 3 {
		if in.Promotion, err = parsePromotion(fields[2]); err != nil {
			return moveInput{}, err
		}
	}
	return in, nil
}
