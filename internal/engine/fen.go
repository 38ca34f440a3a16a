package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position, with
// castling and en passant fields cleared since neither is supported.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns it together
// with the side to move (White if the field is absent). FEN ranks are listed
// from rank 8 down, which matches rows 0 to 7. Castling, en passant and clock
// fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0
	fail := func(i int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Column:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fail(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return fail(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fail(i, "at most 8 squares in rank", fmt.Sprintf("%d", col))
			}
		default:
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fail(i, "piece letter or digit", string(c))
			}
			if col >= chess.BoardSize {
				return fail(i, "at most 8 squares in rank", "more")
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}

			board.Set(chess.Square{Row: row, Col: col}, chess.Piece{Kind: kind, Colour: colour})
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fail(len(positions)-1, "8 complete ranks", fmt.Sprintf("rank %d ending at file %d", row+1, col))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-".
func BoardToFEN(board *chess.Board, turn chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, turn)
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
