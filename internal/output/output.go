// Package output provides text and JSON renderings of boards and games.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DefaultLineLength is the width move lists are wrapped at.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws board with row and column indices, row 0 at the top.
// Squares in marks are flagged with '*', which is how the destinations of
// a selected piece are shown.
func WriteBoard(w io.Writer, board *chess.Board, marks ...chess.Square) {
	var marked [chess.BoardSize][chess.BoardSize]bool
	for _, sq := range marks {
		if sq.Valid() {
			marked[sq.Row][sq.Col] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	border := "  +" + strings.Repeat("-", 2*chess.BoardSize+1) + "+\n"
	sb.WriteString(border)
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 0; col < chess.BoardSize; col++ {
			if marked[row][col] {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(squareLetter(board.Squares[row][col]))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(border)

	io.WriteString(w, sb.String()) //nolint:errcheck // best-effort terminal output
}

func squareLetter(p chess.Piece) byte {
	if p.IsEmpty() {
		return '.'
	}
	return p.Letter()
}

// WriteGame writes the board followed by the side to move, the status,
// both capture lists and the numbered move list.
func WriteGame(w io.Writer, state *engine.GameState, maxLineLength int) {
	WriteBoard(w, state.Board())
	fmt.Fprintln(w, StatusLine(state))

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		fmt.Fprintf(w, "Captured by %s: %s\n", colour, formatPieces(state.Captured(colour)))
	}

	moves := state.Moves()
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	ow.Write("Moves:")
	WriteMoves(ow, moves)
	ow.NewLine()
}

// WriteMoves writes moves numbered in pairs, White's move first. A game
// that starts with Black to move opens with "1...".
func WriteMoves(ow *OutputWriter, moves []chess.Move) {
	offset := 0
	if len(moves) > 0 && moves[0].Piece.Colour == chess.Black {
		ow.Write("1...")
		offset = 1
	}
	for i, m := range moves {
		if ply := i + offset; ply%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		}
		ow.Write(m.String())
	}
}

// StatusLine describes the side to move and the game status in one line.
func StatusLine(state *engine.GameState) string {
	switch state.Status() {
	case chess.Checkmate:
		winner, _ := state.Winner()
		return fmt.Sprintf("Checkmate! %s wins.", winner)
	case chess.Stalemate:
		return fmt.Sprintf("Stalemate. %s has no legal move.", state.Turn())
	case chess.Check:
		return fmt.Sprintf("%s to move (in check)", state.Turn())
	}
	return fmt.Sprintf("%s to move", state.Turn())
}

func formatPieces(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	letters := make([]string, len(pieces))
	for i, p := range pieces {
		letters[i] = string(p.Letter())
	}
	return strings.Join(letters, " ")
}
