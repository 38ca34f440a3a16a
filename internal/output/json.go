package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	StartFEN string              `json:"startFEN"`
	FEN      string              `json:"fen"`
	Turn     string              `json:"turn"`
	Status   string              `json:"status"`
	Winner   string              `json:"winner,omitempty"`
	PlyCount int                 `json:"plyCount"`
	Moves    []JSONMove          `json:"moves,omitempty"`
	Captured map[string][]string `json:"captured,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	From      [2]int `json:"from"`
	To        [2]int `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game state to JSON format.
func GameToJSON(state *engine.GameState) *JSONGame {
	jg := &JSONGame{
		StartFEN: state.StartFEN(),
		FEN:      state.FEN(),
		Turn:     strings.ToLower(state.Turn().String()),
		Status:   state.Status().String(),
		PlyCount: state.Ply(),
	}
	if winner, ok := state.Winner(); ok {
		jg.Winner = strings.ToLower(winner.String())
	}

	for i, m := range state.Moves() {
		jg.Moves = append(jg.Moves, MoveToJSON(i+1, m))
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		captured := state.Captured(colour)
		if len(captured) == 0 {
			continue
		}
		if jg.Captured == nil {
			jg.Captured = make(map[string][]string)
		}
		names := make([]string, len(captured))
		for i, p := range captured {
			names[i] = strings.ToLower(p.Kind.String())
		}
		jg.Captured[strings.ToLower(colour.String())] = names
	}
	return jg
}

// MoveToJSON converts one committed move, numbered from 1.
func MoveToJSON(ply int, m chess.Move) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: strings.ToLower(m.Piece.Colour.String()),
		From:  [2]int{m.From.Row, m.From.Col},
		To:    [2]int{m.To.Row, m.To.Col},
		Piece: strings.ToLower(m.Piece.Kind.String()),
	}
	if m.IsCapture() {
		jm.Captured = strings.ToLower(m.Captured.Kind.String())
	}
	if m.Promotion != chess.NoKind {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}

// WriteJSON writes a single game as indented JSON.
func WriteJSON(w io.Writer, state *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(state))
}
