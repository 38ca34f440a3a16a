// history.go - Browsing archived games
package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runHistory lists the newest archived games with per-label totals, or
// shows the game with the given id.
func runHistory(cfg *config.Config, id string) error {
	if !cfg.Archive.Enabled {
		return fmt.Errorf("no archive configured (use -archive DIR): %w", errors.ErrInvalidConfig)
	}
	arch, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer arch.Close()

	if id != "" {
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return fmt.Errorf("game id %q: %w", id, errors.ErrGameNotFound)
		}
		rec, err := arch.LoadGame(n)
		if err != nil {
			return err
		}
		return writeRecord(cfg.Output, rec)
	}

	games, err := arch.ListGames(*historyLimit)
	if err != nil {
		return err
	}
	stats, err := arch.Stats()
	if err != nil {
		return err
	}
	writeGameList(cfg.Output, games)
	writeStats(cfg.Output, stats)
	return nil
}

func writeGameList(w io.Writer, games []*archive.GameRecord) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No archived games.")
		return
	}
	for _, rec := range games {
		result := rec.Game.Status
		if rec.Game.Winner != "" {
			result += ", " + rec.Game.Winner + " wins"
		}
		fmt.Fprintf(w, "%6d  %s  %-11s %3d plies  %s\n",
			rec.ID, rec.Finished.Format("2006-01-02 15:04"), rec.Label, rec.Game.PlyCount, result)
	}
}

func writeStats(w io.Writer, stats archive.Stats) {
	labels := make([]string, 0, len(stats))
	for label := range stats {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		s := stats[label]
		fmt.Fprintf(w, "%s: %d games, white %d, black %d, stalemate %d, unfinished %d\n",
			label, s.Games, s.WhiteWins, s.BlackWins, s.Stalemates, s.Unfinished)
	}
}

// writeRecord shows an archived game: its final board, result and moves.
func writeRecord(w io.Writer, rec *archive.GameRecord) error {
	board, _, err := engine.NewBoardFromFEN(rec.Game.FEN)
	if err != nil {
		return errors.Wrapf(err, "game %d", rec.ID)
	}

	fmt.Fprintf(w, "Game %d (%s), %s\n", rec.ID, rec.Label, rec.Finished.Format("2006-01-02 15:04:05"))
	if rec.Game.StartFEN != engine.InitialFEN {
		fmt.Fprintf(w, "Start: %s\n", rec.Game.StartFEN)
	}
	output.WriteBoard(w, board)
	fmt.Fprintf(w, "Result: %s", rec.Game.Status)
	if rec.Game.Winner != "" {
		fmt.Fprintf(w, ", %s wins", rec.Game.Winner)
	}
	fmt.Fprintln(w)

	ow := output.NewOutputWriter(w, *lineLength)
	ow.Write("Moves:")
	offset := 0
	if len(rec.Game.Moves) > 0 && rec.Game.Moves[0].Color == "black" {
		ow.Write("1...")
		offset = 1
	}
	for i, m := range rec.Game.Moves {
		if ply := i + offset; ply%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		}
		ow.Write(formatJSONMove(m))
	}
	ow.NewLine()
	return nil
}

func formatJSONMove(m output.JSONMove) string {
	s := fmt.Sprintf("%d,%d-%d,%d", m.From[0], m.From[1], m.To[0], m.To[1])
	if m.Promotion != "" {
		s += "=" + m.Promotion
	}
	return s
}
