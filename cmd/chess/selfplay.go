// selfplay.go - Batches of random games
package main

import (
	"fmt"
	"log"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runSelfPlay plays cfg.SelfPlay.Games random games, writes each finished
// game to the output and archives it when archiving is on.
func runSelfPlay(cfg *config.Config) error {
	arch, err := openArchive(cfg)
	if err != nil {
		return err
	}
	if arch != nil {
		defer arch.Close()
	}

	var writer output.GameWriter
	if *jsonOutput {
		writer = output.NewJSONWriter(cfg.Output)
	} else {
		writer = output.NewTextWriter(cfg.Output, *lineLength)
	}

	summary := worker.RunSelfPlay(cfg.SelfPlay, cfg.Game, cfg.Opponent.Seed, func(r worker.ProcessResult) {
		handleSelfPlayResult(cfg, r, writer, arch)
	})
	if err := writer.Close(); err != nil {
		return err
	}

	logf(cfg, 1, "%d games: white %d, black %d, stalemate %d, unfinished %d, errors %d, duplicates %d, %.1f plies on average",
		summary.Games, summary.WhiteWins, summary.BlackWins, summary.Stalemates,
		summary.Unfinished, summary.Errors, summary.Duplicates, summary.AveragePlies())
	if summary.Errors > 0 {
		return fmt.Errorf("%d of %d games failed", summary.Errors, summary.Games)
	}
	return nil
}

// handleSelfPlayResult runs on the collecting goroutine only, so writer
// needs no locking.
func handleSelfPlayResult(cfg *config.Config, r worker.ProcessResult, writer output.GameWriter, arch *archive.Archive) {
	if r.Error != nil {
		log.Printf("game %d (seed %d): %v", r.Index+1, r.Seed, r.Error)
		return
	}

	switch {
	case r.Duplicate:
		logf(cfg, 2, "game %d (seed %d): repeats an earlier game", r.Index+1, r.Seed)
	case r.Truncated:
		logf(cfg, 2, "game %d (seed %d): stopped after %d plies", r.Index+1, r.Seed, r.State.Ply())
	default:
		logf(cfg, 2, "game %d (seed %d): %s after %d plies", r.Index+1, r.Seed, r.State.Status(), r.State.Ply())
	}

	if err := writer.WriteGame(r.State); err != nil {
		log.Printf("game %d: writing: %v", r.Index+1, err)
	}
	if arch != nil {
		if _, err := arch.Record(r.State, archive.SelfPlayLabel); err != nil {
			log.Printf("game %d: archiving: %v", r.Index+1, err)
		}
	}
}
