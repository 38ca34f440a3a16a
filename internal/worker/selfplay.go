package worker

import (
	"math/rand"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// PlayGame plays item to checkmate, stalemate or its ply limit with both
// sides choosing uniformly among their legal moves.
func PlayGame(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Seed: item.Seed}

	var state *engine.GameState
	if item.StartFEN == "" {
		state = engine.Reset(item.Options)
	} else {
		var err error
		if state, err = engine.NewGameFromFEN(item.StartFEN, item.Options); err != nil {
			result.Error = err
			return result
		}
	}

	rng := engine.NewRand(item.Seed)
	for !state.IsOver() {
		if item.PlyLimit > 0 && state.Ply() >= item.PlyLimit {
			result.Truncated = true
			break
		}
		move, err := engine.PickRandomLegalMove(state.Board(), state.Turn(), rng)
		if err != nil {
			result.Error = err
			return result
		}
		if move == nil {
			break
		}
		next, err := engine.ApplyMove(state, *move)
		if err != nil {
			result.Error = err
			return result
		}
		state = next
	}

	result.State = state
	return result
}

// Summary tallies the outcomes of a batch of games.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Stalemates int
	Unfinished int
	Errors     int
	Duplicates int
	TotalPlies int
}

// Add counts one result.
func (s *Summary) Add(r ProcessResult) {
	s.Games++
	if r.Error != nil || r.State == nil {
		s.Errors++
		return
	}
	s.TotalPlies += r.State.Ply()
	if r.Duplicate {
		s.Duplicates++
	}

	switch {
	case r.Truncated:
		s.Unfinished++
	case r.State.Status() == chess.Stalemate:
		s.Stalemates++
	case r.State.Status() == chess.Checkmate:
		if winner, _ := r.State.Winner(); winner == chess.White {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	}
}

// AveragePlies returns the mean game length of the games without errors.
func (s Summary) AveragePlies() float64 {
	played := s.Games - s.Errors
	if played == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(played)
}

// bufferSize keeps a couple of games queued per worker, so finished games
// wait in memory only until the collector reads them.
func bufferSize(games, workers int) int {
	size := 2 * workers
	if size > games {
		size = games
	}
	if size < 1 {
		size = 1
	}
	return size
}

// RunSelfPlay plays cfg.Games games on cfg.Workers goroutines. Game i is
// seeded with seed+i, so a non-zero seed makes the batch reproducible; a
// zero seed picks a random base. A game that repeats the moves of an
// earlier one is flagged as a duplicate. handle, if not nil, is called for
// every result in completion order.
func RunSelfPlay(cfg *config.SelfPlayConfig, game *config.GameConfig, seed int64, handle func(ProcessResult)) Summary {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if seed == 0 {
		seed = rand.Int63()
	}

	pool := NewPoolWithOptions(PlayGame, WithWorkers(workers), WithBufferSize(bufferSize(cfg.Games, workers)))
	pool.Start()

	go func() {
		for i := 0; i < cfg.Games; i++ {
			pool.Submit(WorkItem{
				Index:    i,
				Seed:     seed + int64(i),
				StartFEN: game.StartFEN,
				PlyLimit: cfg.PlyLimit,
				Options:  game.EngineOptions(),
			})
		}
		pool.Close()
	}()

	var summary Summary
	seen := hashing.NewDuplicateDetector(true)
	for r := range pool.Results() {
		if r.Error == nil {
			r.Duplicate = seen.CheckAndAdd(r.State)
		}
		summary.Add(r)
		if handle != nil {
			handle(r)
		}
	}
	return summary
}
