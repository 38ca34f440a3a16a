package main

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func archivedFoolsMate(t *testing.T) (*archive.Archive, uint64) {
	t.Helper()
	arch, err := archive.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { arch.Close() })

	state := engine.Reset()
	state = testutil.MustPropose(t, state, chess.Sq(6, 5), chess.Sq(5, 5))
	state = testutil.MustPropose(t, state, chess.Sq(1, 4), chess.Sq(3, 4))
	state = testutil.MustPropose(t, state, chess.Sq(6, 6), chess.Sq(4, 6))
	state = testutil.MustPropose(t, state, chess.Sq(0, 3), chess.Sq(4, 7))

	id, err := arch.Record(state, config.TwoPlayer.String())
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	return arch, id
}

func TestWriteGameList(t *testing.T) {
	arch, id := archivedFoolsMate(t)
	games, err := arch.ListGames(10)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	writeGameList(&buf, games)
	out := buf.String()
	testutil.AssertContains(t, out, "two-player")
	testutil.AssertContains(t, out, "4 plies")
	testutil.AssertContains(t, out, "checkmate, black wins")
	testutil.AssertEqual(t, games[0].ID, id)

	buf.Reset()
	writeGameList(&buf, nil)
	testutil.AssertContains(t, buf.String(), "No archived games.")
}

func TestWriteStats(t *testing.T) {
	arch, _ := archivedFoolsMate(t)
	stats, err := arch.Stats()
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	writeStats(&buf, stats)
	testutil.AssertContains(t, buf.String(), "two-player: 1 games, white 0, black 1")
}

func TestWriteRecord(t *testing.T) {
	arch, id := archivedFoolsMate(t)
	rec, err := arch.LoadGame(id)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, writeRecord(&buf, rec))
	out := buf.String()
	testutil.AssertContains(t, out, "Result: checkmate, black wins")
	testutil.AssertContains(t, out, "1. 6,5-5,5 1,4-3,4 2. 6,6-4,6 0,3-4,7")
	if bytes.Contains(buf.Bytes(), []byte("Start:")) {
		t.Errorf("standard start position should not be printed:\n%s", out)
	}
}

func TestWriteRecord_BlackMovesFirst(t *testing.T) {
	arch, err := archive.OpenInMemory()
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { arch.Close() })

	const start = "4k3/8/8/8/8/8/8/4K3 b"
	state := testutil.MustGame(t, start)
	state = testutil.MustPropose(t, state, chess.Sq(0, 4), chess.Sq(0, 3))
	state = testutil.MustPropose(t, state, chess.Sq(7, 4), chess.Sq(7, 3))
	id, err := arch.Record(state, config.TwoPlayer.String())
	testutil.AssertNoError(t, err)
	rec, err := arch.LoadGame(id)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, writeRecord(&buf, rec))
	out := buf.String()
	testutil.AssertContains(t, out, "Start: 4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertContains(t, out, "Moves: 1... 0,4-0,3 2. 7,4-7,3")
}

func TestRunHistory_NoArchive(t *testing.T) {
	err := runHistory(config.NewConfig(), "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestRunHistory_UnknownGame(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithInMemoryArchive().WithOutput(&buf).Build()

	testutil.AssertErrorIs(t, runHistory(cfg, "7"), errors.ErrGameNotFound)
	testutil.AssertErrorIs(t, runHistory(cfg, "seven"), errors.ErrGameNotFound)

	testutil.AssertNoError(t, runHistory(cfg, ""))
	testutil.AssertContains(t, buf.String(), "No archived games.")
}
