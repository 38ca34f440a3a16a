// Package archive stores finished games in a BadgerDB database.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Storage keys
const (
	keyGamePrefix = "game/"
	keySequence   = "seq/game"
	keyStats      = "stats"
)

// SelfPlayLabel labels games played by the self-play runner.
const SelfPlayLabel = "self-play"

// GameRecord is one archived game.
type GameRecord struct {
	ID       uint64           `json:"id"`
	Label    string           `json:"label"` // game mode, or SelfPlayLabel
	Finished time.Time        `json:"finished"`
	Game     *output.JSONGame `json:"game"`
}

// ModeStats counts archived results for one label.
type ModeStats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Stalemates int `json:"stalemates"`
	Unfinished int `json:"unfinished"`
	TotalPlies int `json:"total_plies"`
}

// Stats maps a label to its counts.
type Stats map[string]*ModeStats

// Archive wraps BadgerDB for finished-game storage.
type Archive struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens (creating if needed) the archive in dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens an archive that is discarded on Close.
func OpenInMemory() (*Archive, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

// OpenConfig opens the archive described by cfg.
func OpenConfig(cfg *config.ArchiveConfig) (*Archive, error) {
	if cfg.InMemory {
		return OpenInMemory()
	}
	return Open(cfg.Dir)
}

func open(opts badger.Options) (*Archive, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening archive")
	}
	seq, err := db.GetSequence([]byte(keySequence), 16)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "opening archive sequence")
	}
	return &Archive{db: db, seq: seq}, nil
}

// Close releases the ID sequence and closes the database.
func (a *Archive) Close() error {
	if a.seq != nil {
		if err := a.seq.Release(); err != nil {
			a.db.Close()
			return err
		}
	}
	return a.db.Close()
}

// RecordGame archives a game finished in an interactive session.
func (a *Archive) RecordGame(state *engine.GameState, mode config.Mode) error {
	_, err := a.Record(state, mode.String())
	return err
}

// Record archives state under label and returns its ID.
func (a *Archive) Record(state *engine.GameState, label string) (uint64, error) {
	return a.SaveGame(&GameRecord{
		Label:    label,
		Finished: time.Now().UTC(),
		Game:     output.GameToJSON(state),
	})
}

// SaveGame assigns rec an ID, stores it and updates the statistics in the
// same transaction.
func (a *Archive) SaveGame(rec *GameRecord) (uint64, error) {
	next, err := a.seq.Next()
	if err != nil {
		return 0, errors.Wrap(err, "allocating game id")
	}
	rec.ID = next + 1

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, err
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(rec)

		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set(gameKey(rec.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
	if err != nil {
		return 0, errors.Wrapf(err, "saving game %d", rec.ID)
	}
	return rec.ID, nil
}

// LoadGame returns the game with the given ID.
func (a *Archive) LoadGame(id uint64) (*GameRecord, error) {
	var rec GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "game %d", id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListGames returns up to limit games, most recent first. A limit of 0
// returns every game.
func (a *Archive) ListGames(limit int) ([]*GameRecord, error) {
	var records []*GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(keyGamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts from the largest key with the prefix.
		for it.Seek(append([]byte(keyGamePrefix), 0xff)); it.Valid(); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			rec := &GameRecord{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// Stats returns the per-label result counts.
func (a *Archive) Stats() (Stats, error) {
	var stats Stats
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}

func loadStats(txn *badger.Txn) (Stats, error) {
	stats := make(Stats)
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &stats)
	})
	return stats, err
}

func (s Stats) add(rec *GameRecord) {
	ms := s[rec.Label]
	if ms == nil {
		ms = &ModeStats{}
		s[rec.Label] = ms
	}
	ms.Games++
	ms.TotalPlies += rec.Game.PlyCount

	switch rec.Game.Status {
	case chess.Checkmate.String():
		if rec.Game.Winner == "white" {
			ms.WhiteWins++
		} else {
			ms.BlackWins++
		}
	case chess.Stalemate.String():
		ms.Stalemates++
	default:
		ms.Unfinished++
	}
}

// gameKey zero-pads the ID so that keys sort in ID order.
func gameKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyGamePrefix, id))
}
