package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for a single interactive game.
type GameConfig struct {
	// Mode selects two-player or vs-computer play
	Mode Mode

	// RequirePromotionChoice rejects promoting moves that name no piece
	// instead of promoting to a queen
	RequirePromotionChoice bool

	// StartFEN is the starting position; empty means the standard one
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{Mode: TwoPlayer}
}

// EngineOptions returns the options passed to engine.Reset and engine.NewGameFromFEN.
func (c *GameConfig) EngineOptions() engine.Options {
	return engine.Options{RequirePromotionChoice: c.RequirePromotionChoice}
}

// NewGame starts a game as configured.
func (c *GameConfig) NewGame() (*engine.GameState, error) {
	if c.StartFEN == "" {
		return engine.Reset(c.EngineOptions()), nil
	}
	return engine.NewGameFromFEN(c.StartFEN, c.EngineOptions())
}

// Validate checks the mode and, if set, the starting position.
func (c *GameConfig) Validate() error {
	if c.Mode != TwoPlayer && c.Mode != VsComputer {
		return fmt.Errorf("game mode %v: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := c.NewGame(); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
