package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultDelay is the pause before the computer answers a human move.
const DefaultDelay = 500 * time.Millisecond

// OpponentConfig holds settings for the computer opponent.
type OpponentConfig struct {
	// Colour is the side the computer plays in vs-computer mode
	Colour chess.Colour

	// Delay is how long the computer waits before moving
	Delay time.Duration

	// Seed seeds the move selector; 0 picks a random seed
	Seed int64
}

// NewOpponentConfig creates an OpponentConfig with default values.
func NewOpponentConfig() *OpponentConfig {
	return &OpponentConfig{
		Colour: chess.Black,
		Delay:  DefaultDelay,
	}
}

// Validate checks the opponent settings.
func (c *OpponentConfig) Validate() error {
	if c.Colour != chess.White && c.Colour != chess.Black {
		return fmt.Errorf("computer colour %v: %w", c.Colour, errors.ErrInvalidConfig)
	}
	if c.Delay < 0 {
		return fmt.Errorf("negative delay %v: %w", c.Delay, errors.ErrInvalidConfig)
	}
	return nil
}
