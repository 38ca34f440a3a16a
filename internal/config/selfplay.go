package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SelfPlayConfig holds settings for random-vs-random batch play.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played concurrently; 0 means one per CPU
	Workers int

	// PlyLimit stops a game that has neither side mated after this many plies
	PlyLimit int
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:    10,
		PlyLimit: 300,
	}
}

// Validate checks the self-play settings.
func (c *SelfPlayConfig) Validate() error {
	switch {
	case c.Games < 1:
		return fmt.Errorf("self-play games %d: %w", c.Games, errors.ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("self-play workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	case c.PlyLimit < 1:
		return fmt.Errorf("self-play ply limit %d: %w", c.PlyLimit, errors.ErrInvalidConfig)
	}
	return nil
}
