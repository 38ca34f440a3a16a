// Package config provides configuration for the chess rules engine front ends.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Mode selects who plays the second side.
type Mode int

const (
	TwoPlayer  Mode = iota // Both sides are entered by hand
	VsComputer             // One side is played by the random-move selector
)

// String returns the name used in flags and config files.
func (m Mode) String() string {
	switch m {
	case TwoPlayer:
		return "two-player"
	case VsComputer:
		return "vs-computer"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name as written by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two-player", "2p", "human":
		return TwoPlayer, nil
	case "vs-computer", "computer", "cpu":
		return VsComputer, nil
	}
	return TwoPlayer, fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Game     *GameConfig
	Opponent *OpponentConfig
	Archive  *ArchiveConfig
	SelfPlay *SelfPlayConfig

	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// LogPath names the log file; empty means LogFile is used as is.
	LogPath string
	LogFile io.Writer
	Output  io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:      NewGameConfig(),
		Opponent:  NewOpponentConfig(),
		Archive:   NewArchiveConfig(),
		SelfPlay:  NewSelfPlayConfig(),
		Verbosity: 1,
		LogFile:   os.Stderr,
		Output:    os.Stdout,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	for _, section := range []interface{ Validate() error }{c.Game, c.Opponent, c.Archive, c.SelfPlay} {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}
