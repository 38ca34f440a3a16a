package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// fileConfig mirrors Config in the form it is written in YAML. Pointer
// fields tell an explicit false or zero apart from a missing key.
type fileConfig struct {
	Game struct {
		Mode                   string `yaml:"mode,omitempty"`
		RequirePromotionChoice *bool  `yaml:"require_promotion_choice,omitempty"`
		StartFEN               string `yaml:"start_fen,omitempty"`
	} `yaml:"game"`
	Opponent struct {
		Colour string `yaml:"colour,omitempty"`
		Delay  string `yaml:"delay,omitempty"`
		Seed   *int64 `yaml:"seed,omitempty"`
	} `yaml:"opponent"`
	Archive struct {
		Enabled  *bool  `yaml:"enabled,omitempty"`
		Dir      string `yaml:"dir,omitempty"`
		InMemory *bool  `yaml:"in_memory,omitempty"`
	} `yaml:"archive"`
	SelfPlay struct {
		Games    *int `yaml:"games,omitempty"`
		Workers  *int `yaml:"workers,omitempty"`
		PlyLimit *int `yaml:"ply_limit,omitempty"`
	} `yaml:"selfplay"`
	Verbosity *int   `yaml:"verbosity,omitempty"`
	LogFile   string `yaml:"log_file,omitempty"`
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config file")
	}
	defer f.Close()

	cfg := NewConfig()
	if err := cfg.Decode(f); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// Decode reads YAML from r and overrides the fields it sets.
func (c *Config) Decode(r io.Reader) error {
	var fc fileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return c.apply(&fc)
}

func (c *Config) apply(fc *fileConfig) error {
	if fc.Game.Mode != "" {
		mode, err := ParseMode(fc.Game.Mode)
		if err != nil {
			return err
		}
		c.Game.Mode = mode
	}
	if fc.Game.RequirePromotionChoice != nil {
		c.Game.RequirePromotionChoice = *fc.Game.RequirePromotionChoice
	}
	if fc.Game.StartFEN != "" {
		c.Game.StartFEN = fc.Game.StartFEN
	}

	if fc.Opponent.Colour != "" {
		colour, ok := chess.ParseColour(fc.Opponent.Colour)
		if !ok {
			return fmt.Errorf("unknown colour %q: %w", fc.Opponent.Colour, errors.ErrInvalidConfig)
		}
		c.Opponent.Colour = colour
	}
	if fc.Opponent.Delay != "" {
		delay, err := time.ParseDuration(fc.Opponent.Delay)
		if err != nil {
			return fmt.Errorf("opponent delay: %v: %w", err, errors.ErrInvalidConfig)
		}
		c.Opponent.Delay = delay
	}
	if fc.Opponent.Seed != nil {
		c.Opponent.Seed = *fc.Opponent.Seed
	}

	if fc.Archive.Enabled != nil {
		c.Archive.Enabled = *fc.Archive.Enabled
	}
	if fc.Archive.Dir != "" {
		c.Archive.Dir = fc.Archive.Dir
	}
	if fc.Archive.InMemory != nil {
		c.Archive.InMemory = *fc.Archive.InMemory
	}

	if fc.SelfPlay.Games != nil {
		c.SelfPlay.Games = *fc.SelfPlay.Games
	}
	if fc.SelfPlay.Workers != nil {
		c.SelfPlay.Workers = *fc.SelfPlay.Workers
	}
	if fc.SelfPlay.PlyLimit != nil {
		c.SelfPlay.PlyLimit = *fc.SelfPlay.PlyLimit
	}

	if fc.Verbosity != nil {
		c.Verbosity = *fc.Verbosity
	}
	if fc.LogFile != "" {
		c.LogPath = fc.LogFile
	}
	return nil
}

// Encode writes the configuration as YAML in the form Decode reads.
func (c *Config) Encode(w io.Writer) error {
	var fc fileConfig
	fc.Game.Mode = c.Game.Mode.String()
	fc.Game.RequirePromotionChoice = &c.Game.RequirePromotionChoice
	fc.Game.StartFEN = c.Game.StartFEN
	fc.Opponent.Colour = c.Opponent.Colour.String()
	fc.Opponent.Delay = c.Opponent.Delay.String()
	fc.Opponent.Seed = &c.Opponent.Seed
	fc.Archive.Enabled = &c.Archive.Enabled
	fc.Archive.Dir = c.Archive.Dir
	fc.Archive.InMemory = &c.Archive.InMemory
	fc.SelfPlay.Games = &c.SelfPlay.Games
	fc.SelfPlay.Workers = &c.SelfPlay.Workers
	fc.SelfPlay.PlyLimit = &c.SelfPlay.PlyLimit
	fc.Verbosity = &c.Verbosity
	fc.LogFile = c.LogPath

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&fc); err != nil {
		return err
	}
	return enc.Close()
}
