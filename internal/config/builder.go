package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the game mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Game.Mode = mode
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// RequirePromotionChoice controls whether promotions must name a piece.
func (b *ConfigBuilder) RequirePromotionChoice(required bool) *ConfigBuilder {
	b.cfg.Game.RequirePromotionChoice = required
	return b
}

// WithComputer sets the side played by the computer and its delay.
func (b *ConfigBuilder) WithComputer(colour chess.Colour, delay time.Duration) *ConfigBuilder {
	b.cfg.Opponent.Colour = colour
	b.cfg.Opponent.Delay = delay
	return b
}

// WithSeed seeds the move selector.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Opponent.Seed = seed
	return b
}

// WithArchive enables the on-disk archive in dir.
func (b *ConfigBuilder) WithArchive(dir string) *ConfigBuilder {
	b.cfg.Archive.Enabled = true
	b.cfg.Archive.Dir = dir
	b.cfg.Archive.InMemory = false
	return b
}

// WithInMemoryArchive enables an archive that lives for the process only.
func (b *ConfigBuilder) WithInMemoryArchive() *ConfigBuilder {
	b.cfg.Archive.Enabled = true
	b.cfg.Archive.InMemory = true
	return b
}

// WithSelfPlay sets the self-play batch size, concurrency and ply limit.
func (b *ConfigBuilder) WithSelfPlay(games, workers, plyLimit int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	b.cfg.SelfPlay.PlyLimit = plyLimit
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
