package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ArchiveConfig holds settings for the finished-game archive.
type ArchiveConfig struct {
	// Enabled turns recording of finished games on
	Enabled bool

	// Dir is the archive directory
	Dir string

	// InMemory keeps the archive in memory; Dir is ignored
	InMemory bool
}

// NewArchiveConfig creates an ArchiveConfig with default values.
func NewArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{Dir: "chess-archive"}
}

// Validate checks that an enabled on-disk archive has a directory.
func (c *ArchiveConfig) Validate() error {
	if c.Enabled && !c.InMemory && c.Dir == "" {
		return fmt.Errorf("archive enabled without a directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
