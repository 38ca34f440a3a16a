// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Config file
	configFile = flag.String("config", getenv("CHESS_CONFIG", ""), "YAML config file")

	// Game options
	gameMode         = flag.String("mode", getenv("CHESS_MODE", ""), "Game mode: two-player or vs-computer")
	computerColour   = flag.String("computer", getenv("CHESS_COMPUTER", ""), "Side played by the computer: white or black")
	computerDelay    = flag.Duration("delay", getenvDuration("CHESS_DELAY", 0), "Delay before the computer moves (default 500ms)")
	seed             = flag.Int64("seed", getenvInt64("CHESS_SEED", 0), "Seed for the computer's moves (0 = random)")
	requirePromotion = flag.Bool("require-promotion", getenb("CHESS_REQUIRE_PROMOTION", false), "Reject promotions that do not name a piece")
	startFEN         = flag.String("fen", getenv("CHESS_FEN", ""), "Starting position in FEN")

	// Archive
	archiveDir    = flag.String("archive", getenv("CHESS_ARCHIVE", ""), "Archive finished games in this directory")
	archiveMemory = flag.Bool("archive-mem", false, "Archive finished games in memory for this run only")

	// Self-play
	numGames = flag.Int("games", 0, "Number of self-play games (default 10)")
	workers  = flag.Int("workers", -1, "Concurrent self-play games (0 = one per CPU)")
	plyLimit = flag.Int("plylimit", 0, "Abandon self-play games after this many plies (default 300)")

	// History
	historyLimit = flag.Int("n", 20, "Number of archived games listed by history")

	// Output
	jsonOutput = flag.Bool("J", false, "Output games in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")
	logFile    = flag.String("l", getenv("CHESS_LOG", ""), "Write diagnostics to log file")
	verbosity  = flag.Int("verbose", -1, "Verbosity: 0 silent, 1 results, 2 running commentary")
	quiet      = flag.Bool("s", false, "Silent mode (same as -verbose 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}

// loadConfig builds the configuration from defaults, the config file and
// the command line, in increasing order of precedence.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyFlags overrides cfg with every flag (or environment variable) that
// was given a value.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyArchiveFlags(cfg)
	applySelfPlayFlags(cfg)

	if *logFile != "" {
		cfg.LogPath = *logFile
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

func applyGameFlags(cfg *config.Config) error {
	if *gameMode != "" {
		mode, err := config.ParseMode(*gameMode)
		if err != nil {
			return err
		}
		cfg.Game.Mode = mode
	}
	if *computerColour != "" {
		colour, ok := chess.ParseColour(*computerColour)
		if !ok {
			return fmt.Errorf("invalid computer colour %q; valid: white, black", *computerColour)
		}
		cfg.Opponent.Colour = colour
	}
	if *computerDelay > 0 {
		cfg.Opponent.Delay = *computerDelay
	}
	if *seed != 0 {
		cfg.Opponent.Seed = *seed
	}
	if *requirePromotion {
		cfg.Game.RequirePromotionChoice = true
	}
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}
	return nil
}

func applyArchiveFlags(cfg *config.Config) {
	if *archiveDir != "" {
		cfg.Archive.Enabled = true
		cfg.Archive.Dir = *archiveDir
		cfg.Archive.InMemory = false
	}
	if *archiveMemory {
		cfg.Archive.Enabled = true
		cfg.Archive.InMemory = true
	}
}

func applySelfPlayFlags(cfg *config.Config) {
	if *numGames > 0 {
		cfg.SelfPlay.Games = *numGames
	}
	if *workers >= 0 {
		cfg.SelfPlay.Workers = *workers
	}
	if *plyLimit > 0 {
		cfg.SelfPlay.PlyLimit = *plyLimit
	}
}
