// chess plays chess in the terminal, runs random self-play batches and
// browses the archive of finished games.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	closeLog := setupLogFile(cfg)
	defer closeLog()

	command := flag.Arg(0)
	if command == "" {
		command = "play"
	}

	switch command {
	case "play":
		err = runPlay(cfg, os.Stdin)
	case "selfplay":
		err = runSelfPlay(cfg)
	case "history":
		err = runHistory(cfg, flag.Arg(1))
	case "config":
		err = cfg.Encode(cfg.Output)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		closeLog()
		log.Fatalf("%s: %v", command, err)
	}
}

// setupLogFile points the standard logger and cfg.LogFile at the configured
// log file. The returned function closes it.
func setupLogFile(cfg *config.Config) func() {
	log.SetPrefix("chess: ")
	if cfg.LogPath == "" {
		log.SetOutput(cfg.LogFile)
		return func() {}
	}

	file, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		log.Fatalf("opening log file %s: %v", cfg.LogPath, err)
	}
	cfg.LogFile = file
	log.SetOutput(file)
	return func() {
		log.SetOutput(os.Stderr)
		file.Close()
	}
}

// openArchive opens the configured archive, or returns nil if archiving is off.
func openArchive(cfg *config.Config) (*archive.Archive, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}
	return archive.OpenConfig(cfg.Archive)
}

// logf logs when cfg.Verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level {
		log.Printf(format, args...)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: chess [flags] [play | selfplay | history [id] | config]\n\n")
	fmt.Fprintf(out, "Commands:\n")
	fmt.Fprintf(out, "  play       play in the terminal (default)\n")
	fmt.Fprintf(out, "  selfplay   play random games against itself\n")
	fmt.Fprintf(out, "  history    list archived games, or show one by id\n")
	fmt.Fprintf(out, "  config     print the effective configuration as YAML\n\n")
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	io.WriteString(out, "\nEnvironment: CHESS_CONFIG, CHESS_MODE, CHESS_COMPUTER, CHESS_DELAY, CHESS_SEED,\n"+ //nolint:errcheck
		"CHESS_REQUIRE_PROMOTION, CHESS_FEN, CHESS_ARCHIVE, CHESS_LOG\n")
}
