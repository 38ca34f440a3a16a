package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func newPlayConfig(out io.Writer, mode config.Mode) *config.Config {
	return config.NewConfigBuilder().
		WithMode(mode).
		WithComputer(chess.Black, time.Millisecond).
		WithSeed(3).
		WithOutput(out).
		WithLog(io.Discard).
		Build()
}

func newTestPlayer(t *testing.T, mode config.Mode) (*player, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	p, err := newPlayer(newPlayConfig(&buf, mode))
	if err != nil {
		t.Fatalf("newPlayer() error: %v", err)
	}
	t.Cleanup(func() { p.sess.Close() })
	return p, &buf
}

// output returns what p has written so far and clears it.
func (p *player) output(buf *bytes.Buffer) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := buf.String()
	buf.Reset()
	return s
}

func mustHandle(t *testing.T, p *player, line string) {
	t.Helper()
	quit, err := p.handle(line)
	if err != nil {
		t.Fatalf("handle(%q) error: %v", line, err)
	}
	if quit {
		t.Fatalf("handle(%q) quit", line)
	}
}

func TestRunPlay_FoolsMate(t *testing.T) {
	var buf bytes.Buffer
	cfg := newPlayConfig(&buf, config.TwoPlayer)
	cfg.Archive.Enabled = true
	cfg.Archive.InMemory = true

	in := strings.NewReader("f2 f3\n1,4 3,4\ng2-g4\nd8 h4\nquit\n")
	if err := runPlay(cfg, in); err != nil {
		t.Fatalf("runPlay() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"White plays 6,5-5,5", "Black plays 0,3-4,7", "Checkmate! Black wins."} {
		testutil.AssertContains(t, out, want)
	}
}

func TestRunPlay_EOF(t *testing.T) {
	var buf bytes.Buffer
	if err := runPlay(newPlayConfig(&buf, config.TwoPlayer), strings.NewReader("board\n")); err != nil {
		t.Fatalf("runPlay() error: %v", err)
	}
	testutil.AssertContains(t, buf.String(), "White to move")
}

func TestPlayer_RejectedInput(t *testing.T) {
	p, buf := newTestPlayer(t, config.TwoPlayer)

	tests := []struct {
		line string
		want string
	}{
		{"e2 e5", "Illegal move"},
		{"e7 e5", "Illegal move"},
		{"e3 e4", "Illegal move"},
		{"z9 e4", "Cannot read input"},
		{"e2", "Cannot read input"},
		{"to e4", "Illegal move"},
		{"mode chess960", "invalid configuration"},
	}
	for _, tt := range tests {
		mustHandle(t, p, tt.line)
		testutil.AssertContains(t, p.output(buf), tt.want)
	}
	testutil.AssertEqual(t, p.sess.State().Ply(), 0)
}

func TestPlayer_SelectAndMove(t *testing.T) {
	p, buf := newTestPlayer(t, config.TwoPlayer)

	mustHandle(t, p, "select g1")
	out := p.output(buf)
	testutil.AssertContains(t, out, "*.")

	mustHandle(t, p, "to f3")
	testutil.AssertContains(t, p.output(buf), "White plays 7,6-5,5")
	testutil.AssertEqual(t, p.sess.State().PieceAt(chess.Sq(5, 5)), chess.W(chess.Knight))
}

func TestPlayer_Commands(t *testing.T) {
	p, buf := newTestPlayer(t, config.TwoPlayer)

	mustHandle(t, p, "help")
	testutil.AssertContains(t, p.output(buf), "Commands:")

	mustHandle(t, p, "fen")
	testutil.AssertContains(t, p.output(buf), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w")

	mustHandle(t, p, "e2 e4")
	mustHandle(t, p, "json")
	testutil.AssertContains(t, p.output(buf), `"plyCount": 1`)

	mustHandle(t, p, "reset")
	testutil.AssertContains(t, p.output(buf), "New game")
	testutil.AssertEqual(t, p.sess.State().Ply(), 0)

	quit, err := p.handle("quit")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, quit)
}

func TestPlayer_ComputerReplies(t *testing.T) {
	p, buf := newTestPlayer(t, config.TwoPlayer)

	mustHandle(t, p, "mode vs-computer")
	testutil.AssertContains(t, p.output(buf), "Mode: vs-computer")
	mustHandle(t, p, "e2 e4")

	deadline := time.Now().Add(2 * time.Second)
	var out string
	for !strings.Contains(out, "Computer plays") {
		if time.Now().After(deadline) {
			t.Fatalf("no computer move after 2s; output:\n%s", out)
		}
		time.Sleep(5 * time.Millisecond)
		out += p.output(buf)
	}
	testutil.AssertEqual(t, p.sess.State().Turn(), chess.White)
}
