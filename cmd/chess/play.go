// play.go - Interactive game at the terminal
package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const playHelp = `Commands:
  FROM TO [PIECE]   move, e.g. "6,4 4,4", "e2 e4" or "1,0 0,0 n"
  select SQ         pick up the piece on SQ and show where it can go
  to SQ [PIECE]     move the selected piece to SQ
  board             show the board
  fen               show the position as FEN
  json              show the game as JSON
  mode MODE         switch to two-player or vs-computer
  reset             start a new game
  help              show this text
  quit              leave
`

// player drives a session from lines of text. Output from the prompt and
// from the computer's moves is serialised through mu.
type player struct {
	cfg  *config.Config
	sess *session.Session

	mu  sync.Mutex
	out io.Writer
}

func newPlayer(cfg *config.Config, opts ...session.Option) (*player, error) {
	p := &player{cfg: cfg, out: cfg.Output}
	sess, err := session.New(cfg, append(opts, session.OnChange(p.onChange))...)
	if err != nil {
		return nil, err
	}
	p.sess = sess
	return p, nil
}

// runPlay plays one session reading commands from in until quit or EOF.
func runPlay(cfg *config.Config, in io.Reader) error {
	arch, err := openArchive(cfg)
	if err != nil {
		return err
	}
	var opts []session.Option
	if arch != nil {
		defer arch.Close()
		opts = append(opts, session.WithRecorder(arch))
	}

	p, err := newPlayer(cfg, opts...)
	if err != nil {
		return err
	}
	defer p.sess.Close()

	p.showState()
	scanner := bufio.NewScanner(in)
	for {
		p.printf("> ")
		if !scanner.Scan() {
			break
		}
		quit, err := p.handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	p.printf("\n")
	return scanner.Err()
}

// handle runs one command line. Rejected moves and bad input are reported
// and play continues; any other error ends the session.
func (p *player) handle(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return true, nil
	case "help", "?":
		p.printf("%s", playHelp)
	case "board":
		p.showState()
	case "fen":
		p.printf("%s\n", p.sess.State().FEN())
	case "json":
		p.mu.Lock()
		err = output.WriteJSON(p.out, p.sess.State())
		p.mu.Unlock()
	case "mode":
		err = p.setMode(arg)
	case "reset":
		_, err = p.sess.Reset()
	case "select":
		err = p.selectSquare(arg)
	case "to":
		err = p.moveSelected(arg)
	default:
		err = p.move(line)
	}
	return false, p.report(err)
}

// report prints recoverable errors and returns the rest.
func (p *player) report(err error) error {
	var parseErr *errors.ParseError
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &parseErr):
		p.printf("Cannot read input: %v\n", err)
		return nil
	case errors.IsMoveRejection(err):
		p.sess.ClearSelection()
		p.printf("Illegal move: %v\n", err)
		return nil
	case stderrors.Is(err, errors.ErrInvalidConfig):
		p.printf("%v\n", err)
		return nil
	}
	return err
}

func (p *player) move(line string) error {
	in, err := parseMove(line)
	if err != nil {
		return err
	}
	_, err = p.sess.Move(in.From, in.To, in.Promotion)
	return err
}

func (p *player) selectSquare(arg string) error {
	sq, err := parseSquare(arg)
	if err != nil {
		return err
	}
	moves, err := p.sess.Select(sq)
	if err != nil {
		return err
	}

	marks := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		marks = append(marks, m.To)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	output.WriteBoard(p.out, p.sess.State().Board(), marks...)
	if len(moves) == 0 {
		fmt.Fprintf(p.out, "%v on %v has no legal moves\n", p.sess.State().PieceAt(sq), sq)
	}
	return nil
}

func (p *player) moveSelected(arg string) error {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return &errors.ParseError{Err: errInput, Input: arg, Expected: "destination square"}
	}
	to, err := parseSquare(fields[0])
	if err != nil {
		return err
	}
	promotion := chess.NoKind
	if len(fields) == 2 {
		if promotion, err = parsePromotion(fields[1]); err != nil {
			return err
		}
	}
	_, err = p.sess.MoveSelected(to, promotion)
	return err
}

func (p *player) setMode(arg string) error {
	mode, err := config.ParseMode(arg)
	if err != nil {
		return err
	}
	p.sess.SetMode(mode)
	p.printf("Mode: %v\n", mode)
	return nil
}

// onChange prints every move and reset, including the computer's moves
// which arrive from a timer goroutine.
func (p *player) onChange(ev session.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case ev.Move == nil:
		fmt.Fprintln(p.out, "New game")
	case ev.Automated:
		fmt.Fprintf(p.out, "Computer plays %v\n", ev.Move)
	default:
		fmt.Fprintf(p.out, "%v plays %v\n", ev.Move.Piece.Colour, ev.Move)
	}
	p.writeStateLocked(ev.State.Board(), output.StatusLine(ev.State))
}

func (p *player) showState() {
	state := p.sess.State()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeStateLocked(state.Board(), output.StatusLine(state))
}

func (p *player) writeStateLocked(board *chess.Board, status string) {
	output.WriteBoard(p.out, board)
	fmt.Fprintln(p.out, status)
}

func (p *player) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}
