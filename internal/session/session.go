// Package session drives one interactive game on behalf of a front end.
//
// A Session owns the current engine.GameState, the piece selection, the game
// mode and the delayed computer reply in vs-computer mode. All methods are
// safe for concurrent use; change notifications are delivered outside the
// session lock, so a callback may call back into the session.
package session

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Event describes a change of the current game.
type Event struct {
	State     *engine.GameState
	Move      *chess.Move // nil when the game was reset
	Automated bool        // the move was played by the computer
}

// Recorder receives every game that ends in checkmate or stalemate.
type Recorder interface {
	RecordGame(state *engine.GameState, mode config.Mode) error
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder stores finished games in r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// OnChange registers fn to be called after every move and reset.
func OnChange(fn func(Event)) Option {
	return func(s *Session) { s.onChange = fn }
}

// WithRand replaces the computer's random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// Session is a single game in progress.
type Session struct {
	mu       sync.Mutex
	cfg      *config.Config
	mode     config.Mode
	state    *engine.GameState
	selected *chess.Square
	timer    *time.Timer
	rng      *rand.Rand
	closed   bool

	recorder Recorder
	onChange func(Event)
	logger   *log.Logger
}

// New starts a session with a fresh game as described by cfg. In
// vs-computer mode with the computer playing White, its first move is
// scheduled right away.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	state, err := cfg.Game.NewGame()
	if err != nil {
		return nil, err
	}

	logOut := cfg.LogFile
	if logOut == nil {
		logOut = io.Discard
	}
	s := &Session{
		cfg:    cfg,
		mode:   cfg.Game.Mode,
		state:  state,
		logger: log.New(logOut, "session: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = engine.NewRand(cfg.Opponent.Seed)
	}

	s.mu.Lock()
	s.scheduleLocked()
	s.mu.Unlock()
	return s, nil
}

// State returns the current game state.
func (s *Session) State() *engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode returns the current game mode.
func (s *Session) Mode() config.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Selected returns the square of the selected piece, if any.
func (s *Session) Selected() (chess.Square, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return chess.Square{}, false
	}
	return *s.selected, true
}

// ClearSelection drops the selected piece.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Select picks up the piece on sq and returns its legal moves, which a front
// end highlights as destinations. Only pieces of a human side to move can be
// selected; otherwise the selection is cleared and a *errors.MoveError is
// returned.
func (s *Session) Select(sq chess.Square) ([]chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	piece := s.state.PieceAt(sq)
	moveErr := &errors.MoveError{From: sq.String(), Ply: s.state.Ply() + 1}
	switch {
	case !sq.Valid():
		moveErr.Err = errors.ErrInvalidSquare
		return nil, moveErr
	case s.state.IsOver():
		moveErr.Err = errors.ErrGameOver
		return nil, moveErr
	case piece.IsEmpty():
		moveErr.Err = errors.ErrEmptySource
		return nil, moveErr
	case piece.Colour != s.state.Turn() || s.computerToMoveLocked():
		moveErr.Err = errors.ErrWrongTurn
		moveErr.Piece = piece.String()
		return nil, moveErr
	}

	moves, err := engine.LegalMovesFrom(s.state.Board(), sq)
	if err != nil {
		return nil, err
	}
	s.selected = &sq
	return moves, nil
}

// Move plays a human move. promotion may be chess.NoKind; see
// engine.ProposeMove. A rejected move clears the selection and leaves the
// game unchanged. In vs-computer mode a legal move schedules the computer's
// reply.
func (s *Session) Move(from, to chess.Square, promotion chess.Kind) (*engine.GameState, error) {
	s.mu.Lock()
	s.selected = nil

	if s.computerToMoveLocked() {
		state := s.state
		s.mu.Unlock()
		return nil, &errors.MoveError{
			Err:   errors.ErrWrongTurn,
			From:  from.String(),
			To:    to.String(),
			Piece: state.PieceAt(from).String(),
			Ply:   state.Ply() + 1,
		}
	}

	next, err := engine.ProposeMove(s.state, from, to, promotion)
	if err != nil {
		s.mu.Unlock()
		s.logf(2, "rejected %v-%v: %v", from, to, err)
		return nil, err
	}

	ev := s.commitLocked(next, false)
	s.scheduleLocked()
	s.mu.Unlock()

	s.notify(ev)
	return next, nil
}

// MoveSelected moves the selected piece to to.
func (s *Session) MoveSelected(to chess.Square, promotion chess.Kind) (*engine.GameState, error) {
	from, ok := s.Selected()
	if !ok {
		return nil, fmt.Errorf("no piece selected: %w", errors.ErrEmptySource)
	}
	return s.Move(from, to, promotion)
}

// SetMode switches between two-player and vs-computer play without
// restarting the game. A pending computer move is cancelled; if the computer
// is to move in the new mode, it is scheduled again.
func (s *Session) SetMode(mode config.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.mode = mode
	s.selected = nil
	s.scheduleLocked()
}

// Reset abandons the current game and starts a new one. A pending computer
// move belonging to the old game never lands on the new one.
func (s *Session) Reset() (*engine.GameState, error) {
	s.mu.Lock()
	state, err := s.cfg.Game.NewGame()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.stopTimerLocked()
	s.state = state
	s.selected = nil
	s.scheduleLocked()
	s.mu.Unlock()

	s.logf(2, "new game %d", state.Generation())
	s.notify(Event{State: state})
	return state, nil
}

// Close cancels any pending computer move. The session must not be used
// afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.closed = true
	return nil
}

// computerToMoveLocked reports whether the side to move is the computer's.
func (s *Session) computerToMoveLocked() bool {
	return s.mode == config.VsComputer && s.state.Turn() == s.cfg.Opponent.Colour
}

// scheduleLocked arms the computer's reply if it is the computer's turn.
// The callback carries the generation and ply it was scheduled for and does
// nothing if the game has moved on since.
func (s *Session) scheduleLocked() {
	if s.closed || !s.computerToMoveLocked() || s.state.IsOver() {
		return
	}
	gen, ply := s.state.Generation(), s.state.Ply()
	s.timer = time.AfterFunc(s.cfg.Opponent.Delay, func() {
		s.computerMove(gen, ply)
	})
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) computerMove(gen uint64, ply int) {
	s.mu.Lock()
	if s.closed || s.state.Generation() != gen || s.state.Ply() != ply || !s.computerToMoveLocked() {
		s.mu.Unlock()
		return
	}
	s.timer = nil

	move, err := engine.PickRandomLegalMove(s.state.Board(), s.state.Turn(), s.rng)
	if err != nil || move == nil {
		s.mu.Unlock()
		if err != nil {
			s.logf(1, "computer move: %v", err)
		}
		return
	}

	next, err := engine.ApplyMove(s.state, *move)
	if err != nil {
		s.mu.Unlock()
		s.logf(1, "computer move %v: %v", move, err)
		return
	}
	ev := s.commitLocked(next, true)
	s.mu.Unlock()

	s.notify(ev)
}

// commitLocked makes next the current state and records it if it ends the game.
func (s *Session) commitLocked(next *engine.GameState, automated bool) Event {
	s.state = next
	moves := next.Moves()
	last := moves[len(moves)-1]
	s.logf(2, "ply %d: %v (%s)", next.Ply(), last, next.Status())

	if next.IsOver() {
		s.logf(1, "game %d over: %s after %d plies", next.Generation(), next.Status(), next.Ply())
		if s.recorder != nil {
			if err := s.recorder.RecordGame(next, s.mode); err != nil {
				s.logf(1, "recording game: %v", err)
			}
		}
	}
	return Event{State: next, Move: &last, Automated: automated}
}

func (s *Session) notify(ev Event) {
	if s.onChange != nil {
		s.onChange(ev)
	}
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		s.logger.Printf(format, args...)
	}
}
