package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const DefaultDepth = 3

// ErrNoLegalMove is returned when the root position has no move to play.
var ErrNoLegalMove = errors.New("no legal move available")

type Option func(s *Selector)

func WithDepth(depth int) Option {
	return func(s *Selector) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithQuiescenceNodeLimit(limit uint64) Option {
	return func(s *Selector) {
		s.searcher.QuiescenceNodeLimit = limit
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// Result is the outcome of one root search.
type Result struct {
	Move    Move
	Score   int32
	Depth   int
	Stats   Stats
	Elapsed time.Duration
}

// Selector plays one game: it owns the running evaluation for the position
// and keeps it in step with every move made on it, by the engine or by the
// caller through Play.
type Selector struct {
	pos      Position
	tracker  *Tracker
	searcher *Searcher
	depth    int
	logger   zerolog.Logger
}

func NewSelector(pos Position, options ...Option) *Selector {
	tracker := NewTracker(pos)
	s := &Selector{ // Default values
		pos:      pos,
		tracker:  tracker,
		searcher: NewSearcher(pos, tracker),
		depth:    DefaultDepth,
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search finds the best move for the side to move without playing it.
func (s *Selector) Search() (Result, error) {
	if err := s.rootError(); err != nil {
		return Result{}, err
	}

	s.searcher.ResetStats()
	start := time.Now()
	score, move := s.searcher.Search(s.depth, -Infinity, Infinity, true)
	res := Result{
		Move:    move,
		Score:   score,
		Depth:   s.depth,
		Stats:   s.searcher.Stats(),
		Elapsed: time.Since(start),
	}

	if move.IsNull() {
		return res, fmt.Errorf("search at depth %d: %w", s.depth, ErrNoLegalMove)
	}

	s.logger.Debug().
		Int("depth", res.Depth).
		Int32("score", res.Score).
		Str("move", res.Move.String()).
		Dur("elapsed", res.Elapsed).
		Object("stats", res.Stats).
		Msg("search complete")

	return res, nil
}

// SelectMove searches and plays the chosen move on the position.
func (s *Selector) SelectMove() (Move, error) {
	res, err := s.Search()
	if err != nil {
		return NullMove, err
	}
	s.Play(res.Move)
	s.logger.Info().
		Str("side", s.tracker.SideToMove().Other().String()).
		Str("move", res.Move.String()).
		Int32("score", res.Score).
		Msg("move selected")
	return res.Move, nil
}

// Play applies a legal move chosen outside the engine.
func (s *Selector) Play(m Move) {
	s.tracker.OnApply(s.pos, m)
	s.pos.Apply(m)
}

// Undo takes back the last move made through Play or SelectMove.
func (s *Selector) Undo() (Move, error) {
	if s.tracker.Depth() == 0 {
		return NullMove, errors.New("no move to undo")
	}
	m := s.pos.Unmake()
	s.tracker.OnUnmake(m)
	return m, nil
}

// Score is the running evaluation for the side to move.
func (s *Selector) Score() int32 {
	return s.tracker.Score()
}

func (s *Selector) Depth() int {
	return s.depth
}

func (s *Selector) rootError() error {
	switch {
	case s.pos.IsCheckmate():
		return fmt.Errorf("%s is checkmated: %w", s.pos.SideToMove(), ErrNoLegalMove)
	case s.pos.IsStalemate():
		return fmt.Errorf("%s is stalemated: %w", s.pos.SideToMove(), ErrNoLegalMove)
	case s.pos.IsGameOver():
		return fmt.Errorf("game drawn: %w", ErrNoLegalMove)
	}
	return nil
}
