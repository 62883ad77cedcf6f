// Package session hosts game engines. A session owns exactly one
// engine and one stats tracker; the engine itself stays lock-free, so
// the session serializes access for hosts that need it.
package session

import (
	"sync"
	"time"

	"connectfour/internal/domain"
	"connectfour/internal/stats"
	"connectfour/pkg/uid"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	engine     *domain.Engine
	tracker    *stats.Tracker
	finishedAt time.Time
}

func New() (*Session, error) {
	id, err := uid.NewSessionID()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		engine:    domain.NewEngine(),
		tracker:   stats.NewTracker(),
	}, nil
}

// Play forwards a placement to the engine. When the move ends the
// game, the outcome is recorded in the session stats and the finish
// time is stamped.
func (s *Session) Play(column int) (row int, result domain.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err = s.engine.PlacePiece(column)
	if err != nil {
		return -1, s.engine.Result(), err
	}

	result = s.engine.Result()
	if result.Terminal() {
		s.finishedAt = time.Now()
		s.tracker.Record(result, s.engine.Turn())
	}
	return row, result, nil
}

// Restart resets the engine for a rematch. Accumulated stats stay.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.finishedAt = time.Time{}
}

// Board returns a snapshot of the current grid.
func (s *Session) Board() domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Board()
}

func (s *Session) Turn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Turn()
}

func (s *Session) Result() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Result()
}

func (s *Session) CurrentPlayer() domain.PlayerID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CurrentPlayer()
}

// Finished reports whether the current game reached a terminal result.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Result().Terminal()
}

// Stats returns a snapshot of the session statistics.
func (s *Session) Stats() stats.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Snapshot()
}

// finishedBefore reports whether the game ended before the cutoff.
// An unfinished game never matches.
func (s *Session) finishedBefore(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.finishedAt.IsZero() && s.finishedAt.Before(cutoff)
}
