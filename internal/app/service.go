package app

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/time-travel-tic-tac-toe/internal/domain"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("game not found")

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID      string
	Game    domain.Game
	Created time.Time
	Updated time.Time
}

// Service manages one game per browser session. Each game is driven by a
// single session; the mutex only serializes concurrent HTTP handlers.
type Service struct {
	mu      sync.Mutex
	games   map[string]*GameState
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l.With("component", "game-service")
		}
	}
}

// WithMetrics sets the counters updated by the service.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService creates a service. Without options it logs nowhere and keeps
// unregistered counters.
func NewService(opts ...Option) *Service {
	s := &Service{
		games:   make(map[string]*GameState),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: NewMetrics(nil),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	now := s.now()
	gs := &GameState{ID: id, Game: *domain.New(), Created: now, Updated: now}
	s.games[id] = gs
	s.metrics.GamesCreated.Inc()
	s.log.Info("game created", "game_id", id)
	cp := *gs
	return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *gs
	return &cp, true
}

// Play applies a move on the displayed board. An ignored move is not an
// error; the unchanged state is returned.
func (s *Service) Play(id string, cell int) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	accepted := gs.Game.Play(cell)
	s.metrics.Moves.WithLabelValues(result(accepted)).Inc()
	if accepted {
		gs.Updated = s.now()
	}
	s.log.Debug("move", "game_id", id, "cell", cell, "accepted", accepted,
		"step", gs.Game.Step(), "status", gs.Game.Status())
	cp := *gs
	return &cp, nil
}

// JumpTo moves the displayed step. Out-of-range steps leave the game as is.
func (s *Service) JumpTo(id string, step int) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	accepted := gs.Game.JumpTo(step)
	s.metrics.Jumps.WithLabelValues(result(accepted)).Inc()
	if accepted {
		gs.Updated = s.now()
	}
	s.log.Debug("jump", "game_id", id, "step", step, "accepted", accepted)
	cp := *gs
	return &cp, nil
}

// Restart replaces the game under id with a fresh one.
func (s *Service) Restart(id string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	gs.Game = *domain.New()
	gs.Updated = s.now()
	s.log.Info("game restarted", "game_id", id)
	cp := *gs
	return &cp, nil
}
