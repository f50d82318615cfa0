package constellation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Session is one client's viewport over the constellation.  Sessions live in
// memory only; state is never persisted.
type Session struct {
	ID       string        `json:"id"`
	Viewport ViewportState `json:"viewport"`
}

// Service manages viewport sessions and produces render frames.
type Service interface {
	// CreateSession starts a new session at the fit view.
	CreateSession(ctx context.Context) (Session, error)
	// ApplyGesture feeds one gesture through the session's viewport state
	// machine and returns the updated state.
	ApplyGesture(ctx context.Context, sessionID string, ev GestureEvent) (ViewportState, error)
	// Viewport returns the session's current state.
	Viewport(ctx context.Context, sessionID string) (ViewportState, error)
	// Frame projects the live catalog plus optional target and blend
	// vectors under the session's viewport.
	Frame(ctx context.Context, sessionID string, target, blend style.Vector) (*Frame, error)
	// CloseSession discards a session.  Closing an unknown session is a
	// no-op.
	CloseSession(ctx context.Context, sessionID string)
}

// ServiceConfig holds construction dependencies for the session service.
type ServiceConfig struct {
	Provider *director.Provider
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
}

type serviceImpl struct {
	provider *director.Provider
	logger   logging.Logger
	metrics  *prometheus.Metrics

	mu       sync.RWMutex
	sessions map[string]ViewportState
}

// NewService constructs the constellation session Service.
func NewService(cfg ServiceConfig) (Service, error) {
	if cfg.Provider == nil {
		return nil, errors.NewValidation("constellation service requires a catalog provider")
	}
	if cfg.Logger == nil {
		return nil, errors.NewValidation("constellation service requires a logger")
	}
	return &serviceImpl{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		sessions: make(map[string]ViewportState),
	}, nil
}

func (s *serviceImpl) CreateSession(_ context.Context) (Session, error) {
	id := uuid.NewString()
	state := DefaultViewport()

	s.mu.Lock()
	s.sessions[id] = state
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Inc()
	}
	s.logger.Debug("viewport session created", logging.String("session_id", id))
	return Session{ID: id, Viewport: state}, nil
}

func (s *serviceImpl) ApplyGesture(_ context.Context, sessionID string, ev GestureEvent) (ViewportState, error) {
	if ev == nil {
		return ViewportState{}, errors.New(errors.ErrCodeGestureInvalid, "gesture event is nil")
	}

	s.mu.Lock()
	state, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return ViewportState{}, errors.New(errors.ErrCodeSessionNotFound,
			"viewport session not found").WithDetail("session_id=" + sessionID)
	}
	next := Apply(state, ev)
	s.sessions[sessionID] = next
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.GesturesTotal.WithLabelValues(ev.Kind()).Inc()
	}
	return next, nil
}

func (s *serviceImpl) Viewport(_ context.Context, sessionID string) (ViewportState, error) {
	s.mu.RLock()
	state, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return ViewportState{}, errors.New(errors.ErrCodeSessionNotFound,
			"viewport session not found").WithDetail("session_id=" + sessionID)
	}
	return state, nil
}

func (s *serviceImpl) Frame(ctx context.Context, sessionID string, target, blend style.Vector) (*Frame, error) {
	state, err := s.Viewport(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildFrame(s.provider.Current(), target, blend, state), nil
}

func (s *serviceImpl) CloseSession(_ context.Context, sessionID string) {
	s.mu.Lock()
	_, existed := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if existed && s.metrics != nil {
		s.metrics.ActiveSessions.Dec()
	}
}
