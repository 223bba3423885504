package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-pursuit/service/i"
	"github.com/google/uuid"
)

type session struct {
	cancel  context.CancelFunc
	done    chan struct{}
	outcome Outcome
	err     error
}

// SessionManager runs simulation sessions in the background and hands back their outcomes.
// Each session is driven by its own goroutine; the simulation inside it is only touched by that goroutine.
type SessionManager struct {
	sessions map[uuid.UUID]*session
	logger   i.Logger
	sync.RWMutex
}

// NewSessionManager returns an empty manager that reports through logger.
func NewSessionManager(logger i.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*session),
		logger:   logger,
	}
}

// NewSession starts a run and returns its ID. Cancelling ctx or calling StopAll ends it early.
func (m *SessionManager) NewSession(ctx context.Context, c SessionConfig) (uuid.UUID, error) {
	if c.Simulation == nil {
		return uuid.Nil, ErrMissingSimulation
	}

	runCtx, cancel := context.WithCancel(ctx)
	s := &session{cancel: cancel, done: make(chan struct{})}
	id := m.saveSession(s)

	m.logger.Info(fmt.Sprintf("started session %s with %s search, agent at %v, adversary at %v",
		id, c.Strategy, c.Start.Agent, c.Start.Adversary))

	go func() {
		defer close(s.done)
		defer cancel()
		s.outcome, s.err = runSession(runCtx, id, c, m.logger)
		m.logEnd(s.outcome, s.err)
	}()

	return id, nil
}

// Wait blocks until the session ends, forgets it, and returns its outcome.
func (m *SessionManager) Wait(id uuid.UUID) (Outcome, error) {
	m.RLock()
	s, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return Outcome{}, ErrSessionNotFound
	}

	<-s.done
	m.clean(id)
	return s.outcome, s.err
}

// Active returns the number of sessions not yet collected with Wait.
func (m *SessionManager) Active() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

// StopAll cancels every running session.
func (m *SessionManager) StopAll() {
	m.RLock()
	defer m.RUnlock()

	for _, s := range m.sessions {
		s.cancel()
	}
}

func (m *SessionManager) saveSession(s *session) uuid.UUID {
	m.Lock()
	defer m.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := m.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	m.sessions[sessionID] = s
	return sessionID
}

func (m *SessionManager) clean(id uuid.UUID) {
	m.Lock()
	defer m.Unlock()
	delete(m.sessions, id)
}

func (m *SessionManager) logEnd(o Outcome, err error) {
	switch {
	case err == nil:
		m.logger.Info(fmt.Sprintf("session %s ended %s after %d ticks", o.SessionID, o.Status, o.Ticks()))
	case errors.Is(err, ErrTickLimit):
		m.logger.Warning(fmt.Sprintf("session %s still %s after %d ticks", o.SessionID, o.Status, o.Ticks()))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		m.logger.Info(fmt.Sprintf("session %s stopped at tick %d", o.SessionID, o.Ticks()))
	default:
		m.logger.Error(fmt.Sprintf("session %s failed: %s", o.SessionID, err))
	}
}
