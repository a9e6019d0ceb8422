// internal/domain/session/manager.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/cart"
)

// ErrInvalidSessionID is returned for ids that were not issued by NewID
var ErrInvalidSessionID = errors.New("invalid session id")

// session is one shopper's cart plus the lock that serializes access to it
type session struct {
	mu       sync.Mutex
	store    *cart.Store
	lastSeen time.Time
}

// Manager owns the in-memory cart of every live shopper session. Carts are
// never persisted: a session that idles out or ends takes its cart with it.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*session
	idleTimeout time.Duration
	interval    time.Duration
	log         *logrus.Logger
	now         func() time.Time
}

// NewManager creates a new session manager
func NewManager(cfg config.SessionConfig, log *logrus.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*session),
		idleTimeout: cfg.IdleTimeout,
		interval:    cfg.SweepInterval,
		log:         log,
		now:         time.Now,
	}
}

// NewID issues a fresh session id
func NewID() string {
	return uuid.New().String()
}

// ValidID reports whether id looks like an id issued by NewID
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// WithCart runs fn against the session's cart while holding that session's
// lock, creating the session on first use. Every surface of one session sees
// the same sequence of mutations.
func (m *Manager) WithCart(id string, fn func(*cart.Store) error) error {
	if !ValidID(id) {
		return ErrInvalidSessionID
	}

	s := m.acquire(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.store)
}

// Snapshot returns a copy of the session's lines and totals without creating
// the session when it does not exist.
func (m *Manager) Snapshot(id string) ([]cart.Line, cart.Totals) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = m.now()
	}
	m.mu.Unlock()

	if !ok {
		return []cart.Line{}, cart.Totals{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Lines(), s.store.Totals()
}

// End discards a session and its cart
func (m *Manager) End(id string) {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		m.log.WithField("session_id", id).Debug("Session ended")
	}
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops every session idle for longer than the configured timeout and
// returns how many were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.log.WithFields(logrus.Fields{
			"expired":   removed,
			"remaining": remaining,
		}).Info("Expired idle sessions")
	}
	return removed
}

// Run sweeps idle sessions until ctx is cancelled
func (m *Manager) Run(ctx context.Context) {
	if m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.log.WithField("interval", m.interval.String()).Info("Session sweeper started")
	for {
		select {
		case <-ctx.Done():
			m.log.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *Manager) acquire(id string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = &session{store: cart.NewStore()}
		m.sessions[id] = s
		m.log.WithField("session_id", id).Debug("Session started")
	}
	s.lastSeen = m.now()
	return s
}
