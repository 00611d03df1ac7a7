package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uncensored-studios/studio-booking-service/internal/booking"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Gauge reports the live session count.
type Gauge interface {
	SetActiveSessions(n int)
}

type noopGauge struct{}

func (noopGauge) SetActiveSessions(int) {}

// FlowFactory builds a fresh booking flow for a new session.
type FlowFactory func() *booking.Flow

type session struct {
	flow     *booking.Flow
	lastSeen time.Time
}

// Store holds per-visitor booking flows in memory, keyed by opaque session
// id. Sessions idle past the TTL are removed by the sweeper; nothing is
// persisted across restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session

	ttl     time.Duration
	factory FlowFactory
	log     Logger
	gauge   Gauge
}

// NewStore creates the session store. A nil gauge disables metrics.
func NewStore(ttl time.Duration, factory FlowFactory, log Logger, gauge Gauge) *Store {
	if gauge == nil {
		gauge = noopGauge{}
	}
	return &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		factory:  factory,
		log:      log,
		gauge:    gauge,
	}
}

// Create starts a new session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session{
		flow:     s.factory(),
		lastSeen: time.Now(),
	}
	count := len(s.sessions)
	s.mu.Unlock()

	s.gauge.SetActiveSessions(count)
	s.log.Info("Create: session %s started, %d active", id, count)
	return id
}

// Get returns the flow for a session, refreshing its idle timer.
func (s *Store) Get(id string) (*booking.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = time.Now()
	return sess.flow, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	s.gauge.SetActiveSessions(count)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper runs the idle-session sweeper until the context is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	expired := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	s.gauge.SetActiveSessions(count)
	if expired > 0 {
		s.log.Info("sweep: expired %d idle sessions, %d active", expired, count)
	}
}
