package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/transferflow/internal/pkg/logger"
	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/payment"
	"github.com/piresc/transferflow/services/payment/flow"
)

// Session is one payment attempt of one user
type Session struct {
	ID        uuid.UUID
	UserID    string
	Flow      *flow.Flow
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// View renders the session for the presentation layer
func (s *Session) View() *models.SessionView {
	return &models.SessionView{
		SessionID: s.ID,
		PaymentID: s.Flow.Reference(),
		CreatedAt: s.CreatedAt,
		FlowView:  s.Flow.View(),
	}
}

// SessionStore keeps live sessions in memory. Sessions idle longer than the TTL are closed by
// Sweep.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an empty store
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Add registers f as session id of userID
func (s *SessionStore) Add(id uuid.UUID, userID string, f *flow.Flow) *Session {
	now := s.now()
	sess := &Session{
		ID:        id,
		UserID:    userID,
		Flow:      f,
		CreatedAt: now,
		lastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session if it exists and belongs to userID, and refreshes its idle timer
func (s *SessionStore) Get(id uuid.UUID, userID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, payment.ErrSessionNotFound
	}
	if sess.UserID != userID {
		return nil, payment.ErrSessionForbidden
	}

	sess.mu.Lock()
	sess.lastSeen = s.now()
	sess.mu.Unlock()
	return sess, nil
}

// Remove unregisters the session and returns it
func (s *SessionStore) Remove(id uuid.UUID, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, payment.ErrSessionNotFound
	}
	if sess.UserID != userID {
		return nil, payment.ErrSessionForbidden
	}
	delete(s.sessions, id)
	return sess, nil
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes and removes idle sessions. It returns how many were removed.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			expired = append(expired, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Flow.Close()
	}
	if len(expired) > 0 {
		logger.Info("Expired payment sessions", logger.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every remaining session
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SessionStore) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Flow.Close()
	}
}
