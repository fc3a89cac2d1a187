package webui

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/client"
)

const defaultSessionTTL = time.Hour

type session struct {
	api        *client.Client
	expiration time.Time
}

func (s session) isExpired(now time.Time) bool {
	return !s.expiration.After(now)
}

// SessionStore maps browser cookies to per-browser API clients.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	now      func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session), now: time.Now}
}

// Create registers an authenticated client and returns the cookie value.
// The session lives as long as the client's token.
func (s *SessionStore) Create(api *client.Client) (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	expiration := api.Session().ExpiresAt()
	if expiration.IsZero() {
		expiration = now.Add(defaultSessionTTL)
	}
	id := uuid.NewString()
	s.sessions[id] = session{api: api, expiration: expiration}
	return id, expiration
}

// Get returns the client for a cookie value.
func (s *SessionStore) Get(id string) (*client.Client, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if sess.isExpired(s.now()) || !sess.api.Session().IsAuthenticated() {
		delete(s.sessions, id)
		return nil, false
	}
	return sess.api, true
}

// Delete logs the client out and forgets the session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.api.Logout()
		delete(s.sessions, id)
	}
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if sess.isExpired(now) {
			delete(s.sessions, id)
		}
	}
}
