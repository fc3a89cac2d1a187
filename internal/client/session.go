package client

import (
	"sync"
	"time"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// Session is the client-side auth context. Login fills it, Logout clears it,
// and everything that decides what to show derives from it.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      *domain.UserInfo
	expiresAt time.Time
	now       func() time.Time
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// Set stores a token and its user. A zero expiresAt means no local expiry.
func (s *Session) Set(token string, user domain.UserInfo, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.token = token
	s.user = &u
	s.expiresAt = expiresAt
}

// Clear forgets the token and user.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.expiresAt = time.Time{}
}

// Token returns the bearer token, or "" when signed out or locally expired.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expiredLocked() {
		return ""
	}
	return s.token
}

// User returns the signed-in user.
func (s *Session) User() (domain.UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.expiredLocked() {
		return domain.UserInfo{}, false
	}
	return *s.user, true
}

// ExpiresAt returns the token expiry reported at login.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// IsAuthenticated reports whether a usable token is held.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// IsAdmin reports whether the signed-in user has the admin role.
func (s *Session) IsAdmin() bool {
	return s.hasRole(domain.RoleAdmin)
}

// IsUser reports whether the signed-in user has the regular user role.
func (s *Session) IsUser() bool {
	return s.hasRole(domain.RoleUser)
}

func (s *Session) hasRole(want domain.Role) bool {
	u, ok := s.User()
	if !ok {
		return false
	}
	role, ok := domain.ParseRole(string(u.Role))
	return ok && role == want
}

func (s *Session) expiredLocked() bool {
	return !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt)
}
