// Package session holds the client's auth token as an explicit dependency
// with a set/clear lifecycle, instead of module-level mutable state.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/rosetta/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Session is a concurrency-safe holder for the bearer token issued at login.
// It is injected into the gateway and the CLI; an empty token means the
// client is unauthenticated.
type Session struct {
	mu    sync.RWMutex
	token string
}

func New() *Session {
	return &Session{}
}

// SetToken installs the token issued by the backend.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// ClearToken drops the current token (logout).
func (s *Session) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is installed.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt peeks at the token's exp claim without verifying the signature;
// verification belongs to the server. Returns ErrInvalidToken when the token
// is absent, malformed or carries no expiry.
func (s *Session) ExpiresAt() (time.Time, error) {
	token := s.Token()
	if token == "" {
		return time.Time{}, common.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

// Expired reports whether the token carries an exp claim in the past.
func (s *Session) Expired(now time.Time) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return false
	}
	return exp.Before(now)
}
