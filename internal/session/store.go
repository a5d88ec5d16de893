// Package session is the single source of truth for "who is logged in".
// State is held in memory and written through to one namespaced JSON file so
// it survives process restarts.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flicky/flowerstore-client/internal/model"
)

type state struct {
	Token string             `json:"token"`
	User  *model.UserProfile `json:"user"`
}

type Store struct {
	mu    sync.RWMutex
	path  string
	state state
}

// Open loads the last persisted session from path. A missing file yields an
// empty session: no token, no user.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(b, &s.state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

// Token returns the current bearer token, empty string when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// SetToken overwrites the stored token; empty string clears it. The new
// value is persisted before SetToken returns.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.persist()
}

func (s *Store) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

func (s *Store) SetUser(user *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.state.User = nil
	} else {
		u := *user
		s.state.User = &u
	}
	return s.persist()
}

// Clear wipes both token and user. Persistence is best effort: logout must
// always succeed from the caller's perspective.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	_ = s.persist()
}

// TokenExpiry reads the exp claim of the stored token without validating the
// signature. Zero time when there is no token or no parsable claim.
func (s *Store) TokenExpiry() time.Time {
	tok := s.Token()
	if tok == "" {
		return time.Time{}
	}
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(tok, &claims,
		func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// persist is called with the write lock held.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	b, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
