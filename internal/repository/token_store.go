package repository

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTokenInvalid is returned when a refresh token hash is unknown,
// expired or already revoked.
var ErrTokenInvalid = errors.New("invalid refresh token")

// TokenStore tracks refresh-token sessions for admin accounts.  Only the
// SHA-256 hash of a token is ever stored.  Sessions are process-local:
// restarting the server logs all dashboards out, which is acceptable for
// this system.
type TokenStore interface {
	// Store records a refresh token hash for a username with an expiry.
	Store(ctx context.Context, username, hash string, expires time.Time) error
	// Validate returns the owning username if the hash is known, unexpired
	// and not revoked; otherwise ErrTokenInvalid.
	Validate(ctx context.Context, hash string) (string, error)
	// Revoke invalidates a single token hash.
	Revoke(ctx context.Context, hash string) error
	// RevokeAll invalidates every token belonging to a username.
	RevokeAll(ctx context.Context, username string) error
}

type tokenEntry struct {
	username string
	expires  time.Time
	revoked  bool
}

// MemoryTokenStore keeps refresh sessions in a mutex-guarded map keyed by
// token hash.
type MemoryTokenStore struct {
	mu     sync.Mutex
	byHash map[string]tokenEntry
}

// NewMemoryTokenStore returns an empty token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{byHash: make(map[string]tokenEntry)}
}

func (s *MemoryTokenStore) Store(_ context.Context, username, hash string, expires time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byHash[hash] = tokenEntry{username: username, expires: expires}
	return nil
}

func (s *MemoryTokenStore) Validate(_ context.Context, hash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byHash[hash]
	if !ok || e.revoked || nowUTC().After(e.expires) {
		return "", ErrTokenInvalid
	}
	return e.username, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.byHash[hash]; ok {
		e.revoked = true
		s.byHash[hash] = e
	}
	return nil
}

func (s *MemoryTokenStore) RevokeAll(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, e := range s.byHash {
		if e.username == username {
			e.revoked = true
			s.byHash[h] = e
		}
	}
	return nil
}
