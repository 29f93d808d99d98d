package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// AdminStore is the persistence contract for staff accounts, keyed by
// username.  There is deliberately no update or delete: accounts are
// created once and only listed or looked up afterwards.
type AdminStore interface {
	// Create inserts a new account or returns ErrUsernameTaken.
	Create(ctx context.Context, u model.AdminUser) error
	// GetByUsername returns the account or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
	// List returns every account ordered by username.
	List(ctx context.Context) ([]model.AdminUser, error)
}

// MemoryAdminStore keeps admin accounts in a mutex-guarded map.
type MemoryAdminStore struct {
	mu         sync.RWMutex
	byUsername map[string]model.AdminUser
}

// NewMemoryAdminStore returns an empty in-memory admin store.
func NewMemoryAdminStore() *MemoryAdminStore {
	return &MemoryAdminStore{byUsername: make(map[string]model.AdminUser)}
}

func (s *MemoryAdminStore) Create(_ context.Context, u model.AdminUser) error {
	key := strings.ToLower(u.Username)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUsername[key]; ok {
		return ErrUsernameTaken
	}
	s.byUsername[key] = u
	return nil
}

func (s *MemoryAdminStore) GetByUsername(_ context.Context, username string) (model.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return model.AdminUser{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryAdminStore) List(_ context.Context) ([]model.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AdminUser, 0, len(s.byUsername))
	for _, u := range s.byUsername {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
