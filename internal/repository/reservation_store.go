package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// nowUTC is stubbed in tests that need deterministic timestamps.
var nowUTC = func() time.Time { return time.Now().UTC() }

// ReservationFilter narrows List results.  Zero values match everything:
// an empty Date matches all dates and a nil Status matches all statuses.
type ReservationFilter struct {
	Date   string        // exact YYYY-MM-DD match when non-empty
	Status *model.Status // exact status match when non-nil
}

// ReservationStore is the persistence contract for reservations.  The
// lifecycle manager is the sole writer; implementations only need to keep
// individual operations atomic, not sequences of them.
type ReservationStore interface {
	// Create appends a new reservation.  The caller assigns the ID.
	Create(ctx context.Context, r model.Reservation) error
	// GetByID returns the reservation or ErrNotFound.
	GetByID(ctx context.Context, id string) (model.Reservation, error)
	// List returns reservations matching the filter ordered by date,
	// time slot and creation time.
	List(ctx context.Context, f ReservationFilter) ([]model.Reservation, error)
	// UpdateStatus overwrites the status of an existing reservation and
	// bumps its UpdatedAt.  Returns ErrNotFound for unknown ids.  The
	// state machine is enforced by the caller, not here.
	UpdateStatus(ctx context.Context, id string, status model.Status) (model.Reservation, error)
	// Delete removes the reservation regardless of status, or returns
	// ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// MemoryReservationStore keeps reservations in a mutex-guarded map.  It is
// the default store and the one used by tests; each test constructs a
// fresh instance for isolation.
type MemoryReservationStore struct {
	mu   sync.RWMutex
	byID map[string]model.Reservation
}

// NewMemoryReservationStore returns an empty in-memory store.
func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{byID: make(map[string]model.Reservation)}
}

func (s *MemoryReservationStore) Create(_ context.Context, r model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[r.ID] = r
	return nil
}

func (s *MemoryReservationStore) GetByID(_ context.Context, id string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return model.Reservation{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryReservationStore) List(_ context.Context, f ReservationFilter) ([]model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, 0, len(s.byID))
	for _, r := range s.byID {
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		if f.Status != nil && r.Status != *f.Status {
			continue
		}
		out = append(out, r)
	}
	// Deterministic ordering: by date, then slot, then creation time.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryReservationStore) UpdateStatus(_ context.Context, id string, status model.Status) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return model.Reservation{}, ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = nowUTC()
	s.byID[id] = r
	return r, nil
}

func (s *MemoryReservationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
