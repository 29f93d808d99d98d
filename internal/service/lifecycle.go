package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

const dateLayout = "2006-01-02"

// Hooks are fire-and-forget callbacks invoked after a mutation has
// committed.  They run in their own goroutine; their latency or failure
// never delays or rolls back the reservation state.  Either field may be
// nil.
type Hooks struct {
	Booked    func(model.Reservation) // after a successful Create
	Confirmed func(model.Reservation) // after a transition to Confirmed
}

// Lifecycle enforces the reservation state machine and the table-capacity
// invariant.  It is the sole writer of the reservation store: every
// mutation runs under one mutex so the capacity check in Create and the
// subsequent append are atomic together.
type Lifecycle struct {
	mu         sync.Mutex
	store      repository.ReservationStore
	avail      *Availability
	restaurant config.Restaurant
	hooks      Hooks
	now        func() time.Time
}

// NewLifecycle wires the manager to its store and availability
// calculator.  Both must share the same store.
func NewLifecycle(store repository.ReservationStore, avail *Availability, restaurant config.Restaurant) *Lifecycle {
	return &Lifecycle{
		store:      store,
		avail:      avail,
		restaurant: restaurant,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetHooks installs the post-commit callbacks.  Call before serving
// requests; hooks are not guarded by the lifecycle mutex.
func (l *Lifecycle) SetHooks(h Hooks) { l.hooks = h }

// CreateRequest carries the booking form input.
type CreateRequest struct {
	Name   string
	Phone  string
	Guests int
	Date   string // YYYY-MM-DD
	Time   string // HH:MM, must be a configured slot
}

// Create validates the request, re-checks capacity at commit time and
// appends a new Pending reservation.  On capacity shortfall it returns
// ErrCapacityExceeded and performs no mutation.
func (l *Lifecycle) Create(ctx context.Context, req CreateRequest) (model.Reservation, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := l.validate(req); err != nil {
		return model.Reservation{}, err
	}

	// The availability read and the append must observe the same store
	// state, otherwise two concurrent bookings could both pass the check.
	l.mu.Lock()
	defer l.mu.Unlock()

	free, err := l.avail.TablesAvailable(ctx, req.Date, req.Time)
	if err != nil {
		return model.Reservation{}, err
	}
	needed := l.avail.TablesNeeded(req.Guests)
	if free < needed {
		return model.Reservation{}, fmt.Errorf("%w: %d table(s) needed, %d free at %s %s",
			ErrCapacityExceeded, needed, free, req.Date, req.Time)
	}

	now := l.now()
	r := model.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Guests:    req.Guests,
		Date:      req.Date,
		Time:      req.Time,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := l.store.Create(ctx, r); err != nil {
		return model.Reservation{}, err
	}
	if l.hooks.Booked != nil {
		go l.hooks.Booked(r)
	}
	return r, nil
}

func (l *Lifecycle) validate(req CreateRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if req.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	// Lexicographic comparison is safe for fixed-width YYYY-MM-DD.
	if req.Date < l.now().Format(dateLayout) {
		return fmt.Errorf("%w: date is in the past", ErrValidation)
	}
	if !l.restaurant.ValidSlot(req.Time) {
		return fmt.Errorf("%w: %q is not a bookable time slot", ErrValidation, req.Time)
	}
	return nil
}

// Transition moves a reservation to target if the state machine allows
// it.  Transitions never re-run the capacity check: confirming or
// completing cannot increase occupancy, and cancelling frees capacity
// implicitly because the calculator ignores inactive reservations.
func (l *Lifecycle) Transition(ctx context.Context, id string, target model.Status) (model.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, err := l.store.GetByID(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	if !cur.Status.CanTransitionTo(target) {
		return model.Reservation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, target)
	}
	updated, err := l.store.UpdateStatus(ctx, id, target)
	if err != nil {
		return model.Reservation{}, err
	}
	if target == model.StatusConfirmed && l.hooks.Confirmed != nil {
		go l.hooks.Confirmed(updated)
	}
	return updated, nil
}

// Delete removes the reservation unconditionally, regardless of status.
func (l *Lifecycle) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Delete(ctx, id)
}

// List returns reservations matching the optional date and status
// filters, ordered by date, slot and creation time.
func (l *Lifecycle) List(ctx context.Context, date string, status *model.Status) ([]model.Reservation, error) {
	return l.store.List(ctx, repository.ReservationFilter{Date: date, Status: status})
}

// Get returns a single reservation by id.
func (l *Lifecycle) Get(ctx context.Context, id string) (model.Reservation, error) {
	return l.store.GetByID(ctx, id)
}
