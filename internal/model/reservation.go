package model

import "time"

// Status enumerates the lifecycle states of a reservation.  A
// reservation always starts out Pending and only ever changes
// through the transitions listed in statusTransitions; Cancelled
// and Completed are terminal.
type Status string

const (
	StatusPending   Status = "Pending"   // created by the booking flow, holds tables
	StatusConfirmed Status = "Confirmed" // approved by staff, holds tables
	StatusCancelled Status = "Cancelled" // terminal, frees tables
	StatusCompleted Status = "Completed" // terminal, frees tables
)

// statusTransitions is the single source of truth for the status
// state machine.  Any transition not present here is invalid.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ParseStatus converts a raw string into a Status.  The boolean is
// false when the value is not one of the four known states.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the state machine allows moving
// from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Active reports whether a reservation in this status counts
// against table capacity.  Only Pending and Confirmed bookings
// hold tables; Cancelled and Completed do not.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation records a customer's booking of one or more table
// units for a single time slot.  Records are immutable after
// creation except for Status, which moves through the state
// machine above, and deletion, which removes the record outright.
//
// Fields:
//  ID        – unique identifier assigned at creation (UUID).
//  Name      – customer name, required non-empty.
//  Phone     – customer phone number, required non-empty.
//  Guests    – party size, at least 1.
//  Date      – calendar date of the booking (YYYY-MM-DD).
//  Time      – time-of-day slot from the configured slot list (HH:MM).
//  Status    – current lifecycle state.
//  CreatedAt – creation timestamp (UTC).
//  UpdatedAt – last status-change timestamp (UTC).
type Reservation struct {
	ID        string    // reservations.id
	Name      string    // reservations.name
	Phone     string    // reservations.phone
	Guests    int       // reservations.guests
	Date      string    // reservations.reservation_date
	Time      string    // reservations.time_slot
	Status    Status    // reservations.status
	CreatedAt time.Time // reservations.created_at
	UpdatedAt time.Time // reservations.updated_at
}
