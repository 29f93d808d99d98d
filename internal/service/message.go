package service

import (
	"fmt"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// Composer renders the human-readable confirmation text for a finalized
// reservation.  It stands in for the external message-generation
// collaborator: callers invoke it best-effort after the booking has
// committed and must not depend on its output to finalize anything.
type Composer struct {
	Restaurant config.Restaurant
}

// ConfirmationMessage returns the text shown or sent to the customer
// after booking.
func (c Composer) ConfirmationMessage(r model.Reservation) string {
	guests := "guests"
	if r.Guests == 1 {
		guests = "guest"
	}
	return fmt.Sprintf(
		"Dear %s, your table at %s is booked for %d %s on %s at %s. We look forward to welcoming you! %s",
		r.Name, c.Restaurant.Name, r.Guests, guests, r.Date, r.Time, c.Restaurant.Address)
}
