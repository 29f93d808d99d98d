package service

import (
	"context"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// Availability computes how many free tables remain for a slot.  It is a
// pure read over the store: only Pending and Confirmed reservations hold
// tables, each party rounded up to whole table units.
type Availability struct {
	store      repository.ReservationStore
	restaurant config.Restaurant
}

// NewAvailability returns a calculator over the given store and capacity
// configuration.
func NewAvailability(store repository.ReservationStore, restaurant config.Restaurant) *Availability {
	return &Availability{store: store, restaurant: restaurant}
}

// TablesNeeded returns the number of whole table units a party occupies.
// Parties are never split across slots, so the requirement rounds up.
func (a *Availability) TablesNeeded(guests int) int {
	if guests <= 0 {
		return 0
	}
	return (guests + a.restaurant.SeatsPerTable - 1) / a.restaurant.SeatsPerTable
}

// TablesAvailable returns totalTables minus the table units held by active
// reservations at (date, slot).  The result can go negative only if the
// capacity invariant was violated by a writer other than the lifecycle
// manager.
func (a *Availability) TablesAvailable(ctx context.Context, date, slot string) (int, error) {
	list, err := a.store.List(ctx, repository.ReservationFilter{Date: date})
	if err != nil {
		return 0, err
	}
	held := 0
	for _, r := range list {
		if r.Time == slot && r.Status.Active() {
			held += a.TablesNeeded(r.Guests)
		}
	}
	return a.restaurant.TotalTables - held, nil
}

// SlotAvailability reports remaining tables for every configured slot on
// one date, in serving order.  The booking form uses this to grey out
// slots that cannot seat the requested party.
type SlotAvailability struct {
	Time            string `json:"time"`
	TablesAvailable int    `json:"tables_available"`
	SeatsAvailable  int    `json:"seats_available"`
}

// ForDate computes SlotAvailability for all slots with a single store read.
func (a *Availability) ForDate(ctx context.Context, date string) ([]SlotAvailability, error) {
	list, err := a.store.List(ctx, repository.ReservationFilter{Date: date})
	if err != nil {
		return nil, err
	}
	heldBySlot := make(map[string]int, len(a.restaurant.TimeSlots))
	for _, r := range list {
		if r.Status.Active() {
			heldBySlot[r.Time] += a.TablesNeeded(r.Guests)
		}
	}
	out := make([]SlotAvailability, 0, len(a.restaurant.TimeSlots))
	for _, slot := range a.restaurant.TimeSlots {
		free := a.restaurant.TotalTables - heldBySlot[slot]
		out = append(out, SlotAvailability{
			Time:            slot,
			TablesAvailable: free,
			SeatsAvailable:  free * a.restaurant.SeatsPerTable,
		})
	}
	return out, nil
}
