package config

import (
	"os"
	"strings"
)

// defaultTimeSlots is the fixed set of bookable time-of-day slots.  The
// restaurant serves a lunch window and a dinner window; capacity is
// accounted per (date, slot) pair.
var defaultTimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

// Restaurant carries the fixed capacity configuration consumed by the
// availability calculator and the booking flow.  The core treats these
// as configuration and never derives them.
type Restaurant struct {
	Name          string   // display name shown in confirmations
	Address       string   // street address shown in confirmations
	TotalTables   int      // total table inventory per slot
	SeatsPerTable int      // seats provided by one table unit
	TimeSlots     []string // bookable HH:MM slots, in serving order
}

// LoadRestaurant builds the restaurant configuration from environment
// variables, falling back to the built-in defaults.  TIME_SLOTS accepts a
// comma-separated list of HH:MM values.
func LoadRestaurant() Restaurant {
	r := Restaurant{
		Name:          getenv("RESTAURANT_NAME", "MyHome"),
		Address:       getenv("RESTAURANT_ADDRESS", "Opp. Government Hospital, Dharmavaram"),
		TotalTables:   atoiOr(getenv("TOTAL_TABLES", "15"), 15),
		SeatsPerTable: atoiOr(getenv("SEATS_PER_TABLE", "4"), 4),
		TimeSlots:     defaultTimeSlots,
	}
	if raw := os.Getenv("TIME_SLOTS"); raw != "" {
		var slots []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				slots = append(slots, p)
			}
		}
		if len(slots) > 0 {
			r.TimeSlots = slots
		}
	}
	return r
}

// ValidSlot reports whether t is one of the configured time slots.
func (r Restaurant) ValidSlot(t string) bool {
	for _, s := range r.TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}
