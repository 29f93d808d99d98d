// Package service implements the reservation core: the availability
// calculator, the reservation lifecycle manager and the admin directory.
// Handlers translate the sentinel errors below into HTTP statuses with
// errors.Is; details are attached by wrapping.
package service

import "errors"

// ErrValidation covers missing or malformed booking input: empty
// name/phone, guests below 1, unparseable or past dates, times outside
// the configured slot list.
var ErrValidation = errors.New("validation failed")

// ErrCapacityExceeded is returned when a booking would overrun the table
// inventory for its slot.  The store is left unchanged.
var ErrCapacityExceeded = errors.New("not enough tables available")

// ErrInvalidTransition is returned when a status change is not permitted
// from the reservation's current state.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrWeakPassword is returned by Register when the password is shorter
// than MinPasswordLen.
var ErrWeakPassword = errors.New("password too short")

// ErrAuthenticationFailed is returned on bad credentials.  It is the same
// for unknown usernames and wrong passwords so the login endpoint does
// not leak which usernames exist.
var ErrAuthenticationFailed = errors.New("invalid credentials")
