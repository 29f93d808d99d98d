// Package repository defines the storage contracts for reservations and
// admin accounts plus their in-memory and MySQL implementations.  The
// sentinel errors below let the service layer distinguish failure cases
// without inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when an operation targets a reservation id or
// username that does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when registering an admin account with a
// username that already exists.
var ErrUsernameTaken = errors.New("username already exists")
