package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert collides with the email
// uniqueness constraint. Both backends translate their native
// duplicate-key errors to this sentinel so the constraint stays
// authoritative even when the application-level pre-check loses a race.
var ErrDuplicateEmail = errors.New("email already taken")
