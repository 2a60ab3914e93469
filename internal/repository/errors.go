// Package repository holds the in-memory record store that backs the mock
// API.  Every collection hands out deep copies; the store alone keeps the
// mutable originals.  The sentinel errors below let the facade tell a
// missing record from a rejected mutation.
package repository

import "errors"

// ErrNotFound is returned when no record carries the requested id.  The
// facade translates it into the API-level not-found failure.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned by Insert when the id is already taken.
var ErrDuplicateID = errors.New("duplicate record id")

// ErrEmptyID is returned by Insert for a record without an id.
var ErrEmptyID = errors.New("record id is empty")
