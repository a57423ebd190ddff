package storage

import "errors"

// ErrItemNotFound is returned when no item matches a lookup, including the
// "no current auction" and "empty READY queue" cases.
var ErrItemNotFound = errors.New("item not found")

// ErrStatusConflict is returned when a conditional status transition fails
// because the item is no longer in the expected state. Callers treat this as
// losing a race, not as a fault.
var ErrStatusConflict = errors.New("item status conflict")

// ErrProfileConflict is returned when a version-checked profile update loses
// an optimistic-concurrency race.
var ErrProfileConflict = errors.New("profile version conflict")

// ErrPreapprovalNotFound is returned when no credential-setup record matches
// the callback secret.
var ErrPreapprovalNotFound = errors.New("preapproval not found")
