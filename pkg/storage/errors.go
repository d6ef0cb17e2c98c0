package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrUniqueViolation is returned when a write collides with a unique
	// constraint (gallery code, order number, tenant slug, member e-mail).
	// Callers that generate the colliding value retry with a fresh one.
	ErrUniqueViolation = errors.New("unique constraint violated")
)
