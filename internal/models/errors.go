package models

import "errors"

// Error kinds surfaced by the services. Every operation reports exactly one
// of these to its caller; handlers translate them to HTTP statuses and
// treat anything unrecognized as a store failure.
var (
	// ErrUnauthenticated means the request carried no valid identity token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the verified identity is not the owner of the
	// target record.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the identifier was well-formed but matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means a malformed identifier or request field.
	ErrInvalidInput = errors.New("invalid input")
)
