package services

import "errors"

// Errors shared across the resource services. Handlers map these to
// HTTP statuses.
var (
	// ErrNotFound signals a missing resource or referenced row.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists signals a uniqueness violation (account name,
	// tree names, duplicate profile).
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrForbidden signals that the caller is neither the resource
	// owner nor a superuser.
	ErrForbidden = errors.New("operation not permitted for this user")
)
