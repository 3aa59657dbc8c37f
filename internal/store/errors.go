package store

import "errors"

// Error kinds surfaced to both API layers. Unauthenticated and Forbidden are
// deliberately distinct so callers can map them to 401 vs 403. NotFound covers
// both "absent" and "owned by someone else" so that the existence of other
// accounts' rows is never observable.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
)
