package errors

import "errors"

var (
	// ErrMissingFields signals a submission without one of the required fields.
	// Always raised before any side effect.
	ErrMissingFields = errors.New("missing required fields")
	// ErrPersistence signals the order store is unreachable or rejected a write.
	ErrPersistence = errors.New("persistence failure")
	// ErrNotification signals the email provider rejected the dispatch. The
	// order is already stored when this happens; there is no rollback.
	ErrNotification = errors.New("notification failure")
)
