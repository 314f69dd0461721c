package types

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth is returned when login or registration fails.
	ErrAuth = errors.New("authentication failed")
	// ErrFetch is returned when a collection could not be loaded.
	ErrFetch = errors.New("fetch failed")
	// ErrMutation is returned when a create, update or delete failed.
	ErrMutation = errors.New("mutation failed")
	// ErrAvailability is returned when the backend denies access to a feature.
	ErrAvailability = errors.New("feature unavailable")
	// ErrNetwork is returned when the request never got a response.
	ErrNetwork = errors.New("network error")
	// ErrBusy is returned when a mutation on the same item is still pending.
	ErrBusy = errors.New("operation already in progress")
	// ErrNotAuthenticated is returned when an operation needs a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnsupported is returned for operations a resource does not offer.
	ErrUnsupported = errors.New("operation not supported")
)

// OpError ties a failure to the operation that caused it and to one of the
// error kinds above.
type OpError struct {
	Kind error
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func (e *OpError) Is(target error) bool { return target == e.Kind }

// Wrap returns nil when err is nil. An error already of the same kind is
// returned unchanged.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &OpError{Kind: kind, Op: op, Err: err}
}
