package notification

import "fmt"

// InvalidEventKindError signals an unrecognized event tag. It is a caller
// error: no lookups run and no dispatch is attempted.
type InvalidEventKindError struct {
	Kind string
}

func (e *InvalidEventKindError) Error() string {
	return fmt.Sprintf("invalid event kind %q", e.Kind)
}

// NotFoundError signals that a referenced record (e.g. a match) is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// DispatchError wraps a failed push-provider call. The attempt is not
// retried internally; re-delivery is up to the trigger re-invoking the event.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("push dispatch failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
