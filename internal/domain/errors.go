package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBalanceNotFound is returned when no balance exists for a date
	ErrBalanceNotFound = errors.New("balance not found")

	// ErrUnknownJobKind is returned when a manual trigger names an unknown job
	ErrUnknownJobKind = errors.New("unknown job kind")
)

// FetchError is returned by the REE client once every fetch attempt has been
// exhausted. It carries the attempt count and the last underlying cause.
type FetchError struct {
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching balance data failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InvalidPayloadError is returned by the normalizer when a payload is missing
// mandatory top-level fields. It is always fatal to the run that saw it.
type InvalidPayloadError struct {
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid balance payload: %s", e.Reason)
}

// StorageError wraps an unexpected failure from the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %q failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
