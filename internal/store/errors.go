package store

import "fmt"

// ValidationError reports an Add or Update input that cannot become a record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an Update or Delete addressed to an unknown ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("expense %q not found", e.ID)
}

// DecodeError reports a stored snapshot that could not be decoded. Load
// recovers from it by starting empty.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding snapshot: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
