package keypair

import (
	"errors"
	"fmt"
)

// Common errors returned by the key pair generator
var (
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrSerialization      = errors.New("batch serialization failed")
	ErrIO                 = errors.New("batch i/o failed")
	ErrMismatch           = errors.New("public key does not match secret key")
	ErrMalformedRecord    = errors.New("malformed key pair record")
	ErrUnknownCurve       = errors.New("unknown curve")
	ErrInvalidCount       = errors.New("batch size must be positive")
)

// RecordError represents an error tied to a specific position in a batch.
// It lets callers report which record failed without losing the cause.
type RecordError struct {
	Index  int
	Reason string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record %d: %s: %v", e.Index, e.Reason, e.Err)
	}
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError.
func NewRecordError(index int, reason string, err error) *RecordError {
	return &RecordError{
		Index:  index,
		Reason: reason,
		Err:    err,
	}
}
