// Package apperr defines the two error kinds the service distinguishes:
// validation failures caused by the caller and storage failures caused by
// the backing store. Handlers map the former to 4xx and the latter to 5xx.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports a caller-supplied input that violates a contract.
// It always names the offending field (or parameter) and the rule broken.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field and rule.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps a failure from the backing store. The operation name
// is safe to expose; the wrapped error is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError for the named operation.
func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
