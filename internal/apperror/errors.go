package apperror

import (
	"errors"
	"fmt"
)

// Base error kinds. Everything the repositories and services return wraps
// exactly one of these, so callers classify with errors.Is.
var (
	// ErrValidation is returned when request input is malformed or missing
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when a unique constraint is violated
	ErrConflict = errors.New("resource already exists")

	// ErrNotFound is returned when zero rows matched an update, delete or get
	ErrNotFound = errors.New("resource not found")

	// ErrStorage is returned for any other data-access failure
	ErrStorage = errors.New("storage failure")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsStorage(err error) bool    { return errors.Is(err, ErrStorage) }
