package roster

import "errors"

var (
	// Validation failures; the caller surfaces the message and lets the
	// user correct the input.
	ErrNameRequired      = errors.New("name is required")
	ErrBirthDateRequired = errors.New("birth date is required")
	ErrInvalidDate       = errors.New("birth date cannot be in the future")
	ErrInvalidCapacity   = errors.New("capacity must be a positive integer")

	// ErrCapacityExceeded means the roster is full at the moment of
	// admission.
	ErrCapacityExceeded = errors.New("participant limit reached")

	// ErrNotFound means an admin operation referenced an unknown id,
	// usually a stale view.
	ErrNotFound = errors.New("participant not found")

	// ErrPersistence wraps store round-trip failures; the same action can
	// be retried.
	ErrPersistence = errors.New("store operation failed")
)

// IsValidation reports whether err belongs to the recoverable bad-input
// class of the taxonomy.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrBirthDateRequired) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidCapacity)
}
