package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the binfastq domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidFragmentLength is returned when the fragment length is not a
	// positive divisor of the input length.
	ErrInvalidFragmentLength = errors.New("binfastq: invalid fragment length")

	// ErrMalformedInput is returned when a normalized byte is not exactly
	// eight binary digits.
	ErrMalformedInput = errors.New("binfastq: malformed input")

	// ErrInvariantViolation is returned for internal faults that correct
	// callers can never trigger, such as a base code outside [0,3].
	ErrInvariantViolation = errors.New("binfastq: invariant violation")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("binfastq: invalid configuration")
)

// FragmentLengthError reports a fragment length that cannot split the input
// into equal fragments. It unwraps to ErrInvalidFragmentLength.
type FragmentLengthError struct {
	FragmentLength int
	InputLength    int64
}

func (e *FragmentLengthError) Error() string {
	if e.FragmentLength <= 0 {
		return fmt.Sprintf("fragment length %d is not valid: it must be a positive number (input is %d bytes)",
			e.FragmentLength, e.InputLength)
	}
	return fmt.Sprintf("fragment length %d is not valid in this case: set a number which splits %d bytes file into equal fragments",
		e.FragmentLength, e.InputLength)
}

func (e *FragmentLengthError) Unwrap() error {
	return ErrInvalidFragmentLength
}
