package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCountTooSmall   = fmt.Errorf("%w: count must be >= 1", ErrInvalidArgument)
	ErrNilTrial        = fmt.Errorf("%w: trial must not be nil", ErrInvalidArgument)
	ErrLengthMismatch  = fmt.Errorf("%w: sequence length mismatch", ErrInvalidArgument)
	ErrEmptyInput      = errors.New("empty input")

	// Shape errors (internal to result collection, never surfaced by the runner)
	ErrShapeMismatch = errors.New("trial results have differing shapes")

	// Determinism errors
	ErrSeedMismatch = errors.New("seed mismatch")
)

// Error constructors with context
func NewInvalidArgumentError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, reason)
}

func NewLengthMismatchError(field string, want, got int) error {
	return fmt.Errorf("%w: %s: want %d, got %d", ErrLengthMismatch, field, want, got)
}

func NewTrialError(index int, err error) error {
	return fmt.Errorf("trial %d: %w", index, err)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}
