// Package errors provides sentinel errors and error types for movegen.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("square outside the board")

	// ErrIllegalMove indicates a move that violates the apply contract.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameNotFound indicates an unknown game session ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStoreFull indicates the position store reached its size limit.
	ErrStoreFull = errors.New("position store full")
)

// StoreError wraps errors from the position store with operation
// context. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type StoreError struct {
	Err  error  // The underlying error
	Op   string // The store operation that failed (e.g. "insert position")
	Path string // Database path (if known)
}

// Error returns a formatted error message including all available context.
func (e *StoreError) Error() string {
	switch {
	case e.Op != "" && e.Path != "":
		return fmt.Sprintf("store %s (%s): %v", e.Op, e.Path, e.Err)
	case e.Op != "":
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	case e.Path != "":
		return fmt.Sprintf("store (%s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("store: %v", e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the StoreError wrapper.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need not import both this package and the
// standard library errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
