// Package errors provides sentinel errors and error types for the chess
// engine. It defines the failure conditions of the engine operations and a
// structured error type that preserves position context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine operations.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not in the legal set for
	// the given position. The caller can recover by re-querying the
	// legal moves.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNoLegalMoves indicates a search was requested on a terminal
	// position. Callers must classify the position first.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrOutOfRange indicates a coordinate or depth outside its
	// permitted range.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps a move failure with the offending move and the position
// it was attempted in. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move that failed
	FEN      string // The position the move was attempted in
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	switch {
	case e.MoveText != "" && e.FEN != "":
		return fmt.Sprintf("move %s in %q: %v", e.MoveText, e.FEN, e.Err)
	case e.MoveText != "":
		return fmt.Sprintf("move %s: %v", e.MoveText, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one
// is found, sets target to that error value and returns true.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
