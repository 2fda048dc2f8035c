// Package errors provides sentinel errors and error types for blitz-chess.
// It defines the failure conditions the rules engine reports to callers and
// a structured error type that preserves move context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a move whose source square is empty.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrWrongColor indicates a move of a piece belonging to the side
	// not on move.
	ErrWrongColor = errors.New("piece belongs to the side not on move")
)

// MoveError wraps an error with the move that caused it and, where known,
// whose turn it was. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Move string // The offending move in coordinate form
	Side string // The side to move when the error occurred
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	switch {
	case e.Move != "" && e.Side != "":
		return fmt.Sprintf("%s to move, move %s: %v", e.Side, e.Move, e.Err)
	case e.Move != "":
		return fmt.Sprintf("move %s: %v", e.Move, e.Err)
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
