// Package errors provides sentinel errors and error types for the checkers
// engine and its tools. Errors preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/draughts"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not in the legal move set.
	// It is the only error kind the rule engine returns.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidDiagram indicates a malformed position diagram.
	ErrInvalidDiagram = errors.New("invalid diagram")

	// ErrInvalidInput indicates move input that could not be read as coordinates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Reasons a move is rejected. They are descriptive only; every MoveError
// unwraps to ErrInvalidMove.
const (
	ReasonOffBoard     = "coordinate off the board"
	ReasonNotOwnPiece  = "source square does not hold a piece of the side to move"
	ReasonNotLegal     = "destination not reachable by a legal move"
	ReasonMustCapture  = "a capture is available and must be taken"
	ReasonPathMismatch = "no legal capture chain follows that path"
)

// MoveError wraps ErrInvalidMove with the rejected move and the reason. It
// implements the error interface and supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err    error          // The underlying error, normally ErrInvalidMove
	From   draughts.Coord // Source square as supplied
	To     draughts.Coord // Destination square as supplied
	Reason string         // Why the move was rejected (if known)
}

// NewMoveError returns a MoveError for ErrInvalidMove.
func NewMoveError(from, to draughts.Coord, reason string) *MoveError {
	return &MoveError{Err: ErrInvalidMove, From: from, To: to, Reason: reason}
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("move %v-%v", e.From, e.To)}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a diagram or input parsing error with location context.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being parsed
	Line   int    // Line number (1-based, 0 if not applicable)
	Column int    // Column number (1-based, 0 if not applicable)
	Detail string // What went wrong
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	} else if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
