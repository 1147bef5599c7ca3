// Package errors provides sentinel errors and error types for gridboard.
// It defines the failure conditions of the grid core and the structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidDimensions indicates a grid constructed with a non-positive
	// row or column count.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrOutOfBounds indicates a coordinate outside the grid's declared dimensions.
	ErrOutOfBounds = errors.New("position not on the board")

	// ErrPositionOccupied indicates a placement onto a cell that already holds a piece.
	ErrPositionOccupied = errors.New("position already occupied")

	// ErrEmptyPosition indicates a move whose source cell holds no piece.
	ErrEmptyPosition = errors.New("no piece at position")

	// ErrPiecePlaced indicates a placement of a piece that already sits on the grid.
	ErrPiecePlaced = errors.New("piece already placed")

	// ErrNotPlaced indicates a legality query for a piece that is not on the grid.
	ErrNotPlaced = errors.New("piece not placed")

	// ErrForeignPiece indicates a piece used with a grid it is not bound to.
	ErrForeignPiece = errors.New("piece belongs to another grid")

	// ErrNilPiece indicates a nil piece handed to a grid operation.
	ErrNilPiece = errors.New("nil piece")

	// ErrMatrixShape indicates a legality matrix not shaped rows x columns.
	ErrMatrixShape = errors.New("legality matrix shape mismatch")

	// ErrInvalidCoordinate indicates coordinate text that cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidLayout indicates malformed board layout text.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrUnknownSymbol indicates a layout symbol with no matching piece kind.
	ErrUnknownSymbol = errors.New("unknown piece symbol")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with the grid operation and cell that caused
// them. It supports unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err     error  // The underlying error
	Op      string // Grid operation, e.g. "place" or "piece"
	Row     int    // Row of the offending coordinate
	Column  int    // Column of the offending coordinate
	Rows    int    // Grid row count (0 if unknown)
	Columns int    // Grid column count (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, fmt.Sprintf("(%d,%d)", e.Row, e.Column))
	if e.Rows > 0 && e.Columns > 0 {
		parts = append(parts, fmt.Sprintf("on %dx%d grid", e.Rows, e.Columns))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// LayoutError represents a layout parsing error with location context.
type LayoutError struct {
	Err    error  // The underlying error
	Source string // Source name (file name, "stdin", or empty)
	Line   int    // Rank line within the layout (1-based, top first)
	Column int    // Character offset within the rank (1-based)
	Got    string // What was found
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	if e.Line > 0 {
		loc := fmt.Sprintf("rank %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(" col %d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
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
	return "layout error"
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
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
