package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by this package wraps exactly one of them.
var (
	ErrInvalidShape       = errors.New("invalid shape")
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrRankMismatch       = errors.New("rank mismatch")
	ErrIncompatibleShapes = errors.New("incompatible shapes")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrRankLimit          = errors.New("rank limit exceeded")
	ErrEmptyInput         = errors.New("empty input")
	ErrInvalidRange       = errors.New("invalid value range")
)

// ShapeError describes a failed tensor operation.
type ShapeError struct {
	Op     string // Operation that failed (e.g., "add", "concat")
	Kind   error  // One of the Err* kinds above
	Detail string // Shapes or arguments involved
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}

func shapeErrorf(op string, kind error, format string, args ...any) error {
	return &ShapeError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
