package tensor

import (
	"fmt"
	"math"
	"slices"
)

// MaxRank is the highest supported number of dimensions.
const MaxRank = 3

// MaxElements is the largest element count a tensor may hold. Larger float64
// buffers exceed what the runtime can allocate.
const MaxElements = min(math.MaxInt/8, 1<<45)

// Shape represents the dimensions of a tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the product of all dimensions.
// An empty shape has no elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the rank is between 1 and MaxRank, that no
// dimension is negative and that the element count does not exceed
// MaxElements. Zero-length dimensions are allowed.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxRank {
		return fmt.Errorf("%w: rank must be between 1 and %d, got %d", ErrInvalidShape, MaxRank, len(s))
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", ErrInvalidShape, i, dim)
		}
	}
	if slices.Contains(s, 0) {
		return nil
	}
	n := 1
	for _, dim := range s {
		if n > MaxElements/dim {
			return fmt.Errorf("%w: %v holds more than %d elements", ErrInvalidShape, s, MaxElements)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// broadcastMode tells an element-wise kernel how to index its operands.
type broadcastMode int

const (
	broadcastNone  broadcastMode = iota // identical shapes
	broadcastRight                      // (n, m) op (1, m)
	broadcastLeft                       // (1, m) op (n, m)
)

// broadcastShapes resolves the output shape of an element-wise binary op.
//
// Rules:
//  1. Ranks must match.
//  2. Identical shapes combine element by element.
//  3. For rank 2 only, a (1, m) row vector broadcasts over every row of an
//     (n, m) operand, on either side.
//
// Column broadcasting and rank-3 broadcasting are not supported.
//
// Examples:
//
//	(2, 3) + (2, 3) → (2, 3), broadcastNone
//	(4, 3) + (1, 3) → (4, 3), broadcastRight
//	(1, 3) + (4, 3) → (4, 3), broadcastLeft
//	(4, 3) + (4, 1) → error
func broadcastShapes(op string, a, b Shape) (Shape, broadcastMode, error) {
	if len(a) != len(b) {
		return nil, broadcastNone, shapeErrorf(op, ErrRankMismatch, "%v vs %v", a, b)
	}
	if a.Equal(b) {
		return a.Clone(), broadcastNone, nil
	}

	if len(a) == 2 && a[1] == b[1] {
		rA, rB := a[0], b[0]
		switch {
		case rB == 1:
			return a.Clone(), broadcastRight, nil
		case rA == 1:
			return b.Clone(), broadcastLeft, nil
		}
	}

	return nil, broadcastNone, shapeErrorf(op, ErrIncompatibleShapes, "%v vs %v", a, b)
}
