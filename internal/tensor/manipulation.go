package tensor

import (
	"fmt"
	"strings"
)

// View returns a tensor with a new shape that shares the receiver's storage.
// The new shape must have the same number of elements.
//
// This is a view operation (no data copy). The storage stays alive until both
// the receiver and every view have been released or collected.
//
// Example:
//
//	t, _ := tensor.Arange(0, 12) // Shape: [12]
//	m, _ := t.View(tensor.Shape{3, 4}) // Shape: [3, 4]
func (t *Tensor) View(shape Shape) (*Tensor, error) {
	if err := t.valid("view"); err != nil {
		return nil, err
	}
	if shape.NumElements() != t.NumElements() || len(shape) == 0 {
		return nil, shapeErrorf("view", ErrShapeMismatch,
			"cannot view %v (%d elements) as %v", t.shape, t.NumElements(), shape)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	t.buf.addRef()
	return &Tensor{
		buf:    t.buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		view:   true,
	}, nil
}

// Unsqueeze inserts a dimension of size 1 at the given axis.
// Valid axes are 0 through Rank(). This is a view operation (no data copy).
//
// Example:
//
//	x, _ := tensor.Arange(0, 3) // Shape: [3]
//	row, _ := x.Unsqueeze(0)   // Shape: [1, 3]
//	col, _ := x.Unsqueeze(1)   // Shape: [3, 1]
func (t *Tensor) Unsqueeze(axis int) (*Tensor, error) {
	if err := t.valid("unsqueeze"); err != nil {
		return nil, err
	}
	rank := len(t.shape)
	if rank == MaxRank {
		return nil, shapeErrorf("unsqueeze", ErrRankLimit, "tensor %v already has rank %d", t.shape, MaxRank)
	}
	if axis < 0 || axis > rank {
		return nil, shapeErrorf("unsqueeze", ErrIndexOutOfRange, "axis %d for rank %d", axis, rank)
	}

	shape := make(Shape, 0, rank+1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[axis:]...)

	return t.View(shape)
}

// Concat joins tensors along axis. All tensors must have the rank of the
// first one and match it on every other axis.
//
// The result is laid out as the row-major order of the joined array: for each
// index combination on the axes before axis, the blocks of every input are
// copied in input order.
//
// Example:
//
//	a, _ := tensor.Ones(tensor.Shape{2, 3})
//	b, _ := tensor.Zeros(tensor.Shape{2, 3})
//	c, _ := tensor.Concat([]*tensor.Tensor{a, b}, 1) // Shape: [2, 6]
func Concat(tensors []*Tensor, axis int) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, shapeErrorf("concat", ErrEmptyInput, "at least one tensor required")
	}

	base := tensors[0]
	if err := base.valid("concat"); err != nil {
		return nil, err
	}
	rank := len(base.shape)
	if axis < 0 || axis >= rank {
		return nil, shapeErrorf("concat", ErrIndexOutOfRange, "axis %d for rank %d", axis, rank)
	}

	total := 0
	for i, t := range tensors {
		if t == nil || t.buf == nil {
			return nil, shapeErrorf("concat", ErrInvalidShape, "tensor %d has no storage", i)
		}
		if len(t.shape) != rank {
			return nil, shapeErrorf("concat", ErrRankMismatch,
				"tensor %d has shape %v, want rank %d", i, t.shape, rank)
		}
		for d := 0; d < rank; d++ {
			if d != axis && t.shape[d] != base.shape[d] {
				return nil, shapeErrorf("concat", ErrIncompatibleShapes,
					"tensor %d has shape %v, want %s", i, t.shape, describeConcatShape(base.shape, axis))
			}
		}
		total += t.shape[axis]
	}

	outShape := base.shape.Clone()
	outShape[axis] = total

	// outer: combinations of axes before axis; inner: elements after axis.
	outer, inner := 1, 1
	for d := 0; d < axis; d++ {
		outer *= base.shape[d]
	}
	for d := axis + 1; d < rank; d++ {
		inner *= base.shape[d]
	}

	out := alloc(outShape)
	dst := out.buf.data[:0]
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			block := t.shape[axis] * inner
			dst = append(dst, t.data()[o*block:(o+1)*block]...)
		}
	}

	return out, nil
}

// describeConcatShape renders a shape with the free axis as '*', e.g. [2 * 4].
func describeConcatShape(s Shape, axis int) string {
	parts := make([]string, len(s))
	for i, d := range s {
		if i == axis {
			parts[i] = "*"
			continue
		}
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
