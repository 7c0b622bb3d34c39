package tensor

import "fmt"

// Tensor is a rank 1-3 array of float64 values stored row-major.
//
// A Tensor either owns its storage (constructors, factories, Clone and every
// arithmetic result) or is a view that shares the storage of another tensor
// (View, Unsqueeze). No operation mutates a tensor in place, so a view stays
// consistent with its source for as long as either is alive.
//
// The zero value has rank 0 and no storage. It is rejected by every
// operation with ErrInvalidShape.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	b, _ := tensor.New(tensor.Shape{1, 2}, []float64{10, 20})
//	c, _ := a.Add(b) // [[11 22] [13 24]]
type Tensor struct {
	buf    *storage
	shape  Shape
	stride []int
	view   bool
}

// New creates a tensor from a shape and its row-major values.
// The values are copied into newly owned storage.
func New(shape Shape, values []float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if shape.NumElements() != len(values) {
		return nil, shapeErrorf("new", ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(values))
	}

	t := alloc(shape)
	copy(t.buf.data, values)
	return t, nil
}

// Must panics if err is non-nil and returns t otherwise.
// Intended for literals in tests and examples.
func Must(t *Tensor, err error) *Tensor {
	if err != nil {
		panic(err)
	}
	return t
}

// alloc creates an owning tensor with zeroed storage. The shape must be valid.
func alloc(shape Shape) *Tensor {
	return &Tensor{
		buf:    newStorage(shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	if t == nil {
		return nil
	}
	return t.shape.Clone()
}

// Rank returns the number of dimensions (0 for the zero value and nil).
func (t *Tensor) Rank() int {
	if t == nil {
		return 0
	}
	return len(t.shape)
}

// NumElements returns the product of the shape.
func (t *Tensor) NumElements() int {
	if t == nil {
		return 0
	}
	return t.shape.NumElements()
}

// IsView reports whether the tensor aliases storage created by another tensor.
func (t *Tensor) IsView() bool {
	return t != nil && t.view
}

// OwnsStorage reports whether the tensor created its own storage.
func (t *Tensor) OwnsStorage() bool {
	return t != nil && t.buf != nil && !t.view
}

// IsShared reports whether any other tensor references the same storage.
func (t *Tensor) IsShared() bool {
	return t != nil && t.buf != nil && t.buf.refs() > 1
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor) Data() []float64 {
	out := make([]float64, t.NumElements())
	copy(out, t.data())
	return out
}

// data returns the backing slice without copying. Callers must not write to it.
func (t *Tensor) data() []float64 {
	if t == nil || t.buf == nil {
		return nil
	}
	return t.buf.data[:t.NumElements()]
}

// At returns the element at the given indices.
//
// Example:
//
//	m, _ := tensor.Must(tensor.Arange(0, 12)).View(tensor.Shape{3, 4})
//	v, _ := m.At(1, 2) // 6
func (t *Tensor) At(indices ...int) (float64, error) {
	if err := t.valid("at"); err != nil {
		return 0, err
	}
	if len(indices) != len(t.shape) {
		return 0, shapeErrorf("at", ErrRankMismatch, "expected %d indices, got %d", len(t.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, shapeErrorf("at", ErrIndexOutOfRange,
				"index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}
		offset += idx * t.stride[i]
	}

	return t.buf.data[offset], nil
}

// Clone creates a deep copy. The copy always owns its storage, even when
// the receiver is a view.
func (t *Tensor) Clone() *Tensor {
	if t == nil || t.buf == nil {
		return &Tensor{}
	}
	c := alloc(t.shape)
	copy(c.buf.data, t.data())
	return c
}

// Release drops this tensor's reference to its storage and resets it to the
// zero value. Views that still reference the storage keep it alive.
func (t *Tensor) Release() {
	if t == nil || t.buf == nil {
		return
	}
	t.buf.release()
	*t = Tensor{}
}

// valid checks the rank invariant on the receiver of an operation.
func (t *Tensor) valid(op string) error {
	if t == nil || t.buf == nil {
		return shapeErrorf(op, ErrInvalidShape, "tensor has no storage")
	}
	if err := t.shape.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
