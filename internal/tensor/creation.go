package tensor

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	// Storage is already zero-initialized by make()
	return alloc(shape), nil
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("ones: %w", err)
	}
	return fill(shape, 1), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("full: %w", err)
	}
	return fill(shape, value), nil
}

func fill(shape Shape, value float64) *Tensor {
	t := alloc(shape)
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t
}

// Sampler is a source of uniform real numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Sampler interface {
	Float64() float64
}

// Random creates a tensor whose elements are drawn independently and
// uniformly from [minVal, maxVal).
//
// Each call seeds its own generator, so concurrent calls never share state.
// Note: Uses math/rand (not crypto/rand) - appropriate for numeric experiments.
func Random(shape Shape, minVal, maxVal float64) (*Tensor, error) {
	//nolint:gosec // G404: numeric sampling uses math/rand intentionally
	src := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return RandomWith(shape, minVal, maxVal, src)
}

// RandomWith is Random with a caller-supplied sampler, for reproducible runs.
func RandomWith(shape Shape, minVal, maxVal float64, sampler Sampler) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	if math.IsNaN(minVal) || math.IsNaN(maxVal) || minVal > maxVal {
		return nil, shapeErrorf("random", ErrInvalidRange, "[%g, %g)", minVal, maxVal)
	}

	t := alloc(shape)
	span := maxVal - minVal
	for i := range t.buf.data {
		t.buf.data[i] = minVal + span*sampler.Float64()
	}
	return t, nil
}

// Arange creates a rank-1 tensor holding start, start+1, start+2, ... while
// the value stays strictly below end.
//
// Example:
//
//	t, _ := tensor.Arange(-5.1, 5.1) // [-5.1 -4.1 ... 4.9], 11 elements
func Arange(start, end float64) (*Tensor, error) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil, shapeErrorf("arange", ErrInvalidRange, "[%g, %g)", start, end)
	}

	span := end - start
	if !(span > 0) {
		return nil, shapeErrorf("arange", ErrInvalidShape, "empty range [%g, %g)", start, end)
	}
	if span > MaxElements {
		return nil, shapeErrorf("arange", ErrInvalidShape, "range [%g, %g) holds more than %d elements", start, end, MaxElements)
	}

	// Ceil may be off by one step when end-start rounds.
	n := int(math.Ceil(span))
	if n > 1 && start+float64(n-1) >= end {
		n--
	}
	if n < MaxElements && start+float64(n) < end {
		n++
	}

	t := alloc(Shape{n})
	for i := range t.buf.data {
		t.buf.data[i] = start + float64(i)
	}
	return t, nil
}

// Eye creates an n×n identity matrix.
func Eye(n int) (*Tensor, error) {
	t, err := Zeros(Shape{n, n})
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	for i := 0; i < n; i++ {
		t.buf.data[i*n+i] = 1
	}
	return t, nil
}
