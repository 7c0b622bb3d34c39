package tensor

import (
	"math"

	"github.com/born-ml/tensor3/internal/parallel"
)

// Transform maps one element to one element.
type Transform interface {
	Apply(x float64) float64
}

// TransformFunc adapts an ordinary function to Transform.
type TransformFunc func(x float64) float64

// Apply calls f(x).
func (f TransformFunc) Apply(x float64) float64 {
	return f(x)
}

// ReLU is the rectified linear unit: f(x) = max(x, 0).
type ReLU struct{}

// Apply implements Transform.
func (ReLU) Apply(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Sigmoid is the logistic function: f(x) = 1 / (1 + e^-x).
type Sigmoid struct{}

// Apply implements Transform.
func (Sigmoid) Apply(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Apply returns a new tensor of the same shape with tr applied to every
// element. The receiver is never modified. A nil or released receiver
// yields the zero Tensor.
//
// Example:
//
//	x, _ := tensor.Arange(-2, 2)
//	y := x.Apply(tensor.ReLU{}) // [0 0 0 1]
func (t *Tensor) Apply(tr Transform) *Tensor {
	if t == nil || t.buf == nil {
		return &Tensor{}
	}
	src := t.data()
	out := alloc(t.shape)
	dst := out.buf.data
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = tr.Apply(src[i])
		}
	}, Parallelism())
	return out
}
