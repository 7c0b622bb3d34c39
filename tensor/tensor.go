// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensor3/internal/parallel"
	"github.com/born-ml/tensor3/internal/tensor"
)

// Type aliases for public API

// Tensor is a rank 1-3 array of float64 values stored row-major.
//
// Example:
//
//	x, _ := tensor.Arange(0, 12)
//	m, _ := x.View(tensor.Shape{3, 4}) // shares x's storage
//	v, _ := m.At(1, 2)                 // 6
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ShapeError describes a failed tensor operation.
type ShapeError = tensor.ShapeError

// Transform maps one element to one element.
type Transform = tensor.Transform

// TransformFunc adapts an ordinary function to Transform.
type TransformFunc = tensor.TransformFunc

// ReLU is the rectified linear unit: f(x) = max(x, 0).
type ReLU = tensor.ReLU

// Sigmoid is the logistic function: f(x) = 1 / (1 + e^-x).
type Sigmoid = tensor.Sigmoid

// Sampler is a source of uniform real numbers in [0, 1).
type Sampler = tensor.Sampler

// ParallelConfig controls how large operations are split across goroutines.
type ParallelConfig = parallel.Config

// MaxRank is the highest supported number of dimensions.
const MaxRank = tensor.MaxRank

// MaxElements is the largest element count a tensor may hold.
const MaxElements = tensor.MaxElements

// Error kinds.
var (
	ErrInvalidShape       = tensor.ErrInvalidShape
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrRankMismatch       = tensor.ErrRankMismatch
	ErrIncompatibleShapes = tensor.ErrIncompatibleShapes
	ErrIndexOutOfRange    = tensor.ErrIndexOutOfRange
	ErrRankLimit          = tensor.ErrRankLimit
	ErrEmptyInput         = tensor.ErrEmptyInput
	ErrInvalidRange       = tensor.ErrInvalidRange
)

// Creation functions

// New creates a tensor from a shape and its row-major values.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
func New(shape Shape, values []float64) (*Tensor, error) {
	return tensor.New(shape, values)
}

// Must panics if err is non-nil and returns t otherwise.
func Must(t *Tensor, err error) *Tensor {
	return tensor.Must(t, err)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Random creates a tensor with elements drawn uniformly from [minVal, maxVal).
//
// Example:
//
//	x, _ := tensor.Random(tensor.Shape{2, 3, 4}, 1, 10)
func Random(shape Shape, minVal, maxVal float64) (*Tensor, error) {
	return tensor.Random(shape, minVal, maxVal)
}

// RandomWith is Random with a caller-supplied sampler.
func RandomWith(shape Shape, minVal, maxVal float64, sampler Sampler) (*Tensor, error) {
	return tensor.RandomWith(shape, minVal, maxVal, sampler)
}

// Arange creates a rank-1 tensor holding start, start+1, ... below end.
//
// Example:
//
//	x, _ := tensor.Arange(-5.1, 5.1) // [-5.1 -4.1 ... 4.9]
func Arange(start, end float64) (*Tensor, error) {
	return tensor.Arange(start, end)
}

// Eye creates an n×n identity matrix.
func Eye(n int) (*Tensor, error) {
	return tensor.Eye(n)
}

// Structural functions

// Concat joins tensors along axis.
//
// Example:
//
//	a, _ := tensor.Ones(tensor.Shape{2, 3})
//	b, _ := tensor.Zeros(tensor.Shape{2, 3})
//	c, _ := tensor.Concat([]*tensor.Tensor{a, b}, 1) // Shape: [2, 6]
func Concat(tensors []*Tensor, axis int) (*Tensor, error) {
	return tensor.Concat(tensors, axis)
}

// Dot returns the inner product of two rank-1 tensors as a 1-element tensor.
func Dot(a, b *Tensor) (*Tensor, error) {
	return tensor.Dot(a, b)
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
func MatMul(a, b *Tensor) (*Tensor, error) {
	return tensor.MatMul(a, b)
}

// Runtime settings

// SetParallelism replaces the worker configuration used for large tensors.
func SetParallelism(cfg ParallelConfig) {
	tensor.SetParallelism(cfg)
}

// DefaultParallelism returns a configuration sized to the CPU count.
func DefaultParallelism() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetBLASThreshold sets the multiply-add count above which MatMul uses gonum.
// A value <= 0 disables the gonum path.
func SetBLASThreshold(n int) {
	tensor.SetBLASThreshold(n)
}
