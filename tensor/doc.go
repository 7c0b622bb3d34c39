// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides small rank 1-3 float64 tensors.
//
// # Overview
//
// Tensors are flat row-major buffers plus a shape of one to three
// dimensions. This package provides:
//   - Construction from values and factories (Zeros, Ones, Full, Random, Arange, Eye)
//   - Element-wise Add, Sub, Mul with row broadcasting, and MulScalar
//   - Zero-copy reshaping via View and Unsqueeze
//   - Concat along any axis, Dot and MatMul
//   - Element-wise transforms (ReLU, Sigmoid, or any TransformFunc)
//
// # Basic Usage
//
//	import "github.com/born-ml/tensor3/tensor"
//
//	func main() {
//	    a, _ := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	    b, _ := tensor.New(tensor.Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
//
//	    c, err := tensor.MatMul(a, b) // [[22 28] [49 64]]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(c.Apply(tensor.Sigmoid{}))
//	}
//
// # Broadcasting
//
// Operands of Add, Sub and Mul must have identical shapes, with one
// exception: a rank-2 (1, m) row vector broadcasts over every row of an
// (n, m) operand, on either side.
//
//	x, _ := tensor.Ones(tensor.Shape{3, 4})   // (3, 4)
//	row, _ := tensor.Zeros(tensor.Shape{1, 4}) // (1, 4)
//	y, _ := x.Add(row)                         // (3, 4)
//
// Column broadcasting and rank-3 broadcasting return ErrIncompatibleShapes.
//
// # Memory Management
//
// Views share a reference-counted buffer with the tensor they were created
// from. Release drops a reference; the buffer is freed with the last one.
// No operation modifies a tensor in place.
//
// # Errors
//
// Every fallible operation returns an error wrapping one of ErrInvalidShape,
// ErrShapeMismatch, ErrRankMismatch, ErrIncompatibleShapes,
// ErrIndexOutOfRange, ErrRankLimit, ErrEmptyInput or ErrInvalidRange.
// Use errors.Is to test for a kind and errors.As to get a *ShapeError.
package tensor
