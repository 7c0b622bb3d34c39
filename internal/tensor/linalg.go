package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensor3/internal/parallel"
)

// Dot returns the inner product of two rank-1 tensors of equal length.
// The result is a rank-1 tensor holding a single element.
//
// Example:
//
//	a, _ := tensor.Arange(1, 5) // [1 2 3 4]
//	b, _ := tensor.Arange(2, 6) // [2 3 4 5]
//	c, _ := tensor.Dot(a, b)    // [40]
func Dot(a, b *Tensor) (*Tensor, error) {
	if err := a.valid("dot"); err != nil {
		return nil, err
	}
	if err := b.valid("dot"); err != nil {
		return nil, err
	}
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return nil, shapeErrorf("dot", ErrRankMismatch, "both tensors must be 1D, got %v and %v", a.shape, b.shape)
	}
	if a.NumElements() != b.NumElements() {
		return nil, shapeErrorf("dot", ErrShapeMismatch, "%v vs %v", a.shape, b.shape)
	}

	out := alloc(Shape{1})
	out.buf.data[0] = floats.Dot(a.data(), b.data())
	return out, nil
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Small products use a row-parallel triple loop. Products with more than
// BLASThreshold multiply-adds are computed by gonum.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := tensor.New(tensor.Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
//	c, _ := tensor.MatMul(a, b) // [[22 28] [49 64]]
func MatMul(a, b *Tensor) (*Tensor, error) {
	if err := a.valid("matmul"); err != nil {
		return nil, err
	}
	if err := b.valid("matmul"); err != nil {
		return nil, err
	}
	if len(a.shape) != 2 || len(b.shape) != 2 {
		return nil, shapeErrorf("matmul", ErrRankMismatch,
			"only 2D tensors supported, got %dD and %dD", len(a.shape), len(b.shape))
	}

	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		return nil, shapeErrorf("matmul", ErrIncompatibleShapes, "[%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	out := alloc(Shape{m, n})
	if m == 0 || n == 0 {
		return out, nil
	}

	if threshold := BLASThreshold(); threshold > 0 && k > 0 && m*k*n > threshold {
		matmulDense(out.buf.data, a.data(), b.data(), m, k, n)
	} else {
		matmulNaive(out.buf.data, a.data(), b.data(), m, k, n, Parallelism())
	}
	return out, nil
}

// matmulNaive computes C[i,j] = sum_k A[i,k] * B[k,j], one row of C per task.
func matmulNaive(c, a, b []float64, m, k, n int, cfg parallel.Config) {
	parallel.ForRows(m, k*n, func(i int) {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

// matmulDense wraps the row-major buffers as gonum matrices without copying.
// Dimensions must be non-zero.
func matmulDense(c, a, b []float64, m, k, n int) {
	am := mat.NewDense(m, k, a)
	bm := mat.NewDense(k, n, b)
	cm := mat.NewDense(m, n, c)
	cm.Mul(am, bm)
}
