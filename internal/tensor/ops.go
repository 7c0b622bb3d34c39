package tensor

import "github.com/born-ml/tensor3/internal/parallel"

// Add performs element-wise addition with row broadcasting.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	b, _ := tensor.New(tensor.Shape{1, 2}, []float64{10, 20})
//	c, _ := a.Add(b) // Shape: [2, 2], values [11 22 13 24]
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return binaryOp("add", t, other, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with row broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return binaryOp("sub", t, other, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with row broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return binaryOp("mul", t, other, func(x, y float64) float64 { return x * y })
}

// MulScalar multiplies every element by value. The shape is preserved.
// A nil or released receiver yields the zero Tensor.
func (t *Tensor) MulScalar(value float64) *Tensor {
	if t == nil || t.buf == nil {
		return &Tensor{}
	}
	src := t.data()
	out := alloc(t.shape)
	dst := out.buf.data
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] * value
		}
	}, Parallelism())
	return out
}

// binaryOp applies f element by element. Operands must share a shape, or be
// a rank-2 (n, m) and (1, m) pair in either order.
func binaryOp(op string, a, b *Tensor, f func(x, y float64) float64) (*Tensor, error) {
	if err := a.valid(op); err != nil {
		return nil, err
	}
	if err := b.valid(op); err != nil {
		return nil, err
	}

	outShape, mode, err := broadcastShapes(op, a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out := alloc(outShape)
	dst, x, y := out.buf.data, a.data(), b.data()
	cfg := Parallelism()

	switch mode {
	case broadcastNone:
		parallel.ForChunks(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(x[i], y[i])
			}
		}, cfg)
	case broadcastRight:
		rows, cols := outShape[0], outShape[1]
		parallel.ForRows(rows, cols, func(i int) {
			row := i * cols
			for j := 0; j < cols; j++ {
				dst[row+j] = f(x[row+j], y[j])
			}
		}, cfg)
	case broadcastLeft:
		rows, cols := outShape[0], outShape[1]
		parallel.ForRows(rows, cols, func(i int) {
			row := i * cols
			for j := 0; j < cols; j++ {
				dst[row+j] = f(x[j], y[row+j])
			}
		}, cfg)
	}

	return out, nil
}
