package tensor

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// mustNew creates a tensor, failing the test on error.
func mustNew(t *testing.T, shape Shape, values []float64) *Tensor {
	t.Helper()
	x, err := New(shape, values)
	require.NoError(t, err)
	return x
}

func TestNew(t *testing.T) {
	values := []float64{1, 2, 34, 56.2, 3, 0}
	x := mustNew(t, Shape{2, 3}, values)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.NumElements())
	assert.True(t, x.OwnsStorage())
	assert.False(t, x.IsView())
	assert.Equal(t, values, x.Data())

	// Input slice is copied.
	values[0] = 100
	v, err := x.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestNew_RowMajorReadBack(t *testing.T) {
	shapes := []Shape{{7}, {3, 4}, {2, 3, 4}}
	for _, shape := range shapes {
		values := make([]float64, shape.NumElements())
		for i := range values {
			values[i] = float64(i)*1.5 - 3
		}
		x := mustNew(t, shape, values)

		strides := shape.ComputeStrides()
		idx := make([]int, len(shape))
		for linear := range values {
			rem := linear
			for d := range shape {
				idx[d] = rem / strides[d]
				rem %= strides[d]
			}
			got, err := x.At(idx...)
			require.NoError(t, err)
			assert.Equal(t, values[linear], got, "shape %v index %v", shape, idx)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		values []float64
		kind   error
	}{
		{"rank 0", Shape{}, nil, ErrInvalidShape},
		{"rank 4", Shape{1, 1, 1, 1}, []float64{1}, ErrInvalidShape},
		{"negative dim", Shape{-2}, nil, ErrInvalidShape},
		{"too few values", Shape{2, 3}, []float64{1, 2, 3}, ErrShapeMismatch},
		{"too many values", Shape{2}, []float64{1, 2, 3}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := New(tt.shape, tt.values)
			assert.Nil(t, x)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestNew_ShapeErrorDetails(t *testing.T) {
	_, err := New(Shape{2, 2}, []float64{1})

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "new", shapeErr.Op)
	assert.Equal(t, ErrShapeMismatch, shapeErr.Kind)
	assert.Contains(t, err.Error(), "requires 4 elements, but got 1")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(New(Shape{1}, []float64{1})) })
	assert.Panics(t, func() { Must(New(Shape{2}, []float64{1})) })
}

func TestZeroValueTensor(t *testing.T) {
	var x Tensor

	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, 0, x.NumElements())
	assert.False(t, x.OwnsStorage())
	assert.Empty(t, x.Data())
	assert.Equal(t, "", x.String())

	_, err := x.View(Shape{1})
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = x.Add(&x)
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = Concat([]*Tensor{&x}, 0)
	require.ErrorIs(t, err, ErrInvalidShape)

	assert.Equal(t, 0, x.MulScalar(2).Rank())
	assert.Equal(t, 0, x.Apply(ReLU{}).Rank())
	assert.Equal(t, 0, x.Clone().Rank())
}

func TestAt_Errors(t *testing.T) {
	x := Must(Zeros(Shape{2, 3}))

	_, err := x.At(1)
	require.ErrorIs(t, err, ErrRankMismatch)
	_, err = x.At(2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = x.At(0, -1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestZerosOnes(t *testing.T) {
	shapes := []Shape{{4}, {2, 3}, {2, 3, 3}}
	for _, shape := range shapes {
		z, err := Zeros(shape)
		require.NoError(t, err)
		o, err := Ones(shape)
		require.NoError(t, err)

		assert.Equal(t, shape.NumElements(), z.NumElements())
		assert.Equal(t, shape.NumElements(), o.NumElements())
		for _, v := range z.Data() {
			assert.Equal(t, 0.0, v)
		}
		for _, v := range o.Data() {
			assert.Equal(t, 1.0, v)
		}
	}

	_, err := Zeros(Shape{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = Ones(Shape{})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestFull(t *testing.T) {
	x, err := Full(Shape{3, 3}, 3.14)
	require.NoError(t, err)
	for _, v := range x.Data() {
		assert.Equal(t, 3.14, v)
	}
}

func TestEye(t *testing.T) {
	x, err := Eye(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, x.Data())

	_, err = Eye(-1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestRandom(t *testing.T) {
	x, err := Random(Shape{2, 3, 4}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, x.Shape())

	data := x.Data()
	for i, v := range data {
		assert.GreaterOrEqual(t, v, 1.0, "element %d", i)
		assert.Less(t, v, 10.0, "element %d", i)
	}

	allSame := true
	for _, v := range data[1:] {
		if v != data[0] {
			allSame = false
			break
		}
	}
	assert.False(t, allSame, "Random should produce different values")
}

func TestRandomWith_Reproducible(t *testing.T) {
	a, err := RandomWith(Shape{4, 4}, -1, 1, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b, err := RandomWith(Shape{4, 4}, -1, 1, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestRandom_Errors(t *testing.T) {
	_, err := Random(Shape{2}, 5, 1)
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = Random(Shape{}, 0, 1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestArange(t *testing.T) {
	x, err := Arange(-5.1, 5.1)
	require.NoError(t, err)

	want := []float64{-5.1, -4.1, -3.1, -2.1, -1.1, -0.1, 0.9, 1.9, 2.9, 3.9, 4.9}
	assert.Equal(t, Shape{11}, x.Shape())
	assert.InDeltaSlice(t, want, x.Data(), 1e-12)

	x, err = Arange(0, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, x.NumElements())
	assert.Equal(t, 11.0, x.Data()[11])

	// Fractional end includes the last integer step below it.
	x, err = Arange(0, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, x.Data())
}

func TestArange_Empty(t *testing.T) {
	_, err := Arange(3, 3)
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = Arange(5, 1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestArange_Large(t *testing.T) {
	_, err := Arange(0, 1e20)
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = Arange(-1e300, 1e300)
	require.ErrorIs(t, err, ErrInvalidShape)

	x, err := Arange(1e15, 1e15+3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e15, 1e15 + 1, 1e15 + 2}, x.Data())

	x, err = Arange(0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, x.Data())
}

func TestArange_CountMatchesStepping(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Float64Range(-100, 100).Draw(rt, "start")
		end := start + rapid.Float64Range(1e-9, 50).Draw(rt, "span")

		want := 0
		for start+float64(want) < end {
			want++
		}

		x, err := Arange(start, end)
		if err != nil {
			rt.Fatalf("Arange(%v, %v): %v", start, end, err)
		}
		if x.NumElements() != want {
			rt.Fatalf("Arange(%v, %v) has %d elements, stepping gives %d", start, end, x.NumElements(), want)
		}
	})
}

func TestClone(t *testing.T) {
	src := Must(Arange(0, 6))
	v := Must(src.View(Shape{2, 3}))

	c := v.Clone()
	assert.True(t, c.OwnsStorage())
	assert.False(t, c.IsView())
	assert.False(t, c.IsShared())
	assert.True(t, c.Equal(v))
	if diff := cmp.Diff(v.Shape(), c.Shape()); diff != "" {
		t.Errorf("Clone shape mismatch (-want +got):\n%s", diff)
	}
}

func TestRelease(t *testing.T) {
	src := Must(Arange(0, 12))
	v := Must(src.View(Shape{3, 4}))
	assert.True(t, src.IsShared())

	src.Release()
	assert.Equal(t, 0, src.Rank())
	assert.False(t, v.IsShared())

	// The view keeps the storage alive.
	got, err := v.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)

	v.Release()
	v.Release() // second release is a no-op
	assert.Equal(t, 0, v.Rank())
}

func TestConcurrentViewRelease(t *testing.T) {
	src := Must(Arange(0, 12))

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := src.View(Shape{3, 4})
			if err != nil {
				t.Errorf("View failed: %v", err)
				return
			}
			_, _ = v.At(2, 3)
			v.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, src.buf.refs())
	assert.False(t, src.IsShared())
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, src.Data())
}

func TestNilReceiver(t *testing.T) {
	var x *Tensor

	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, 0, x.NumElements())
	assert.Nil(t, x.Shape())
	assert.False(t, x.IsView())
	assert.False(t, x.OwnsStorage())
	assert.False(t, x.IsShared())
	assert.Empty(t, x.Data())
	assert.Empty(t, x.String())

	assert.Equal(t, 0, x.MulScalar(2).Rank())
	assert.Equal(t, 0, x.Apply(ReLU{}).Rank())
	assert.Equal(t, 0, x.Clone().Rank())
	assert.NotPanics(t, x.Release)

	_, err := x.At(0)
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = x.View(Shape{1})
	require.ErrorIs(t, err, ErrInvalidShape)
	_, err = x.Add(Must(Ones(Shape{1})))
	require.ErrorIs(t, err, ErrInvalidShape)

	released := Must(Ones(Shape{2}))
	released.Release()
	assert.Equal(t, 0, released.MulScalar(3).Rank())
	assert.Equal(t, 0, released.Apply(Sigmoid{}).Rank())
}
