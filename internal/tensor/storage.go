package tensor

import "sync/atomic"

// storage is a reference-counted flat buffer of float64 elements.
// Owning tensors hold the first reference; every view adds one. The slice is
// dropped only when the last reference is released, so a view never outlives
// the memory it reads.
type storage struct {
	data     []float64
	refCount atomic.Int32
}

// newStorage creates a zeroed buffer of n elements with refCount = 1.
func newStorage(n int) *storage {
	s := &storage{
		data: make([]float64, n),
	}
	s.refCount.Store(1)
	return s
}

// addRef increments the reference count (for views).
func (s *storage) addRef() {
	s.refCount.Add(1)
}

// release decrements the reference count and drops the buffer at zero.
func (s *storage) release() {
	if s.refCount.Add(-1) == 0 {
		s.data = nil
	}
}

// refs returns the current number of tensors referencing the buffer.
func (s *storage) refs() int {
	return int(s.refCount.Load())
}
