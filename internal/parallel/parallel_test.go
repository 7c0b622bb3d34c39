package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Sequential())

	assert.Equal(t, int64(100), counter)
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units run as a single chunk.
	cfg := DefaultConfig()
	n := cfg.MinChunkSize - 1

	var calls int64
	ForChunks(n, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, 0, start)
		assert.Equal(t, n, end)
	}, cfg)

	assert.Equal(t, int64(1), calls)
}

func TestFor_Empty(t *testing.T) {
	ForChunks(0, func(_, _ int) {
		t.Fatal("f must not be called for an empty range")
	}, DefaultConfig())
}

func TestForChunks_Coverage(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 5}
	n := 103

	var mu sync.Mutex
	seen := make([]int, n)
	ForChunks(n, func(start, end int) {
		assert.Less(t, start, end)
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			seen[i]++
		}
	}, cfg)

	for i, c := range seen {
		assert.Equal(t, 1, c, "index %d visited %d times", i, c)
	}
}

func TestForRows(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	rows, cols := 9, 4
	results := make([]bool, rows)

	ForRows(rows, cols, func(r int) {
		results[r] = true
	}, cfg)

	for r, ok := range results {
		assert.True(t, ok, "missing row %d", r)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, Sequential())
		}
	})
}
