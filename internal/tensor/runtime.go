package tensor

import (
	"sync/atomic"

	"github.com/born-ml/tensor3/internal/parallel"
)

// DefaultBLASThreshold is the number of multiply-adds above which MatMul
// hands the product to gonum.
const DefaultBLASThreshold = 1 << 20

var (
	parallelCfg   atomic.Pointer[parallel.Config]
	blasThreshold atomic.Int64
)

func init() {
	cfg := parallel.DefaultConfig()
	parallelCfg.Store(&cfg)
	blasThreshold.Store(DefaultBLASThreshold)
}

// SetParallelism replaces the worker configuration used by element-wise
// operations, Apply and MatMul. Results do not depend on it.
func SetParallelism(cfg parallel.Config) {
	parallelCfg.Store(&cfg)
}

// Parallelism returns the current worker configuration.
func Parallelism() parallel.Config {
	return *parallelCfg.Load()
}

// SetBLASThreshold sets the multiply-add count above which MatMul uses
// gonum's dense product. A value <= 0 disables the gonum path.
func SetBLASThreshold(n int) {
	blasThreshold.Store(int64(n))
}

// BLASThreshold returns the current gonum threshold.
func BLASThreshold() int {
	return int(blasThreshold.Load())
}
