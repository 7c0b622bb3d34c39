package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensor3/internal/tensor"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, tensor.DefaultBLASThreshold, cfg.MatMul.BLASThreshold)
	assert.Positive(t, cfg.Parallel.Workers)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TENSOR3_LOG_LEVEL", "debug")
	t.Setenv("TENSOR3_WORKERS", "3")
	t.Setenv("TENSOR3_PARALLEL", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	opts := cfg.ParallelOptions()
	assert.False(t, opts.Enabled)
	assert.Equal(t, 3, opts.NumWorkers)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
log:
  level: warn
  format: json
parallel:
  enabled: true
  workers: 2
  min_chunk_size: 128
matmul:
  blas_threshold: 0
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Parallel.Workers)
	assert.Equal(t, 128, cfg.Parallel.MinChunkSize)
	assert.Equal(t, 0, cfg.MatMul.BLASThreshold)
}

func TestEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("TENSOR3_LOG_LEVEL", "error")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "verbose"
	cfg.Parallel.Workers = 0
	cfg.MatMul.BLASThreshold = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "workers must be positive")
	assert.Contains(t, err.Error(), "blas_threshold")
}
