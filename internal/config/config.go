// Package config handles CLI configuration loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/tensor3/internal/parallel"
	"github.com/born-ml/tensor3/internal/tensor"
)

// Config holds all CLI configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Parallel ParallelConfig `yaml:"parallel"`
	MatMul   MatMulConfig   `yaml:"matmul"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"TENSOR3_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"TENSOR3_LOG_FORMAT" yaml:"format"`
}

// ParallelConfig holds worker settings for large tensor operations.
type ParallelConfig struct {
	Enabled      bool `envconfig:"TENSOR3_PARALLEL" yaml:"enabled"`
	Workers      int  `envconfig:"TENSOR3_WORKERS" yaml:"workers"`
	MinChunkSize int  `envconfig:"TENSOR3_MIN_CHUNK" yaml:"min_chunk_size"`
}

// MatMulConfig holds matrix multiplication settings.
type MatMulConfig struct {
	BLASThreshold int `envconfig:"TENSOR3_BLAS_THRESHOLD" yaml:"blas_threshold"` // 0 = never use gonum
}

// Load loads configuration from defaults, an optional YAML file and the
// environment, in increasing priority.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	def := parallel.DefaultConfig()

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}

	cfg.Parallel = ParallelConfig{
		Enabled:      def.Enabled,
		Workers:      def.NumWorkers,
		MinChunkSize: def.MinChunkSize,
	}

	cfg.MatMul = MatMulConfig{
		BLASThreshold: tensor.DefaultBLASThreshold,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if c.Parallel.Workers < 1 {
		errs = append(errs, "workers must be positive")
	}
	if c.Parallel.Workers > 16*runtime.NumCPU() {
		errs = append(errs, fmt.Sprintf("workers must not exceed %d", 16*runtime.NumCPU()))
	}

	if c.Parallel.MinChunkSize < 1 {
		errs = append(errs, "min_chunk_size must be positive")
	}

	if c.MatMul.BLASThreshold < 0 {
		errs = append(errs, "blas_threshold must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// ParallelOptions converts the parallel section to a worker configuration.
func (c *Config) ParallelOptions() parallel.Config {
	return parallel.Config{
		Enabled:      c.Parallel.Enabled,
		NumWorkers:   c.Parallel.Workers,
		MinChunkSize: c.Parallel.MinChunkSize,
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
