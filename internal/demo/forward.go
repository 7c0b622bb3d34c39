package demo

import (
	"fmt"

	"github.com/born-ml/tensor3/internal/tensor"
)

// ForwardConfig sizes the two-layer forward pass.
type ForwardConfig struct {
	Batch  int // Number of input samples.
	Height int // Input rows per sample.
	Width  int // Input columns per sample.
	Hidden int // Units in the hidden layer.
	Out    int // Units in the output layer.

	// Weights, biases and inputs are drawn from [Low, High).
	Low, High float64

	// Sampler makes runs reproducible. Nil uses a fresh random source per tensor.
	Sampler tensor.Sampler
}

// DefaultForwardConfig returns the 1000×20×20 → 100 → 10 network.
func DefaultForwardConfig() ForwardConfig {
	return ForwardConfig{
		Batch:  1000,
		Height: 20,
		Width:  20,
		Hidden: 100,
		Out:    10,
		Low:    0,
		High:   10,
	}
}

func (c ForwardConfig) random(shape tensor.Shape) (*tensor.Tensor, error) {
	if c.Sampler != nil {
		return tensor.RandomWith(shape, c.Low, c.High, c.Sampler)
	}
	return tensor.Random(shape, c.Low, c.High)
}

// Forward runs input → view → matmul → +bias → ReLU → matmul → +bias → Sigmoid
// and returns the (Batch, Out) activations.
func Forward(cfg ForwardConfig) (*tensor.Tensor, error) {
	features := cfg.Height * cfg.Width

	input, err := cfg.random(tensor.Shape{cfg.Batch, cfg.Height, cfg.Width})
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	flat, err := input.View(tensor.Shape{cfg.Batch, features})
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	hidden, err := dense(cfg, flat, features, cfg.Hidden)
	if err != nil {
		return nil, fmt.Errorf("hidden layer: %w", err)
	}
	hidden = hidden.Apply(tensor.ReLU{})

	out, err := dense(cfg, hidden, cfg.Hidden, cfg.Out)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	return out.Apply(tensor.Sigmoid{}), nil
}

// dense computes x @ W + b with W (in, out) and b (1, out) drawn at random.
func dense(cfg ForwardConfig, x *tensor.Tensor, in, out int) (*tensor.Tensor, error) {
	w, err := cfg.random(tensor.Shape{in, out})
	if err != nil {
		return nil, err
	}
	b, err := cfg.random(tensor.Shape{1, out})
	if err != nil {
		return nil, err
	}
	y, err := tensor.MatMul(x, w)
	if err != nil {
		return nil, err
	}
	return y.Add(b)
}
