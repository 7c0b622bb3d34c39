package demo

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensor3/internal/tensor"
)

func TestScenarios_Run(t *testing.T) {
	scenarios := Scenarios()
	require.Len(t, scenarios, 15)

	for i, s := range scenarios {
		assert.Equal(t, i+1, s.Number)
		t.Run(s.Title, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, s.Run(&buf))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestScenario_Output(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{5, "[ -5.1 -4.1 -3.1 -2.1 -1.1 -0.1 0.9 1.9 2.9 3.9 4.9 ]"},
		{7, "[ 0 0 ]\n[ 2 2 ]\n"},
		{12, "[ 1 1 1 0 0 0 ]\n[ 1 1 1 0 0 0 ]\n"},
		{13, "[ 40 ]"},
		{14, "[ 22 28 ]\n[ 49 64 ]\n"},
		{15, "[ 0.5 0.5 0.5 0.5 0.5 ]\n"},
	}

	for _, tt := range tests {
		s, ok := Lookup(tt.number)
		require.True(t, ok)

		var buf bytes.Buffer
		require.NoError(t, s.Run(&buf))
		assert.Contains(t, buf.String(), tt.want, "scenario %d", tt.number)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup(99)
	assert.False(t, ok)
}

func TestForward(t *testing.T) {
	cfg := ForwardConfig{
		Batch: 8, Height: 4, Width: 5, Hidden: 6, Out: 3,
		Low: -1, High: 1,
		Sampler: rand.New(rand.NewPCG(3, 4)),
	}

	out, err := Forward(cfg)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{8, 3}, out.Shape())
	for _, v := range out.Data() {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	// Same seed, same result.
	cfg.Sampler = rand.New(rand.NewPCG(3, 4))
	again, err := Forward(cfg)
	require.NoError(t, err)
	assert.True(t, out.Equal(again))
}

func TestForward_InvalidSize(t *testing.T) {
	cfg := DefaultForwardConfig()
	cfg.Hidden = -1

	_, err := Forward(cfg)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
	assert.True(t, strings.HasPrefix(err.Error(), "hidden layer"))
}
