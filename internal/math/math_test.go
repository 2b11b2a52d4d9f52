package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"round-up": {
			input:  1.5555,
			output: "1.56",
		},
		"round-down": {
			input:  1.4444,
			output: "1.44",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestSigmoid(t *testing.T) {

	type test struct {
		z float64
		p float64
	}

	tests := map[string]test{
		"zero": {
			z: 0,
			p: 0.5,
		},
		"large-positive": {
			z: 8,
			p: 0.99966,
		},
		"large-negative": {
			z: -8,
			p: 0.00034,
		},
		"overflow-positive": {
			z: 1e9,
			p: 1,
		},
		"overflow-negative": {
			z: -1e9,
			p: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := Sigmoid(tt.z)
			assert.InDelta(t, tt.p, p, 0.00001)
			assert.True(t, IsFinite(p))
		})
	}

}

func TestNormalize(t *testing.T) {

	type test struct {
		v float64
		n float64
	}

	tests := map[string]test{
		"min":    {v: 0, n: -5},
		"center": {v: 0.5, n: 0},
		"max":    {v: 1, n: 5},
		"point":  {v: 0.9, n: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := Normalize(tt.v)
			assert.InDelta(t, tt.n, n, 1e-9)
			// and back ...
			assert.InDelta(t, tt.v, Denormalize(n), 1e-9)
		})
	}

}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-math.MaxFloat64))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
