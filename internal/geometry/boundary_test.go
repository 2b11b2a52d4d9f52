package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/drakos74/logit-lab/internal/model"
)

func TestBoundaryDiagonal(t *testing.T) {

	// w1 = w2 = 1 , b = 0 : the boundary is y = -x in model space
	line := Boundary(model.Snapshot{W1: 1, W2: 1})

	assert.True(t, len(line) > 2)
	for _, v := range line {
		assert.True(t, coinmath.IsFinite(v.X))
		assert.True(t, coinmath.IsFinite(v.Y))
		assert.True(t, v.X >= -1e-9 && v.X <= 1+1e-9)
		assert.True(t, v.Y >= -1e-9 && v.Y <= 1+1e-9)
		// every vertex satisfies the boundary equation
		z := coinmath.Normalize(v.X) + coinmath.Normalize(v.Y)
		assert.InDelta(t, 0, z, 1e-9)
	}
}

func TestBoundaryVertical(t *testing.T) {

	// w2 = 0 : vertical line at nx = -b/w1 = 2 , i.e. x = 0.7
	line := Boundary(model.Snapshot{W1: 1, W2: 0, B: -2})

	assert.Equal(t, 2, len(line))
	for _, v := range line {
		assert.True(t, coinmath.IsFinite(v.X))
		assert.True(t, coinmath.IsFinite(v.Y))
		assert.InDelta(t, 0.7, v.X, 1e-9)
	}
	assert.Equal(t, 0.0, line[0].Y)
	assert.Equal(t, 1.0, line[1].Y)
}

func TestBoundaryDegenerate(t *testing.T) {

	type test struct {
		params model.Snapshot
		empty  bool
	}

	tests := map[string]test{
		"zero-model": {
			params: model.Snapshot{},
			empty:  true,
		},
		"bias-only": {
			params: model.Snapshot{B: 3},
			empty:  true,
		},
		"vertical-off-screen": {
			// nx = -b/w1 = 20 , outside the visible range
			params: model.Snapshot{W1: 1, B: -20},
			empty:  true,
		},
		"steep": {
			params: model.Snapshot{W1: 100, W2: 0.001},
			empty:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			line := Boundary(tt.params)
			if tt.empty {
				assert.Empty(t, line)
			} else {
				assert.NotEmpty(t, line)
			}
			for _, v := range line {
				assert.True(t, coinmath.IsFinite(v.X))
				assert.True(t, coinmath.IsFinite(v.Y))
			}
		})
	}

}

func TestBoundaryOffVisibleArea(t *testing.T) {
	// the line exists but never crosses the visible square
	line := Boundary(model.Snapshot{W1: 0.1, W2: 0.1, B: 100})
	assert.Empty(t, line)
}
