package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {

	type test struct {
		values []float64
		avg    float64
		min    float64
		max    float64
		diff   float64
		stDev  float64
	}

	tests := map[string]test{
		"constant": {
			values: []float64{2, 2, 2, 2},
			avg:    2,
			min:    2,
			max:    2,
			diff:   0,
			stDev:  0,
		},
		"linear": {
			values: []float64{1, 2, 3, 4, 5},
			avg:    3,
			min:    1,
			max:    5,
			diff:   4,
			stDev:  1.4142,
		},
		"mixed-sign": {
			values: []float64{-1, 1},
			avg:    0,
			min:    -1,
			max:    1,
			diff:   2,
			stDev:  1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for _, v := range tt.values {
				stats.Push(v)
			}
			assert.Equal(t, len(tt.values), stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-4)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.InDelta(t, tt.diff, stats.Diff(), 1e-9)
			assert.InDelta(t, tt.stDev, stats.StDev(), 1e-4)
		})
	}

}
