package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {

	gen := New(42)
	set := gen.Generate()

	assert.Equal(t, 60, len(set))

	count := map[int]int{}
	for _, p := range set {
		count[p.Label]++
		// unit square invariant
		assert.True(t, p.X >= 0 && p.X < 1, "x out of range: %f", p.X)
		assert.True(t, p.Y >= 0 && p.Y < 1, "y out of range: %f", p.Y)
		switch p.Label {
		case 0:
			assert.True(t, p.X >= 0.2 && p.X < 0.5)
			assert.True(t, p.Y >= 0.6 && p.Y < 0.9)
		case 1:
			assert.True(t, p.X >= 0.5 && p.X < 0.8)
			assert.True(t, p.Y >= 0.1 && p.Y < 0.4)
		default:
			assert.Fail(t, "unexpected label", "%d", p.Label)
		}
	}
	assert.Equal(t, 30, count[0])
	assert.Equal(t, 30, count[1])
}

func TestGenerateReset(t *testing.T) {

	gen := New(11)
	first := gen.Generate()
	second := gen.Generate()

	assert.Equal(t, len(first), len(second))
	// a reset produces a fresh instance, not a copy
	assert.NotEqual(t, first, second)
}

func TestGenerateDeterministic(t *testing.T) {
	assert.Equal(t, New(7).Generate(), New(7).Generate())
}
