package math

import (
	"math"
	"strconv"
)

const (
	// Range is the half-width of the model space.
	// Unit-square coordinates are stretched onto [-Range,Range]
	// to give the weights a sensible visual scale.
	Range = 5.0
	// zCap bounds the logit before exponentiation,
	// sigmoid is saturated way before that anyway.
	zCap = 40.0
)

// Format formats a float based on the given precision
// TODO : format based on the value
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Normalize maps a unit-square coordinate to the model space.
func Normalize(v float64) float64 {
	return (v - 0.5) * 2 * Range
}

// Denormalize maps a model-space coordinate back to the unit square.
func Denormalize(n float64) float64 {
	return n/(2*Range) + 0.5
}

// Sigmoid squashes the given logit into (0,1).
func Sigmoid(z float64) float64 {
	if z > zCap {
		z = zCap
	} else if z < -zCap {
		z = -zCap
	}
	return 1 / (1 + math.Exp(-z))
}

// IsFinite checks that the value can be safely handed to the renderer.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
