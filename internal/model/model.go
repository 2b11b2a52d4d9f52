package model

import (
	"fmt"

	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/rs/zerolog/log"
)

// Point is a single labelled sample in the unit square.
// Points are immutable once generated.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label int     `json:"label"`
}

// Dataset is an ordered set of points.
// It is always replaced wholesale, never patched in place.
type Dataset []Point

// Snapshot is an immutable view of the model parameters.
type Snapshot struct {
	W1 float64 `json:"w1"`
	W2 float64 `json:"w2"`
	B  float64 `json:"b"`
}

// Equation renders the current linear equation for display.
func (s Snapshot) Equation() string {
	return fmt.Sprintf("z = %s * x + %s * y + %s",
		coinmath.Format(s.W1),
		coinmath.Format(s.W2),
		coinmath.Format(s.B))
}

// Parameters is the single owner of the model state.
// All writers (sliders, optimizer playback) go through the setters,
// so that non-finite values never reach the render loop.
type Parameters struct {
	w1, w2, b float64
}

// NewParameters creates a zero-initialised parameter set.
func NewParameters() *Parameters {
	return &Parameters{}
}

// Snapshot returns the current parameter values.
func (p *Parameters) Snapshot() Snapshot {
	return Snapshot{W1: p.w1, W2: p.w2, B: p.b}
}

// SetW1 sets the weight of the x feature.
func (p *Parameters) SetW1(v float64) {
	p.w1 = sanitize("w1", v, p.w1)
}

// SetW2 sets the weight of the y feature.
func (p *Parameters) SetW2(v float64) {
	p.w2 = sanitize("w2", v, p.w2)
}

// SetBias sets the bias term.
func (p *Parameters) SetBias(v float64) {
	p.b = sanitize("b", v, p.b)
}

// Apply overwrites all parameters from the given snapshot.
func (p *Parameters) Apply(s Snapshot) {
	p.SetW1(s.W1)
	p.SetW2(s.W2)
	p.SetBias(s.B)
}

// sanitize keeps the previous value when the input is not a finite number.
func sanitize(name string, v, prev float64) float64 {
	if !coinmath.IsFinite(v) {
		log.Warn().Str("parameter", name).Float64("previous", prev).Msg("ignoring non-finite value")
		return prev
	}
	return v
}

// Metrics is the derived quality of the current parameters on a dataset.
// It is recomputed on demand and never stored.
type Metrics struct {
	Accuracy float64 `json:"accuracy"`
	MSE      float64 `json:"mse"`
}
