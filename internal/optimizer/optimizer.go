package optimizer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/drakos74/logit-lab/internal/model"
)

const (
	// DefaultLearningRate is tuned for the default two-cluster dataset.
	DefaultLearningRate = 0.5
	// DefaultEpochs keeps the playback animation short.
	DefaultEpochs = 50
)

// GradientDescent runs full-batch gradient descent on the model parameters.
//
// The gradient is the cross-entropy one ( error * feature ), even though the
// displayed loss is the mean squared error. The two point the same way on
// this dataset and the simpler formula is the observable behaviour to keep.
type GradientDescent struct {
	LearningRate float64
	Epochs       int
}

// New creates an optimizer with the default hyperparameters.
func New() GradientDescent {
	return GradientDescent{
		LearningRate: DefaultLearningRate,
		Epochs:       DefaultEpochs,
	}
}

// Run descends from the given starting point and returns one snapshot per
// epoch, in order. The trace is computed eagerly; pacing the playback is the
// caller's concern. The dataset must not be empty.
func (gd GradientDescent) Run(set model.Dataset, start model.Snapshot) ([]model.Snapshot, error) {
	m := float64(len(set))
	if len(set) == 0 {
		return nil, fmt.Errorf("cannot optimize on empty dataset")
	}

	s := start
	trace := make([]model.Snapshot, 0, gd.Epochs)
	for epoch := 0; epoch < gd.Epochs; epoch++ {
		var dw1, dw2, db float64
		for _, p := range set {
			nx := coinmath.Normalize(p.X)
			ny := coinmath.Normalize(p.Y)
			e := coinmath.Sigmoid(s.W1*nx+s.W2*ny+s.B) - float64(p.Label)
			dw1 += e * nx
			dw2 += e * ny
			db += e
		}
		s.W1 -= gd.LearningRate * dw1 / m
		s.W2 -= gd.LearningRate * dw2 / m
		s.B -= gd.LearningRate * db / m
		trace = append(trace, s)
	}

	log.Info().
		Int("epochs", gd.Epochs).
		Float64("lr", gd.LearningRate).
		Str("from", start.Equation()).
		Str("to", s.Equation()).
		Msg("optimizer finished")
	return trace, nil
}
