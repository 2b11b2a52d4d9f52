package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/drakos74/logit-lab/internal/model"
)

// Linear is a two-feature logistic classifier.
// It reads the shared parameters on every call and keeps no state of its own.
type Linear struct {
	params *model.Parameters
}

// New creates a classifier over the given parameter owner.
func New(params *model.Parameters) *Linear {
	return &Linear{params: params}
}

// Score computes the logit for the given unit-square coordinates.
func (c *Linear) Score(x, y float64) float64 {
	s := c.params.Snapshot()
	return s.W1*coinmath.Normalize(x) + s.W2*coinmath.Normalize(y) + s.B
}

// Probability computes the predicted probability of label 1.
func (c *Linear) Probability(x, y float64) float64 {
	return coinmath.Sigmoid(c.Score(x, y))
}

// Classify assigns a label, with the boundary itself on the positive side.
func (c *Linear) Classify(x, y float64) int {
	if c.Probability(x, y) >= 0.5 {
		return 1
	}
	return 0
}

// Evaluate scores the whole dataset with the current parameters.
// The dataset must not be empty.
func (c *Linear) Evaluate(set model.Dataset) (model.Metrics, error) {
	if len(set) == 0 {
		return model.Metrics{}, fmt.Errorf("cannot evaluate empty dataset")
	}
	correct := 0
	squared := make([]float64, len(set))
	for i, p := range set {
		prob := c.Probability(p.X, p.Y)
		label := 0
		if prob >= 0.5 {
			label = 1
		}
		if label == p.Label {
			correct++
		}
		err := prob - float64(p.Label)
		squared[i] = err * err
	}
	return model.Metrics{
		Accuracy: 100 * float64(correct) / float64(len(set)),
		MSE:      stat.Mean(squared, nil),
	}, nil
}
