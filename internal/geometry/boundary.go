package geometry

import (
	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/drakos74/logit-lab/internal/model"
)

// step is the sampling resolution along the x axis, in model space.
const step = 0.1

// Vertex is a point of the boundary polyline, in unit-square coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Boundary computes the decision boundary for the given parameters,
// i.e. the line where the predicted probability is exactly 0.5.
//
// The line w1*nx + w2*ny + b = 0 is sampled along nx and solved for ny,
// dropping samples outside the visible model space. The degenerate w2 == 0
// cases are handled explicitly: a vertical line when w1 carries the model,
// nothing at all when both weights are zero and the probability is flat.
func Boundary(s model.Snapshot) []Vertex {

	if s.W2 == 0 {
		if s.W1 == 0 {
			// constant probability everywhere , there is no boundary to draw
			return nil
		}
		nx := -s.B / s.W1
		if nx < -coinmath.Range || nx > coinmath.Range {
			return nil
		}
		x := coinmath.Denormalize(nx)
		return []Vertex{{X: x, Y: 0}, {X: x, Y: 1}}
	}

	line := make([]Vertex, 0, int(2*coinmath.Range/step)+1)
	for nx := -coinmath.Range; nx <= coinmath.Range+step/2; nx += step {
		ny := -(s.W1*nx + s.B) / s.W2
		if ny < -coinmath.Range || ny > coinmath.Range {
			continue
		}
		line = append(line, Vertex{
			X: coinmath.Denormalize(nx),
			Y: coinmath.Denormalize(ny),
		})
	}
	return line
}
