package render

import (
	"github.com/rs/zerolog/log"

	"github.com/drakos74/logit-lab/internal/buffer"
	"github.com/drakos74/logit-lab/internal/classifier"
	"github.com/drakos74/logit-lab/internal/geometry"
	coinmath "github.com/drakos74/logit-lab/internal/math"
	"github.com/drakos74/logit-lab/internal/model"
)

// cluster and decoration colors
var (
	colorZero     = Color{R: 65, G: 105, B: 225, A: 1}
	colorOne      = Color{R: 255, G: 140, B: 0, A: 1}
	colorBoundary = Color{R: 255, G: 255, B: 255, A: 1}
	colorGlow     = Color{R: 255, G: 255, B: 255, A: 0.25}
	colorMiss     = Color{R: 220, G: 20, B: 60, A: 1}
	colorCurve    = Color{R: 144, G: 238, B: 144, A: 1}
)

// curveRange is the logit window shown on the sigmoid panel.
const curveRange = 10.0

// Config sizes the two drawing panels in device space.
type Config struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	CurveHeight float64 `json:"curve_height"`
	Grid        int     `json:"grid"`
}

// DefaultConfig returns the reference panel layout.
func DefaultConfig() Config {
	return Config{
		Width:       600,
		Height:      600,
		CurveHeight: 150,
		Grid:        24,
	}
}

// Coordinator paints one frame per tick from the current model state:
// probability heatmap, dataset points, decision boundary and sigmoid curve.
type Coordinator struct {
	config     Config
	classifier *classifier.Linear
}

// New creates a coordinator for the given classifier.
func New(config Config, c *classifier.Linear) *Coordinator {
	return &Coordinator{
		config:     config,
		classifier: c,
	}
}

// Frame draws the full scene onto the given surface.
// Degenerate geometry drops the boundary line, never the frame.
func (c *Coordinator) Frame(surface Surface, set model.Dataset, s model.Snapshot) {
	surface.Clear(c.config.Width, c.config.Height+c.config.CurveHeight)
	c.heatmap(surface)
	c.boundary(surface, s)
	c.points(surface, set)
	c.curve(surface, set)
}

// heatmap fills the plot panel with the probability field.
func (c *Coordinator) heatmap(surface Surface) {
	w := c.config.Width / float64(c.config.Grid)
	h := c.config.Height / float64(c.config.Grid)
	for i := 0; i < c.config.Grid; i++ {
		for j := 0; j < c.config.Grid; j++ {
			x := (float64(i) + 0.5) / float64(c.config.Grid)
			y := (float64(j) + 0.5) / float64(c.config.Grid)
			p := c.classifier.Probability(x, y)
			surface.FillRect(float64(i)*w, float64(j)*h, w, h, blend(p))
		}
	}
}

// points draws the dataset, marking misclassified points with a ring.
func (c *Coordinator) points(surface Surface, set model.Dataset) {
	for _, p := range set {
		x := p.X * c.config.Width
		y := p.Y * c.config.Height
		color := colorZero
		if p.Label == 1 {
			color = colorOne
		}
		surface.FillCircle(x, y, 4, color)
		if c.classifier.Classify(p.X, p.Y) != p.Label {
			surface.StrokeCircle(x, y, 6, Stroke{Color: colorMiss, Width: 1.5})
		}
	}
}

// boundary draws the 0.5-probability line with a glow under it.
func (c *Coordinator) boundary(surface Surface, s model.Snapshot) {
	line := geometry.Boundary(s)
	if len(line) < 2 {
		log.Warn().Str("params", s.Equation()).Msg("no boundary to draw")
		return
	}
	path := make([]Vec, 0, len(line))
	for _, v := range line {
		x := v.X * c.config.Width
		y := v.Y * c.config.Height
		if !coinmath.IsFinite(x) || !coinmath.IsFinite(y) {
			log.Warn().Str("params", s.Equation()).Msg("dropping non-finite boundary")
			return
		}
		path = append(path, Vec{X: x, Y: y})
	}
	surface.StrokePath(path, Stroke{Color: colorGlow, Width: 6})
	surface.StrokePath(path, Stroke{Color: colorBoundary, Width: 2, Dash: []float64{6, 4}})
}

// curve draws the sigmoid response on the lower panel,
// with a marker at the average logit of the dataset.
func (c *Coordinator) curve(surface Surface, set model.Dataset) {
	const pad = 10.0
	span := c.config.CurveHeight - 2*pad

	path := make([]Vec, 0, 81)
	for z := -curveRange; z <= curveRange+1e-9; z += 0.25 {
		path = append(path, Vec{
			X: (z + curveRange) / (2 * curveRange) * c.config.Width,
			Y: c.config.Height + pad + span*(1-coinmath.Sigmoid(z)),
		})
	}
	surface.StrokePath(path, Stroke{Color: colorCurve, Width: 2})

	if len(set) == 0 {
		return
	}
	scores := buffer.NewStats()
	for _, p := range set {
		scores.Push(c.classifier.Score(p.X, p.Y))
	}
	z := scores.Avg()
	if z > curveRange {
		z = curveRange
	} else if z < -curveRange {
		z = -curveRange
	}
	surface.FillCircle(
		(z+curveRange)/(2*curveRange)*c.config.Width,
		c.config.Height+pad+span*(1-coinmath.Sigmoid(z)),
		5, colorBoundary)
}

// blend mixes the cluster colors according to the probability.
func blend(p float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8((1-p)*float64(a) + p*float64(b))
	}
	return Color{
		R: mix(colorZero.R, colorOne.R),
		G: mix(colorZero.G, colorOne.G),
		B: mix(colorZero.B, colorOne.B),
		A: 0.35,
	}
}
