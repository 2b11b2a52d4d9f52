package dataset

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/logit-lab/internal/model"
)

// Cluster describes a uniform rectangular cloud of same-label points.
type Cluster struct {
	Label int     `json:"label"`
	Size  int     `json:"size"`
	MinX  float64 `json:"min_x"`
	MaxX  float64 `json:"max_x"`
	MinY  float64 `json:"min_y"`
	MaxY  float64 `json:"max_y"`
}

// Clusters returns the default two-cluster layout,
// 30 points each on opposite corners of the unit square.
func Clusters() []Cluster {
	return []Cluster{
		{Label: 0, Size: 30, MinX: 0.2, MaxX: 0.5, MinY: 0.6, MaxY: 0.9},
		{Label: 1, Size: 30, MinX: 0.5, MaxX: 0.8, MinY: 0.1, MaxY: 0.4},
	}
}

// Generator produces fresh datasets of the configured cluster shape.
type Generator struct {
	clusters []Cluster
	src      rand.Source
}

// New creates a generator with the given clusters.
// The seed makes instances reproducible for tests and back-to-back runs.
func New(seed uint64, clusters ...Cluster) *Generator {
	if len(clusters) == 0 {
		clusters = Clusters()
	}
	return &Generator{
		clusters: clusters,
		src:      rand.NewSource(seed),
	}
}

// Generate samples a complete dataset.
// Each call replaces the previous dataset wholesale.
func (g *Generator) Generate() model.Dataset {
	size := 0
	for _, c := range g.clusters {
		size += c.Size
	}
	set := make(model.Dataset, 0, size)
	for _, c := range g.clusters {
		x := distuv.Uniform{Min: c.MinX, Max: c.MaxX, Src: g.src}
		y := distuv.Uniform{Min: c.MinY, Max: c.MaxY, Src: g.src}
		for i := 0; i < c.Size; i++ {
			set = append(set, model.Point{
				X:     x.Rand(),
				Y:     y.Rand(),
				Label: c.Label,
			})
		}
	}
	log.Info().Int("size", len(set)).Int("clusters", len(g.clusters)).Msg("generated dataset")
	return set
}
