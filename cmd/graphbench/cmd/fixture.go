package cmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/parlath/builder"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/internal/config"
)

// buildFixture generates the weighted graph described by c.Graph.
func buildFixture(c *config.Config) (*core.AdjacencyGraph, error) {
	g := c.Graph
	opts := []builder.BuilderOption{
		builder.WithSeed(g.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(0, float32(g.MaxWeight))),
	}

	switch g.Kind {
	case config.KindRandom:
		return builder.GenerateRandomGraph(g.Vertices, g.AvgDegree, opts...)
	case config.KindPowerLaw:
		return builder.GeneratePowerLawGraph(g.Vertices, append(opts, builder.WithAttachment(g.AvgDegree))...)
	case config.KindGrid:
		side := int(math.Sqrt(float64(g.Vertices)))
		return builder.BuildGraph(nil, opts, builder.Grid(side, side))
	default:
		return nil, fmt.Errorf("unsupported graph kind %q", g.Kind)
	}
}
