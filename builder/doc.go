// Package builder assembles deterministic fixture graphs for tests, examples
// and benchmarks.
//
// A Constructor describes a block of vertices and the edges among them.
// BuildGraph lays constructors out as consecutive disjoint blocks of one
// core.AdjacencyGraph, so composite fixtures are one call:
//
//	// components {0,1,2}, {3,4,5} and the singleton {6}
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithUndirected()},
//	    nil,
//	    builder.Path(3), builder.Cycle(3), builder.Isolated(1),
//	)
//
// Topologies:
//
//	Path(n)              0→1→…→n-1
//	Cycle(n)             0→1→…→n-1→0
//	Star(k) / OutStar(k) hub 0 with k leaves, edges into / out of the hub
//	Grid(r, c)           4-neighborhood lattice, both directions
//	Complete(n)          every ordered pair
//	Isolated(n)          n vertices, no edges
//	RandomGraph(n, d)    d uniform out-neighbors per vertex
//	PowerLaw(n)          preferential attachment, heavy-tailed in-degree
//
// Stochastic constructors need an RNG (WithSeed or WithRand) and are
// reproducible per seed. WithWeightFn turns every emitted edge into a
// weighted one, e.g. WithWeightFn(UniformWeightFn(0.5, 10)).
//
// Errors:
//
//	ErrTooFewVertices  - a size parameter below its minimum.
//	ErrNeedRandSource  - a stochastic constructor without RNG.
//	ErrConstructFailed - the target graph rejected an edge.
package builder
