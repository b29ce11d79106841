package core_test

import (
	"fmt"

	"github.com/katalvlaran/parlath/core"
)

// ExampleAdjacencyGraph_ToCSR loads a small path and inspects its CSR arrays.
func ExampleAdjacencyGraph_ToCSR() {
	g := core.NewAdjacencyGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(0, 3)

	csr := g.ToCSR()
	fmt.Println("offsets:", csr.Offsets())
	fmt.Println("edges:  ", csr.Edges())
	fmt.Println("N(0):   ", csr.Neighbors(0))
	// Output:
	// offsets: [0 2 3 4 4]
	// edges:   [1 3 2 3]
	// N(0):    [1 3]
}

// ExampleCSRGraph_Transpose shows in-neighbors of a hub.
func ExampleCSRGraph_Transpose() {
	g, _ := core.FromEdgeList(4, [][2]int{{1, 0}, {2, 0}, {3, 0}})
	rev := g.ToCSR().Transpose()
	fmt.Println(rev.Neighbors(0))
	// Output: [1 2 3]
}

// ExampleAdjacencyGraph_AddWeightedEdge shows construction-time weight checks.
func ExampleAdjacencyGraph_AddWeightedEdge() {
	g := core.NewAdjacencyGraph(2)
	err := g.AddWeightedEdge(0, 1, -3)
	fmt.Println(err)
	// Output: core: edge 0→1: core: negative weight: -3
}
