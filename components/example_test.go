package components_test

import (
	"fmt"

	"github.com/katalvlaran/parlath/components"
	"github.com/katalvlaran/parlath/core"
)

// ExampleConnectedComponents splits a graph into three components.
func ExampleConnectedComponents() {
	g, _ := core.FromEdgeList(6, [][2]int{{0, 1}, {1, 2}, {3, 4}}, core.WithUndirected())
	labels, _ := components.ConnectedComponents(g.ToCSR())
	dense, k := components.Relabel(labels)
	fmt.Println(k, dense)
	// Output: 3 [0 0 0 1 1 2]
}

// ExampleUnionFind merges two pairs.
func ExampleUnionFind() {
	uf := components.NewUnionFind(4)
	uf.Union(0, 1)
	uf.Union(2, 3)
	fmt.Println(uf.Sets(), uf.Connected(0, 1), uf.Connected(1, 2))
	// Output: 2 true false
}
