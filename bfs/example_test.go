package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/parlath/bfs"
	"github.com/katalvlaran/parlath/builder"
)

// ExampleParallel demonstrates BFS layering on a 3×3 undirected grid.
func ExampleParallel() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.Parallel(g.ToCSR(), 0, bfs.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for r := 0; r < 3; r++ {
		fmt.Println(res.Dist[r*3 : r*3+3])
	}
	// Output:
	// [0 1 2]
	// [1 2 3]
	// [2 3 4]
}

// ExampleBFSResult_PathTo reconstructs a shortest path.
func ExampleBFSResult_PathTo() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(5))
	res, _ := bfs.Sequential(g.ToCSR(), 0)
	path, _ := res.PathTo(4)
	fmt.Println(path)
	// Output: [0 1 2 3 4]
}
