// Package parlath is a parallel graph-processing engine for static graphs:
// load edges once, freeze them into compressed sparse rows, then run
// traversal, shortest-path, ranking and connectivity kernels across a bounded
// pool of goroutines.
//
// What is inside?
//
//	core/       AdjacencyGraph loader, CSRGraph and WeightedCSRGraph views
//	parallel/   parallel-for over index ranges (static or dynamic schedule)
//	balance/    per-worker work counters, max/mean imbalance, Prometheus export
//	bfs/        level-synchronous parallel BFS (optionally direction-optimizing)
//	dijkstra/   sequential binary-heap Dijkstra, the reference for SSSP
//	deltastep/  parallel delta-stepping single-source shortest paths
//	pagerank/   PageRank by gather or atomic scatter, fixed or until convergence
//	components/ lock-free union-find and weakly connected components
//	builder/    deterministic fixtures: random, power-law, grid, path, star…
//
// Typical flow:
//
//	g, _ := builder.GeneratePowerLawGraph(1_000_000, builder.WithSeed(7))
//	csr := g.ToCSR()
//	res, _ := bfs.Parallel(csr, 0, bfs.WithWorkers(8))
//	rank, _, _ := pagerank.UntilConvergence(csr, 0.85, 1e-6)
//
// Every kernel reads the CSR arrays without locks; all mutation happens in the
// AdjacencyGraph before conversion. Inputs are validated when edges are added
// (ErrInvalidVertex, ErrNegativeWeight), so kernels never see a bad graph.
//
// cmd/graphbench wraps the packages in a small benchmark CLI.
package parlath
