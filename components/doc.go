// Package components finds weakly connected components with a lock-free
// union-find.
//
// UnionFind keeps one atomic 64-bit word per element: the parent in the low
// 32 bits and the rank in the high 32. A root is linked under another root by
// a single CAS on its own word, always from the lower (rank, id) pair to the
// higher one. A link fails, and is retried from Find, if either root stopped
// being a root in the meantime. Find compresses with path halving; a lost CAS
// there only forfeits the shortcut.
//
// ConnectedComponents runs Union over every edge in parallel, then flattens
// the forest so each vertex maps straight to its root. Edge direction is
// ignored. The label of a component is the id of its root vertex, which
// depends on scheduling; Relabel turns labels into dense ids ordered by first
// appearance.
//
// Complexity: O((V + E)·α(V)) work.
package components
