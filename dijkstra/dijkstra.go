// Package dijkstra implements Dijkstra's shortest-path algorithm over
// core.WeightedCSRGraph. It is the sequential reference delta-stepping is
// validated against, and the better choice for small graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key on a binary heap.
//   - Space: O(V + E) worst case for heap entries.
//
// Weights are validated non-negative when the graph is built, so there is no
// pre-scan here.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/parlath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: distance per vertex, +Inf if unreachable (or beyond MaxDistance).
//   - prev: predecessor per vertex when WithReturnPath is set, nil otherwise;
//     NoPredecessor for the source and unreachable vertices.
//   - err:  ErrNilGraph or ErrVertexNotFound.
func Dijkstra(g *core.WeightedCSRGraph, source int, opts ...Option) ([]float32, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexNotFound, source, g.NumVertices())
	}

	n := g.NumVertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float32, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.WeightedCSRGraph
	options Options
	dist    []float32
	prev    []int
	visited []bool
	pq      nodePQ
}

func (r *runner) init(source int) {
	inf := float32(math.Inf(1))
	for v := range r.dist {
		r.dist[v] = inf
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// smallest tentative distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

func (r *runner) relax(u int) {
	nbrs, ws := r.g.Neighbors(u), r.g.NeighborWeights(u)
	du := r.dist[u]
	for i, v := range nbrs {
		w := ws[i]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   int
	dist float32
}

// nodePQ is a min-heap of nodeItem ordered by dist. Stale entries stay in the
// heap and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the vertex sequence from the source to dest using prev.
// It returns nil when dest was not reached.
func PathTo(prev []int, dist []float32, dest int) []int {
	if dest < 0 || dest >= len(dist) || math.IsInf(float64(dist[dest]), 1) {
		return nil
	}
	var path []int
	for cur := dest; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
