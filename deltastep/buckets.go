package deltastep

import (
	"container/heap"
	"math"
)

// maxBucket caps bucket indices for distances far beyond any realistic Δ multiple.
const maxBucket = math.MaxInt32

// bucketQueue stores only non-empty buckets, keyed by index, plus a min-heap
// of indices. Heap entries for buckets drained meanwhile are skipped on pop.
type bucketQueue struct {
	members map[int][]int
	order   indexHeap
}

func newBucketQueue() *bucketQueue {
	return &bucketQueue{members: make(map[int][]int)}
}

func (q *bucketQueue) insert(idx, v int) {
	b := q.members[idx]
	if len(b) == 0 {
		heap.Push(&q.order, idx)
	}
	q.members[idx] = append(b, v)
}

// take removes and returns the members of bucket idx.
func (q *bucketQueue) take(idx int) []int {
	b := q.members[idx]
	delete(q.members, idx)

	return b
}

func (q *bucketQueue) has(idx int) bool { return len(q.members[idx]) > 0 }

// next pops the smallest non-empty bucket index.
func (q *bucketQueue) next() (int, bool) {
	for q.order.Len() > 0 {
		idx := heap.Pop(&q.order).(int)
		if q.has(idx) {
			return idx, true
		}
	}

	return 0, false
}

// indexHeap is a min-heap of bucket indices.
type indexHeap []int

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
