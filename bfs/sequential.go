package bfs

import (
	"github.com/katalvlaran/parlath/core"
)

// Sequential runs a FIFO breadth-first search from source. It is the
// reference Parallel is checked against and the faster choice on small graphs.
//
// Honors WithContext (per level), WithMaxDepth and WithOnLevel; worker
// options are ignored.
func Sequential(g *core.CSRGraph, source int, opts ...Option) (*BFSResult, error) {
	o, err := prepare(g, source, opts)
	if err != nil {
		return nil, err
	}

	res := newResult(source, g.NumVertices())
	queue := make([]int, 0, 64)
	queue = append(queue, source)
	head, levelEnd := 0, 1

	for depth := 0; head < len(queue); depth++ {
		if err = checkCtx(o.Ctx); err != nil {
			return res, err
		}
		o.OnLevel(depth, levelEnd-head)
		res.Levels = depth + 1
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}
		for ; head < levelEnd; head++ {
			u := queue[head]
			for _, v := range g.Neighbors(u) {
				if res.Dist[v] != Unreachable {
					continue
				}
				res.Dist[v] = depth + 1
				res.Parent[v] = u
				queue = append(queue, v)
			}
		}
		levelEnd = len(queue)
	}

	return res, nil
}
