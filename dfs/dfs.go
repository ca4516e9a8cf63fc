// Package dfs implements depth-first search on a core.Graph.
//
// The traversal is recursive: a vertex is marked and recorded on
// discovery (pre-order), then each neighbor is explored in
// adjacency-list order, most recently inserted friendship first.
// Recursion depth is naturally capped by the graph's vertex capacity.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook; error aborts traversal.
//   - WithOnExit(fn)          post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)     stops recursion beyond the given depth.
//   - WithFilterNeighbor(fn)  skip neighbors; return false to skip.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
//
// An out-of-range start index is not an error: it yields an empty
// Result, matching the store's silent-empty traversal contract.
package dfs

import (
	"fmt"

	"github.com/nmoraes/friendnet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	res     *Result
}

// DFS performs depth-first search on graph g from the vertex index
// start. Returns the visit order (pre-order), depths, and parent links
// for the component reachable from start.
// Complexity: O(V + E).
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := g.VertexCount()
	res := newResult(n)

	// 4. Out-of-range start: silently empty result.
	if start < 0 || start >= n {
		return res, nil
	}

	walker := &dfsWalker{graph: g, opts: dopts, visited: make([]bool, n), res: res}

	// 5. Traverse the component of start.
	if err := walker.traverse(start, 0, -1); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex idx at the given depth, recursing to neighbors.
// It honors context cancellation, the depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(idx, depth, parent int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited, record discovery order, depth, and parent
	w.visited[idx] = true
	w.res.Order = append(w.res.Order, idx)
	w.res.Depth[idx] = depth
	w.res.Parent[idx] = parent

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(idx); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", idx, err)
		}
	}

	// 5. Fetch neighbors once, in adjacency-list order
	nbrs, err := w.graph.NeighborIndices(idx)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, idx, err)
	}

	// 6. Explore each unvisited neighbor
	for _, nbr := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		if !w.visited[nbr] {
			if err = w.traverse(nbr, depth+1, idx); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(idx); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", idx, err)
		}
	}

	return nil
}
