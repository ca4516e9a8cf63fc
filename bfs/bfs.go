// Package bfs implements breadth-first search over a core.Graph,
// returning the visit order, unweighted distances, and parent links.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
// Neighbors are expanded in adjacency-list order, i.e. the most
// recently inserted friendship first.
package bfs

import (
	"context"
	"fmt"

	"github.com/nmoraes/friendnet/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from the vertex index
// start, applying any number of functional Options.
//
// An out-of-range start is not an error: it yields an empty Result,
// matching the store's silent-empty traversal contract. Errors are
// reserved for misuse (ErrGraphNil, ErrOptionViolation), neighbor
// lookup failures (ErrNeighbors), context cancellation, and hook
// errors.
//
// A vertex is marked visited when enqueued, not when dequeued, so no
// vertex is ever enqueued twice. Only the component reachable from
// start is visited. Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	res := newResult(n)
	// Out-of-range start: silently empty result.
	if start < 0 || start >= n {
		return res, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     res,
	}

	// Seed queue with the start vertex (no parent).
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.opts.OnEnqueue(idx, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.idx, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.idx)
	if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in adjacency-list order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIndices(item.idx)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.idx, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.idx, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.idx)
		}
	}

	return nil
}
