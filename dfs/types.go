// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting, and
// neighbor filtering.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order), right after it is recorded in the visit order.
	// Returning an error aborts traversal with that error.
	OnVisit func(idx int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	// Returning an error aborts traversal.
	OnExit func(idx int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor index
	// before recursing. Return true to traverse into that neighbor.
	FilterNeighbor func(idx int) bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(idx int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(idx int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor indices.
// If fn(idx) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(idx int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertex indices in discovery (pre-order) sequence.
	Order []int

	// Depth maps each vertex index to its recursion depth from the
	// start; -1 if unreached.
	Depth []int

	// Parent maps each vertex index to the vertex from which it was
	// discovered; -1 for the start vertex and unreached vertices.
	Parent []int
}

// Count returns the number of vertices visited: the size of the
// reachable component from the start (under any filters).
func (r *Result) Count() int { return len(r.Order) }

// newResult allocates a Result for a graph of n vertices.
func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return res
}
