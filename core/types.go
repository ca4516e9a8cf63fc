// Package core defines the central Graph type: a capacity-bounded,
// undirected friendship graph that keeps an adjacency list and an
// adjacency matrix mutually consistent under every mutation.
//
// Vertices carry a unique, non-empty name and are addressed by a dense
// zero-based index in [0, VertexCount()). Indices are NOT stable across
// deletions: removing a vertex compacts the table and renumbers every
// vertex above the removed slot.
//
// All core APIs share a single sync.RWMutex, so the whole
// list-plus-matrix update of any mutation is one atomic critical
// section; a reader can never observe the two views disagreeing.
//
// This file declares the sentinel errors, GraphOption, the Graph type,
// and the New constructor.
//
// Errors:
//
//	ErrCapacityExceeded - vertex table is full.
//	ErrDuplicateName    - a vertex with that exact name already exists.
//	ErrEmptyName        - vertex name is the empty string.
//	ErrVertexNotFound   - named vertex does not exist.
//	ErrIndexOutOfRange  - vertex index is outside [0, VertexCount()).
//	ErrSelfLoop         - both edge endpoints are the same vertex.
//	ErrEdgeExists       - the friendship is already present.
//	ErrEdgeNotFound     - the friendship does not exist.
package core

import (
	"errors"
	"sync"
)

// DefaultCapacity is the vertex bound applied when WithCapacity is not given.
const DefaultCapacity = 20

// Sentinel errors for core graph operations.
// Callers branch on them with errors.Is.
var (
	// ErrCapacityExceeded indicates the vertex table already holds Capacity() entries.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrDuplicateName indicates an insertion with a name that is already taken.
	// Name comparison is case-sensitive and exact.
	ErrDuplicateName = errors.New("core: duplicate vertex name")

	// ErrEmptyName indicates that the provided vertex name is empty.
	ErrEmptyName = errors.New("core: vertex name is empty")

	// ErrVertexNotFound indicates a name-keyed operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide; self-friendships are never allowed.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates an attempt to insert an already-present friendship.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent friendship.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity sets the maximum vertex count.
// Panics if c is not positive (programmer error, caught at construction).
func WithCapacity(c int) GraphOption {
	if c <= 0 {
		panic("core: WithCapacity: capacity must be positive")
	}

	return func(g *Graph) { g.capacity = c }
}

// Graph is the in-memory friendship graph.
//
// names is the dense vertex table: names[i] is the name of vertex i and
// len(names) is the current vertex count. adj mirrors it slot for slot;
// adj[i] holds the neighbor indices of vertex i, most recently added
// friend first (edge insertion prepends). matrix is the capacity-sized
// square mirror: matrix[i][j] reports the edge {i,j} for i,j below the
// current count, is always symmetric, and has a false diagonal.
type Graph struct {
	mu sync.RWMutex

	capacity int

	names  []string // vertex index → name
	adj    [][]int  // vertex index → neighbor indices, newest first
	matrix [][]bool // capacity×capacity adjacency mirror
}

// New creates an empty Graph with the given options.
// By default the graph is bounded at DefaultCapacity vertices.
// Complexity: O(capacity²) for the matrix allocation.
func New(opts ...GraphOption) *Graph {
	g := &Graph{capacity: DefaultCapacity}
	// Apply options before any storage is sized.
	for _, opt := range opts {
		opt(g)
	}

	g.names = make([]string, 0, g.capacity)
	g.adj = make([][]int, 0, g.capacity)
	g.matrix = make([][]bool, g.capacity)
	for i := range g.matrix {
		g.matrix[i] = make([]bool, g.capacity)
	}

	return g
}
