// Package core: read-only query surface of the Graph.
//
// Queries take the read lock and return defensive copies; callers can
// never reach the internal storage.
package core

// VertexCount returns the current number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// EdgeCount returns the current number of friendships.
// Complexity: O(V²) (upper-triangle matrix scan).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for u := 0; u < len(g.names); u++ {
		for v := u + 1; v < len(g.names); v++ {
			if g.matrix[u][v] {
				count++
			}
		}
	}

	return count
}

// Capacity returns the fixed maximum vertex count. O(1).
func (g *Graph) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.capacity
}

// Name returns the name of the vertex at idx.
// Returns ErrIndexOutOfRange for an invalid index.
func (g *Graph) Name(idx int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(idx) {
		return "", ErrIndexOutOfRange
	}

	return g.names[idx], nil
}

// Names returns all vertex names in dense index order.
// Complexity: O(V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// NeighborIndices returns the neighbor indices of idx in adjacency-list
// order: the most recently added friendship first.
// Returns ErrIndexOutOfRange for an invalid index.
// Complexity: O(deg).
func (g *Graph) NeighborIndices(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(idx) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int, len(g.adj[idx]))
	copy(out, g.adj[idx])

	return out, nil
}

// NeighborNames returns the neighbor names of idx in adjacency-list order.
// Returns ErrIndexOutOfRange for an invalid index.
// Complexity: O(deg).
func (g *Graph) NeighborNames(idx int) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(idx) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]string, len(g.adj[idx]))
	for k, w := range g.adj[idx] {
		out[k] = g.names[w]
	}

	return out, nil
}

// HasEdge reports whether the friendship {u, v} exists.
// Invalid indices report false. O(1) via the matrix.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(u) || !g.validIndex(v) {
		return false
	}

	return g.matrix[u][v]
}

// Adjacency returns a VertexCount()×VertexCount() copy of the adjacency
// matrix for direct indexed read.
// Complexity: O(V²).
func (g *Graph) Adjacency() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.names)
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		copy(out[i], g.matrix[i][:n])
	}

	return out
}

// EdgePairs enumerates every friendship exactly once as a pair {u, v}
// with u < v, ordered by (u ascending, v ascending). This ordering is
// the canonical column order for incidence matrices and dot export.
// Complexity: O(V²).
func (g *Graph) EdgePairs() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out [][2]int
	for u := 0; u < len(g.names); u++ {
		for v := u + 1; v < len(g.names); v++ {
			if g.matrix[u][v] {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// Clone returns a deep copy of the graph: capacity, vertex table,
// adjacency lists, and matrix.
// Complexity: O(capacity² + V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New(WithCapacity(g.capacity))
	clone.names = append(clone.names, g.names...)
	for _, list := range g.adj {
		dup := make([]int, len(list))
		copy(dup, list)
		clone.adj = append(clone.adj, dup)
	}
	for i := range g.matrix {
		copy(clone.matrix[i], g.matrix[i])
	}

	return clone
}
