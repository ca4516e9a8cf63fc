// Package core: mutation surface of the Graph.
//
// Every mutating method validates its inputs before touching any state,
// then updates the adjacency list and the adjacency matrix under the
// same write lock. On failure the graph is bit-for-bit unchanged.
package core

// AddVertex appends a vertex with the given name at the next dense index
// and returns that index.
// Returns ErrEmptyName, ErrCapacityExceeded, or ErrDuplicateName.
// Complexity: O(V) for the uniqueness scan.
func (g *Graph) AddVertex(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.names) >= g.capacity {
		return -1, ErrCapacityExceeded
	}
	if _, ok := g.indexOf(name); ok {
		return -1, ErrDuplicateName
	}

	g.names = append(g.names, name)
	g.adj = append(g.adj, nil)
	// The matrix row and column for the new slot are already false:
	// both RemoveVertex and Clear leave vacated cells zeroed.

	return len(g.names) - 1, nil
}

// IndexOf returns the dense index of the vertex with exactly that name.
// The scan is linear, case-sensitive, first match only (uniqueness
// guarantees at most one).
// Complexity: O(V).
func (g *Graph) IndexOf(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexOf(name)
}

// AddEdge inserts the undirected friendship {u, v}.
// Each endpoint is prepended to the other's adjacency list and both
// matrix cells are set, all under one critical section.
// Returns ErrIndexOutOfRange, ErrSelfLoop, or ErrEdgeExists.
// Complexity: O(deg) for the prepends.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdge(u, v)
}

// AddEdgeNamed resolves both names and inserts the friendship between them.
// Returns ErrVertexNotFound if either name is missing, then the AddEdge errors.
func (g *Graph) AddEdgeNamed(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.indexOf(a)
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.indexOf(b)
	if !ok {
		return ErrVertexNotFound
	}

	return g.addEdge(u, v)
}

// RemoveEdge deletes the friendship {u, v}: the single matching entry is
// removed from each adjacency list and both matrix cells are cleared.
// Returns ErrIndexOutOfRange or ErrEdgeNotFound.
// Complexity: O(deg).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdge(u, v)
}

// RemoveEdgeNamed resolves both names and removes the friendship between them.
// Returns ErrVertexNotFound if either name is missing, then the RemoveEdge errors.
func (g *Graph) RemoveEdgeNamed(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.indexOf(a)
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.indexOf(b)
	if !ok {
		return ErrVertexNotFound
	}

	return g.removeEdge(u, v)
}

// RemoveVertex deletes the vertex at idx and compacts the table.
//
// The removal runs in five steps under one critical section:
//  1. strip idx from every other vertex's adjacency list,
//  2. release the removed vertex's own list and name,
//  3. shift vertices above idx down one slot (indices stay dense),
//  4. shift the matrix rows and columns correspondingly,
//  5. decrement every remaining neighbor index greater than idx.
//
// Returns ErrIndexOutOfRange. Once the index is valid the removal
// always fully succeeds.
// Complexity: O(V²) for the matrix shift.
func (g *Graph) RemoveVertex(idx int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeVertex(idx)
}

// RemoveVertexNamed resolves name and removes that vertex.
// Returns ErrVertexNotFound if the name is missing.
func (g *Graph) RemoveVertexNamed(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.indexOf(name)
	if !ok {
		return ErrVertexNotFound
	}

	return g.removeVertex(idx)
}

// Clear resets the graph to empty, preserving its capacity.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.names = g.names[:0]
	g.adj = g.adj[:0]
	for i := range g.matrix {
		for j := range g.matrix[i] {
			g.matrix[i][j] = false
		}
	}
}

// Internal helpers. All of them require g.mu to be held by the caller.
////////////////////

// indexOf scans the dense table for an exact name match.
func (g *Graph) indexOf(name string) (int, bool) {
	for i, n := range g.names {
		if n == name {
			return i, true
		}
	}

	return -1, false
}

// validIndex reports whether idx addresses a live vertex.
func (g *Graph) validIndex(idx int) bool {
	return idx >= 0 && idx < len(g.names)
}

// addEdge performs the locked edge insertion.
func (g *Graph) addEdge(u, v int) error {
	if !g.validIndex(u) || !g.validIndex(v) {
		return ErrIndexOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.matrix[u][v] {
		return ErrEdgeExists
	}

	g.adj[u] = prependIndex(g.adj[u], v)
	g.adj[v] = prependIndex(g.adj[v], u)
	g.matrix[u][v], g.matrix[v][u] = true, true

	return nil
}

// removeEdge performs the locked edge deletion.
func (g *Graph) removeEdge(u, v int) error {
	if !g.validIndex(u) || !g.validIndex(v) {
		return ErrIndexOutOfRange
	}
	if !g.matrix[u][v] {
		return ErrEdgeNotFound
	}

	g.adj[u] = removeFirstIndex(g.adj[u], v)
	g.adj[v] = removeFirstIndex(g.adj[v], u)
	g.matrix[u][v], g.matrix[v][u] = false, false

	return nil
}

// removeVertex performs the locked five-step compacting removal.
func (g *Graph) removeVertex(idx int) error {
	if !g.validIndex(idx) {
		return ErrIndexOutOfRange
	}
	n := len(g.names)

	// 1) Strip idx from every other vertex's adjacency list.
	for i := range g.adj {
		if i == idx {
			continue
		}
		g.adj[i] = removeAllIndex(g.adj[i], idx)
	}

	// 2) Release the removed slot, 3) compact the vertex table.
	g.names = append(g.names[:idx], g.names[idx+1:]...)
	g.adj = append(g.adj[:idx], g.adj[idx+1:]...)

	// 4) Shift matrix rows up, then columns left, and zero the vacated
	//    last row/column so future inserts start clean.
	for i := idx; i < n-1; i++ {
		copy(g.matrix[i][:n], g.matrix[i+1][:n])
	}
	for j := idx; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			g.matrix[i][j] = g.matrix[i][j+1]
		}
	}
	for i := 0; i < n; i++ {
		g.matrix[n-1][i] = false
		g.matrix[i][n-1] = false
	}

	// 5) Renumber: every stored neighbor index above idx moves down one.
	for i := range g.adj {
		for k, w := range g.adj[i] {
			if w > idx {
				g.adj[i][k] = w - 1
			}
		}
	}

	return nil
}

// prependIndex inserts idx at the head of list, keeping newest-first order.
func prependIndex(list []int, idx int) []int {
	list = append(list, 0)
	copy(list[1:], list)
	list[0] = idx

	return list
}

// removeFirstIndex deletes the first occurrence of target from list.
func removeFirstIndex(list []int, target int) []int {
	for k, w := range list {
		if w == target {
			return append(list[:k], list[k+1:]...)
		}
	}

	return list
}

// removeAllIndex deletes every occurrence of target from list.
// Simple graphs hold at most one, but the sweep keeps the helper total.
func removeAllIndex(list []int, target int) []int {
	out := list[:0]
	for _, w := range list {
		if w != target {
			out = append(out, w)
		}
	}

	return out
}
