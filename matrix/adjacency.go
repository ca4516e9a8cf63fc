package matrix

import (
	"github.com/nmoraes/friendnet/core"
)

// AdjacencyMatrix holds a fixed-size 2D snapshot of a friendship graph.
//
// Data[i][j] reports whether vertices i and j are friends; the table is
// always symmetric with a false diagonal. Names carries the vertex names
// in dense index order, so row i belongs to Names[i].
//
// The snapshot is fully detached from the source graph: later mutations
// of the graph do not show through, and the snapshot can be rebuilt at
// any time for a fresh view.
//
// Use AdjacencyMatrix for constant-time edge display in dense listings;
// for live O(1) lookup query the graph's HasEdge directly.
type AdjacencyMatrix struct {
	// Names maps row/column index → vertex name.
	Names []string
	// Data[i][j] reports the friendship {i, j}.
	Data [][]bool
}

// Snapshot builds an AdjacencyMatrix from g.
// Returns ErrGraphNil for a nil graph.
//
// Time complexity: O(V²). Memory: O(V²).
func Snapshot(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &AdjacencyMatrix{
		Names: g.Names(),
		Data:  g.Adjacency(),
	}, nil
}

// Order returns the number of vertices (rows).
func (m *AdjacencyMatrix) Order() int {
	return len(m.Names)
}

// At reports the cell (i, j) with bounds checking.
// Returns ErrOutOfRange instead of panicking.
func (m *AdjacencyMatrix) At(i, j int) (bool, error) {
	if i < 0 || i >= len(m.Data) || j < 0 || j >= len(m.Data) {
		return false, ErrOutOfRange
	}

	return m.Data[i][j], nil
}

// Degree returns the number of friends of row i.
// Returns ErrOutOfRange for an invalid row.
func (m *AdjacencyMatrix) Degree(i int) (int, error) {
	if i < 0 || i >= len(m.Data) {
		return 0, ErrOutOfRange
	}
	deg := 0
	for _, connected := range m.Data[i] {
		if connected {
			deg++
		}
	}

	return deg, nil
}
