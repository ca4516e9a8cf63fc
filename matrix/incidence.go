// Package matrix provides read-only matrix views over a core.Graph:
// the square adjacency snapshot and the V×E incidence matrix.
package matrix

import (
	"github.com/nmoraes/friendnet/core"
)

// IncidenceMatrix represents a graph as a V×E table mapping vertices to
// the friendships they bound.
//
// Names maps row index → vertex name (dense index order, immutable).
// Edges holds the ordered column edges as {u, v} pairs with u < v, in
// (u ascending, v ascending) order — the graph's canonical enumeration.
// Data[i][j] is 1 when vertex i is an endpoint of edge j, else 0; every
// column therefore sums to exactly 2 (undirected, no self-loops).
type IncidenceMatrix struct {
	Names []string // row → vertex name
	Edges [][2]int // column → edge endpoints, u < v
	Data  [][]int  // V×E incidence table
}

// NewIncidenceMatrix builds an IncidenceMatrix from a core.Graph.
// Returns ErrGraphNil if g is nil.
// Column order is deterministic, so two builds over the same graph
// state produce identical matrices.
// Time: O(V² + V·E); Memory: O(V·E).
func NewIncidenceMatrix(g *core.Graph) (*IncidenceMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	names := g.Names()
	edges := g.EdgePairs()

	data := make([][]int, len(names))
	for i := range data {
		data[i] = make([]int, len(edges))
	}
	for j, e := range edges {
		data[e[0]][j] = 1
		data[e[1]][j] = 1
	}

	return &IncidenceMatrix{
		Names: names,
		Edges: edges,
		Data:  data,
	}, nil
}

// VertexCount returns the number of vertices (rows).
func (m *IncidenceMatrix) VertexCount() int {
	return len(m.Names)
}

// EdgeCount returns the number of friendships (columns).
func (m *IncidenceMatrix) EdgeCount() int {
	return len(m.Edges)
}

// VertexIncidence returns a copy of the incidence row for vertex i.
// Returns ErrOutOfRange if i is not a valid row.
// Time: O(E).
func (m *IncidenceMatrix) VertexIncidence(i int) ([]int, error) {
	if i < 0 || i >= len(m.Data) {
		return nil, ErrOutOfRange
	}
	row := make([]int, len(m.Data[i]))
	copy(row, m.Data[i])

	return row, nil
}

// EdgeEndpoints returns the endpoint indices of the edge at column j.
// Returns ErrOutOfRange if j is out of range.
// Time: O(1).
func (m *IncidenceMatrix) EdgeEndpoints(j int) (u, v int, err error) {
	if j < 0 || j >= len(m.Edges) {
		return 0, 0, ErrOutOfRange
	}
	e := m.Edges[j]

	return e[0], e[1], nil
}
