// Package friendnet models a social network as an undirected graph of
// named people (vertices) and friendships (edges).
//
// The heart of the module is the capacity-bounded core.Graph, which keeps
// two representations of the same relation in lockstep on every mutation:
//
//	• an adjacency list per vertex (efficient neighbor enumeration,
//	  most-recently-added friend first), and
//	• a symmetric boolean adjacency matrix (O(1) edge lookup and display).
//
// Vertices are addressed by a dense zero-based index that renumbers on
// deletion: removing a vertex compacts the table, shifts the matrix rows
// and columns, and decrements every stored neighbor index above the
// removed slot.
//
// Everything else is organized under small single-purpose packages:
//
//	core/    — the Graph store: vertices, friendships, both views
//	bfs/     — breadth-first traversal with hooks and depth limits
//	dfs/     — depth-first traversal with pre-/post-order hooks
//	matrix/  — read-only adjacency and incidence matrix snapshots
//	builder/ — preset topologies (sample network, path, cycle, complete)
//	dot/     — deterministic Graphviz export
//
// cmd/friendnet drives the library through an interactive menu.
package friendnet
