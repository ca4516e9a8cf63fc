// Package builder populates a core.Graph with preset topologies.
//
// Contract (shared by every constructor):
//   - Constructors mutate the caller-supplied graph; they never allocate
//     their own, so capacity policy stays with the caller.
//   - Vertices are added in ascending index order with deterministic
//     letter IDs (A, B, C, ...), edges in a stable documented order.
//   - Only sentinel errors are returned, wrapped with method context;
//     core errors (capacity, duplicates) propagate via %w.
//   - Constructors never panic at runtime.
package builder

import (
	"errors"
	"fmt"

	"github.com/nmoraes/friendnet/core"
)

// Sentinel errors for the builder package.
// Callers branch on them with errors.Is.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to a constructor.
	ErrGraphNil = errors.New("builder: graph is nil")

	// ErrTooFewVertices indicates that n is smaller than the allowed
	// minimum for the requested topology.
	ErrTooFewVertices = errors.New("builder: parameter too small")
)

// File-local constants for method tagging and parameter minima.
const (
	methodSample   = "Sample"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
)

// sampleNames and sampleEdges define the fixed demonstration network:
// six people, seven friendships, matching the classic fixture.
var (
	sampleNames = []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}

	sampleEdges = [][2]string{
		{"Alice", "Bob"},
		{"Alice", "Carol"},
		{"Bob", "Dave"},
		{"Carol", "Eve"},
		{"Eve", "Frank"},
		{"Bob", "Carol"},
		{"Dave", "Frank"},
	}
)

// Sample loads the demonstration friendship network into g:
// Alice, Bob, Carol, Dave, Eve, and Frank with seven friendships.
// Edge insertion order is fixed, so adjacency-list order (and therefore
// traversal order) is reproducible run to run.
func Sample(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	for _, name := range sampleNames {
		if _, err := g.AddVertex(name); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodSample, name, err)
		}
	}
	for _, e := range sampleEdges {
		if err := g.AddEdgeNamed(e[0], e[1]); err != nil {
			return fmt.Errorf("%s: AddEdgeNamed(%s, %s): %w", methodSample, e[0], e[1], err)
		}
	}

	return nil
}

// Path builds a simple path P_n: n letter-named vertices chained
// 0-1-2-...-(n-1), edges emitted in increasing order.
// Returns ErrTooFewVertices for n < 2.
func Path(g *core.Graph, n int) error {
	if g == nil {
		return ErrGraphNil
	}
	if n < minPathNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	if err := addLetterVertices(g, methodPath, n); err != nil {
		return err
	}

	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return fmt.Errorf("%s: AddEdge(%d, %d): %w", methodPath, i-1, i, err)
		}
	}

	return nil
}

// Cycle builds a simple cycle C_n: a path closed by the edge (n-1, 0).
// Returns ErrTooFewVertices for n < 3.
func Cycle(g *core.Graph, n int) error {
	if g == nil {
		return ErrGraphNil
	}
	if n < minCycleNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	if err := addLetterVertices(g, methodCycle, n); err != nil {
		return err
	}

	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return fmt.Errorf("%s: AddEdge(%d, %d): %w", methodCycle, i-1, i, err)
		}
	}
	if err := g.AddEdge(n-1, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, 0): %w", methodCycle, n-1, err)
	}

	return nil
}

// Complete builds the complete graph K_n: every pair of distinct
// vertices connected, edges emitted in (u asc, v asc) order.
// Returns ErrTooFewVertices for n < 2.
func Complete(g *core.Graph, n int) error {
	if g == nil {
		return ErrGraphNil
	}
	if n < minCompleteNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	if err := addLetterVertices(g, methodComplete, n); err != nil {
		return err
	}

	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d, %d): %w", methodComplete, u, v, err)
			}
		}
	}

	return nil
}

// addLetterVertices inserts n vertices named by letterID in index order.
func addLetterVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		id := letterID(i)
		if _, err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// letterID yields deterministic vertex names: A..Z, then A1, B1, ...
// (26 per round). Uniqueness holds for any n a bounded graph can take.
func letterID(i int) string {
	letter := rune('A' + i%26)
	round := i / 26
	if round == 0 {
		return string(letter)
	}

	return fmt.Sprintf("%c%d", letter, round)
}
