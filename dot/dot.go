// Package dot renders a core.Graph as a Graphviz-compatible document.
//
// Output is deterministic and regenerable byte-for-byte from graph
// state: node declarations appear in dense index order, each edge is
// emitted exactly once as v<u> -- v<v> with u < v, in (u ascending,
// v ascending) order. Render with e.g.:
//
//	dot -Tpng friends.dot -o friends.png
package dot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nmoraes/friendnet/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed in.
var ErrGraphNil = errors.New("dot: graph is nil")

// graphName is the identifier emitted in the opening declaration.
const graphName = "friends"

// filePerm is the mode used by WriteFile.
const filePerm = 0o644

// Marshal serializes g into a dot document.
// Returns ErrGraphNil for a nil graph; serialization itself cannot fail.
// Complexity: O(V²) via the edge enumeration.
func Marshal(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s {\n", graphName)
	// Nodes first, labeled with the person's name.
	for i, name := range g.Names() {
		fmt.Fprintf(&b, "  v%d [label=%q];\n", i, name)
	}
	// Then each friendship once, smaller index first.
	for _, e := range g.EdgePairs() {
		fmt.Fprintf(&b, "  v%d -- v%d;\n", e[0], e[1])
	}
	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// Write marshals g and writes the document to w.
func Write(g *core.Graph, w io.Writer) error {
	doc, err := Marshal(g)
	if err != nil {
		return err
	}
	if _, err = w.Write(doc); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

// WriteFile marshals g and writes the document to path.
func WriteFile(g *core.Graph, path string) error {
	doc, err := Marshal(g)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, doc, filePerm); err != nil {
		return fmt.Errorf("dot: write %s: %w", path, err)
	}

	return nil
}
