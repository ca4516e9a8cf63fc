package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nmoraes/friendnet/bfs"
	"github.com/nmoraes/friendnet/builder"
	"github.com/nmoraes/friendnet/core"
	"github.com/nmoraes/friendnet/dfs"
	"github.com/nmoraes/friendnet/dot"
	"github.com/nmoraes/friendnet/matrix"
)

const menuText = `
===== Friendship Network (Graph) =====
 1 - Insert person
 2 - Insert friendship
 3 - Remove person
 4 - Remove friendship
 5 - Show graph (list, matrix, incidence)
 6 - BFS (friends and connections)
 7 - DFS (visit order)
 8 - Load sample network
 9 - Export Graphviz file
10 - ASCII view
 0 - Quit
Choice: `

// runMenu drives the interactive loop until the user quits or input ends.
// The graph core never prints; every message below is this layer's
// translation of the core's sentinel errors.
func runMenu(g *core.Graph, in io.Reader, out io.Writer, dotPath string) error {
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText)
		line, ok := readLine(sc)
		if !ok {
			fmt.Fprintln(out, "\nBye.")
			return nil
		}

		switch line {
		case "0":
			fmt.Fprintln(out, "Bye.")
			return nil
		case "1":
			insertPerson(g, sc, out)
		case "2":
			insertFriendship(g, sc, out)
		case "3":
			removePerson(g, sc, out)
		case "4":
			removeFriendship(g, sc, out)
		case "5":
			showAdjacencyList(g, out)
			showAdjacencyMatrix(g, out)
			showIncidenceMatrix(g, out)
		case "6":
			runBFS(g, sc, out)
		case "7":
			runDFS(g, sc, out)
		case "8":
			loadSample(g, out)
		case "9":
			exportDot(g, out, dotPath)
		case "10":
			asciiView(g, out)
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}

// readLine fetches the next trimmed input line; ok is false at EOF.
func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}

	return strings.TrimSpace(sc.Text()), true
}

// prompt prints label and reads one line.
func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)

	return readLine(sc)
}

func insertPerson(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	name, ok := prompt(sc, out, "Name of the new person: ")
	if !ok {
		return
	}
	idx, err := g.AddVertex(name)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Person %q added (index %d).\n", name, idx)
	case errors.Is(err, core.ErrEmptyName):
		fmt.Fprintln(out, "Empty name. Cancelled.")
	case errors.Is(err, core.ErrCapacityExceeded):
		fmt.Fprintf(out, "Error: network is full (%d people).\n", g.Capacity())
	case errors.Is(err, core.ErrDuplicateName):
		fmt.Fprintln(out, "Error: a person with that name already exists.")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func insertFriendship(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	a, ok := prompt(sc, out, "Name of person 1: ")
	if !ok {
		return
	}
	b, ok := prompt(sc, out, "Name of person 2: ")
	if !ok {
		return
	}
	err := g.AddEdgeNamed(a, b)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Friendship between %q and %q added.\n", a, b)
	case errors.Is(err, core.ErrVertexNotFound):
		fmt.Fprintln(out, "Error: person not found (check both names).")
	case errors.Is(err, core.ErrSelfLoop):
		fmt.Fprintln(out, "Error: a person cannot befriend themselves.")
	case errors.Is(err, core.ErrEdgeExists):
		fmt.Fprintln(out, "Error: that friendship already exists.")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func removePerson(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	name, ok := prompt(sc, out, "Name of the person to remove: ")
	if !ok {
		return
	}
	if err := g.RemoveVertexNamed(name); err != nil {
		fmt.Fprintln(out, "Error: person not found.")
		return
	}
	fmt.Fprintf(out, "Person %q removed.\n", name)
}

func removeFriendship(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	a, ok := prompt(sc, out, "Name of person 1: ")
	if !ok {
		return
	}
	b, ok := prompt(sc, out, "Name of person 2: ")
	if !ok {
		return
	}
	err := g.RemoveEdgeNamed(a, b)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Friendship between %q and %q removed.\n", a, b)
	case errors.Is(err, core.ErrVertexNotFound):
		fmt.Fprintln(out, "Error: person not found (check both names).")
	case errors.Is(err, core.ErrEdgeNotFound):
		fmt.Fprintln(out, "Error: that friendship does not exist.")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func showAdjacencyList(g *core.Graph, out io.Writer) {
	fmt.Fprintln(out, "Adjacency list:")
	for i, name := range g.Names() {
		friends, err := g.NeighborNames(i)
		if err != nil {
			continue
		}
		if len(friends) == 0 {
			fmt.Fprintf(out, " %d: %s -> (none)\n", i, name)
			continue
		}
		fmt.Fprintf(out, " %d: %s -> %s\n", i, name, strings.Join(friends, " -> "))
	}
}

func showAdjacencyMatrix(g *core.Graph, out io.Writer) {
	m, err := matrix.Snapshot(g)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(out, "\nAdjacency matrix (0/1):")
	fmt.Fprint(out, "    ")
	for j := 0; j < m.Order(); j++ {
		fmt.Fprintf(out, "%3d", j)
	}
	fmt.Fprintln(out)
	for i := 0; i < m.Order(); i++ {
		fmt.Fprintf(out, "%2d |", i)
		for j := 0; j < m.Order(); j++ {
			fmt.Fprintf(out, "%3d", boolToInt(m.Data[i][j]))
		}
		fmt.Fprintf(out, "   %s\n", m.Names[i])
	}
}

func showIncidenceMatrix(g *core.Graph, out io.Writer) {
	m, err := matrix.NewIncidenceMatrix(g)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "\nIncidence matrix (%d people x %d friendships):\n", m.VertexCount(), m.EdgeCount())
	if m.EdgeCount() == 0 {
		fmt.Fprintln(out, "(no friendships)")
		return
	}
	fmt.Fprint(out, "    ")
	for e := 0; e < m.EdgeCount(); e++ {
		fmt.Fprintf(out, "%3d", e)
	}
	fmt.Fprintln(out)
	for i := 0; i < m.VertexCount(); i++ {
		fmt.Fprintf(out, "%2d |", i)
		for e := 0; e < m.EdgeCount(); e++ {
			fmt.Fprintf(out, "%3d", m.Data[i][e])
		}
		fmt.Fprintf(out, "   %s\n", m.Names[i])
	}
}

func runBFS(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	name, ok := prompt(sc, out, "Start person for BFS: ")
	if !ok {
		return
	}
	start, found := g.IndexOf(name)
	if !found {
		fmt.Fprintln(out, "Person not found.")
		return
	}
	res, err := bfs.BFS(g, start)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "BFS visit order (from %s):\n", name)
	printVisitOrder(g, out, res.Order)
	fmt.Fprintf(out, "Total visited: %d\n", res.Count())
}

func runDFS(g *core.Graph, sc *bufio.Scanner, out io.Writer) {
	name, ok := prompt(sc, out, "Start person for DFS: ")
	if !ok {
		return
	}
	start, found := g.IndexOf(name)
	if !found {
		fmt.Fprintln(out, "Person not found.")
		return
	}
	res, err := dfs.DFS(g, start)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "DFS visit order (from %s):\n", name)
	printVisitOrder(g, out, res.Order)
	fmt.Fprintf(out, "Total visited: %d\n", res.Count())
}

func printVisitOrder(g *core.Graph, out io.Writer, order []int) {
	if len(order) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	for _, idx := range order {
		name, err := g.Name(idx)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, " %d: %s\n", idx, name)
	}
}

func loadSample(g *core.Graph, out io.Writer) {
	if err := builder.Sample(g); err != nil {
		fmt.Fprintf(out, "Error loading sample: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Sample network loaded (%d people).\n", g.VertexCount())
}

func exportDot(g *core.Graph, out io.Writer, path string) {
	if err := dot.WriteFile(g, path); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "File %q written. Render with: dot -Tpng %s -o friends.png\n", path, path)
}

func asciiView(g *core.Graph, out io.Writer) {
	fmt.Fprintln(out, "ASCII view:")
	for i, name := range g.Names() {
		friends, err := g.NeighborNames(i)
		if err != nil {
			continue
		}
		if len(friends) == 0 {
			fmt.Fprintf(out, "[%d] %s -- (no friends)\n", i, name)
			continue
		}
		fmt.Fprintf(out, "[%d] %s -- %s\n", i, name, strings.Join(friends, ", "))
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
