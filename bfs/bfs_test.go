package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/nmoraes/friendnet/bfs"
	"github.com/nmoraes/friendnet/core"
)

// chain builds the path A-B-C-D... over n vertices with edges inserted
// left to right, so indices 0..n-1 form a simple path.
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.New(core.WithCapacity(n + 1))
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(fmt.Sprintf("p%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that misuse is rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// negative MaxDepth is a violation
	g := chain(t, 2)
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OutOfRangeStart checks the silent-empty contract.
func TestBFS_OutOfRangeStart(t *testing.T) {
	g := chain(t, 3)
	for _, start := range []int{-1, 3, 99} {
		res, err := bfs.BFS(g, start)
		if err != nil {
			t.Fatalf("start=%d: unexpected error %v", start, err)
		}
		if res.Count() != 0 || len(res.Order) != 0 {
			t.Errorf("start=%d: Order = %v; want empty", start, res.Order)
		}
	}
}

// TestBFS_PathOrder asserts the canonical path traversal A,B,C,D.
func TestBFS_PathOrder(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for i, want := range []int{0, 1, 2, 3} {
		if res.Depth[i] != want {
			t.Errorf("Depth[%d] = %d; want %d", i, res.Depth[i], want)
		}
	}
	if res.Count() != 4 {
		t.Errorf("Count() = %d; want 4", res.Count())
	}
}

// TestBFS_NeighborOrder verifies expansion in adjacency-list order,
// i.e. most recently inserted friendship first.
func TestBFS_NeighborOrder(t *testing.T) {
	g := core.New()
	for _, name := range []string{"hub", "a", "b", "c"} {
		if _, err := g.AddVertex(name); err != nil {
			t.Fatal(err)
		}
	}
	// hub-a, then hub-b, then hub-c: the list reads c, b, a.
	for v := 1; v <= 3; v++ {
		if err := g.AddEdge(0, v); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3, 2, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the start's component,
// each member exactly once.
func TestBFS_Disconnected(t *testing.T) {
	g := core.New()
	for _, name := range []string{"x", "y", "p", "q"} {
		if _, err := g.AddVertex(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(0, 1); err != nil { // component 1
		t.Fatal(err)
	}
	if err := g.AddEdge(2, 3); err != nil { // component 2
		t.Fatal(err)
	}

	resX, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(resX.Order, []int{0, 1}) {
		t.Errorf("from 0: got %v; want [0 1]", resX.Order)
	}
	resP, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(resP.Order, []int{2, 3}) {
		t.Errorf("from 2: got %v; want [2 3]", resP.Order)
	}
	if resX.Depth[2] != -1 || resX.Parent[2] != -1 {
		t.Error("unreached vertex must report Depth = Parent = -1")
	}
}

// TestBFS_CycleVisitedOnce ensures a cycle never revisits a vertex.
func TestBFS_CycleVisitedOnce(t *testing.T) {
	g := chain(t, 4)
	if err := g.AddEdge(3, 0); err != nil { // close the cycle
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]int)
	for _, idx := range res.Order {
		seen[idx]++
	}
	if len(seen) != 4 || res.Count() != 4 {
		t.Fatalf("Order = %v; want all 4 vertices exactly once", res.Order)
	}
	for idx, c := range seen {
		if c != 1 {
			t.Errorf("vertex %d visited %d times", idx, c)
		}
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit),
// and oversized depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 3)
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 3)
	// filter out 1→2
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, 3)

	var enq, deq, vis []string
	entry := func(idx, d int) string { return fmt.Sprintf("%d@%d", idx, d) }

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(idx, d int) { enq = append(enq, entry(idx, d)) }),
		bfs.WithOnDequeue(func(idx, d int) { deq = append(deq, entry(idx, d)) }),
		bfs.WithOnVisit(func(idx, d int) error { vis = append(vis, entry(idx, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"0@0", "1@1", "2@2"}
	if !reflect.DeepEqual(enq, want) {
		t.Errorf("OnEnqueue = %v; want %v", enq, want)
	}
	if !reflect.DeepEqual(deq, want) {
		t.Errorf("OnDequeue = %v; want %v", deq, want)
	}
	if !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}
}

// TestBFS_OnVisitAbort verifies that a hook error stops the walk.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := chain(t, 4)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(idx, _ int) error {
		if idx == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestBFS_PathTo covers path reconstruction and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo(3) = %v; want [0 1 2 3]", path)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(start) = %v; want [0]", path)
	}

	// Disconnect: fresh vertex is unreachable.
	if _, err = g.AddVertex("island"); err != nil {
		t.Fatal(err)
	}
	res, err = bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = res.PathTo(4); err == nil {
		t.Error("PathTo(unreachable) must fail")
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}
