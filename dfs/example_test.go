package dfs_test

import (
	"fmt"

	"github.com/nmoraes/friendnet/builder"
	"github.com/nmoraes/friendnet/core"
	"github.com/nmoraes/friendnet/dfs"
)

// ExampleDFS walks the demonstration network from Alice and prints the
// friends in depth-first pre-order.
func ExampleDFS() {
	g := core.New()
	if err := builder.Sample(g); err != nil {
		fmt.Println("build:", err)
		return
	}

	start, _ := g.IndexOf("Alice")
	res, err := dfs.DFS(g, start)
	if err != nil {
		fmt.Println("dfs:", err)
		return
	}
	for _, idx := range res.Order {
		name, _ := g.Name(idx)
		fmt.Println(name)
	}
	fmt.Println("visited:", res.Count())
	// Output:
	// Alice
	// Carol
	// Bob
	// Dave
	// Frank
	// Eve
	// visited: 6
}
