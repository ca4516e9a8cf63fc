// Command friendnet is an interactive explorer for a friendship graph:
// insert and remove people and friendships, inspect the adjacency and
// incidence matrices, run BFS/DFS, and export the network to Graphviz.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmoraes/friendnet/core"
)

var (
	capacity int
	dotPath  string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "friendnet",
		Short: "Interactive friendship-graph explorer",
		Long: "friendnet maintains an undirected friendship graph with a dual\n" +
			"adjacency-list / adjacency-matrix representation and drives it\n" +
			"through a simple interactive menu.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if capacity <= 0 {
				return fmt.Errorf("--capacity must be positive, got %d", capacity)
			}
			g := core.New(core.WithCapacity(capacity))

			return runMenu(g, os.Stdin, cmd.OutOrStdout(), dotPath)
		},
	}
	root.Flags().IntVar(&capacity, "capacity", core.DefaultCapacity,
		"maximum number of people in the network")
	root.Flags().StringVar(&dotPath, "dot-path", "friends.dot",
		"output path for the Graphviz export")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("friendnet: %v", err)
	}
}
