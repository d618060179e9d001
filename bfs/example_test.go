package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/degseq/bfs"
	"github.com/katalvlaran/degseq/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex i*3+j sits at row i, column j.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(i*3+j, i*3+j+1)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(i*3+j, (i+1)*3+j)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleConnectedComponents reports the component structure of a forest.
func ExampleConnectedComponents() {
	g, _ := core.FromEdgeList([]int{0, 1, 2, 3, 3, 4}, 6)
	c, _ := bfs.ConnectedComponents(g)
	fmt.Println(c.Count(), c.Sizes, bfs.IsConnected(g))
	// Output:
	// 3 [2 3 1] false
}
