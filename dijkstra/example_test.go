package dijkstra_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/dijkstra"
)

// ExampleShortestPath finds the cheaper two-hop route over a direct arc.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_, _ = g.AddNode(id, 0, 0, 0)
	}
	_ = g.AddArc("A", "B", 2)
	_ = g.AddArc("B", "C", 3)
	_ = g.AddArc("A", "C", 10)

	p, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = dijkstra.Print(os.Stdout, p)

	// Oriented arcs: nothing leads back to A.
	back, _ := dijkstra.ShortestPath(g, "C", "A")
	_ = dijkstra.Print(os.Stdout, back)
	// Output:
	// path (distance = 5): [A, B, C]
	// path: none
}

// ExampleRun inspects the full distance table from one source.
func ExampleRun() {
	g := core.NewGraph(core.WithOriented(false))
	for _, id := range []string{"X", "Y", "Z"} {
		_, _ = g.AddNode(id, 0, 0, 0)
	}
	_ = g.AddArc("X", "Y", 1)
	_ = g.AddArc("Y", "Z", 1)

	res, _ := dijkstra.Run(g, g.NodeIndex("Z"), core.NotFound)
	fmt.Println(res.Dist, res.Prev)
	// Output:
	// [2 1 0] [1 2 -1]
}
