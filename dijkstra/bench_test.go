package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathview/builder"
	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/dijkstra"
)

func benchmarkGrid(b *testing.B, side int) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithOriented(false)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	end := builder.GridID(side-1, side-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, "0,0", end); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPathGrid10(b *testing.B) { benchmarkGrid(b, 10) }
func BenchmarkShortestPathGrid30(b *testing.B) { benchmarkGrid(b, 30) }
