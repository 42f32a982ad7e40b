package dijkstra_test

import (
	"bytes"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathview/builder"
	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/dijkstra"
	"github.com/katalvlaran/pathview/metrics"
)

// fakeRecorder captures everything a query reports.
type fakeRecorder struct {
	mu          sync.Mutex
	outcomes    []string
	relaxations int
	skipped     int
}

func (f *fakeRecorder) ObserveQuery(outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeRecorder) AddRelaxations(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relaxations += n
}

func (f *fakeRecorder) AddSkippedArcs(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skipped += n
}

// triangle builds A→B(2), B→C(3), A→C(10).
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"A", "B", "C"} {
		_, err := g.AddNode(id, 0, 0, 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddArc("A", "B", 2))
	require.NoError(t, g.AddArc("B", "C", 3))
	require.NoError(t, g.AddArc("A", "C", 10))

	return g
}

func TestShortestPathPrefersCheaperDetour(t *testing.T) {
	rec := &fakeRecorder{}
	p, err := dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithRecorder(rec))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, 5.0, p.Distance)
	assert.Equal(t, []string{"A", "B", "C"}, p.IDs())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{metrics.OutcomeFound}, rec.outcomes)
	assert.Equal(t, 3, rec.relaxations, "B once, C twice")
}

func TestShortestPathUnreachable(t *testing.T) {
	rec := &fakeRecorder{}
	p, err := dijkstra.ShortestPath(triangle(t), "C", "A", dijkstra.WithRecorder(rec))
	require.NoError(t, err)
	assert.Nil(t, p, "an unreachable destination yields no path, not an empty one")
	assert.Equal(t, []string{metrics.OutcomeUnreachable}, rec.outcomes)
}

func TestShortestPathNonOrientedGoesBothWays(t *testing.T) {
	p, err := dijkstra.ShortestPath(triangle(t, core.WithOriented(false)), "C", "A")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"C", "B", "A"}, p.IDs())
	assert.Equal(t, 5.0, p.Distance)
}

func TestShortestPathToSelf(t *testing.T) {
	rec := &fakeRecorder{}
	p, err := dijkstra.ShortestPath(triangle(t), "B", "B", dijkstra.WithRecorder(rec))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"B"}, p.IDs())
	assert.Zero(t, p.Distance)
	assert.Zero(t, rec.relaxations)
}

func TestShortestPathValidation(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	rec := &fakeRecorder{}
	_, err = dijkstra.ShortestPath(g, "Q", "B", dijkstra.WithRecorder(rec))
	require.ErrorIs(t, err, dijkstra.ErrUnknownEndpoint)
	assert.Contains(t, err.Error(), `"Q"`)
	assert.Equal(t, []string{metrics.OutcomeInvalid}, rec.outcomes)

	_, err = dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrUnknownEndpoint)
	assert.Contains(t, err.Error(), `"Z"`)
}

func TestRunValidation(t *testing.T) {
	g := triangle(t)

	_, err := dijkstra.Run(nil, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.Run(g, 3, 1)
	require.ErrorIs(t, err, dijkstra.ErrIndexOutOfRange)
	_, err = dijkstra.Run(g, 0, -2)
	require.ErrorIs(t, err, dijkstra.ErrIndexOutOfRange)

	res, err := dijkstra.Run(g, 0, core.NotFound)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 5}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, res.Prev)
	assert.Equal(t, []bool{true, true, true}, res.Explored)
}

func TestRunEarlyStopLeavesDestinationUnexplored(t *testing.T) {
	res, err := dijkstra.Run(triangle(t), 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Explored[0])
	assert.False(t, res.Explored[1], "the destination is final once selected")
	assert.Equal(t, 2.0, res.Dist[1])
}

func TestEqualCostKeepsFirstPredecessor(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"S", "B", "C", "D"} {
		_, err := g.AddNode(id, 0, 0, 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddArc("S", "C", 1))
	require.NoError(t, g.AddArc("S", "B", 1))
	require.NoError(t, g.AddArc("B", "D", 1))
	require.NoError(t, g.AddArc("C", "D", 1))

	p, err := dijkstra.ShortestPath(g, "S", "D")
	require.NoError(t, err)
	// B has the lower index, is selected first and claims D; C only ties.
	assert.Equal(t, []string{"S", "B", "D"}, p.IDs())
}

func TestDanglingArcsAreSkippedAndCounted(t *testing.T) {
	g := core.NewGraph(core.WithDanglingArcs())
	for _, id := range []string{"A", "B"} {
		_, err := g.AddNode(id, 0, 0, 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddArc("A", "ghost", 1))
	require.NoError(t, g.AddArc("A", "B", 4))

	rec := &fakeRecorder{}
	p, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithRecorder(rec))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 4.0, p.Distance)
	assert.Equal(t, 1, rec.skipped)

	res, err := dijkstra.Run(g, 0, core.NotFound)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
}

func TestRelaxationOnlyLowersDistances(t *testing.T) {
	g := randomGraph(t, 99, 30, 0.2)
	calls := 0
	_, err := dijkstra.Run(g, 0, core.NotFound, dijkstra.WithOnRelax(func(node int, before, after float64) {
		calls++
		assert.Less(t, after, before, "node %d", node)
	}))
	require.NoError(t, err)
	assert.Positive(t, calls)
}

func TestEarlyStopMatchesFullRun(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, seed, 25, 0.15)
		full, err := dijkstra.Run(g, 0, core.NotFound, dijkstra.WithoutEarlyStop())
		require.NoError(t, err)

		for end := 1; end < g.Size(); end++ {
			res, err := dijkstra.Run(g, 0, end)
			require.NoError(t, err)
			assert.Equal(t, full.Dist[end], res.Dist[end], "seed=%d end=%d", seed, end)
		}
	}
}

func TestDistancesMatchBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, seed, 20, 0.2)
		want := bellmanFord(g, 0)

		res, err := dijkstra.Run(g, 0, core.NotFound)
		require.NoError(t, err)
		require.Equal(t, want, res.Dist, "seed=%d", seed)

		for end := 1; end < g.Size(); end++ {
			endID, _ := g.NodeID(end)
			p, err := dijkstra.ShortestPath(g, "0", endID)
			require.NoError(t, err)
			if math.IsInf(want[end], 1) {
				assert.Nil(t, p)
				continue
			}
			require.NotNil(t, p)
			assert.Equal(t, want[end], p.Distance)
			assert.Equal(t, want[end], pathWeight(t, g, p.IDs()), "seed=%d end=%s", seed, endID)
			assert.Equal(t, "0", p.IDs()[0])
			assert.Equal(t, endID, p.IDs()[p.Len()-1])
		}
	}
}

func TestGridCornerToCorner(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithOriented(false)}, nil, builder.Grid(4, 5))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(3, 4))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 7.0, p.Distance, "Manhattan distance with unit weights")
	assert.Equal(t, 8, p.Len())
}

func TestConcurrentQueries(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightFn(builder.UniformWeightFn(1, 5))},
		builder.Grid(6, 6))
	require.NoError(t, err)
	want, err := dijkstra.ShortestPath(g, "0,0", "5,5")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := dijkstra.ShortestPath(g, "0,0", "5,5")
			assert.NoError(t, err)
			assert.Equal(t, want.Distance, p.Distance)
		}()
	}
	wg.Wait()
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dijkstra.Print(&buf, nil))
	p, err := dijkstra.ShortestPath(triangle(t), "A", "C")
	require.NoError(t, err)
	require.NoError(t, dijkstra.Print(&buf, p))

	assert.Equal(t, "path: none\npath (distance = 5): [A, B, C]\n", buf.String())
}

func TestReconstructRejectsBadInput(t *testing.T) {
	g := triangle(t)
	res, err := dijkstra.Run(g, 2, core.NotFound)
	require.NoError(t, err)

	assert.Nil(t, dijkstra.Reconstruct(g, res, 0), "A is unreachable from C")
	assert.Nil(t, dijkstra.Reconstruct(g, res, 7))
	assert.Nil(t, dijkstra.Reconstruct(g, nil, 0))
	assert.Equal(t, []string{"C"}, dijkstra.Reconstruct(g, res, 2).IDs())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithLogger(nil) })
	assert.Panics(t, func() { dijkstra.WithRecorder(nil) })
	assert.Panics(t, func() { dijkstra.WithOnRelax(nil) })
}

// randomGraph builds an oriented G(n, p) with weights in [0, 9].
func randomGraph(t *testing.T, seed int64, n int, p float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
		builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// bellmanFord is the reference distance oracle.
func bellmanFord(g *core.Graph, start int) []float64 {
	n := g.Size()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for round := 0; round < n-1; round++ {
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, a := range g.ArcList(u) {
				v := g.NodeIndex(a.To)
				if d := dist[u] + float64(a.Weight); d < dist[v] {
					dist[v] = d
				}
			}
		}
	}

	return dist
}

// pathWeight sums the cheapest arc between consecutive identifiers.
func pathWeight(t *testing.T, g *core.Graph, ids []string) float64 {
	t.Helper()
	total := 0.0
	for i := 0; i+1 < len(ids); i++ {
		best := math.Inf(1)
		for _, a := range g.ArcList(g.NodeIndex(ids[i])) {
			if a.To == ids[i+1] && float64(a.Weight) < best {
				best = float64(a.Weight)
			}
		}
		require.False(t, math.IsInf(best, 1), "no arc %s→%s", ids[i], ids[i+1])
		total += best
	}

	return total
}
