package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/puzzles/fifteen"
	"github.com/katalvlaran/lvsearch/puzzles/tour"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/uninformed"
)

type edge struct {
	to   string
	cost float64
}

// weighted builds a problem from an adjacency list and a heuristic table.
func weighted(adj map[string][]edge, h map[string]float64, goal string) search.Problem[string] {
	return search.Problem[string]{
		MoveGen: func(s string) []string {
			out := make([]string, 0, len(adj[s]))
			for _, e := range adj[s] {
				out = append(out, e.to)
			}
			return out
		},
		GoalTest:  func(s string) bool { return s == goal },
		Heuristic: func(s string) float64 { return h[s] },
		Cost: func(from, to string) float64 {
			for _, e := range adj[from] {
				if e.to == to {
					return e.cost
				}
			}
			return math.Inf(1)
		},
	}
}

// overestimated closes C through the expensive branch B first because
// h(A) overestimates; the cheaper route through A is found afterwards.
func overestimated() search.Problem[string] {
	adj := map[string][]edge{
		"S": {{"A", 1}, {"B", 1}},
		"A": {{"C", 1}},
		"B": {{"C", 3}},
		"C": {{"G", 20}},
	}
	h := map[string]float64{"S": 0, "A": 10, "B": 0, "C": 0, "G": 0}

	return weighted(adj, h, "G")
}

func TestSearch_CheapestPathOnWeightedGraph(t *testing.T) {
	adj := map[string][]edge{
		"S": {{"A", 1}, {"B", 4}},
		"A": {{"B", 2}, {"C", 5}},
		"B": {{"C", 1}},
		"C": {{"G", 3}},
	}
	h := map[string]float64{"S": 6, "A": 5, "B": 4, "C": 3, "G": 0}

	res, err := astar.Search(weighted(adj, h, "G"), "S")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "B", "C", "G"}, res.Path)
	assert.Equal(t, 7.0, res.Cost)
}

func TestSearch_RelaxationRepairsClosedNodes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	res, err := astar.Search(overestimated(), "S", search.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "C", "G"}, res.Path)
	assert.Equal(t, 22.0, res.Cost)
	assert.Equal(t, 5, res.Expanded)
	assert.Equal(t, 1, logs.FilterMessage("relax").Len())
	assert.Equal(t, 1, logs.FilterMessage("propagated").Len())
}

func TestSearch_WithoutRelaxation(t *testing.T) {
	res, err := astar.Search(overestimated(), "S", search.WithRelaxation(false))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"S", "B", "C", "G"}, res.Path)
	assert.Equal(t, 24.0, res.Cost)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_RelaxationNeverCostsMore(t *testing.T) {
	with, err := astar.Search(overestimated(), "S")
	require.NoError(t, err)
	without, err := astar.Search(overestimated(), "S", search.WithRelaxation(false))
	require.NoError(t, err)
	assert.LessOrEqual(t, with.Cost, without.Cost)
}

// cyclic closes C, D and E through B before the cheaper route through A is
// found. Repairing C lowers D and E, and D lowers E a second time, so E is
// pushed twice during one propagation but rescanned once. E → C closes a
// zero-cost cycle back into the repaired region.
func cyclic() search.Problem[string] {
	adj := map[string][]edge{
		"S": {{"A", 1}, {"B", 1}},
		"A": {{"C", 1}},
		"B": {{"C", 5}},
		"C": {{"E", 4}, {"D", 1}},
		"D": {{"E", 1}},
		"E": {{"C", 0}, {"G", 200}},
	}
	h := map[string]float64{"A": 100}

	return weighted(adj, h, "G")
}

func TestSearch_RelaxationThroughCycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	res, err := astar.Search(cyclic(), "S", search.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"S", "A", "C", "D", "E", "G"}, res.Path)
	assert.Equal(t, 204.0, res.Cost)
	// S B C D E A, then the rescans of C D E; the stale second E is skipped
	assert.Equal(t, 9, res.Expanded)

	assert.Equal(t, 1, logs.FilterMessage("relax").Len())
	propagated := logs.FilterMessage("propagated").All()
	require.Len(t, propagated, 1)
	assert.Equal(t, int64(3), propagated[0].ContextMap()["rescanned"])

	plain, err := astar.Search(cyclic(), "S", search.WithRelaxation(false))
	require.NoError(t, err)
	require.True(t, plain.Found)
	assert.Equal(t, []string{"S", "B", "C", "D", "E", "G"}, plain.Path)
	assert.Equal(t, 208.0, plain.Cost)
	assert.Equal(t, 6, plain.Expanded)
}

// digraph is a dense directed graph; cost[u][v] is +Inf for a missing edge.
type digraph struct {
	n    int
	cost [][]float64
}

func randomDigraph(rng *rand.Rand) digraph {
	n := 3 + rng.Intn(10)
	cost := make([][]float64, n)
	for u := range cost {
		cost[u] = make([]float64, n)
		for v := range cost[u] {
			cost[u][v] = math.Inf(1)
			if u != v && rng.Float64() < 0.35 {
				cost[u][v] = float64(rng.Intn(5))
			}
		}
	}

	return digraph{n: n, cost: cost}
}

// dijkstra returns the distances from src, or to src when reverse is set.
func (g digraph) dijkstra(src int, reverse bool) []float64 {
	dist := make([]float64, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	done := make([]bool, g.n)
	for {
		u := -1
		for v := 0; v < g.n; v++ {
			if !done[v] && !math.IsInf(dist[v], 1) && (u < 0 || dist[v] < dist[u]) {
				u = v
			}
		}
		if u < 0 {
			return dist
		}
		done[u] = true
		for v := 0; v < g.n; v++ {
			w := g.cost[u][v]
			if reverse {
				w = g.cost[v][u]
			}
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
			}
		}
	}
}

func (g digraph) problem(h []float64) search.Problem[int] {
	return search.Problem[int]{
		MoveGen: func(u int) []int {
			var out []int
			for v := 0; v < g.n; v++ {
				if !math.IsInf(g.cost[u][v], 1) {
					out = append(out, v)
				}
			}
			return out
		},
		GoalTest:  func(v int) bool { return v == g.n-1 },
		Heuristic: func(v int) float64 { return h[v] },
		Cost:      func(u, v int) float64 { return g.cost[u][v] },
	}
}

// Scaling the true distance by a random factor per node keeps h admissible
// but makes it inconsistent, so closed nodes keep getting cheaper paths.
func TestSearch_MatchesDijkstraOnRandomGraphs(t *testing.T) {
	rng := search.NewRand(2024)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	for trial := 0; trial < 2000; trial++ {
		g := randomDigraph(rng)
		goal := g.n - 1
		dist := g.dijkstra(0, false)
		toGoal := g.dijkstra(goal, true)
		h := make([]float64, g.n)
		for v := range h {
			if !math.IsInf(toGoal[v], 1) {
				h[v] = rng.Float64() * toGoal[v]
			}
		}
		p := g.problem(h)

		res, err := astar.Search(p, 0, search.WithLogger(logger))
		require.NoError(t, err)
		if math.IsInf(dist[goal], 1) {
			require.False(t, res.Found, "trial %d", trial)
			continue
		}
		require.True(t, res.Found, "trial %d", trial)
		require.Equal(t, dist[goal], res.Cost, "trial %d", trial)
		require.Equal(t, 0, res.Path[0], "trial %d", trial)
		require.Equal(t, goal, res.Path[len(res.Path)-1], "trial %d", trial)
		sum := 0.0
		for i := 1; i < len(res.Path); i++ {
			c := g.cost[res.Path[i-1]][res.Path[i]]
			require.False(t, math.IsInf(c, 1), "trial %d: no edge %d→%d", trial, res.Path[i-1], res.Path[i])
			sum += c
		}
		require.Equal(t, res.Cost, sum, "trial %d", trial)

		plain, err := astar.Search(p, 0, search.WithRelaxation(false))
		require.NoError(t, err)
		require.True(t, plain.Found, "trial %d", trial)
		require.GreaterOrEqual(t, plain.Cost, res.Cost, "trial %d", trial)
	}

	assert.Positive(t, logs.FilterMessage("relax").Len())
}

func TestSearch_FifteenPuzzleMatchesBFSDepth(t *testing.T) {
	start := fifteen.Scramble(search.NewRand(11), 12)
	require.True(t, start.Solvable())

	bfs, err := uninformed.ConfigSearch(fifteen.Problem(nil), start, uninformed.BFS, uninformed.One)
	require.NoError(t, err)
	require.True(t, bfs.Found)

	for name, h := range map[string]func(fifteen.Board) float64{
		"manhattan": fifteen.Manhattan,
		"hamming":   fifteen.Hamming,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := astar.Search(fifteen.Problem(h), start)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, float64(bfs.Len()-1), res.Cost)
			assert.Len(t, res.Path, bfs.Len())
			assert.Equal(t, start, res.Path[0])
			assert.True(t, res.Path[len(res.Path)-1].IsGoal())
		})
	}
}

func TestSearch_UniformCostWeights(t *testing.T) {
	start := fifteen.Scramble(search.NewRand(5), 8)
	informed, err := astar.Search(fifteen.Problem(nil), start)
	require.NoError(t, err)
	uniform, err := astar.Search(fifteen.Problem(nil), start, search.WithWeights(1, 0))
	require.NoError(t, err)

	assert.Equal(t, informed.Cost, uniform.Cost)
	assert.LessOrEqual(t, informed.Expanded, uniform.Expanded)
}

func TestSearch_GreedyWeightsStillReachGoal(t *testing.T) {
	start := fifteen.Scramble(search.NewRand(3), 10)
	res, err := astar.Search(fifteen.Problem(nil), start, search.WithWeights(0, 1))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.True(t, res.Path[len(res.Path)-1].IsGoal())
	assert.Equal(t, float64(len(res.Path)-1), res.Cost)
}

func TestSearch_OptimalTour(t *testing.T) {
	dist := [][]float64{
		{0, 3, 9, 4, 7, 2},
		{5, 0, 6, 8, 3, 9},
		{2, 7, 0, 5, 4, 6},
		{8, 2, 7, 0, 9, 3},
		{6, 9, 3, 4, 0, 8},
		{4, 5, 8, 2, 6, 0},
	}
	in, err := tour.NewInstance(dist)
	require.NoError(t, err)

	res, err := astar.Search(in.Construct(), in.Start())
	require.NoError(t, err)
	require.True(t, res.Found)

	order := tour.Order(res.Path)
	got, err := in.FromSlice(order)
	require.NoError(t, err)
	assert.Equal(t, in.Cost(got), res.Cost)
	assert.Equal(t, bruteForce(in), res.Cost)
}

// bruteForce enumerates every tour starting at city 0.
func bruteForce(in *tour.Instance) float64 {
	n := in.Len()
	best := math.Inf(1)
	order := []int{0}
	used := make([]bool, n)
	used[0] = true
	var rec func(cost float64)
	rec = func(cost float64) {
		if len(order) == n {
			best = math.Min(best, cost+in.Dist(order[n-1], 0))
			return
		}
		for c := 1; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			cost2 := cost + in.Dist(order[len(order)-1], c)
			order = append(order, c)
			rec(cost2)
			order = order[:len(order)-1]
			used[c] = false
		}
	}
	rec(0)

	return best
}

func TestSearch_GoalStart(t *testing.T) {
	res, err := astar.Search(fifteen.Problem(nil), fifteen.Goal())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []fifteen.Board{fifteen.Goal()}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_Unsolvable(t *testing.T) {
	adj := map[string][]edge{"S": {{"A", 1}}, "A": {{"S", 1}}}
	res, err := astar.Search(weighted(adj, nil, "G"), "S")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 2, res.Expanded)
}

func TestSearch_NegativeCost(t *testing.T) {
	adj := map[string][]edge{"S": {{"A", 1}}, "A": {{"G", -2}}}
	_, err := astar.Search(weighted(adj, nil, "G"), "S")
	assert.ErrorIs(t, err, astar.ErrNegativeCost)

	adj["A"] = []edge{{"G", math.NaN()}}
	_, err = astar.Search(weighted(adj, nil, "G"), "S")
	assert.ErrorIs(t, err, astar.ErrNegativeCost)
}

func TestSearch_InvalidInput(t *testing.T) {
	p := overestimated()
	p.Cost = nil
	_, err := astar.Search(p, "S")
	assert.ErrorIs(t, err, search.ErrNilCost)

	p = overestimated()
	p.Heuristic = nil
	_, err = astar.Search(p, "S")
	assert.ErrorIs(t, err, search.ErrNilHeuristic)

	_, err = astar.Search(overestimated(), "S", search.WithWeights(0, 0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSearch_Deterministic(t *testing.T) {
	start := fifteen.Scramble(search.NewRand(21), 16)
	a, err := astar.Search(fifteen.Problem(nil), start)
	require.NoError(t, err)
	b, err := astar.Search(fifteen.Problem(nil), start)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
