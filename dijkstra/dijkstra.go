package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/citymap/core"
)

// Distance returns the path from start to destination minimising the sum
// of Weights.Distance, and that sum.
func Distance(g *core.Graph, start, destination string) core.PathResult {
	return ShortestPath(g, start, destination, ByDistance)
}

// Time returns the path from start to destination minimising the sum of
// Weights.Time, and that sum.
func Time(g *core.Graph, start, destination string) core.PathResult {
	return ShortestPath(g, start, destination, ByTime)
}

// ShortestPath computes the minimum-cost path from start to destination,
// where the cost of an edge is metric(weights).
//
// Returns an empty PathResult when:
//   - g is nil or metric is nil,
//   - start or destination is not a city,
//   - destination is unreachable from start.
//
// A query with start == destination yields a one-city path with cost 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, destination string, metric Metric) core.PathResult {
	if g == nil || metric == nil {
		return core.PathResult{}
	}
	if !g.ContainsCity(start) || !g.ContainsCity(destination) {
		return core.PathResult{}
	}

	r := newRunner(g, start, destination, metric)
	r.process()

	return r.result()
}

// runner holds the mutable state for a single execution.
//
// Improved cities are pushed again and stale heap entries are skipped when
// popped. +Inf marks "not reached"; it is only ever assigned, never derived,
// so the unreachable check is an exact comparison.
type runner struct {
	g           *core.Graph
	metric      Metric
	start       string
	destination string
	cost        map[string]float64 // city → best known cost from start
	prev        map[string]string  // city → predecessor on that best path
	pq          nodePQ
}

// newRunner sets every city's cost to +Inf, the start's to 0, and seeds
// the frontier with the start.
func newRunner(g *core.Graph, start, destination string, metric Metric) *runner {
	n := g.NumberOfCities()
	r := &runner{
		g:           g,
		metric:      metric,
		start:       start,
		destination: destination,
		cost:        make(map[string]float64, n),
		prev:        make(map[string]string, n),
		pq:          make(nodePQ, 0, n),
	}
	for _, city := range g.AllCities() {
		r.cost[city] = math.Inf(1)
	}
	r.cost[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{city: start, cost: 0})

	return r
}

// process is the main loop: extract the cheapest frontier entry, drop it if
// stale, stop at the destination, otherwise relax its edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		if item.cost > r.cost[item.city] {
			continue
		}
		if item.city == r.destination {
			break
		}

		r.relax(item.city, item.cost)
	}
}

// relax tries to improve every neighbor of city through city.
// Strict < keeps the first-found predecessor on ties.
func (r *runner) relax(city string, costSoFar float64) {
	for _, nbr := range r.g.Neighbors(city) {
		w, ok := r.g.EdgeWeights(city, nbr)
		if !ok {
			continue
		}
		next := costSoFar + r.metric(w)
		if next < r.cost[nbr] {
			r.cost[nbr] = next
			r.prev[nbr] = city
			heap.Push(&r.pq, &nodeItem{city: nbr, cost: next})
		}
	}
}

// result walks predecessors back from the destination and reverses them.
func (r *runner) result() core.PathResult {
	total := r.cost[r.destination]
	if total == math.Inf(1) {
		return core.PathResult{}
	}

	path := []string{}
	for cur := r.destination; ; cur = r.prev[cur] {
		path = append(path, cur)
		if cur == r.start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return core.PathResult{Path: path, DistanceOrTime: total}
}
