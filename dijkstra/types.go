// Package dijkstra defines the weight-selection policy and the priority
// queue used by the shortest-path routine.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |cities|, E = |edges|
//	– Space: O(V + E)
//	   • O(V) for cost and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
package dijkstra

import (
	"github.com/katalvlaran/citymap/core"
)

// Metric selects which edge weight is summed along a path.
// It must return a non-negative value for every stored edge.
type Metric func(w core.Weights) float64

// ByDistance sums Weights.Distance.
func ByDistance(w core.Weights) float64 { return w.Distance }

// ByTime sums Weights.Time.
func ByTime(w core.Weights) float64 { return w.Time }

// MetricByName resolves "distance" or "time" to its Metric.
// The second result is false for any other name.
func MetricByName(name string) (Metric, bool) {
	switch name {
	case "distance":
		return ByDistance, true
	case "time":
		return ByTime, true
	default:
		return nil, false
	}
}

// nodeItem is a frontier entry: a city and the tentative cost it was
// pushed with.
type nodeItem struct {
	city string
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
// A city may appear several times; entries whose cost exceeds the city's
// current best are stale and skipped on extraction.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
