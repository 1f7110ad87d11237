// Package dijkstra provides Dijkstra's shortest-path algorithm over the two
// weights carried by every core.Graph edge.
//
// Overview:
//
//   - Distance(g, a, b) minimises the summed Weights.Distance.
//   - Time(g, a, b) minimises the summed Weights.Time.
//   - ShortestPath(g, a, b, metric) is the single routine behind both; any
//     Metric returning non-negative costs can be plugged in.
//   - Results are core.PathResult values: the start→destination city
//     sequence and the accumulated cost along it.
//   - Summary renders a PathResult as one line of text for display.
//
// Failure signal:
//
//	No errors are returned. Unknown endpoints and unreachable destinations
//	both yield an empty PathResult; a start == destination query yields the
//	one-city path with cost 0, so emptiness alone distinguishes failure.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Usage:
//
//	res := dijkstra.Distance(g, "Paris", "Marseille")
//	if res.Empty() {
//	    // no route
//	}
//	fmt.Println(dijkstra.Summary(res, dijkstra.UnitKilometres))
package dijkstra
