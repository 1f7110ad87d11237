// Package bfs provides breadth-first traversal over a core.Graph.
//
// What
//
//   - Explore cities in non-decreasing hop count from a start city.
//   - Returns the visit order as a []string; each element is one step of
//     the traversal and can drive one frame of a visual animation.
//   - Supports functional hooks:
//   - OnEnqueue (when a city is discovered)
//   - OnVisit   (when a city is appended to the order)
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors in link insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Failure signal
//
//	BFS never returns an error. A nil graph or an unknown start city yields
//	an empty slice; cities outside the start's component are simply absent.
//
// Complexity (V = cities, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	order := bfs.BFS(g, "Paris")
//
//	order := bfs.BFS(g, "Paris",
//	    bfs.WithOnVisit(func(city string, step int) { /* animate */ }),
//	)
package bfs
