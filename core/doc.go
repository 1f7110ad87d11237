// Package core provides the in-memory city graph used by every other
// citymap package: a mutable, undirected graph keyed by city name whose
// edges carry two independent weights, a distance and a time.
//
// The Graph G = (V,E) has a deliberately narrow contract:
//
//   - Undirected edges only; adjacency[a][b] and adjacency[b][a] always hold
//     identical Weights.
//   - At most one edge per unordered pair; AddEdge on an existing pair
//     overwrites its weights (upsert, never accumulate).
//   - No self-loops; AddEdge(v, v, ...) is a silent no-op.
//   - Weights are stored non-negative; negative inputs are negated.
//   - Deleting a city removes every edge that references it, on both sides.
//
// Storage:
//
//	adjacency[city][neighbor] = Weights{Distance, Time}
//
// Both levels are insertion-ordered, so AllCities, Neighbors, Edges and the
// traversals built on top of them (bfs, dfs, dijkstra) produce the same
// output for the same sequence of mutations on every platform.
//
// Errors:
//
//	None. Queries on unknown cities return empty results and mutations on
//	unknown cities or edges are no-ops; emptiness is the failure signal.
//
// Concurrency:
//
//	Graph is not safe for concurrent use. Callers that share a Graph
//	between goroutines (see package api) serialise access themselves.
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(name string)                 // O(1) amortised
//	DeleteCity(name string)              // O(V + deg)
//	ContainsCity(name string) bool       // O(1)
//
//	// Edge lifecycle
//	AddEdge(src, dest string, distance, time float64) // O(1) amortised
//	DeleteEdge(src, dest string)         // O(deg)
//	ContainsEdge(a, b string) bool       // O(1)
//	EdgeWeights(a, b string) (Weights, bool)
//
//	// Enumeration
//	AllCities() []string                 // O(V), insertion order
//	Neighbors(name string) []string      // O(deg), insertion order
//	Edges() []Edge                       // O(V + E), each edge once
//	NumberOfCities() int                 // O(1), maintained counter
//	EdgeCount() int                      // O(V)
//
//	// Cloning
//	Clone() *Graph                       // O(V + E)
package core
