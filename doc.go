// Package citymap is an in-memory engine for road networks between named
// cities, with two independent weights on every road: distance and time.
//
// What is in the box?
//
//	core/      — Graph, Weights, Edge, PathResult; city and edge mutation
//	bfs/       — breadth-first traversal with OnEnqueue/OnVisit hooks
//	dfs/       — iterative depth-first traversal with OnPush/OnVisit hooks
//	dijkstra/  — shortest path by distance, by time, or by any Metric
//	builder/   — deterministic fixture graphs (path, cycle, grid, random…)
//	registry/  — named graphs, a current selection, an unsaved-changes flag
//	api/       — HTTP/JSON surface over a registry
//	cmd/citymapd — the server binary
//
// Quick ASCII example:
//
//	    A──10km/1h──B
//	    │           │
//	  30km/5h    10km/1h
//	    │           │
//	    └─────C─────┘
//	          │
//	       5km/1h
//	          │
//	          D
//
//	dijkstra.Distance(g, "A", "D") → [A B C D], 25
//	dijkstra.Time(g, "A", "D")     → [A B C D], 3
//
// Graphs are not safe for concurrent mutation; the registry and the HTTP
// server serialise access on top.
//
//	go get github.com/katalvlaran/citymap
package citymap
