// Package core defines the Graph, Weights, Edge and PathResult types.
//
// This file declares the data model and the NewGraph constructor.
package core

// Weights is the pair of non-negative costs carried by an edge.
type Weights struct {
	// Distance is the length of the link, typically in kilometres.
	Distance float64

	// Time is the travel time over the link, typically in hours.
	Time float64
}

// Edge is an enumeration record for a stored undirected edge.
// From is the endpoint that was inserted into the graph first.
type Edge struct {
	From string
	To   string
	Weights
}

// PathResult is the outcome of a shortest-path query.
//
// Path lists city names from start to destination inclusive. An empty Path
// means "no path" (unknown endpoint or unreachable destination), in which
// case DistanceOrTime is zero and carries no meaning.
type PathResult struct {
	// Path is the ordered start→destination city sequence.
	Path []string

	// DistanceOrTime is the accumulated weight along Path, of whichever
	// kind the query summed.
	DistanceOrTime float64
}

// Empty reports whether the result denotes "no path".
func (r PathResult) Empty() bool { return len(r.Path) == 0 }

// Graph is a mutable, undirected, edge-weighted graph keyed by city name.
//
// adjacency is both the adjacency list and the edge-weight table.
// order and each neighborSet.order preserve insertion order for
// deterministic enumeration. numberOfCities is maintained incrementally.
type Graph struct {
	adjacency      map[string]*neighborSet // city → neighbor → Weights
	order          []string                // cities in insertion order
	numberOfCities int
}

// NewGraph creates an empty Graph. A zero-value Graph is equally usable.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]*neighborSet),
	}
}
