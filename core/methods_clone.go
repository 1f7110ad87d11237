// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves city order and every neighbor order, so traversals
//     on the clone match traversals on the source.

package core

// Clone returns a deep copy of g: cities, edges, insertion order and counter.
// Mutating the clone never affects g and vice versa.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adjacency:      make(map[string]*neighborSet, len(g.adjacency)),
		order:          g.AllCities(),
		numberOfCities: g.numberOfCities,
	}
	for city, row := range g.adjacency {
		clone.adjacency[city] = row.clone()
	}

	return clone
}
