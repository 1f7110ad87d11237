// File: methods_cities.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - AllCities() returns names in insertion order.
//
// Concurrency:
//   - None. See package doc.

package core

// AddCity inserts an isolated city if it is not already present.
//
// Behavior highlights:
//   - Idempotent: adding an existing city is a no-op.
//   - The city counter is incremented exactly once per distinct name.
//   - No name validation is performed; rejecting empty names is the caller's job.
//   - Works on a zero-value Graph; the adjacency map is allocated on first use.
//
// Complexity:
//   - Time O(1) amortised, Space O(1).
func (g *Graph) AddCity(name string) {
	if _, exists := g.adjacency[name]; exists {
		return
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string]*neighborSet)
	}
	g.adjacency[name] = newNeighborSet()
	g.order = append(g.order, name)
	g.numberOfCities++
}

// DeleteCity removes a city and every edge referencing it.
//
// Implementation:
//   - Stage 1: Return if the city is absent.
//   - Stage 2: Walk a snapshot of the city order and strip name from each
//     neighbor set, so no map is mutated while it is being ranged over.
//   - Stage 3: Drop the city's own row and decrement the counter.
//
// Complexity:
//   - Time O(V + Σdeg) worst case, Space O(V) for the snapshot.
func (g *Graph) DeleteCity(name string) {
	if _, exists := g.adjacency[name]; !exists {
		return
	}

	// Every row is scanned; symmetry is not assumed.
	cities := g.AllCities()
	for _, city := range cities {
		if city == name {
			continue
		}
		g.adjacency[city].remove(name)
	}

	delete(g.adjacency, name)
	g.order = removeID(g.order, name)
	g.numberOfCities--
}

// ContainsCity reports whether name is a city of g.
// Complexity: O(1)
func (g *Graph) ContainsCity(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// AllCities returns every city name in insertion order.
// The slice is a copy; callers may modify it freely.
//
// Complexity: O(V)
func (g *Graph) AllCities() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NumberOfCities returns the incrementally maintained city counter.
// Complexity: O(1)
func (g *Graph) NumberOfCities() int { return g.numberOfCities }

// Neighbors returns the cities linked to name, in link insertion order.
// Unknown cities yield nil.
//
// Complexity: O(deg)
func (g *Graph) Neighbors(name string) []string {
	row, ok := g.adjacency[name]
	if !ok {
		return nil
	}

	return row.ids()
}
