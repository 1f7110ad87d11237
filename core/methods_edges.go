// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/DeleteEdge/ContainsEdge/EdgeWeights/Edges/EdgeCount.
// Determinism:
//   - Edges() walks cities and their neighbors in insertion order and
//     reports each undirected edge once, from the endpoint seen first.
// Invariants kept here:
//   - adjacency[a][b] == adjacency[b][a] for every stored pair.
//   - No a→a entry is ever written.
//   - Stored weights are non-negative.

package core

import "math"

// AddEdge creates or overwrites the undirected edge src—dest.
//
// Steps:
//  1. Return if src == dest (self-loops are never stored).
//  2. Replace distance and time with their absolute values.
//  3. Auto-create missing endpoints through AddCity, keeping the counter exact.
//  4. Write the same Weights into adjacency[src][dest] and adjacency[dest][src].
//
// Re-adding an existing pair replaces its weights; it does not accumulate.
//
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(src, dest string, distance, time float64) {
	if src == dest {
		return
	}
	w := Weights{Distance: math.Abs(distance), Time: math.Abs(time)}

	g.AddCity(src)
	g.AddCity(dest)
	g.adjacency[src].set(dest, w)
	g.adjacency[dest].set(src, w)
}

// DeleteEdge removes the edge src—dest in both directions.
// It is a no-op when the edge is absent in both orientations.
//
// Complexity: O(deg(src) + deg(dest)).
func (g *Graph) DeleteEdge(src, dest string) {
	if !g.ContainsEdge(src, dest) {
		return
	}
	if row, ok := g.adjacency[src]; ok {
		row.remove(dest)
	}
	if row, ok := g.adjacency[dest]; ok {
		row.remove(src)
	}
}

// ContainsEdge reports whether a and b are linked.
// Either orientation counts; symmetry makes the second lookup redundant
// unless the adjacency has been corrupted.
//
// Complexity: O(1)
func (g *Graph) ContainsEdge(a, b string) bool {
	if row, ok := g.adjacency[a]; ok && row.has(b) {
		return true
	}
	if row, ok := g.adjacency[b]; ok && row.has(a) {
		return true
	}

	return false
}

// EdgeWeights returns the weights stored on a—b.
// The second result is false when the edge does not exist.
//
// Complexity: O(1)
func (g *Graph) EdgeWeights(a, b string) (Weights, bool) {
	if row, ok := g.adjacency[a]; ok {
		if w, found := row.get(b); found {
			return w, true
		}
	}
	if row, ok := g.adjacency[b]; ok {
		return row.get(a)
	}

	return Weights{}, false
}

// Edges returns every stored edge exactly once.
//
// Cities are walked in insertion order; an edge is reported from the
// endpoint that appears first in that order, with its neighbors in link
// order. This is the enumeration surface used for rendering.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	seen := make(map[string]struct{}, len(g.order))
	out := make([]Edge, 0, g.EdgeCount())
	for _, city := range g.order {
		row := g.adjacency[city]
		for _, nbr := range row.order {
			if _, done := seen[nbr]; done {
				continue
			}
			out = append(out, Edge{From: city, To: nbr, Weights: row.weights[nbr]})
		}
		seen[city] = struct{}{}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	total := 0
	for _, row := range g.adjacency {
		total += row.len()
	}

	return total / 2
}
