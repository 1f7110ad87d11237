// File: adjacency.go
// Role: Insertion-ordered neighbor set backing each city's adjacency row.
// Determinism:
//   - ids() yields neighbors in the order they were first linked.
//   - Overwriting weights keeps the existing position.

package core

// neighborSet maps neighbor name → Weights and remembers insertion order.
type neighborSet struct {
	weights map[string]Weights
	order   []string
}

func newNeighborSet() *neighborSet {
	return &neighborSet{weights: make(map[string]Weights)}
}

// get returns the weights stored for id.
func (s *neighborSet) get(id string) (Weights, bool) {
	w, ok := s.weights[id]
	return w, ok
}

// has reports whether id is a neighbor.
func (s *neighborSet) has(id string) bool {
	_, ok := s.weights[id]
	return ok
}

// set inserts or overwrites id's weights.
// Complexity: O(1) amortised.
func (s *neighborSet) set(id string, w Weights) {
	if _, ok := s.weights[id]; !ok {
		s.order = append(s.order, id)
	}
	s.weights[id] = w
}

// remove deletes id and reports whether it was present.
// Complexity: O(deg) to keep order compact.
func (s *neighborSet) remove(id string) bool {
	if _, ok := s.weights[id]; !ok {
		return false
	}
	delete(s.weights, id)
	s.order = removeID(s.order, id)

	return true
}

// len returns the number of neighbors.
func (s *neighborSet) len() int { return len(s.order) }

// ids returns a copy of the neighbor names in insertion order.
func (s *neighborSet) ids() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// clone deep-copies the set.
func (s *neighborSet) clone() *neighborSet {
	c := &neighborSet{
		weights: make(map[string]Weights, len(s.weights)),
		order:   s.ids(),
	}
	for id, w := range s.weights {
		c.weights[id] = w
	}

	return c
}

// removeID deletes the first occurrence of id from ids in place,
// preserving the relative order of the remaining elements.
func removeID(ids []string, id string) []string {
	for i, x := range ids {
		if x == id {
			copy(ids[i:], ids[i+1:])
			ids[len(ids)-1] = ""

			return ids[:len(ids)-1]
		}
	}

	return ids
}
