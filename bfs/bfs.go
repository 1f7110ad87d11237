// Package bfs provides breadth-first traversal over a core.Graph,
// returning cities in level (discovery) order.
package bfs

import (
	"github.com/katalvlaran/citymap/core"
)

// queueItem pairs a city with its BFS depth.
type queueItem struct {
	city  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	order   []string
}

// BFS runs breadth-first search on g starting from start.
//
// A city is marked visited when it is enqueued, not when it is dequeued, so
// no city ever enters the queue twice. Neighbors are enqueued in
// core.Graph.Neighbors order. Only the component reachable from start is
// visited.
//
// Returns an empty, non-nil slice when g is nil or start is not a city.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) []string {
	if g == nil || !g.ContainsCity(start) {
		return []string{}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumberOfCities()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}

	w.enqueue(start, 0)
	w.loop()

	return w.order
}

// enqueue marks city visited at depth d, calls OnEnqueue and appends it
// to the queue.
func (w *walker) enqueue(city string, d int) {
	w.visited[city] = true
	w.opts.OnEnqueue(city, d)
	w.queue = append(w.queue, queueItem{city: city, depth: d})
}

// loop processes the queue until it is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.opts.OnVisit(item.city, len(w.order))
		w.order = append(w.order, item.city)

		for _, nbr := range w.graph.Neighbors(item.city) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}
}
