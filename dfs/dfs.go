// Package dfs implements iterative, stack-based depth-first traversal on
// core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse the component reachable from start
//   - Hooks: OnVisit (discovery) & OnPush (every stack push)
//
// Complexity:
//
//   - Time:   O(V + E); a city may be pushed once per incident edge.
//   - Memory: O(V + E) for the stack in the worst case.
package dfs

import (
	"github.com/katalvlaran/citymap/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	stack   []string
	visited map[string]bool
	order   []string
}

// DFS performs depth-first search on g from start.
//
// The loop pops a city; if it was already visited the entry is discarded,
// otherwise the city is marked, appended to the result, and every neighbor
// not yet visited is pushed in core.Graph.Neighbors order. The visited
// check is repeated on pop, so a city can sit on the stack several times
// before it is first processed. The resulting order is the contract and
// differs from recursive pre-order DFS.
//
// Returns an empty, non-nil slice when g is nil or start is not a city.
func DFS(g *core.Graph, start string, opts ...Option) []string {
	if g == nil || !g.ContainsCity(start) {
		return []string{}
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	n := g.NumberOfCities()
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		stack:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}
	w.push(start)
	w.run()

	return w.order
}

// push places city on top of the stack.
func (w *dfsWalker) push(city string) {
	if w.opts.OnPush != nil {
		w.opts.OnPush(city)
	}
	w.stack = append(w.stack, city)
}

// pop removes and returns the top of the stack.
func (w *dfsWalker) pop() string {
	last := len(w.stack) - 1
	city := w.stack[last]
	w.stack = w.stack[:last]

	return city
}

// run drains the stack.
func (w *dfsWalker) run() {
	for len(w.stack) > 0 {
		city := w.pop()
		if w.visited[city] {
			continue
		}

		w.visited[city] = true
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(city, len(w.order))
		}
		w.order = append(w.order, city)

		for _, nbr := range w.graph.Neighbors(city) {
			if !w.visited[nbr] {
				w.push(nbr)
			}
		}
	}
}
