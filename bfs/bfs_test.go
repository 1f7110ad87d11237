package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/core"
)

// diamond builds A–B(10,1), B–C(10,1), A–C(30,5), C–D(5,1).
func diamond() *core.Graph {
	g := core.NewGraph()
	for _, c := range []string{"A", "B", "C", "D"} {
		g.AddCity(c)
	}
	g.AddEdge("A", "B", 10, 1)
	g.AddEdge("B", "C", 10, 1)
	g.AddEdge("A", "C", 30, 5)
	g.AddEdge("C", "D", 5, 1)

	return g
}

// TestBFS_InvalidInput verifies that a nil graph or unknown start yields an empty order.
func TestBFS_InvalidInput(t *testing.T) {
	assert.Empty(t, bfs.BFS(nil, "A"))
	assert.NotNil(t, bfs.BFS(nil, "A"))

	g := core.NewGraph()
	assert.Empty(t, bfs.BFS(g, "missing"))
}

// TestBFS_SingleCity covers the trivial one-city graph.
func TestBFS_SingleCity(t *testing.T) {
	g := core.NewGraph()
	g.AddCity("A")

	assert.Equal(t, []string{"A"}, bfs.BFS(g, "A"))
}

// TestBFS_DiscoveryOrder checks level order on the diamond fixture.
func TestBFS_DiscoveryOrder(t *testing.T) {
	g := diamond()

	assert.Equal(t, []string{"A", "B", "C", "D"}, bfs.BFS(g, "A"))
	assert.Equal(t, []string{"D", "C", "B", "A"}, bfs.BFS(g, "D"))
}

// TestBFS_Cycle checks layers on a 4-cycle A–B–C–D–A.
func TestBFS_Cycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1, 1)
	g.AddEdge("B", "C", 1, 1)
	g.AddEdge("C", "D", 1, 1)
	g.AddEdge("D", "A", 1, 1)

	order := bfs.BFS(g, "A")
	assert.Equal(t, []string{"A", "B", "D", "C"}, order)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start city.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("X", "Y", 1, 1) // component 1
	g.AddEdge("P", "Q", 1, 1) // component 2
	g.AddCity("Lonely")

	assert.Equal(t, []string{"X", "Y"}, bfs.BFS(g, "X"))
	assert.Equal(t, []string{"P", "Q"}, bfs.BFS(g, "P"))
	assert.Equal(t, []string{"Lonely"}, bfs.BFS(g, "Lonely"))
}

// TestBFS_NoDuplicates verifies each city appears once even in a dense graph.
func TestBFS_NoDuplicates(t *testing.T) {
	g := core.NewGraph()
	cities := []string{"A", "B", "C", "D", "E"}
	for i, u := range cities {
		for _, v := range cities[i+1:] {
			g.AddEdge(u, v, 1, 1)
		}
	}

	order := bfs.BFS(g, "C")
	assert.Len(t, order, len(cities))
	assert.ElementsMatch(t, cities, order)
	assert.Equal(t, "C", order[0])
}

// TestBFS_Hooks verifies depths reported on enqueue and step indices on visit.
func TestBFS_Hooks(t *testing.T) {
	g := diamond()

	depths := map[string]int{}
	var steps []string
	order := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(city string, depth int) { depths[city] = depth }),
		bfs.WithOnVisit(func(city string, step int) {
			assert.Equal(t, len(steps), step)
			steps = append(steps, city)
		}),
	)

	assert.Equal(t, order, steps)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, depths)
}

// TestBFS_NilHooksIgnored ensures nil callbacks keep the no-op defaults.
func TestBFS_NilHooksIgnored(t *testing.T) {
	g := diamond()

	assert.NotPanics(t, func() {
		bfs.BFS(g, "A", bfs.WithOnVisit(nil), bfs.WithOnEnqueue(nil))
	})
}
