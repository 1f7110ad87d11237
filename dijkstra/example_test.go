package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
)

// ExampleDistance finds the shortest road between two cities and shows how
// removing a city cuts the route.
func ExampleDistance() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 10, 1)
	g.AddEdge("B", "C", 10, 1)
	g.AddEdge("A", "C", 30, 5)
	g.AddEdge("C", "D", 5, 1)

	res := dijkstra.Distance(g, "A", "D")
	fmt.Println(res.Path, res.DistanceOrTime)

	g.DeleteCity("C")
	fmt.Println(dijkstra.Summary(dijkstra.Distance(g, "A", "D"), dijkstra.UnitKilometres))

	// Output:
	// [A B C D] 25
	// no path
}

// ExampleTime compares the fastest and the shortest route.
func ExampleTime() {
	g := core.NewGraph()
	g.AddEdge("Paris", "Lyon", 465, 4.5)
	g.AddEdge("Lyon", "Marseille", 315, 3)
	g.AddEdge("Paris", "Clermont", 420, 4)
	g.AddEdge("Clermont", "Marseille", 330, 5)

	fmt.Println(dijkstra.Summary(dijkstra.Distance(g, "Paris", "Marseille"), dijkstra.UnitKilometres))
	fmt.Println(dijkstra.Summary(dijkstra.Time(g, "Paris", "Marseille"), dijkstra.UnitHours))

	// Output:
	// Paris -> Clermont -> Marseille (750 km)
	// Paris -> Lyon -> Marseille (7.5 h)
}
