package main

import (
	"github.com/katalvlaran/citymap/builder"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/registry"
)

const (
	demoGraphName    = "demo"
	latticeGraphName = "lattice"
	latticeSize      = 4
	latticeSeed      = 1
)

// demoRoads are the links of the demo graph: distance in km, time in hours.
var demoRoads = []struct {
	from, to       string
	distance, time float64
}{
	{"A", "B", 10, 1},
	{"B", "C", 10, 1},
	{"A", "C", 30, 5},
	{"C", "D", 5, 1},
}

// seedDemo registers the demo graph and a generated lattice, and selects
// the demo graph.
func seedDemo(reg *registry.Registry) error {
	g := core.NewGraph()
	for _, r := range demoRoads {
		g.AddEdge(r.from, r.to, r.distance, r.time)
	}
	if err := reg.Put(demoGraphName, g); err != nil {
		return err
	}

	lattice, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(latticeSeed),
		builder.WithDistanceFn(builder.UniformIntWeightFn(5, 60)),
		builder.WithTimeFn(builder.UniformWeightFn(0.1, 1.5)),
	}, builder.Grid(latticeSize, latticeSize))
	if err != nil {
		return err
	}
	if err := reg.Put(latticeGraphName, lattice); err != nil {
		return err
	}

	if err := reg.Select(demoGraphName); err != nil {
		return err
	}
	reg.ClearModified()

	return nil
}
