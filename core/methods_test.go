// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in idempotence, symmetry, upsert and cascading-delete rules.
//   - Provide anchors for the insertion-order guarantees of AllCities,
//     Neighbors and Edges.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

func TestGraph_AddCity_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddCity(CityA)
	g.AddCity(CityA)

	assert.Equal(t, 1, g.NumberOfCities())
	assert.True(t, g.ContainsCity(CityA))
	assert.Equal(t, []string{CityA}, g.AllCities())
}

func TestGraph_EmptyGraph(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, 0, g.NumberOfCities())
	assert.Empty(t, g.AllCities())
	assert.Empty(t, g.Edges())
	assert.Zero(t, g.EdgeCount())
	assert.Nil(t, g.Neighbors(CityMissing))
	assert.False(t, g.ContainsEdge(CityA, CityB))
}

func TestGraph_ZeroValue(t *testing.T) {
	var g core.Graph

	assert.Zero(t, g.NumberOfCities())
	assert.False(t, g.ContainsCity(CityA))
	g.DeleteCity(CityA)
	g.DeleteEdge(CityA, CityB)

	require.NotPanics(t, func() { g.AddEdge(CityA, CityB, Dist10, Time1) })
	assert.Equal(t, 2, g.NumberOfCities())
	assert.True(t, g.ContainsEdge(CityB, CityA))

	var empty core.Graph
	require.NotPanics(t, func() { empty.AddCity(CityX) })
	assert.Equal(t, []string{CityX}, empty.AllCities())
	assert.Equal(t, 0, (&core.Graph{}).Clone().NumberOfCities())
}

func TestGraph_AddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	g.AddCity(CityA)
	g.AddCity(CityB)
	g.AddEdge(CityA, CityB, Dist10, Time1)

	assert.True(t, g.ContainsEdge(CityA, CityB))
	assert.True(t, g.ContainsEdge(CityB, CityA))

	wab, ok := g.EdgeWeights(CityA, CityB)
	require.True(t, ok)
	wba, ok := g.EdgeWeights(CityB, CityA)
	require.True(t, ok)
	assert.Equal(t, core.Weights{Distance: Dist10, Time: Time1}, wab)
	assert.Equal(t, wab, wba)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_NegativeWeightsNormalised(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(CityA, CityB, -Dist10, -Time5)

	w, ok := g.EdgeWeights(CityB, CityA)
	require.True(t, ok)
	assert.Equal(t, core.Weights{Distance: Dist10, Time: Time5}, w)
	requireSymmetric(t, g)
}

func TestGraph_AddEdge_Upsert(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(CityA, CityB, Dist10, Time1)
	g.AddEdge(CityB, CityA, Dist30, Time5)

	w, ok := g.EdgeWeights(CityA, CityB)
	require.True(t, ok)
	assert.Equal(t, core.Weights{Distance: Dist30, Time: Time5}, w, "weights must be replaced, not summed")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{CityB}, g.Neighbors(CityA))
	assert.Equal(t, []string{CityA}, g.Neighbors(CityB))
}

func TestGraph_AddEdge_SelfLoopRejected(t *testing.T) {
	g := newDiamond(t)
	before := g.Clone()

	g.AddEdge(CityA, CityA, Dist5, Time5)

	assert.False(t, g.ContainsEdge(CityA, CityA))
	assert.Equal(t, before.Edges(), g.Edges())
	assert.Equal(t, before.NumberOfCities(), g.NumberOfCities())

	// A self-loop on an unknown city must not create it either.
	g.AddEdge(CityX, CityX, Dist5, Time5)
	assert.False(t, g.ContainsCity(CityX))
}

func TestGraph_AddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(CityX, CityY, Dist5, Time1)

	assert.True(t, g.ContainsCity(CityX))
	assert.True(t, g.ContainsCity(CityY))
	assert.Equal(t, 2, g.NumberOfCities())
	assert.Equal(t, len(g.AllCities()), g.NumberOfCities())
}

func TestGraph_DeleteEdge(t *testing.T) {
	g := newDiamond(t)

	g.DeleteEdge(CityC, CityA)
	assert.False(t, g.ContainsEdge(CityA, CityC))
	assert.False(t, g.ContainsEdge(CityC, CityA))
	assert.Equal(t, 3, g.EdgeCount())
	requireSymmetric(t, g)

	// Absent edge and unknown cities are no-ops.
	g.DeleteEdge(CityA, CityD)
	g.DeleteEdge(CityMissing, CityA)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, g.NumberOfCities())
}

func TestGraph_DeleteCity_Cascades(t *testing.T) {
	g := newDiamond(t)

	g.DeleteCity(CityC)

	assert.False(t, g.ContainsCity(CityC))
	assert.Equal(t, 3, g.NumberOfCities())
	for _, city := range g.AllCities() {
		assert.NotContains(t, g.Neighbors(city), CityC, "city %q still links to C", city)
	}
	assert.True(t, g.ContainsEdge(CityA, CityB))
	assert.Empty(t, g.Neighbors(CityD))
	assert.Equal(t, 1, g.EdgeCount())
	requireSymmetric(t, g)
}

func TestGraph_DeleteCity_Missing(t *testing.T) {
	g := newDiamond(t)
	g.DeleteCity(CityMissing)

	assert.Equal(t, 4, g.NumberOfCities())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_DeleteCity_ReAdd(t *testing.T) {
	g := newDiamond(t)
	g.DeleteCity(CityA)
	g.AddCity(CityA)

	assert.Equal(t, 4, g.NumberOfCities())
	assert.Empty(t, g.Neighbors(CityA))
	assert.Equal(t, []string{CityB, CityC, CityD, CityA}, g.AllCities())
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := newDiamond(t)

	assert.Equal(t, []string{CityA, CityB, CityC, CityD}, g.AllCities())
	assert.Equal(t, []string{CityB, CityC}, g.Neighbors(CityA))
	assert.Equal(t, []string{CityA, CityC}, g.Neighbors(CityB))
	assert.Equal(t, []string{CityB, CityA, CityD}, g.Neighbors(CityC))

	want := []core.Edge{
		{From: CityA, To: CityB, Weights: core.Weights{Distance: Dist10, Time: Time1}},
		{From: CityA, To: CityC, Weights: core.Weights{Distance: Dist30, Time: Time5}},
		{From: CityB, To: CityC, Weights: core.Weights{Distance: Dist10, Time: Time1}},
		{From: CityC, To: CityD, Weights: core.Weights{Distance: Dist5, Time: Time1}},
	}
	assert.Equal(t, want, g.Edges())
}

func TestGraph_AllCities_ReturnsCopy(t *testing.T) {
	g := newDiamond(t)
	cities := g.AllCities()
	cities[0] = CityMissing

	assert.True(t, g.ContainsCity(CityA))
	assert.False(t, g.ContainsCity(CityMissing))
}

func TestGraph_Clone_Independent(t *testing.T) {
	g := newDiamond(t)
	c := g.Clone()

	c.DeleteCity(CityB)
	c.AddEdge(CityA, CityD, Dist5, Time5)

	assert.True(t, g.ContainsCity(CityB))
	assert.False(t, g.ContainsEdge(CityA, CityD))
	assert.Equal(t, 4, g.NumberOfCities())
	assert.Equal(t, 3, c.NumberOfCities())
	requireSymmetric(t, g)
	requireSymmetric(t, c)
}

func TestPathResult_Empty(t *testing.T) {
	assert.True(t, core.PathResult{}.Empty())
	assert.False(t, core.PathResult{Path: []string{CityA}}.Empty())
}
