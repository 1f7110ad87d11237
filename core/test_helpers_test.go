// Package core_test contains test helpers for citymap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep magic names and weights out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"

	CityX = "X"
	CityY = "Y"

	CityMissing = "Nowhere"
)

// Common weights used across core tests.
const (
	Dist5  = 5.0
	Dist10 = 10.0
	Dist30 = 30.0

	Time1 = 1.0
	Time5 = 5.0
)

// newDiamond RETURNS the A–D fixture used throughout the suite:
//
//	A —(10,1)— B —(10,1)— C —(5,1)— D
//	 \_________(30,5)_____/
func newDiamond(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, c := range []string{CityA, CityB, CityC, CityD} {
		g.AddCity(c)
	}
	g.AddEdge(CityA, CityB, Dist10, Time1)
	g.AddEdge(CityB, CityC, Dist10, Time1)
	g.AddEdge(CityA, CityC, Dist30, Time5)
	g.AddEdge(CityC, CityD, Dist5, Time1)

	return g
}

// requireSymmetric FAILS the test if any stored edge is missing its mirror
// or the mirror carries different weights.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()

	for _, a := range g.AllCities() {
		for _, b := range g.Neighbors(a) {
			require.NotEqual(t, a, b, "self-loop stored at %q", a)
			wab, ok := g.EdgeWeights(a, b)
			require.True(t, ok)
			require.Contains(t, g.Neighbors(b), a, "mirror %s→%s missing", b, a)
			wba, _ := g.EdgeWeights(b, a)
			require.Equal(t, wab, wba, "asymmetric weights on %s—%s", a, b)
			require.GreaterOrEqual(t, wab.Distance, 0.0)
			require.GreaterOrEqual(t, wab.Time, 0.0)
		}
	}
}
