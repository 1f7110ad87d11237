package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// CenterCityID names the hub of Star graphs.
const CenterCityID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that links CenterCityID to n-1 leaves named
// idFn(1) … idFn(n-1).
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewCities)
		}

		g.AddCity(CenterCityID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.AddCity(leaf)
			link(g, cfg, CenterCityID, leaf)
		}

		return nil
	}
}
