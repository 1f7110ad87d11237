package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"; Grid ignores the configured IDFn
)

// GridID returns the name Grid gives the cell at row r, column c.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols lattice with 4-neighbour
// links. Cities are inserted row-major; each cell links right, then down.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewCities)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddCity(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					link(g, cfg, u, GridID(r, c+1))
				}
				if r+1 < rows {
					link(g, cfg, u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
