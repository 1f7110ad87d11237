package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors rather than panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves opts, and applies all
// constructors in order. Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := apply(g, newBuilderConfig(opts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Constructors share one
// resolved config, so a seeded RNG advances across them.
// On error g may hold a partial result.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(opts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// link draws distance then time and upserts the edge u–v.
func link(g *core.Graph, cfg builderConfig, u, v string) {
	d := cfg.distanceFn(cfg.rng)
	t := cfg.timeFn(cfg.rng)
	g.AddEdge(u, v, d, t)
}

// addCities inserts cfg.idFn(0..n-1) in index order and returns the names.
func addCities(g *core.Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddCity(ids[i])
	}

	return ids
}
