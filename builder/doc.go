// Package builder provides deterministic, functional-options constructors
// for core.Graph fixtures: benchmark inputs, randomized test graphs and
// demo road networks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(opts, cons...): new graph, resolved config, constructors in order.
//     – Apply(g, opts, cons...):   same, onto an existing graph.
//   - Topologies (Constructor implementations):
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols), Complete(n),
//     RandomSparse(n, p).
//   - City-name schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…,"Z").
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefixed decimals ("c0","c1",…).
//   - Edge-weight distributions (WeightFn implementations), drawn separately
//     for distance and time:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     graphs, including city insertion order.
//   - Option constructors panic on programmer errors (nil functions,
//     negative weights); constructors return sentinel errors for bad sizes.
//   - Distance is always drawn before time for each edge, so swapping only
//     the time distribution leaves distances unchanged.
package builder
