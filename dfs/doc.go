// Package dfs provides iterative depth-first traversal over a core.Graph.
//
// The traversal keeps an explicit stack instead of recursing:
//
//	push(start)
//	while stack not empty:
//	    city = pop()
//	    if visited[city]: continue
//	    visited[city] = true; order = append(order, city)
//	    for nbr in Neighbors(city): if !visited[nbr]: push(nbr)
//
// Because neighbors are pushed in insertion order and popped in reverse, the
// most recently linked neighbor is explored first. A city reachable through
// several already-discovered cities may be pushed more than once; stale
// copies are dropped when popped. This order is part of the contract.
//
// Only the component reachable from start is visited. A nil graph or an
// unknown start city yields an empty slice; DFS never returns an error.
//
// Options:
//
//   - WithOnVisit(fn)  called once per city as it is appended to the order.
//   - WithOnPush(fn)   called on every push, including duplicates.
package dfs
