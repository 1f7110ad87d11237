// Package registry owns a set of named core.Graph instances and tracks
// which one is "current".
//
// The registry is the collaborator that front ends talk to: it validates
// graph names (non-empty, unique), hands out graphs by name, and remembers
// whether anything changed since the last ClearModified. It has no file
// format; persisting graphs is left to the caller.
//
// Concurrency:
//
//	Registry methods are safe for concurrent use. The graphs they return
//	are not; callers that share a graph between goroutines serialise
//	access to it themselves.
//
// Errors:
//
//	ErrEmptyName      - graph name is the empty string.
//	ErrDuplicateName  - a graph with that name already exists.
//	ErrGraphNotFound  - no graph with that name.
//	ErrNoCurrentGraph - an operation needed a current graph and none is selected.
package registry
