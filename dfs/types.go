// Package dfs defines options for iterative depth-first traversal.
package dfs

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable hooks for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a city is popped for the first
	// time and appended to the result. step is its index in the result.
	OnVisit func(city string, step int)

	// OnPush, if non-nil, is invoked every time a city is pushed onto the
	// stack, including repeated pushes of a city not yet visited.
	OnPush func(city string)
}

// DefaultOptions returns a DFSOptions struct with no hooks installed.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(city string, step int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnPush returns an Option that installs fn as the push hook.
func WithOnPush(fn func(city string)) Option {
	return func(o *DFSOptions) {
		o.OnPush = fn
	}
}
