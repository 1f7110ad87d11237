// Package bfs provides tunable options for breadth-first traversal
// over a core.Graph.
package bfs

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a city is discovered and enqueued.
	// Receives the city name and its depth (edges) from the start.
	OnEnqueue func(city string, depth int)

	// OnVisit is called as a city is appended to the result.
	// step is the city's index in the returned order; callers drive
	// one animation frame per call.
	OnVisit func(city string, step int)
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(city string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(city string, step int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
