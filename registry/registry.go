package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/citymap/core"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates that a graph name was empty.
	ErrEmptyName = errors.New("registry: graph name is empty")

	// ErrDuplicateName indicates that a graph name is already taken.
	ErrDuplicateName = errors.New("registry: graph name already exists")

	// ErrGraphNotFound indicates that no graph has the requested name.
	ErrGraphNotFound = errors.New("registry: graph not found")

	// ErrNoCurrentGraph indicates that no graph is currently selected.
	ErrNoCurrentGraph = errors.New("registry: no current graph")
)

// Registry is an insertion-ordered collection of named graphs with a
// "current graph" pointer and a modified flag.
type Registry struct {
	mu       sync.RWMutex
	graphs   map[string]*core.Graph
	names    []string // insertion order
	current  string   // "" when nothing is selected
	modified bool
}

// New returns an empty Registry with no current graph.
func New() *Registry {
	return &Registry{graphs: make(map[string]*core.Graph)}
}

// Add creates an empty graph called name and makes it current.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrDuplicateName if name is taken.
func (r *Registry) Add(name string) (*core.Graph, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.graphs[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	g := core.NewGraph()
	r.graphs[name] = g
	r.names = append(r.names, name)
	r.current = name
	r.modified = true

	return g, nil
}

// Put stores g under name, replacing any graph already registered there,
// without changing the current selection. A nil g is replaced by an
// empty graph.
func (r *Registry) Put(name string, g *core.Graph) error {
	if name == "" {
		return ErrEmptyName
	}
	if g == nil {
		g = core.NewGraph()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.graphs[name]; !exists {
		r.names = append(r.names, name)
	}
	r.graphs[name] = g
	r.modified = true

	return nil
}

// Delete removes the graph called name. If it was current, no graph is
// current afterwards.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.graphs[name]; !exists {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	delete(r.graphs, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	if r.current == name {
		r.current = ""
	}
	r.modified = true

	return nil
}

// Select makes the graph called name current.
func (r *Registry) Select(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.graphs[name]; !exists {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	r.current = name

	return nil
}

// Deselect clears the current selection.
func (r *Registry) Deselect() {
	r.mu.Lock()
	r.current = ""
	r.mu.Unlock()
}

// Current returns the name and graph of the current selection.
// The bool is false when nothing is selected.
func (r *Registry) Current() (string, *core.Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == "" {
		return "", nil, false
	}

	return r.current, r.graphs[r.current], true
}

// CurrentGraph returns the current graph or ErrNoCurrentGraph.
func (r *Registry) CurrentGraph() (*core.Graph, error) {
	_, g, ok := r.Current()
	if !ok {
		return nil, ErrNoCurrentGraph
	}

	return g, nil
}

// Get returns the graph called name.
func (r *Registry) Get(name string) (*core.Graph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.graphs[name]
	return g, ok
}

// Names returns the graph names in the order they were added.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of registered graphs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.graphs)
}

// MarkModified records that a registered graph was mutated in place.
func (r *Registry) MarkModified() {
	r.mu.Lock()
	r.modified = true
	r.mu.Unlock()
}

// Modified reports whether anything changed since the last ClearModified.
func (r *Registry) Modified() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.modified
}

// ClearModified resets the modified flag, typically after the caller has
// persisted the graphs.
func (r *Registry) ClearModified() {
	r.mu.Lock()
	r.modified = false
	r.mu.Unlock()
}
