// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Cluster Registry: named, independent graphs plus the working-view
//       selector that decides which graph unqualified commands hit.
//
// Determinism:
//   - List() enumerates clusters in creation order.
//
// Atomicity:
//   - Create/Adopt/Import build the cluster graph completely before
//     registering it; a failure leaves the registry unchanged.

package cluster

import (
	"github.com/katalvlaran/mgraph/core"
)

// Cluster is a named graph owned by a Registry.
type Cluster struct {
	// Name is unique within the Registry.
	Name string

	// Value is the cluster payload.
	Value core.Value

	// Graph is owned exclusively by the cluster; its scope is Name.
	Graph *core.Graph
}

// Option configures a Registry.
type Option func(r *Registry)

// WithGlobalName renames the implicit global graph (default core.GlobalScope).
// The name is reserved: no cluster may take it.
func WithGlobalName(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.globalName = name
		}
	}
}

// Registry owns the global graph, the clusters and the isolation selector.
// Like core.Graph it performs no locking.
type Registry struct {
	globalName string
	global     *core.Graph
	clusters   map[string]*Cluster
	order      []string
	isolated   string // empty: global view
}

// New returns a registry holding an empty global graph and no clusters.
func New(opts ...Option) *Registry {
	r := &Registry{
		globalName: core.GlobalScope,
		clusters:   make(map[string]*Cluster),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.global = core.NewGraph(core.WithScope(r.globalName))

	return r
}

// GlobalName returns the reserved name of the global graph.
func (r *Registry) GlobalName() string {
	return r.globalName
}

// Create registers a cluster whose graph holds one fresh node per distinct
// id, each valued with the cluster value, and no edges.
//
// Errors:
//   - ErrMalformedInput: empty name, the reserved global name, or an empty id.
//   - ErrDuplicateID: a cluster with that name exists.
func (r *Registry) Create(name string, value core.Value, ids ...core.ID) (*Cluster, error) {
	if err := r.checkName("Create", name); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithScope(name))
	for _, id := range ids {
		if g.HasNode(id) {
			continue
		}
		if err := g.AddNode(id, value); err != nil {
			return nil, err
		}
	}

	return r.register(name, value, g), nil
}

// Adopt registers an already-built graph under name. The graph is re-scoped
// to name through a clone, so the caller's graph is left untouched.
//
// Errors: as Create; ErrMalformedInput for a nil graph.
func (r *Registry) Adopt(name string, value core.Value, g *core.Graph) (*Cluster, error) {
	if g == nil {
		return nil, core.MalformedError("Adopt", core.EntityCluster, name, r.globalName, "nil graph")
	}
	if err := r.checkName("Adopt", name); err != nil {
		return nil, err
	}

	return r.register(name, value, g.Clone(name)), nil
}

// Get returns the named cluster.
//
// Errors: ErrNotFound.
func (r *Registry) Get(name string) (*Cluster, error) {
	c, ok := r.clusters[name]
	if !ok {
		return nil, core.NotFoundError("Get", core.EntityCluster, name, "")
	}

	return c, nil
}

// Remove deletes the named cluster and its graph. Removing the isolated
// cluster returns the working view to the global graph.
//
// Errors: ErrNotFound.
func (r *Registry) Remove(name string) error {
	if _, ok := r.clusters[name]; !ok {
		return core.NotFoundError("Remove", core.EntityCluster, name, "")
	}
	delete(r.clusters, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.isolated == name {
		r.isolated = ""
	}

	return nil
}

// Isolate makes the named cluster the working view.
//
// Errors: ErrNotFound.
func (r *Registry) Isolate(name string) error {
	if _, ok := r.clusters[name]; !ok {
		return core.NotFoundError("Isolate", core.EntityCluster, name, "")
	}
	r.isolated = name

	return nil
}

// Deisolate returns the working view to the global graph. Always succeeds.
func (r *Registry) Deisolate() {
	r.isolated = ""
}

// Isolated reports the isolated cluster name, if any.
func (r *Registry) Isolated() (string, bool) {
	return r.isolated, r.isolated != ""
}

// View returns the name of the working view: the isolated cluster or the
// global name.
func (r *Registry) View() string {
	if r.isolated != "" {
		return r.isolated
	}

	return r.globalName
}

// List returns every cluster in creation order.
func (r *Registry) List() []*Cluster {
	out := make([]*Cluster, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.clusters[name])
	}

	return out
}

// Len returns the number of clusters, the global graph excluded.
func (r *Registry) Len() int {
	return len(r.clusters)
}

// Global returns the global graph.
func (r *Registry) Global() *core.Graph {
	return r.global
}

// Active returns the graph the working view resolves to.
func (r *Registry) Active() *core.Graph {
	if c, ok := r.clusters[r.isolated]; ok {
		return c.Graph
	}

	return r.global
}

// Resolve maps a cluster name, or the global name, to its graph.
//
// Errors: ErrNotFound.
func (r *Registry) Resolve(name string) (*core.Graph, error) {
	if name == r.globalName {
		return r.global, nil
	}
	c, ok := r.clusters[name]
	if !ok {
		return nil, core.NotFoundError("Resolve", core.EntityCluster, name, "")
	}

	return c.Graph, nil
}

// checkName validates a name for a new cluster.
func (r *Registry) checkName(op, name string) error {
	switch {
	case name == "":
		return core.MalformedError(op, core.EntityCluster, "", "", "empty name")
	case name == r.globalName:
		return core.MalformedError(op, core.EntityCluster, name, "", "reserved name")
	}
	if _, exists := r.clusters[name]; exists {
		return core.DuplicateError(op, core.EntityCluster, name, "")
	}

	return nil
}

// register stores a validated cluster.
func (r *Registry) register(name string, value core.Value, g *core.Graph) *Cluster {
	c := &Cluster{Name: name, Value: value, Graph: g}
	r.clusters[name] = c
	r.order = append(r.order, name)

	return c
}
