package object

// Namespace is a chained name→Value binding table. A lookup reads through
// the parent chain; a bind always writes to this namespace's own layer,
// never to a parent's — the default (non-shared) child behaviour the
// context model requires.
type Namespace struct {
	vars   map[string]Value
	parent *Namespace
}

// NewNamespace creates a namespace chained to parent (nil for a root).
func NewNamespace(parent *Namespace) *Namespace {
	return &Namespace{vars: make(map[string]Value), parent: parent}
}

// Lookup searches this namespace, then its parents, returning the first
// binding found.
func (n *Namespace) Lookup(name string) (Value, bool) {
	for ns := n; ns != nil; ns = ns.parent {
		if v, ok := ns.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind sets name in this namespace's own layer.
func (n *Namespace) Bind(name string, v Value) {
	n.vars[name] = v
}

// Names returns every name bound directly in this namespace (not
// including parents).
func (n *Namespace) Names() []string {
	names := make([]string, 0, len(n.vars))
	for name := range n.vars {
		names = append(names, name)
	}
	return names
}

// Snapshot returns a shallow copy of this namespace's own bindings.
func (n *Namespace) Snapshot() map[string]Value {
	out := make(map[string]Value, len(n.vars))
	for k, v := range n.vars {
		out[k] = v
	}
	return out
}
