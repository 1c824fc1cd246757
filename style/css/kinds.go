package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "github.com/AmonDeShir/tomt-bevycss/styledtree"

// Membership tests whether a tree node belongs to a dynamically
// registered node kind. Hosts supply one per kind name; the matching
// engine never sees concrete kind types.
type Membership interface {
	Matches(node *styledtree.Node) bool
}

// MembershipFunc adapts an ordinary function to the Membership interface.
type MembershipFunc func(node *styledtree.Node) bool

// Matches is part of interface Membership.
func (f MembershipFunc) Matches(node *styledtree.Node) bool {
	return f(node)
}

// KindRegistry maps selector kind names to membership tests. It is meant
// to be populated by the host during setup and read-only during
// evaluation; registering kinds while a pass is running is the host's
// responsibility to synchronize.
type KindRegistry struct {
	kinds map[string]Membership
}

// NewKindRegistry returns a new empty registry.
func NewKindRegistry() *KindRegistry {
	return &KindRegistry{kinds: make(map[string]Membership)}
}

// Register binds a kind name to a membership test. The last registration
// for a given name wins.
func (reg *KindRegistry) Register(name string, m Membership) {
	if _, exists := reg.kinds[name]; exists {
		tracer().Debugf("kind '%s' re-registered, previous membership test replaced", name)
	}
	reg.kinds[name] = m
}

// RegisterTag binds a kind name to the node's own kind tag, i.e. the
// selector `name` will match every node whose Kind() equals name.
func (reg *KindRegistry) RegisterTag(name string) {
	reg.Register(name, MembershipFunc(func(node *styledtree.Node) bool {
		return node.Kind() == name
	}))
}

// Lookup returns the membership test for a kind name, if registered.
func (reg *KindRegistry) Lookup(name string) (Membership, bool) {
	if reg == nil {
		return nil, false
	}
	m, ok := reg.kinds[name]
	return m, ok
}
