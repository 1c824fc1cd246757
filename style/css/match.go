package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/AmonDeShir/tomt-bevycss/style/selector"
	"github.com/AmonDeShir/tomt-bevycss/styledtree"
)

// MatchSelector computes the set of nodes in the tree rooted at root
// which satisfy the whole descendant chain of sel.
//
// The last group of the chain selects candidate nodes anywhere in the
// tree; every preceding group must then be satisfiable by some strict
// ancestor, in chain order. Results are in pre-order of the tree. The
// match is evaluated fresh on every call; no state is cached between
// passes, so a mutated tree is always seen as it currently is.
func MatchSelector(sel selector.Selector, root *styledtree.Node, kinds *KindRegistry) []*styledtree.Node {
	groups := sel.Groups()
	if len(groups) == 0 || root == nil {
		return nil
	}
	var matched []*styledtree.Node
	root.Walk(func(node *styledtree.Node) {
		if matchChain(node, groups, len(groups)-1, kinds) {
			matched = append(matched, node)
		}
	})
	return matched
}

// matchChain tests whether node satisfies groups[i] and whether the
// remaining chain towards the root can be satisfied by strict ancestors.
func matchChain(node *styledtree.Node, groups []selector.Group, i int, kinds *KindRegistry) bool {
	if !matchGroup(node, groups[i], kinds) {
		return false
	}
	if i == 0 {
		return true
	}
	// Transitive descendant relation: any strict ancestor may satisfy the
	// next group up the chain.
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if matchChain(anc, groups, i-1, kinds) {
			return true
		}
	}
	return false
}

// matchGroup tests whether all elements of a group hold for one node.
// A kind element whose name is not registered never matches.
func matchGroup(node *styledtree.Node, group selector.Group, kinds *KindRegistry) bool {
	for _, el := range group {
		switch el.Type {
		case selector.Kind:
			m, ok := kinds.Lookup(el.Name)
			if !ok || !m.Matches(node) {
				return false
			}
		case selector.Class:
			if !node.HasClass(el.Name) {
				return false
			}
		case selector.Identity:
			if node.Identity() != el.Name {
				return false
			}
		}
	}
	return true
}
