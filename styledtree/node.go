package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"sync"

	"github.com/AmonDeShir/tomt-bevycss/style"
)

// Node is one node of a styled object tree.
//
// Nodes carry a kind tag (the host-assigned category of the node), an
// optional unique identity, a set of class tags and a typed attribute
// storage which resolved style values are written into.
type Node struct {
	parent     *Node
	children   childrenSlice // mutex-protected slice of children nodes
	kind       string
	identity   string
	classes    []string
	attributes *style.AttributeMap
}

// New creates a new tree node with the given kind tag.
func New(kind string) *Node {
	return &Node{kind: kind, attributes: style.NewAttributeMap()}
}

func (node *Node) String() string {
	if node.identity != "" {
		return fmt.Sprintf("(%s #%s)", node.kind, node.identity)
	}
	return fmt.Sprintf("(%s #ch=%d)", node.kind, node.ChildCount())
}

// Kind returns the host-assigned kind tag of this node.
func (node *Node) Kind() string {
	return node.kind
}

// Identity returns the unique identity of this node, or the empty string.
func (node *Node) Identity() string {
	return node.identity
}

// SetIdentity assigns a unique identity, matched by '#name' selector
// elements. It returns the node to allow for chaining.
func (node *Node) SetIdentity(id string) *Node {
	node.identity = id
	return node
}

// Classes returns the class tags of this node.
func (node *Node) Classes() []string {
	return node.classes
}

// AddClass adds a class tag to this node.
// It returns the node to allow for chaining.
func (node *Node) AddClass(class string) *Node {
	if !node.HasClass(class) {
		node.classes = append(node.classes, class)
	}
	return node
}

// HasClass is a predicate whether a class tag is set on this node.
func (node *Node) HasClass(class string) bool {
	for _, c := range node.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Attributes returns the typed attribute storage of this node.
func (node *Node) Attributes() *style.AttributeMap {
	return node.attributes
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node) Parent() *Node {
	if node == nil {
		return nil
	}
	return node.parent
}

// AddChild inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// Isolate removes a node from its parent and returns the isolated node.
func (node *Node) Isolate() *Node {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node) Child(n int) (*Node, bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node) Children() []*Node {
	return node.children.asSlice()
}

// Walk visits this node and all its descendants in pre-order, parents
// before children.
func (node *Node) Walk(visit func(*Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, ch := range node.Children() {
		ch.Walk(visit)
	}
}

// --- Concurrency-safe slices of children -----------------------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Node
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) addChild(child *Node, parent *Node) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) remove(node *Node) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice) child(n int) *Node {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Node {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
