package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders a styled tree as an indented text tree, including each
// node's set attributes. Intended for debugging.
func Dump(node *Node) string {
	if node == nil {
		return "<empty tree>"
	}
	tp := treeprint.New()
	tp.SetValue(nodeLabel(node))
	dumpInto(tp, node)
	return tp.String()
}

func dumpInto(branch treeprint.Tree, node *Node) {
	for _, ch := range node.Children() {
		b := branch.AddBranch(nodeLabel(ch))
		dumpInto(b, ch)
	}
}

func nodeLabel(node *Node) string {
	var b strings.Builder
	b.WriteString(node.Kind())
	if node.Identity() != "" {
		b.WriteString("#" + node.Identity())
	}
	for _, c := range node.Classes() {
		b.WriteString("." + c)
	}
	attrs := node.Attributes()
	if attrs.Size() > 0 {
		parts := make([]string, 0, attrs.Size())
		for _, k := range attrs.Keys() {
			v, _ := attrs.Get(k)
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		b.WriteString("  [" + strings.Join(parts, " ") + "]")
	}
	return b.String()
}
