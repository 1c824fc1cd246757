/*
Package styledtree provides the concrete object tree the styling engine
operates on: nodes carrying a kind tag, class tags, an optional identity
and a typed attribute storage.

Hosts build and mutate this tree; the matching engine only reads it
(parent links, classes, identities), and property appliers write resolved
attribute values into each node's attribute map.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package styledtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bevycss.tree'.
func tracer() tracing.Trace {
	return tracing.Select("bevycss.tree")
}
