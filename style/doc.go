/*
Package style holds the lexical and value-level building blocks of the
styling engine: tokens produced from stylesheet source text, the declared
value sequences of properties, typed values (dimensions, colors, rects)
and the typed attribute storage attached to styled tree nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bevycss.style'.
func tracer() tracing.Trace {
	return tracing.Select("bevycss.style")
}
