/*
Package css is the evaluation core of the styling engine: it matches
parsed selectors against a live styled tree and resolves declared property
values into typed attribute writes.

Node kinds are not a closed set. Hosts register a membership test per kind
name with a KindRegistry during setup; the matching engine depends only on
that abstraction. A selector naming an unregistered kind is a guaranteed
non-match, never an error, since the registry may legitimately be populated
after a sheet has been loaded.

Evaluation is pass-oriented and single-threaded: Prepare computes fresh
matched-node sets for every rule, Apply resolves and writes attribute
values in sheet order (later rules overwrite earlier ones), Cleanup drops
the transient state. Nothing here blocks, and no match state is carried
across passes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bevycss.css'.
func tracer() tracing.Trace {
	return tracing.Select("bevycss.css")
}
