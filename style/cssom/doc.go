/*
Package cssom provides the object model for stylesheets: rules pairing a
selector with a declaration set, immutable sheets holding rules in parse
order, and the permissive parser turning source text into a sheet.

The parser never fails as a whole. Malformed rules and declarations are
skipped and reported as diagnostics; everything else in the sheet is
preserved. Parse order is the only priority signal carried by a sheet;
there is no specificity computation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bevycss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("bevycss.cssom")
}
