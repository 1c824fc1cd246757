/*
Package douceuradapter imports standard CSS, as parsed by douceur, into
this module's rule model. It lets hosts reuse ordinary `.css` assets:
preludes are re-parsed with the styling subset's selector grammar and
declaration values are re-tokenized, so the result behaves exactly like a
natively parsed sheet. Rules outside the subset (at-rules, preludes with
unsupported combinators) are skipped with diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/style/cssom"
	"github.com/AmonDeShir/tomt-bevycss/style/selector"
)

// ParseCSS parses standard CSS source text with douceur and converts the
// result. If douceur rejects the text outright, an empty sheet and a
// single diagnostic are returned.
func ParseCSS(src string) (*cssom.StyleSheet, []cssom.Diagnostic) {
	dsheet, err := parser.Parse(src)
	if err != nil {
		diag := cssom.Diagnostic{
			Severity: cssom.Error,
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("cannot parse CSS: %v", err),
		}
		return cssom.NewStyleSheet(), []cssom.Diagnostic{diag}
	}
	return Convert(dsheet)
}

// Convert turns a douceur stylesheet into a sheet of this module's rule
// model. Rule order is preserved.
func Convert(dsheet *css.Stylesheet) (*cssom.StyleSheet, []cssom.Diagnostic) {
	var rules []*cssom.StyleRule
	var diags []cssom.Diagnostic
	for _, drule := range dsheet.Rules {
		if drule.Kind != css.QualifiedRule {
			diags = append(diags, warnf("at-rule '%s' is not supported, skipped", drule.Name))
			continue
		}
		sel, err := selector.Parse(style.Tokenize(drule.Prelude))
		if err != nil {
			diags = append(diags, warnf("selector '%s' is outside the supported subset: %v", drule.Prelude, err))
			continue
		}
		rule := cssom.NewStyleRule(sel)
		for _, decl := range drule.Declarations {
			// The `!important` marker carries no meaning here; rule order
			// is the only priority signal.
			rule.Set(decl.Property, style.DeclaredValues(style.Tokenize(decl.Value)))
		}
		rules = append(rules, rule)
	}
	return cssom.NewStyleSheet(rules...), diags
}

func warnf(format string, args ...interface{}) cssom.Diagnostic {
	return cssom.Diagnostic{
		Severity: cssom.Warning,
		Line:     1,
		Column:   1,
		Message:  fmt.Sprintf(format, args...),
	}
}
