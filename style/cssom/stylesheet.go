package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/style/selector"
)

// StyleRule pairs a selector with the declaration set of one rule block.
//
// Within one rule, a later declaration for the same property name
// overwrites an earlier one; declaration order is otherwise preserved.
type StyleRule struct {
	Selector selector.Selector
	props    map[string]style.PropertyValues
	order    []string // property names in declaration order
}

// NewStyleRule creates an empty rule for a selector.
func NewStyleRule(sel selector.Selector) *StyleRule {
	return &StyleRule{Selector: sel}
}

// Set declares a property value. A re-declaration of the same name
// overwrites the previous value (last-wins) and keeps its position.
func (r *StyleRule) Set(name string, vals style.PropertyValues) {
	if r.props == nil {
		r.props = make(map[string]style.PropertyValues)
	}
	if _, exists := r.props[name]; !exists {
		r.order = append(r.order, name)
	}
	r.props[name] = vals
}

// Properties returns the declared property names in declaration order.
func (r *StyleRule) Properties() []string {
	return r.order
}

// Value returns the declared value for a property name.
func (r *StyleRule) Value(name string) (style.PropertyValues, bool) {
	vals, ok := r.props[name]
	return vals, ok
}

func (r *StyleRule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector.String())
	b.WriteString(" {")
	for _, name := range r.order {
		b.WriteString(" " + name + ": " + r.props[name].String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

// StyleSheet is an ordered list of style rules, created once per source
// text and immutable thereafter. On hot reload a sheet is re-created
// wholesale and swapped in atomically, never patched in place.
type StyleSheet struct {
	rules []*StyleRule
}

// NewStyleSheet creates a sheet from rules, in the given order.
func NewStyleSheet(rules ...*StyleRule) *StyleSheet {
	return &StyleSheet{rules: rules}
}

// Rules returns all rules of the sheet, in parse order.
func (sheet *StyleSheet) Rules() []*StyleRule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// AppendRules creates a new sheet holding this sheet's rules followed by
// the other sheet's rules. Neither input is modified.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) *StyleSheet {
	merged := make([]*StyleRule, 0, len(sheet.Rules())+len(other.Rules()))
	merged = append(merged, sheet.Rules()...)
	merged = append(merged, other.Rules()...)
	return &StyleSheet{rules: merged}
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}
