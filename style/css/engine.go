package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sync/atomic"

	"github.com/AmonDeShir/tomt-bevycss/style/cssom"
	"github.com/AmonDeShir/tomt-bevycss/styledtree"
)

// Engine drives the styling passes over a live styled tree.
//
// The host invokes the three phases in order, once per tick:
//
//	engine.Prepare() // match rules against the current tree
//	engine.Apply()   // resolve values and write attributes
//	engine.Cleanup() // drop per-pass state
//
// or simply engine.RunPass(). Phases must not run concurrently with each
// other or with tree mutation; the engine itself takes no locks. The
// current sheet may be replaced at any time between passes with
// ReplaceSheet. Replacement is atomic, a running pass keeps the sheet it
// started with.
type Engine struct {
	sheet atomic.Pointer[cssom.StyleSheet]
	kinds *KindRegistry
	props *PropertyRegistry
	root  *styledtree.Node
	state []matchedRule // transient, valid between Prepare and Cleanup
}

// matchedRule pairs one rule with the nodes it matched during Prepare.
type matchedRule struct {
	rule  *cssom.StyleRule
	nodes []*styledtree.Node
}

// NewEngine creates an engine for a tree, with an empty kind registry and
// the built-in property set.
func NewEngine(root *styledtree.Node) *Engine {
	e := &Engine{
		kinds: NewKindRegistry(),
		props: DefaultProperties(),
		root:  root,
	}
	e.sheet.Store(cssom.NewStyleSheet())
	return e
}

// Kinds returns the engine's node-kind registry, for the host to populate
// during setup.
func (e *Engine) Kinds() *KindRegistry {
	return e.kinds
}

// Properties returns the engine's property registry, for the host to
// extend.
func (e *Engine) Properties() *PropertyRegistry {
	return e.props
}

// SetRoot exchanges the tree the engine evaluates against.
func (e *Engine) SetRoot(root *styledtree.Node) {
	e.root = root
}

// Sheet returns the currently active style sheet.
func (e *Engine) Sheet() *cssom.StyleSheet {
	return e.sheet.Load()
}

// ReplaceSheet atomically replaces the active sheet with a new one. No
// reader ever observes a partially updated rule list.
func (e *Engine) ReplaceSheet(sheet *cssom.StyleSheet) {
	if sheet == nil {
		sheet = cssom.NewStyleSheet()
	}
	e.sheet.Store(sheet)
	tracer().Debugf("style sheet replaced, %d rules", len(sheet.Rules()))
}

// LoadString parses stylesheet source text and makes it the active sheet.
// Parse problems are returned; they never prevent the (possibly partial)
// sheet from becoming active.
func (e *Engine) LoadString(src string) []cssom.Diagnostic {
	sheet, diags := cssom.Parse(src)
	e.ReplaceSheet(sheet)
	return diags
}

// Prepare computes the matched-node set for every rule of the active
// sheet against the current tree. Matching is fresh on every call.
func (e *Engine) Prepare() {
	sheet := e.sheet.Load()
	rules := sheet.Rules()
	e.state = make([]matchedRule, 0, len(rules))
	for _, rule := range rules {
		nodes := MatchSelector(rule.Selector, e.root, e.kinds)
		e.state = append(e.state, matchedRule{rule: rule, nodes: nodes})
	}
}

// Apply resolves every declared property of every matched rule and writes
// the typed values into the matched nodes' attribute storage.
//
// Rules are visited in sheet order and writes are immediate, so a later
// rule overwrites an earlier rule's effect on the same attribute of the
// same node. A resolution failure skips that one (node, property)
// application, leaves the previous value untouched, and is traced.
func (e *Engine) Apply() {
	for _, mr := range e.state {
		if len(mr.nodes) == 0 {
			continue
		}
		for _, name := range mr.rule.Properties() {
			prop, ok := e.props.Lookup(name)
			if !ok {
				tracer().Errorf("no property registered for '%s' (selector %s)", name, mr.rule.Selector)
				continue
			}
			vals, _ := mr.rule.Value(name)
			value, err := prop.Parse(vals)
			if err != nil {
				tracer().Errorf("cannot resolve value for selector %s: %v", mr.rule.Selector, err)
				continue
			}
			for _, node := range mr.nodes {
				prop.Apply(node, value)
			}
		}
	}
}

// Cleanup discards the transient per-pass state.
func (e *Engine) Cleanup() {
	e.state = nil
}

// RunPass runs Prepare, Apply and Cleanup in order.
func (e *Engine) RunPass() {
	e.Prepare()
	e.Apply()
	e.Cleanup()
}
