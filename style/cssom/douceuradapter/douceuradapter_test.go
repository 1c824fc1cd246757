package douceuradapter_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/style/cssom/douceuradapter"
)

func TestParseCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.cssom")
	defer teardown()
	//
	sheet, diags := douceuradapter.ParseCSS("a .b { width: 10px; flex-grow: 2 }")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	if len(rules[0].Selector.Groups()) != 2 {
		t.Errorf("expected a 2-group descendant chain, have %v", rules[0].Selector)
	}
	vals, ok := rules[0].Value("width")
	if !ok || len(vals) != 1 || vals[0].Type != style.Dimension || vals[0].Number != 10 {
		t.Errorf("expected width to be re-tokenized as a dimension, have %v", vals)
	}
}

func TestParseCSSSkipsAtRules(t *testing.T) {
	sheet, diags := douceuradapter.ParseCSS(
		"@media screen { a { width: 1px } }\nb { width: 2px }")
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected only the plain rule to survive, have %d", len(rules))
	}
	if rules[0].Selector.String() != "b" {
		t.Errorf("expected rule 'b', have %q", rules[0].Selector.String())
	}
	if len(diags) != 1 {
		t.Errorf("expected one diagnostic for the at-rule, have %v", diags)
	}
}

func TestParseCSSSkipsUnsupportedSelectors(t *testing.T) {
	sheet, diags := douceuradapter.ParseCSS("a > b { width: 1px }\nc { width: 2px }")
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected only the supported rule, have %d", len(rules))
	}
	if rules[0].Selector.String() != "c" {
		t.Errorf("expected rule 'c', have %q", rules[0].Selector.String())
	}
	if len(diags) != 1 {
		t.Errorf("expected one diagnostic for the combinator, have %v", diags)
	}
}

func TestParseCSSDropsImportantMarker(t *testing.T) {
	sheet, _ := douceuradapter.ParseCSS("a { width: 10px !important }")
	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	vals, _ := rules[0].Value("width")
	if len(vals) != 1 || vals[0].Type != style.Dimension {
		t.Errorf("expected the marker to be stripped from the value, have %v", vals)
	}
}
