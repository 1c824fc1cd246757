package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/style/selector"
)

// Parse parses stylesheet source text into a style sheet.
//
// Parse never fails as a whole: a malformed rule discards only that rule,
// a malformed declaration discards only that declaration, and parsing
// continues behind it. Problems are returned as diagnostics (and traced);
// the returned sheet is never nil.
func Parse(src string) (*StyleSheet, []Diagnostic) {
	p := &parser{tokens: style.Tokenize(src)}
	rules := p.parseRules()
	return NewStyleSheet(rules...), p.diags
}

type parser struct {
	tokens []style.Token
	pos    int
	diags  []Diagnostic
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) report(sev Severity, at style.Token, msg string) {
	d := Diagnostic{Severity: sev, Line: at.Line, Column: at.Column, Message: msg}
	if sev == Error {
		tracer().Errorf(d.String())
	} else {
		tracer().Debugf(d.String())
	}
	p.diags = append(p.diags, d)
}

// parseRules splits the token stream into top-level rule blocks and parses
// each block independently, so one bad block cannot take down the sheet.
func (p *parser) parseRules() []*StyleRule {
	var rules []*StyleRule
	for !p.eof() {
		prelude, found := p.collectPrelude()
		if !found {
			if at, ok := firstSubstantial(prelude); ok {
				p.report(Error, at, "rule without a body")
			}
			break
		}
		body := p.collectBody()
		sel, err := selector.Parse(prelude)
		if err != nil {
			at, ok := firstSubstantial(prelude)
			if !ok && len(body) > 0 {
				at = body[0]
			}
			p.report(Error, at, fmt.Sprintf("failed to parse rule: %v", err))
			continue
		}
		rule := NewStyleRule(sel)
		p.parseDeclarations(body, rule)
		rules = append(rules, rule)
	}
	return rules
}

// collectPrelude gathers tokens up to the opening brace of the next rule
// block. Stray closing braces at the top level discard whatever prelude
// has accumulated and scanning continues behind them.
func (p *parser) collectPrelude() (prelude []style.Token, found bool) {
	for !p.eof() {
		t := p.tokens[p.pos]
		if t.Type == style.Delimiter {
			switch t.Text {
			case "{":
				p.pos++
				return prelude, true
			case "}":
				p.report(Warning, t, "stray '}' outside of any rule")
				prelude = prelude[:0]
				p.pos++
				continue
			}
		}
		prelude = append(prelude, t)
		p.pos++
	}
	return prelude, false
}

// collectBody gathers the tokens of a braced rule body, balancing nested
// braces. A missing closing brace ends the body at EOF.
func (p *parser) collectBody() []style.Token {
	var body []style.Token
	depth := 1
	for !p.eof() {
		t := p.tokens[p.pos]
		p.pos++
		if t.Type == style.Delimiter {
			switch t.Text {
			case "{":
				depth++
			case "}":
				depth--
				if depth == 0 {
					return body
				}
			}
		}
		body = append(body, t)
	}
	if len(body) > 0 {
		p.report(Warning, body[len(body)-1], "rule block not closed before end of input")
	}
	return body
}

// parseDeclarations parses `name : value-tokens ;` segments out of a rule
// body. A malformed segment is skipped and reported; the remaining
// segments are unaffected.
func (p *parser) parseDeclarations(body []style.Token, rule *StyleRule) {
	for _, seg := range splitSegments(body) {
		i := 0
		for i < len(seg) && seg[i].Type == style.Whitespace {
			i++
		}
		if i == len(seg) {
			continue // empty segment, e.g. a trailing ';'
		}
		name := seg[i]
		if name.Type != style.Identifier {
			p.report(Error, name, fmt.Sprintf("expected property name, have '%s'", name))
			continue
		}
		i++
		for i < len(seg) && seg[i].Type == style.Whitespace {
			i++
		}
		if i == len(seg) || seg[i].Type != style.Delimiter || seg[i].Text != ":" {
			p.report(Error, name, fmt.Sprintf("expected ':' after property name '%s'", name.Text))
			continue
		}
		rule.Set(name.Text, style.DeclaredValues(seg[i+1:]))
	}
}

// splitSegments splits a rule body on top-level ';' delimiters.
func splitSegments(body []style.Token) [][]style.Token {
	var segments [][]style.Token
	start := 0
	for i, t := range body {
		if t.Type == style.Delimiter && t.Text == ";" {
			segments = append(segments, body[start:i])
			start = i + 1
		}
	}
	if start < len(body) {
		segments = append(segments, body[start:])
	}
	return segments
}

func firstSubstantial(tokens []style.Token) (style.Token, bool) {
	for _, t := range tokens {
		if t.Type != style.Whitespace {
			return t, true
		}
	}
	return style.Token{}, false
}
