/*
Package selector holds the in-memory representation of parsed selectors
and the parser turning a lexical token sequence into one.

A selector is an ordered chain of groups linked by the descendant
relation, outermost ancestor first. Each group is a conjunction of match
elements (kind, class, identity) that must all hold for one tree node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AmonDeShir/tomt-bevycss/style"
)

// ErrInvalidSelector is returned for selectors with no elements, such as
// an empty rule prelude.
var ErrInvalidSelector = errors.New("invalid or empty selector")

// UnexpectedTokenError is returned when a token not valid in selector
// position is encountered.
type UnexpectedTokenError struct {
	Token style.Token
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token '%s' in selector", e.Token)
}

// ElementType enumerates the kinds of match elements.
type ElementType int8

const (
	Kind     ElementType = iota // matches a dynamically registered node kind
	Class                       // matches a class tag on the node
	Identity                    // matches the node's unique identity
)

// Element is one match predicate inside a selector group.
type Element struct {
	Type ElementType
	Name string
}

func (e Element) String() string {
	switch e.Type {
	case Class:
		return "." + e.Name
	case Identity:
		return "#" + e.Name
	}
	return e.Name
}

// Group is a conjunction of elements that must all match one tree node.
// Matching is order-insensitive, but the declared order is preserved.
type Group []Element

func (g Group) String() string {
	var b strings.Builder
	for _, e := range g {
		b.WriteString(e.String())
	}
	return b.String()
}

// Selector is an ordered sequence of groups representing a descendant
// chain: each group must be satisfied by a strict ancestor of the node
// satisfying the next one. The last group selects the target nodes.
type Selector struct {
	groups []Group
}

// Groups returns the descendant chain, outermost ancestor first.
func (s Selector) Groups() []Group {
	return s.groups
}

// Target returns the last group of the chain, the one selecting the
// nodes a rule applies to.
func (s Selector) Target() Group {
	if len(s.groups) == 0 {
		return nil
	}
	return s.groups[len(s.groups)-1]
}

func (s Selector) String() string {
	parts := make([]string, len(s.groups))
	for i, g := range s.groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

// Parse turns a token sequence (a rule prelude) into a selector.
//
// Grammar: an identifier starts a kind element, unless preceded by a '.'
// delimiter, which turns it into a class element; a hash token with
// non-empty text is an identity element; whitespace closes the open group
// and starts a new one (descendant boundary). Consecutive elements without
// intervening whitespace accumulate into the same group. Trailing
// whitespace does not produce a dangling empty group.
func Parse(tokens []style.Token) (Selector, error) {
	var groups []Group
	var open Group
	nextIsClass := false
	empty := true
	for _, t := range tokens {
		switch t.Type {
		case style.Identifier:
			if nextIsClass {
				nextIsClass = false
				open = append(open, Element{Type: Class, Name: t.Text})
			} else {
				open = append(open, Element{Type: Kind, Name: t.Text})
			}
			empty = false
		case style.Hash:
			if t.Text == "" {
				return Selector{}, ErrInvalidSelector
			}
			open = append(open, Element{Type: Identity, Name: t.Text})
			empty = false
		case style.Whitespace:
			// Descendant boundary. Leading, consecutive and trailing
			// whitespace collapses: only a non-empty group is closed.
			if len(open) > 0 {
				groups = append(groups, open)
				open = nil
			}
		case style.Delimiter:
			if t.Text == "." {
				nextIsClass = true
				continue
			}
			return Selector{}, UnexpectedTokenError{Token: t}
		default:
			return Selector{}, UnexpectedTokenError{Token: t}
		}
	}
	if len(open) > 0 {
		groups = append(groups, open)
	}
	if empty || len(groups) == 0 {
		return Selector{}, ErrInvalidSelector
	}
	return Selector{groups: groups}, nil
}
