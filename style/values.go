package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// PropertyValues is the declared value of one style property: the ordered
// sequence of value-bearing tokens on the right-hand side of a declaration.
// Whitespace and delimiter tokens are not retained.
type PropertyValues []Token

// DeclaredValues filters a raw token sequence down to the tokens a
// property value may consist of: identifiers, hashes, numbers, dimensions,
// percentages and strings. Everything else is dropped.
func DeclaredValues(tokens []Token) PropertyValues {
	var vals PropertyValues
	for _, t := range tokens {
		switch t.Type {
		case Identifier, Hash, Dimension, Percentage, Number, String:
			vals = append(vals, t)
		}
	}
	return vals
}

// Single returns the only token of a value sequence, if there is exactly one.
func (vals PropertyValues) Single() (Token, bool) {
	if len(vals) != 1 {
		return Token{}, false
	}
	return vals[0], true
}

func (vals PropertyValues) String() string {
	parts := make([]string, len(vals))
	for i, t := range vals {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
