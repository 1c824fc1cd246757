package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// TokenType enumerates the lexical token kinds of the styling grammar.
type TokenType int8

// Token types produced by Tokenize.
const (
	Identifier TokenType = iota // bare name, e.g. 'button' or 'flex'
	Hash                        // '#'-prefixed name, '#' stripped
	Dimension                   // number with a unit suffix, magnitude only
	Percentage                  // number with a '%' suffix
	Number                      // plain number
	String                      // quoted string, unquoted and unescaped
	Whitespace                  // run of blank characters
	Delimiter                   // any single character not covered above
)

var tokenTypeNames = map[TokenType]string{
	Identifier: "identifier",
	Hash:       "hash",
	Dimension:  "dimension",
	Percentage: "percentage",
	Number:     "number",
	String:     "string",
	Whitespace: "whitespace",
	Delimiter:  "delimiter",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexical token of stylesheet source text. Tokens are
// immutable and live only for the duration of a parse.
//
// Text carries the payload of identifiers, hashes, strings and delimiters;
// Number carries the magnitude of numeric tokens. Line and Column locate
// the token in the source text (1-based) for diagnostics.
type Token struct {
	Type   TokenType
	Text   string
	Number float64
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return t.Text
	case Hash:
		return "#" + t.Text
	case Dimension:
		return formatNumber(t.Number) + "px"
	case Percentage:
		return formatNumber(t.Number) + "%"
	case Number:
		return formatNumber(t.Number)
	case String:
		return strconv.Quote(t.Text)
	case Whitespace:
		return " "
	}
	return t.Text
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Tokenize lexes stylesheet source text into a flat token stream.
//
// Tokenize never fails: input the scanner cannot make sense of degrades to
// delimiter tokens, leaving error decisions to the rule parser. Comments
// are dropped. The stream is finite and bounded by the input length.
func Tokenize(src string) []Token {
	s := scanner.New(src)
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			// A scanner error is final; surface what is left as a delimiter
			// and stop. The parser will skip over it.
			tracer().Debugf("scanner error at %d:%d: %s", tok.Line, tok.Column, tok.Value)
			tokens = append(tokens, Token{Type: Delimiter, Text: tok.Value, Line: tok.Line, Column: tok.Column})
			break
		}
		if t, ok := convertToken(tok); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// convertToken maps a scanner token onto our token union. Tokens which
// carry no information for this grammar subset (comments, CDO/CDC, BOM)
// are dropped.
func convertToken(tok *scanner.Token) (Token, bool) {
	t := Token{Line: tok.Line, Column: tok.Column}
	switch tok.Type {
	case scanner.TokenIdent:
		t.Type = Identifier
		t.Text = tok.Value
	case scanner.TokenHash:
		t.Type = Hash
		t.Text = strings.TrimPrefix(tok.Value, "#")
	case scanner.TokenNumber:
		t.Type = Number
		t.Number = numericPrefix(tok.Value)
	case scanner.TokenPercentage:
		t.Type = Percentage
		t.Number = numericPrefix(strings.TrimSuffix(tok.Value, "%"))
	case scanner.TokenDimension:
		// The unit suffix is folded into the magnitude; this styling subset
		// treats every absolute length as CSS pixels.
		t.Type = Dimension
		t.Number = numericPrefix(tok.Value)
	case scanner.TokenString:
		t.Type = String
		t.Text = unquote(tok.Value)
	case scanner.TokenS:
		t.Type = Whitespace
	case scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
		return Token{}, false
	case scanner.TokenChar:
		t.Type = Delimiter
		t.Text = tok.Value
	default:
		// At-keywords, functions, URIs etc. are not part of this grammar
		// subset; degrade them to delimiters and let the parser complain.
		t.Type = Delimiter
		t.Text = tok.Value
	}
	return t, true
}

// numericPrefix extracts the leading floating point magnitude of s,
// ignoring any trailing unit characters.
func numericPrefix(s string) float64 {
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '+' || c == '-')) {
			end++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// unquote strips the surrounding quotes from a string token and resolves
// backslash escapes for the quoting character used.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	quote := s[0]
	if quote != '"' && quote != '\'' {
		return s
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			b.WriteByte(inner[i])
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
