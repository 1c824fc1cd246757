package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/AmonDeShir/tomt-bevycss/style"
)

func TestTokenizeValueFixtures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.style")
	defer teardown()
	//
	cases := []struct {
		src    string
		tt     style.TokenType
		text   string
		number float64
	}{
		{"c", style.Identifier, "c", 0},
		{"0px", style.Dimension, "", 0},
		{"#f", style.Hash, "f", 0},
		{"100%", style.Percentage, "", 100},
		{"12.9", style.Number, "", 12.9},
		{`"str"`, style.String, "str", 0},
		{"15.3px", style.Dimension, "", 15.3},
	}
	for _, c := range cases {
		tokens := style.Tokenize(c.src)
		if len(tokens) != 1 {
			t.Errorf("expected %q to produce a single token, have %d", c.src, len(tokens))
			continue
		}
		tok := tokens[0]
		if tok.Type != c.tt {
			t.Errorf("expected %q to be a %s token, is %s", c.src, c.tt, tok.Type)
		}
		if tok.Text != c.text {
			t.Errorf("expected %q to carry text %q, has %q", c.src, c.text, tok.Text)
		}
		if tok.Number != c.number {
			t.Errorf("expected %q to carry number %v, has %v", c.src, c.number, tok.Number)
		}
	}
}

func TestTokenizeSelectorText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.style")
	defer teardown()
	//
	tokens := style.Tokenize("a.b #c")
	expected := []style.TokenType{
		style.Identifier, style.Delimiter, style.Identifier,
		style.Whitespace, style.Hash,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected %s, have %s", i, tt, tokens[i].Type)
		}
	}
	if tokens[1].Text != "." {
		t.Errorf("expected token 1 to be '.', is %q", tokens[1].Text)
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.style")
	defer teardown()
	//
	tokens := style.Tokenize("@@@")
	if len(tokens) == 0 {
		t.Fatal("expected unrecognized input to surface as tokens, have none")
	}
	for _, tok := range tokens {
		if tok.Type != style.Delimiter {
			t.Errorf("expected delimiter token, have %s", tok.Type)
		}
	}
}

func TestTokenizeUnescapesStrings(t *testing.T) {
	tokens := style.Tokenize(`"a\"b"`)
	if len(tokens) != 1 || tokens[0].Type != style.String {
		t.Fatalf("expected a single string token, have %v", tokens)
	}
	if tokens[0].Text != `a"b` {
		t.Errorf(`expected unescaped text a"b, have %q`, tokens[0].Text)
	}
}

func TestTokenizeDropsComments(t *testing.T) {
	tokens := style.Tokenize("a/* note */b")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %d: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Errorf("expected identifiers a and b, have %v", tokens)
	}
}

func TestTokenizeTracksLines(t *testing.T) {
	tokens := style.Tokenize("a\nb")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(tokens))
	}
	if tokens[2].Line <= tokens[0].Line {
		t.Errorf("expected token on second line to have a larger line number, have %d and %d",
			tokens[0].Line, tokens[2].Line)
	}
}

func TestDeclaredValuesFiltering(t *testing.T) {
	vals := style.DeclaredValues(style.Tokenize("h i j"))
	if len(vals) != 3 {
		t.Fatalf("expected whitespace to be dropped, have %d values", len(vals))
	}
	vals = style.DeclaredValues(style.Tokenize("!important"))
	if len(vals) != 1 || vals[0].Type != style.Identifier {
		t.Errorf("expected the '!' delimiter to be dropped, have %v", vals)
	}
}
