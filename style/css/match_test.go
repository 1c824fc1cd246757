package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/style/css"
	"github.com/AmonDeShir/tomt-bevycss/style/selector"
	"github.com/AmonDeShir/tomt-bevycss/styledtree"
)

// fixture tree:
//
//	window
//	├── panel#main.wide
//	│   └── button.primary
//	└── list
//	    └── button.secondary
func matchFixture() (root *styledtree.Node, kinds *css.KindRegistry) {
	root = styledtree.New("window")
	panel := styledtree.New("panel").SetIdentity("main").AddClass("wide")
	primary := styledtree.New("button").AddClass("primary")
	list := styledtree.New("list")
	secondary := styledtree.New("button").AddClass("secondary")
	root.AddChild(panel.AddChild(primary))
	root.AddChild(list.AddChild(secondary))
	//
	kinds = css.NewKindRegistry()
	for _, k := range []string{"window", "panel", "button", "list"} {
		kinds.RegisterTag(k)
	}
	return
}

func sel(t *testing.T, src string) selector.Selector {
	t.Helper()
	s, err := selector.Parse(style.Tokenize(src))
	if err != nil {
		t.Fatalf("cannot parse selector %q: %v", src, err)
	}
	return s
}

func kindsOf(nodes []*styledtree.Node) []string {
	kinds := make([]string, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind()
	}
	return kinds
}

func TestMatchSingleGroupAnywhere(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.css")
	defer teardown()
	//
	root, kinds := matchFixture()
	nodes := css.MatchSelector(sel(t, "button"), root, kinds)
	if len(nodes) != 2 {
		t.Fatalf("expected both buttons to match, have %v", kindsOf(nodes))
	}
}

func TestMatchDescendantChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.css")
	defer teardown()
	//
	root, kinds := matchFixture()
	nodes := css.MatchSelector(sel(t, "panel button"), root, kinds)
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one match, have %v", kindsOf(nodes))
	}
	if !nodes[0].HasClass("primary") {
		t.Error("expected the button under the panel, not its sibling")
	}
}

func TestMatchTransitiveDescendant(t *testing.T) {
	root, kinds := matchFixture()
	// window is a grand-ancestor of the buttons, not a parent.
	nodes := css.MatchSelector(sel(t, "window button"), root, kinds)
	if len(nodes) != 2 {
		t.Errorf("expected descendant matching to skip levels, have %v", kindsOf(nodes))
	}
}

func TestMatchComposedGroup(t *testing.T) {
	root, kinds := matchFixture()
	nodes := css.MatchSelector(sel(t, "panel#main.wide"), root, kinds)
	if len(nodes) != 1 || nodes[0].Identity() != "main" {
		t.Errorf("expected the panel only, have %v", kindsOf(nodes))
	}
	if nodes := css.MatchSelector(sel(t, "panel#other"), root, kinds); len(nodes) != 0 {
		t.Errorf("expected no match for a wrong identity, have %v", kindsOf(nodes))
	}
}

func TestMatchClassAndIdentity(t *testing.T) {
	root, kinds := matchFixture()
	nodes := css.MatchSelector(sel(t, "#main .primary"), root, kinds)
	if len(nodes) != 1 || !nodes[0].HasClass("primary") {
		t.Errorf("expected the primary button, have %v", kindsOf(nodes))
	}
}

func TestMatchUnknownKindNeverMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.css")
	defer teardown()
	//
	root, kinds := matchFixture()
	if nodes := css.MatchSelector(sel(t, "ghost"), root, kinds); len(nodes) != 0 {
		t.Errorf("expected an unregistered kind to match nothing, have %v", kindsOf(nodes))
	}
	if nodes := css.MatchSelector(sel(t, "ghost button"), root, kinds); len(nodes) != 0 {
		t.Errorf("expected an unregistered ancestor kind to match nothing, have %v", kindsOf(nodes))
	}
}

func TestMatchRootNotItsOwnAncestor(t *testing.T) {
	root, kinds := matchFixture()
	// the chain needs a strict ancestor, so 'window window' cannot hold.
	if nodes := css.MatchSelector(sel(t, "window window"), root, kinds); len(nodes) != 0 {
		t.Errorf("expected no match, a node is not its own ancestor, have %v", kindsOf(nodes))
	}
}

func TestMatchNilRoot(t *testing.T) {
	_, kinds := matchFixture()
	if nodes := css.MatchSelector(sel(t, "button"), nil, kinds); nodes != nil {
		t.Errorf("expected no matches for an empty tree, have %v", kindsOf(nodes))
	}
}

func TestMatchSeesTreeMutation(t *testing.T) {
	root, kinds := matchFixture()
	before := css.MatchSelector(sel(t, "button"), root, kinds)
	root.AddChild(styledtree.New("button"))
	after := css.MatchSelector(sel(t, "button"), root, kinds)
	if len(after) != len(before)+1 {
		t.Errorf("expected a fresh match to see the new node, have %d then %d",
			len(before), len(after))
	}
}
