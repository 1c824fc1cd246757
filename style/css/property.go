package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/AmonDeShir/tomt-bevycss/style"
	"github.com/AmonDeShir/tomt-bevycss/styledtree"
)

// Property describes one resolvable style property: how its declared
// token sequence is converted into a typed value, and how that value is
// written into a node's attribute storage.
//
// Parse must be a pure function of the token sequence; Apply is the only
// side-effecting operation, and it writes exactly one attribute.
type Property interface {
	Name() string
	Parse(vals style.PropertyValues) (interface{}, error)
	Apply(node *styledtree.Node, value interface{})
}

// PropertyRegistry maps property names to their Property implementation.
type PropertyRegistry struct {
	props map[string]Property
}

// NewPropertyRegistry returns a new empty registry.
func NewPropertyRegistry() *PropertyRegistry {
	return &PropertyRegistry{props: make(map[string]Property)}
}

// Register adds a property. The last registration for a name wins.
func (reg *PropertyRegistry) Register(p Property) {
	reg.props[p.Name()] = p
}

// Lookup returns the property registered under a name.
func (reg *PropertyRegistry) Lookup(name string) (Property, bool) {
	if reg == nil {
		return nil, false
	}
	p, ok := reg.props[name]
	return p, ok
}

// DefaultProperties returns a registry pre-filled with the built-in
// property set: lengths, numbers, box shorthands, colors, enums and
// strings. Hosts extend it with Register.
func DefaultProperties() *PropertyRegistry {
	reg := NewPropertyRegistry()
	for _, name := range []string{
		"width", "height", "min-width", "min-height", "max-width", "max-height",
		"left", "right", "top", "bottom", "flex-basis",
	} {
		reg.Register(NewDimenProperty(name))
	}
	for _, name := range []string{"flex-grow", "flex-shrink", "aspect-ratio"} {
		reg.Register(NewNumberProperty(name))
	}
	for _, name := range []string{"margin", "padding", "border-width"} {
		reg.Register(NewRectProperty(name))
	}
	for _, name := range []string{"color", "background-color"} {
		reg.Register(NewColorProperty(name))
	}
	reg.Register(NewEnumProperty("display", "flex", "none"))
	reg.Register(NewEnumProperty("position", "absolute", "relative"))
	reg.Register(NewEnumProperty("align-items",
		"flex-start", "flex-end", "center", "baseline", "stretch"))
	reg.Register(NewEnumProperty("justify-content",
		"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"))
	reg.Register(NewEnumProperty("flex-direction", "row", "column", "row-reverse", "column-reverse"))
	reg.Register(NewEnumProperty("flex-wrap", "nowrap", "wrap", "wrap-reverse"))
	reg.Register(NewEnumProperty("text-align", "left", "center", "right"))
	reg.Register(NewStringProperty("font"))
	reg.Register(NewStringProperty("text-content"))
	return reg
}

// --- Built-in property kinds -----------------------------------------------

// NewDimenProperty creates a property resolving a single
// length/percentage/auto value into a style.DimenT.
func NewDimenProperty(name string) Property {
	return dimenProperty{name: name}
}

type dimenProperty struct {
	name string
}

func (p dimenProperty) Name() string { return p.name }

func (p dimenProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	t, ok := vals.Single()
	if !ok {
		return nil, fmt.Errorf("%s: expected a single dimension value, have %d", p.name, len(vals))
	}
	d, err := style.DimenFromToken(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return d, nil
}

func (p dimenProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(style.DimenT))
}

// NewNumberProperty creates a property resolving a single plain number
// into a float64.
func NewNumberProperty(name string) Property {
	return numberProperty{name: name}
}

type numberProperty struct {
	name string
}

func (p numberProperty) Name() string { return p.name }

func (p numberProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	t, ok := vals.Single()
	if !ok || t.Type != style.Number {
		return nil, fmt.Errorf("%s: expected a single number value", p.name)
	}
	return t.Number, nil
}

func (p numberProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(float64))
}

// NewRectProperty creates a property resolving a box shorthand of 1, 2 or
// 4 length/percentage values into a style.RectT.
func NewRectProperty(name string) Property {
	return rectProperty{name: name}
}

type rectProperty struct {
	name string
}

func (p rectProperty) Name() string { return p.name }

func (p rectProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	r, err := style.RectFromTokens(vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return r, nil
}

func (p rectProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(style.RectT))
}

// NewColorProperty creates a property resolving a hash token or color
// name into a style.ColorT.
func NewColorProperty(name string) Property {
	return colorProperty{name: name}
}

type colorProperty struct {
	name string
}

func (p colorProperty) Name() string { return p.name }

func (p colorProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	t, ok := vals.Single()
	if !ok {
		return nil, fmt.Errorf("%s: expected a single color value, have %d", p.name, len(vals))
	}
	c, err := style.ColorFromToken(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return c, nil
}

func (p colorProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(style.ColorT))
}

// NewEnumProperty creates a property resolving a single identifier out of
// a fixed set of allowed keywords.
func NewEnumProperty(name string, allowed ...string) Property {
	return enumProperty{name: name, allowed: allowed}
}

type enumProperty struct {
	name    string
	allowed []string
}

func (p enumProperty) Name() string { return p.name }

func (p enumProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	t, ok := vals.Single()
	if !ok || t.Type != style.Identifier {
		return nil, fmt.Errorf("%s: expected a single keyword", p.name)
	}
	for _, a := range p.allowed {
		if t.Text == a {
			return t.Text, nil
		}
	}
	return nil, fmt.Errorf("%s: keyword '%s' is not one of %v", p.name, t.Text, p.allowed)
}

func (p enumProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(string))
}

// NewStringProperty creates a property resolving a single quoted string
// or identifier into its text.
func NewStringProperty(name string) Property {
	return stringProperty{name: name}
}

type stringProperty struct {
	name string
}

func (p stringProperty) Name() string { return p.name }

func (p stringProperty) Parse(vals style.PropertyValues) (interface{}, error) {
	t, ok := vals.Single()
	if !ok || (t.Type != style.String && t.Type != style.Identifier) {
		return nil, fmt.Errorf("%s: expected a single string value", p.name)
	}
	return t.Text, nil
}

func (p stringProperty) Apply(node *styledtree.Node, value interface{}) {
	node.Attributes().Set(p.name, value.(string))
}
