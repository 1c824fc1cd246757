package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"sort"
	"strings"
)

// AttributeMap is the typed attribute storage of one styled tree node.
// Property appliers write resolved values into it, keyed by property name.
// nil is a legal (empty) attribute map.
type AttributeMap struct {
	m map[string]interface{} // into struct to make it opaque for clients
}

// NewAttributeMap returns a new empty attribute map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{}
}

// Set a typed attribute value. Overwrites an existing value, if present.
func (am *AttributeMap) Set(key string, value interface{}) {
	if am == nil {
		return
	}
	if am.m == nil {
		am.m = make(map[string]interface{})
	}
	am.m[key] = value
}

// Get an attribute's value, together with an indicator whether it is set.
func (am *AttributeMap) Get(key string) (interface{}, bool) {
	if am == nil || am.m == nil {
		return nil, false
	}
	v, ok := am.m[key]
	return v, ok
}

// IsSet is a predicate whether an attribute is set within this map.
func (am *AttributeMap) IsSet(key string) bool {
	_, ok := am.Get(key)
	return ok
}

// Size returns the number of attributes set.
func (am *AttributeMap) Size() int {
	if am == nil {
		return 0
	}
	return len(am.m)
}

// Keys returns all set attribute keys, sorted for deterministic iteration.
func (am *AttributeMap) Keys() []string {
	if am == nil {
		return nil
	}
	keys := make([]string, 0, len(am.m))
	for k := range am.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stringer for attribute maps; used for debugging.
func (am *AttributeMap) String() string {
	var b strings.Builder
	b.WriteString("Attributes = {\n")
	for _, k := range am.Keys() {
		v, _ := am.Get(k)
		fmt.Fprintf(&b, "  %s = %v\n", k, v)
	}
	b.WriteString("}")
	return b.String()
}
