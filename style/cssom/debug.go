package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "github.com/xlab/treeprint"

// Dump renders a style sheet as an indented text tree, one branch per
// rule. Intended for debugging and tooling.
func Dump(sheet *StyleSheet) string {
	tp := treeprint.New()
	tp.SetValue("stylesheet")
	for _, rule := range sheet.Rules() {
		branch := tp.AddBranch(rule.Selector.String())
		for _, name := range rule.Properties() {
			vals, _ := rule.Value(name)
			branch.AddNode(name + ": " + vals.String())
		}
	}
	return tp.String()
}
