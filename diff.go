// Package syndiff computes minimal, readable structural diffs between
// two versions of a parsed syntax tree.
package syndiff

import (
	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/syntax"
)

// Diff classifies every node of a tree pair. The trees must come from
// one syntax.Prepare call. The cheap unchanged-region pass runs first,
// the residual pairs get node-by-node comparison, and the slider pass
// polishes ambiguous attributions. The result maps each node to its
// classification; render it with the encode package.
func Diff(lhsTree, rhsTree *syntax.Tree, pref libdiff.Preference) *libdiff.ChangeMap {
	cm := libdiff.NewChangeMap(lhsTree, rhsTree)
	residuals := libdiff.MarkUnchanged(lhsTree.Roots(), rhsTree.Roots(), cm)
	for _, res := range residuals {
		libdiff.ClassifyResidual(res, cm)
	}
	libdiff.FixAllSliders(pref, lhsTree.Roots(), rhsTree.Roots(), cm)
	return cm
}

// Changed reports whether cm records any difference between the two
// sides.
func Changed(tree *syntax.Tree, cm *libdiff.ChangeMap) bool {
	changed := false
	for _, root := range tree.Roots() {
		root.Walk(func(n *syntax.Node) {
			if cm.MustGet(n).Kind != libdiff.Unchanged {
				changed = true
			}
		})
	}
	return changed
}
