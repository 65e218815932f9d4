// Package libdiff classifies the nodes of two syntax trees as changed
// or unchanged.
//
// # Usage
//
//	lhsTree, rhsTree := syntax.Prepare(lhsRoots, rhsRoots)
//	cm := libdiff.NewChangeMap(lhsTree, rhsTree)
//	residuals := libdiff.MarkUnchanged(lhsTree.Roots(), rhsTree.Roots(), cm)
//	for _, res := range residuals {
//		libdiff.ClassifyResidual(res, cm)
//	}
//	libdiff.FixAllSliders(libdiff.PreferOuter, lhsTree.Roots(), rhsTree.Roots(), cm)
//
// MarkUnchanged finds structurally identical regions cheaply, before
// any node-by-node comparison, and returns the residual pairs that
// still need one. ClassifyResidual resolves a residual pair so that
// every node in it has a ChangeMap entry. FixAllSliders then picks the
// most readable classification among equivalent ones: it moves blame
// between byte-identical nodes but never changes which bytes the diff
// reports as changed.
//
// # Related Packages
//
//   - github.com/syndiff/go-syndiff/syntax - tree model and content ids
//   - github.com/syndiff/go-syndiff/encode - renders a classified pair
package libdiff
