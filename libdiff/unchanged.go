package libdiff

import (
	"github.com/syndiff/go-syndiff/debug"
	"github.com/syndiff/go-syndiff/syntax"
)

// Residual is a pair of sibling subsequences that still needs
// node-by-node comparison after the cheap unchanged-region pass.
type Residual struct {
	Lhs, Rhs []*syntax.Node
}

// MarkUnchanged finds structurally identical regions of the two sides,
// records them in cm, and returns the residual pairs left over. Every
// input node ends up either classified in cm or in exactly one
// residual pair.
func MarkUnchanged(lhsRoots, rhsRoots []*syntax.Node, cm *ChangeMap) []Residual {
	lhs, rhs := shrinkUnchangedAtEnds(lhsRoots, rhsRoots, cm)
	var res []Residual
	for _, sec := range splitMostlyUnchangedToplevel(lhs, rhs) {
		res = append(res, splitUnchangedToplevel(sec.Lhs, sec.Rhs, cm)...)
	}
	if debug.Split() {
		debug.Logf("split: %d nodes marked, %d residual pairs\n", cm.Len(), len(res))
	}
	return res
}

// shrinkUnchangedAtEnds peels a maximal byte-identical prefix and
// suffix. A content id match on a node covers its whole subtree, so
// peeled pairs are marked unchanged all the way down. When a single
// list remains on each side and their delimiters agree, the shared
// bracket is itself unchanged context: mark the pair and keep
// shrinking inside it.
func shrinkUnchangedAtEnds(lhs, rhs []*syntax.Node, cm *ChangeMap) ([]*syntax.Node, []*syntax.Node) {
	for len(lhs) > 0 && len(rhs) > 0 && lhs[0].ContentID() == rhs[0].ContentID() {
		cm.MarkDeepUnchanged(lhs[0], rhs[0])
		lhs, rhs = lhs[1:], rhs[1:]
	}
	for len(lhs) > 0 && len(rhs) > 0 &&
		lhs[len(lhs)-1].ContentID() == rhs[len(rhs)-1].ContentID() {
		cm.MarkDeepUnchanged(lhs[len(lhs)-1], rhs[len(rhs)-1])
		lhs, rhs = lhs[:len(lhs)-1], rhs[:len(rhs)-1]
	}
	// sharesContent keeps unrelated same-bracket lists apart: calling
	// their brackets unchanged would be spurious
	if len(lhs) == 1 && len(rhs) == 1 && syntax.SameDelimiters(lhs[0], rhs[0]) &&
		sharesContent(lhs[0], rhs[0]) {
		cm.MarkUnchanged(lhs[0], rhs[0])
		return shrinkUnchangedAtEnds(lhs[0].Children(), rhs[0].Children(), cm)
	}
	return lhs, rhs
}

// splitMostlyUnchangedToplevel peels leading and trailing list pairs
// that clearly correspond (at least mostlyUnchangedMinCommon
// content-unique descendants in common) into sections of their own, so
// a heavy edit inside one list is not lumped into one giant alignment
// with unrelated siblings.
func splitMostlyUnchangedToplevel(lhs, rhs []*syntax.Node) []Residual {
	var lead, trail []Residual
	for len(lhs) > 0 && len(rhs) > 0 {
		if mostlyUnchangedPair(lhs[0], rhs[0]) {
			lead = append(lead, Residual{Lhs: lhs[:1], Rhs: rhs[:1]})
			lhs, rhs = lhs[1:], rhs[1:]
			continue
		}
		ll, rl := len(lhs), len(rhs)
		if mostlyUnchangedPair(lhs[ll-1], rhs[rl-1]) {
			trail = append([]Residual{{Lhs: lhs[ll-1:], Rhs: rhs[rl-1:]}}, trail...)
			lhs, rhs = lhs[:ll-1], rhs[:rl-1]
			continue
		}
		break
	}
	secs := lead
	if len(lhs) > 0 || len(rhs) > 0 {
		secs = append(secs, Residual{Lhs: lhs, Rhs: rhs})
	}
	return append(secs, trail...)
}

func mostlyUnchangedPair(a, b *syntax.Node) bool {
	if a.Kind() != syntax.ListKind || b.Kind() != syntax.ListKind {
		return false
	}
	ids := map[uint32]bool{}
	for _, child := range a.Children() {
		child.Walk(func(n *syntax.Node) {
			if n.ContentIsUnique() {
				ids[n.ContentID()] = true
			}
		})
	}
	count := 0
	var walk func(n *syntax.Node)
	walk = func(n *syntax.Node) {
		if count >= mostlyUnchangedMinCommon {
			return
		}
		// stop at the first match per branch: a matched subtree's
		// descendants would double count
		if n.ContentIsUnique() && ids[n.ContentID()] {
			count++
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	for _, child := range b.Children() {
		walk(child)
	}
	return count >= mostlyUnchangedMinCommon
}

// splitUnchangedToplevel aligns the two sequences by content id and
// classifies the matches. Matches too small to stand on their own are
// grouped with the unmatched nodes around them and re-examined; each
// flushed group either splits further (singleton list pairs) or is
// returned as residual work.
func splitUnchangedToplevel(lhs, rhs []*syntax.Node, cm *ChangeMap) []Residual {
	var res []Residual
	var pend Residual
	flush := func() {
		if len(pend.Lhs) == 0 && len(pend.Rhs) == 0 {
			return
		}
		res = append(res, splitUnchangedSingletonList(pend, cm)...)
		pend = Residual{}
	}
	for _, e := range lcsEdits(lhs, rhs) {
		switch e.op {
		case opBoth:
			if tiny(e.lhs) {
				pend.Lhs = append(pend.Lhs, e.lhs)
				pend.Rhs = append(pend.Rhs, e.rhs)
			} else {
				flush()
				cm.MarkDeepUnchanged(e.lhs, e.rhs)
			}
		case opLeft:
			pend.Lhs = append(pend.Lhs, e.lhs)
		case opRight:
			pend.Rhs = append(pend.Rhs, e.rhs)
		}
	}
	flush()
	return res
}

// tiny nodes are grouped rather than matched as whole subtrees: a
// matched `x` or `)` between two edits says little by itself.
func tiny(n *syntax.Node) bool {
	if n.Kind() == syntax.AtomKind {
		return true
	}
	return int(n.NumDescendants()) < tinyListThreshold
}

// splitUnchangedSingletonList re-splits a flushed group that reduces to
// one list per side with matching delimiters. If aligning the two
// child sequences gets anywhere, the outer brackets are unchanged
// context and the recursive residuals stand on their own; otherwise the
// group is left whole for the fine-grained differ.
func splitUnchangedSingletonList(group Residual, cm *ChangeMap) []Residual {
	if len(group.Lhs) != 1 || len(group.Rhs) != 1 {
		return []Residual{group}
	}
	outerLhs, outerRhs := group.Lhs[0], group.Rhs[0]
	if !syntax.SameDelimiters(outerLhs, outerRhs) {
		return []Residual{group}
	}
	before := cm.Len()
	inner := splitUnchangedToplevel(outerLhs.Children(), outerRhs.Children(), cm)
	if cm.Len() > before || len(inner) > 1 {
		cm.MarkUnchanged(outerLhs, outerRhs)
		return inner
	}
	return []Residual{group}
}
