package libdiff

import (
	"github.com/syndiff/go-syndiff/debug"
	"github.com/syndiff/go-syndiff/syntax"
)

// Preference selects how nested delimiter ambiguity is resolved: blame
// the outer bracket pair or the inner one.
type Preference int

const (
	PreferOuter Preference = iota
	PreferInner
)

func (p Preference) String() string {
	if p == PreferInner {
		return "inner"
	}
	return "outer"
}

// FixAllSliders reclassifies ambiguous change attributions in place so
// the diff reads well. It moves blame between byte-identical nodes but
// never changes which bytes count as changed. Every reachable node
// must already have a ChangeMap entry; a missing entry panics.
//
// Same-level sliding runs twice, then nested sliding once. Chains of
// ambiguity needing more than two same-level rounds stay unresolved.
func FixAllSliders(pref Preference, lhsRoots, rhsRoots []*syntax.Node, cm *ChangeMap) {
	for _, roots := range [][]*syntax.Node{lhsRoots, rhsRoots} {
		for _, root := range roots {
			root.Walk(func(n *syntax.Node) {
				cm.MustGet(n)
			})
		}
	}

	for i := 0; i < 2; i++ {
		fixSliders(lhsRoots, cm)
		fixSliders(rhsRoots, cm)
	}
	for _, roots := range [][]*syntax.Node{lhsRoots, rhsRoots} {
		for _, root := range roots {
			fixNestedSliders(pref, root, cm)
		}
	}
}

// fixSliders fixes same-level sliders in one sibling sequence,
// innermost lists first.
func fixSliders(siblings []*syntax.Node, cm *ChangeMap) {
	for _, n := range siblings {
		if n.Kind() == syntax.ListKind {
			fixSliders(n.Children(), cm)
		}
	}
	for _, run := range novelRuns(siblings, cm) {
		slideToPrev(siblings, run, cm)
	}
	// prev slides shift runs, so recompute before the backward sweep
	for _, run := range novelRuns(siblings, cm) {
		slideToNext(siblings, run, cm)
	}
}

// novelRuns returns the maximal contiguous runs of Novel siblings as
// inclusive [start, end] index pairs.
func novelRuns(siblings []*syntax.Node, cm *ChangeMap) [][2]int {
	var runs [][2]int
	start := -1
	for i, n := range siblings {
		if cm.MustGet(n).Kind == Novel {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2]int{start, i - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(siblings) - 1})
	}
	return runs
}

// slideToPrev handles the duplicated-block shape
//
//	P (unchanged)  N ... N' (novel run)  Q ...
//
// where N' is byte-identical to P. Blaming P instead of N' describes
// the same edit; do so when the run sits strictly closer to Q than to
// P, gluing the copy to its nearer neighbor.
func slideToPrev(siblings []*syntax.Node, run [2]int, cm *ChangeMap) {
	start, end := run[0], run[1]
	if start == 0 || end+1 >= len(siblings) {
		return
	}
	before := siblings[start-1]
	ch := cm.MustGet(before)
	if ch.Kind != Unchanged {
		return
	}
	last := siblings[end]
	if before.ContentID() != last.ContentID() ||
		ch.Opposite.ContentID() != last.ContentID() {
		return
	}
	for i := start; i <= end; i++ {
		if !novelDeep(siblings[i], cm) {
			return
		}
	}
	prevGap := byteGap(before, siblings[start])
	nextGap := byteGap(last, siblings[end+1])
	// strict: on a tie the backward sweep owns the slide, so the two
	// sweeps never fight over the same run
	if prevGap <= nextGap {
		return
	}
	if debug.Sliders() {
		debug.Logf("slider: %s run [%d,%d] slides to prev\n", before.Side(), start, end)
	}
	opposite := ch.Opposite
	cm.MarkDeepNovel(before)
	cm.MarkDeepUnchanged(last, opposite)
}

// slideToNext is the mirror image: a novel run followed by an
// unchanged node byte-identical to the run's first node.
func slideToNext(siblings []*syntax.Node, run [2]int, cm *ChangeMap) {
	start, end := run[0], run[1]
	if start == 0 || end+1 >= len(siblings) {
		return
	}
	after := siblings[end+1]
	ch := cm.MustGet(after)
	if ch.Kind != Unchanged {
		return
	}
	first := siblings[start]
	if after.ContentID() != first.ContentID() ||
		ch.Opposite.ContentID() != first.ContentID() {
		return
	}
	for i := start; i <= end; i++ {
		if !novelDeep(siblings[i], cm) {
			return
		}
	}
	nextGap := byteGap(siblings[end], after)
	prevGap := byteGap(siblings[start-1], first)
	if nextGap < prevGap {
		return
	}
	if debug.Sliders() {
		debug.Logf("slider: %s run [%d,%d] slides to next\n", after.Side(), start, end)
	}
	opposite := ch.Opposite
	cm.MarkDeepNovel(after)
	cm.MarkDeepUnchanged(first, opposite)
}

// byteGap is the source distance between two adjacent siblings, 0 when
// they touch or overlap.
func byteGap(a, b *syntax.Node) uint32 {
	ar, br := a.ByteRange(), b.ByteRange()
	if br.Start <= ar.End {
		return 0
	}
	return br.Start - ar.End
}

// novelDeep reports whether n and its whole subtree are Novel. A run
// containing anything else is not safe to slide.
func novelDeep(n *syntax.Node, cm *ChangeMap) bool {
	ch, ok := cm.Get(n)
	if !ok || ch.Kind != Novel {
		return false
	}
	for _, child := range n.Children() {
		if !novelDeep(child, cm) {
			return false
		}
	}
	return true
}

// fixNestedSliders resolves the wrapper-vs-child delimiter ambiguity:
// an unchanged list whose content is novel except for one novel list
// with the same brackets (or the mirror shape). Swapping across
// different bracket text would misrepresent a real edit as cosmetic, so
// delimiter equality gates every swap. Recursion continues into all
// children whether or not a swap happened.
func fixNestedSliders(pref Preference, node *syntax.Node, cm *ChangeMap) {
	switch pref {
	case PreferOuter:
		nestedSliderPreferOuter(node, cm)
	case PreferInner:
		nestedSliderPreferInner(node, cm)
	}
	for _, child := range node.Children() {
		fixNestedSliders(pref, child, cm)
	}
}

// nestedSliderPreferOuter pushes an unchanged list's classification
// down onto its sole novel list descendant.
func nestedSliderPreferOuter(node *syntax.Node, cm *ChangeMap) {
	if node.Kind() != syntax.ListKind {
		return
	}
	ch := cm.MustGet(node)
	if ch.Kind != Unchanged {
		return
	}
	var cands []*syntax.Node
	for _, child := range node.Children() {
		if !novelListCandidates(child, cm, &cands) {
			// matched structure below: leave it alone
			return
		}
	}
	if len(cands) != 1 {
		return
	}
	inner := cands[0]
	if !syntax.SameDelimiters(node, inner) {
		return
	}
	if debug.Sliders() {
		debug.Logf("slider: %s nested push down\n", node.Side())
	}
	opposite := ch.Opposite
	cm.MarkNovel(node)
	cm.MarkUnchanged(inner, opposite)
}

// novelListCandidates collects novel list candidates below n, stopping
// descent at each candidate. It returns false when it hits an
// unchanged node, which disqualifies the whole swap.
func novelListCandidates(n *syntax.Node, cm *ChangeMap, cands *[]*syntax.Node) bool {
	ch := cm.MustGet(n)
	if ch.Kind == Unchanged {
		return false
	}
	if n.Kind() == syntax.ListKind && ch.Kind == Novel {
		*cands = append(*cands, n)
		return true
	}
	for _, child := range n.Children() {
		if !novelListCandidates(child, cm, cands) {
			return false
		}
	}
	return true
}

// nestedSliderPreferInner promotes the sole unchanged list descendant
// of a novel list outward.
func nestedSliderPreferInner(node *syntax.Node, cm *ChangeMap) {
	if node.Kind() != syntax.ListKind {
		return
	}
	if cm.MustGet(node).Kind != Novel {
		return
	}
	var cands []*syntax.Node
	for _, child := range node.Children() {
		unchangedListCandidates(child, cm, &cands)
		if len(cands) >= 2 {
			// ambiguous
			return
		}
	}
	if len(cands) != 1 {
		return
	}
	inner := cands[0]
	if !syntax.SameDelimiters(node, inner) {
		return
	}
	if debug.Sliders() {
		debug.Logf("slider: %s nested promote\n", node.Side())
	}
	opposite := cm.MustGet(inner).Opposite
	cm.MarkNovel(inner)
	cm.MarkUnchanged(node, opposite)
}

func unchangedListCandidates(n *syntax.Node, cm *ChangeMap, cands *[]*syntax.Node) {
	if len(*cands) >= 2 {
		return
	}
	if n.Kind() == syntax.ListKind && cm.MustGet(n).Kind == Unchanged {
		*cands = append(*cands, n)
		return
	}
	for _, child := range n.Children() {
		unchangedListCandidates(child, cm, cands)
	}
}
