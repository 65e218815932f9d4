package libdiff

import (
	"github.com/syndiff/go-syndiff/debug"
	"github.com/syndiff/go-syndiff/syntax"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ClassifyResidual resolves one residual pair from MarkUnchanged,
// giving every node in it a ChangeMap entry. Matches found here are
// exact content matches; near-misses become ReplacedComment or
// ReplacedString when both sides are atoms of those token kinds, and
// everything else is Novel.
func ClassifyResidual(res Residual, cm *ChangeMap) {
	if debug.Residual() {
		debug.Logf("residual: %d lhs vs %d rhs nodes\n", len(res.Lhs), len(res.Rhs))
	}
	classifySiblings(res.Lhs, res.Rhs, cm)
}

func classifySiblings(lhs, rhs []*syntax.Node, cm *ChangeMap) {
	var pendLhs, pendRhs []*syntax.Node
	flush := func() {
		if len(pendLhs) == 0 && len(pendRhs) == 0 {
			return
		}
		classifyLeftover(pendLhs, pendRhs, cm)
		pendLhs, pendRhs = nil, nil
	}
	for _, e := range lcsEdits(lhs, rhs) {
		switch e.op {
		case opBoth:
			flush()
			cm.MarkDeepUnchanged(e.lhs, e.rhs)
		case opLeft:
			pendLhs = append(pendLhs, e.lhs)
		case opRight:
			pendRhs = append(pendRhs, e.rhs)
		}
	}
	flush()
}

// classifyLeftover handles a maximal unmatched region. Members with no
// exact match can still describe an edit: lists with the same brackets
// and some shared content diff inside those brackets, and edited
// comment or string atoms pair up as replacements. Pairing is greedy
// and order-preserving; everything left unpaired is novel.
func classifyLeftover(lhs, rhs []*syntax.Node, cm *ChangeMap) {
	j := 0
	for _, l := range lhs {
		k := j
		for k < len(rhs) && !relatable(l, rhs[k]) {
			k++
		}
		if k == len(rhs) {
			cm.MarkDeepNovel(l)
			continue
		}
		for ; j < k; j++ {
			cm.MarkDeepNovel(rhs[j])
		}
		pairLeftover(l, rhs[j], cm)
		j++
	}
	for ; j < len(rhs); j++ {
		cm.MarkDeepNovel(rhs[j])
	}
}

// relatable reports whether an unmatched pair reads as an edit rather
// than an unrelated deletion and insertion.
func relatable(l, r *syntax.Node) bool {
	if l.Kind() == syntax.ListKind && r.Kind() == syntax.ListKind {
		return syntax.SameDelimiters(l, r) && sharesContent(l, r)
	}
	if l.Kind() != syntax.AtomKind || r.Kind() != syntax.AtomKind || l.Token() != r.Token() {
		return false
	}
	switch l.Token() {
	case syntax.TokenComment:
		return true
	case syntax.TokenString:
		return similarText(l.Content(), r.Content())
	}
	return false
}

func pairLeftover(l, r *syntax.Node, cm *ChangeMap) {
	switch {
	case l.Kind() == syntax.ListKind:
		cm.MarkUnchanged(l, r)
		classifySiblings(l.Children(), r.Children(), cm)
	case l.Token() == syntax.TokenComment:
		cm.MarkReplacedComment(l, r)
	default:
		cm.MarkReplacedString(l, r)
	}
}

// sharesContent reports whether any subtree below a also occurs below
// b. Two lists with identical brackets but nothing in common are an
// unrelated deletion and insertion, not an edit.
func sharesContent(a, b *syntax.Node) bool {
	ids := map[uint32]bool{}
	for _, child := range a.Children() {
		child.Walk(func(n *syntax.Node) {
			ids[n.ContentID()] = true
		})
	}
	found := false
	for _, child := range b.Children() {
		child.Walk(func(n *syntax.Node) {
			if ids[n.ContentID()] {
				found = true
			}
		})
		if found {
			break
		}
	}
	return found
}

// similarText reports whether at least half of the longer version
// survives in the other.
func similarText(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	diffCfg := diffpatch.New()
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMain(a, b, false)
	common := 0
	for i := range diffs {
		if diffs[i].Type == diffpatch.DiffEqual {
			common += len(diffs[i].Text)
		}
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return 2*common >= longer
}
