package libdiff

import (
	"github.com/syndiff/go-syndiff/syntax"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type editOp int

const (
	opBoth editOp = iota
	opLeft
	opRight
)

type edit struct {
	op  editOp
	lhs *syntax.Node
	rhs *syntax.Node
}

// lcsEdits aligns two sibling sequences by content id, preserving
// relative order. We intern each distinct content id into a rune and
// hand the rune sequences to go-diff, whose Equal runs are exactly the
// common-subsequence matches. A reordering of identical siblings is
// therefore never reported as a match.
func lcsEdits(lhs, rhs []*syntax.Node) []edit {
	m := map[uint32]rune{}
	lhsRunes := contentRunes(m, lhs)
	rhsRunes := contentRunes(m, rhs)

	diffCfg := diffpatch.New()
	// the default timeout trades accuracy for speed under load, which
	// would make output depend on machine state
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMainRunes(lhsRunes, rhsRunes, false)

	res := make([]edit, 0, len(lhs)+len(rhs))
	li, ri := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range diff.Text {
				res = append(res, edit{op: opBoth, lhs: lhs[li], rhs: rhs[ri]})
				li++
				ri++
			}
		case diffpatch.DiffDelete:
			for range diff.Text {
				res = append(res, edit{op: opLeft, lhs: lhs[li]})
				li++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res = append(res, edit{op: opRight, rhs: rhs[ri]})
				ri++
			}
		}
	}
	if li != len(lhs) || ri != len(rhs) {
		panic("libdiff: lcs alignment dropped nodes")
	}
	return res
}

func contentRunes(m map[uint32]rune, nodes []*syntax.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		id := n.ContentID()
		r, ok := m[id]
		if !ok {
			r = internRune(len(m))
			m[id] = r
		}
		rs[i] = r
	}
	return rs
}

// internRune maps a dense index onto valid scalar values, skipping the
// surrogate block so the runes survive string round-trips inside
// go-diff.
func internRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
