package libdiff

import (
	"testing"

	"github.com/syndiff/go-syndiff/syntax"
)

func prepPair(lhs, rhs []*syntax.Node) {
	syntax.Prepare(lhs, rhs)
}

func ops(edits []edit) []editOp {
	res := make([]editOp, len(edits))
	for i, e := range edits {
		res[i] = e.op
	}
	return res
}

func TestLcsEditsIdentical(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a"), b.atom("b"), b.atom("c")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a"), c.atom("b"), c.atom("c")}
	prepPair(lhs, rhs)

	edits := lcsEdits(lhs, rhs)
	if len(edits) != 3 {
		t.Fatalf("got %d edits, want 3", len(edits))
	}
	for i, e := range edits {
		if e.op != opBoth || e.lhs != lhs[i] || e.rhs != rhs[i] {
			t.Errorf("edit %d = %+v", i, e)
		}
	}
}

func TestLcsEditsSwapMatchesOnce(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a"), b.atom("b")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("b"), c.atom("a")}
	prepPair(lhs, rhs)

	both := 0
	for _, e := range lcsEdits(lhs, rhs) {
		if e.op == opBoth {
			both++
			if e.lhs.ContentID() != e.rhs.ContentID() {
				t.Errorf("matched differing contents %q / %q",
					e.lhs.Content(), e.rhs.Content())
			}
		}
	}
	// a swap has no common subsequence longer than one
	if both != 1 {
		t.Errorf("got %d matches, want 1", both)
	}
}

func TestLcsEditsCoverEveryNode(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a"), b.atom("x"), b.atom("b"), b.atom("c")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a"), c.atom("b"), c.atom("y"), c.atom("c"), c.atom("z")}
	prepPair(lhs, rhs)

	li, ri := 0, 0
	for _, e := range lcsEdits(lhs, rhs) {
		switch e.op {
		case opBoth:
			if e.lhs != lhs[li] || e.rhs != rhs[ri] {
				t.Errorf("match out of order at lhs %d rhs %d", li, ri)
			}
			li++
			ri++
		case opLeft:
			if e.lhs != lhs[li] {
				t.Errorf("deletion out of order at lhs %d", li)
			}
			li++
		case opRight:
			if e.rhs != rhs[ri] {
				t.Errorf("insertion out of order at rhs %d", ri)
			}
			ri++
		}
	}
	if li != len(lhs) || ri != len(rhs) {
		t.Errorf("consumed %d/%d lhs and %d/%d rhs nodes",
			li, len(lhs), ri, len(rhs))
	}
}

func TestLcsEditsEmptySides(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("b")}
	prepPair(lhs, rhs)

	got := ops(lcsEdits(nil, rhs))
	if len(got) != 1 || got[0] != opRight {
		t.Errorf("nil lhs: ops = %v", got)
	}
	got = ops(lcsEdits(lhs, nil))
	if len(got) != 1 || got[0] != opLeft {
		t.Errorf("nil rhs: ops = %v", got)
	}
	if got := lcsEdits(nil, nil); len(got) != 0 {
		t.Errorf("both nil: %d edits", len(got))
	}
}

func TestInternRuneSkipsSurrogates(t *testing.T) {
	seen := map[rune]bool{}
	for i := 0; i < 0xE000; i++ {
		r := internRune(i)
		if r >= 0xD800 && r < 0xE000 {
			t.Fatalf("index %d interned into surrogate %U", i, r)
		}
		if seen[r] {
			t.Fatalf("index %d collides at %U", i, r)
		}
		seen[r] = true
	}
}
