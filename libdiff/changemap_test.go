package libdiff

import (
	"testing"

	"github.com/syndiff/go-syndiff/syntax"
)

func TestMarkUnchangedSymmetric(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a")}

	lt, rt := syntax.Prepare(lhs, rhs)
	cm := NewChangeMap(lt, rt)
	cm.MarkUnchanged(lhs[0], rhs[0])

	if ch := cm.MustGet(lhs[0]); ch.Kind != Unchanged || ch.Opposite != rhs[0] {
		t.Errorf("lhs entry = %v", ch)
	}
	if ch := cm.MustGet(rhs[0]); ch.Kind != Unchanged || ch.Opposite != lhs[0] {
		t.Errorf("rhs entry = %v", ch)
	}
	if cm.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cm.Len())
	}
}

func TestMarkUnchangedSameSidePanics(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a"), b.atom("b")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a")}

	lt, rt := syntax.Prepare(lhs, rhs)
	cm := NewChangeMap(lt, rt)

	defer func() {
		if recover() == nil {
			t.Errorf("no panic pairing two lhs nodes")
		}
	}()
	cm.MarkUnchanged(lhs[0], lhs[1])
}

func TestMustGetPanicsWithoutEntry(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a")}

	lt, rt := syntax.Prepare(lhs, rhs)
	cm := NewChangeMap(lt, rt)

	defer func() {
		if recover() == nil {
			t.Errorf("no panic for missing entry")
		}
	}()
	cm.MustGet(lhs[0])
}

func TestMarkDeepUnchangedShapeMismatchPanics(t *testing.T) {
	b := &treeBuilder{}
	ll := b.list("(", ")", b.atom("x"))
	c := &treeBuilder{off: 100}
	rl := c.list("(", ")", c.atom("x"), c.atom("y"))

	lt, rt := syntax.Prepare([]*syntax.Node{ll}, []*syntax.Node{rl})
	cm := NewChangeMap(lt, rt)

	defer func() {
		if recover() == nil {
			t.Errorf("no panic for diverging subtree shapes")
		}
	}()
	cm.MarkDeepUnchanged(ll, rl)
}

func TestLenCountsNodesOnce(t *testing.T) {
	b := &treeBuilder{}
	lhs := []*syntax.Node{b.atom("a")}
	c := &treeBuilder{off: 100}
	rhs := []*syntax.Node{c.atom("a")}

	lt, rt := syntax.Prepare(lhs, rhs)
	cm := NewChangeMap(lt, rt)
	cm.MarkNovel(lhs[0])
	cm.MarkNovel(lhs[0])
	cm.MarkUnchanged(lhs[0], rhs[0])

	if cm.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after rewrites", cm.Len())
	}
}

func TestReplacedPairSharedEntry(t *testing.T) {
	b := &treeBuilder{}
	lc := b.comment("// old")
	c := &treeBuilder{off: 100}
	rc := c.comment("// new")

	lt, rt := syntax.Prepare([]*syntax.Node{lc}, []*syntax.Node{rc})
	cm := NewChangeMap(lt, rt)
	cm.MarkReplacedComment(lc, rc)

	for _, n := range []*syntax.Node{lc, rc} {
		ch := cm.MustGet(n)
		if ch.Kind != ReplacedComment || ch.Lhs != lc || ch.Rhs != rc {
			t.Errorf("entry for %q = %v", n.Content(), ch)
		}
	}
}
