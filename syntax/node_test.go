package syntax

import "testing"

// pos builds atoms with sequential byte ranges so tests don't have to
// spell out offsets.
type pos struct {
	off uint32
}

func (p *pos) atom(content string) *Node {
	start := p.off
	p.off += uint32(len(content)) + 1
	return NewAtom(content, TokenNormal, Range{Start: start, End: start + uint32(len(content))})
}

func (p *pos) list(open, close string, children ...*Node) *Node {
	var start, end uint32
	if len(children) > 0 {
		start = children[0].ByteRange().Start
		end = children[len(children)-1].ByteRange().End
	} else {
		start = p.off
		end = p.off
	}
	if open != "" {
		start--
	}
	if close != "" {
		end++
		p.off = end + 1
	}
	return NewList(open, close, children, Range{Start: start, End: end})
}

func TestContentIDEquality(t *testing.T) {
	p := &pos{}
	lhs := []*Node{p.atom("a"), p.list("(", ")", p.atom("b"), p.atom("c"))}
	q := &pos{off: 100}
	rhs := []*Node{q.atom("a"), q.list("(", ")", q.atom("b"), q.atom("c"))}

	Prepare(lhs, rhs)

	if lhs[0].ContentID() != rhs[0].ContentID() {
		t.Errorf("identical atoms got distinct content ids")
	}
	if lhs[1].ContentID() != rhs[1].ContentID() {
		t.Errorf("identical lists got distinct content ids")
	}
	if lhs[0].ContentID() == lhs[1].ContentID() {
		t.Errorf("atom and list share a content id")
	}
}

func TestContentIDDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
	}{
		{
			"content",
			NewAtom("a", TokenNormal, Range{0, 1}),
			NewAtom("b", TokenNormal, Range{0, 1}),
		},
		{
			"token kind",
			NewAtom("x", TokenNormal, Range{0, 1}),
			NewAtom("x", TokenString, Range{0, 1}),
		},
		{
			"delimiters",
			NewList("(", ")", nil, Range{0, 2}),
			NewList("[", "]", nil, Range{0, 2}),
		},
		{
			"child order",
			NewList("(", ")", []*Node{
				NewAtom("a", TokenNormal, Range{1, 2}),
				NewAtom("b", TokenNormal, Range{3, 4}),
			}, Range{0, 5}),
			NewList("(", ")", []*Node{
				NewAtom("b", TokenNormal, Range{1, 2}),
				NewAtom("a", TokenNormal, Range{3, 4}),
			}, Range{0, 5}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Prepare([]*Node{tt.a}, []*Node{tt.b})
			if tt.a.ContentID() == tt.b.ContentID() {
				t.Errorf("nodes should have distinct content ids")
			}
		})
	}
}

func TestContentIsUnique(t *testing.T) {
	p := &pos{}
	lhs := []*Node{p.atom("a"), p.atom("a"), p.atom("b")}
	q := &pos{off: 100}
	rhs := []*Node{q.atom("a"), q.atom("b")}

	Prepare(lhs, rhs)

	if lhs[0].ContentIsUnique() || lhs[1].ContentIsUnique() {
		t.Errorf("duplicated atom reported unique")
	}
	if !lhs[2].ContentIsUnique() {
		t.Errorf("unique atom reported duplicated")
	}
	// uniqueness is per side: "a" occurs twice on lhs, once on rhs
	if !rhs[0].ContentIsUnique() {
		t.Errorf("rhs atom uniqueness leaked from lhs")
	}
}

func TestNumDescendants(t *testing.T) {
	p := &pos{}
	inner := p.list("(", ")", p.atom("x"), p.atom("y"))
	outer := p.list("(", ")", inner, p.atom("z"))
	if got := outer.NumDescendants(); got != 4 {
		t.Errorf("NumDescendants = %d, want 4", got)
	}
	if got := inner.NumDescendants(); got != 2 {
		t.Errorf("inner NumDescendants = %d, want 2", got)
	}
}

func TestTreeIndex(t *testing.T) {
	p := &pos{}
	lhs := []*Node{p.list("(", ")", p.atom("a")), p.atom("b")}
	lt, rt := Prepare(lhs, nil)
	if lt.Len() != 3 {
		t.Fatalf("lhs tree Len = %d, want 3", lt.Len())
	}
	if rt.Len() != 0 {
		t.Fatalf("rhs tree Len = %d, want 0", rt.Len())
	}
	for id := 0; id < lt.Len(); id++ {
		n := lt.Node(id)
		if n.ID() != id {
			t.Errorf("node at index %d has id %d", id, n.ID())
		}
		if n.Side() != Lhs {
			t.Errorf("node %d on side %v", id, n.Side())
		}
	}
}
