package syndiff

import (
	"testing"

	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/syntax"
)

func atomAt(content string, off *uint32) *syntax.Node {
	start := *off
	end := start + uint32(len(content))
	*off = end + 1
	return syntax.NewAtom(content, syntax.TokenNormal, syntax.Range{Start: start, End: end})
}

func TestDiffIdenticalTrees(t *testing.T) {
	var lo, ro uint32 = 0, 100
	lhs := []*syntax.Node{atomAt("a", &lo), atomAt("b", &lo)}
	rhs := []*syntax.Node{atomAt("a", &ro), atomAt("b", &ro)}
	lt, rt := syntax.Prepare(lhs, rhs)

	cm := Diff(lt, rt, libdiff.PreferOuter)

	if Changed(lt, cm) || Changed(rt, cm) {
		t.Errorf("identical trees reported as changed")
	}
}

func TestDiffReportsEdit(t *testing.T) {
	var lo, ro uint32 = 0, 100
	lhs := []*syntax.Node{atomAt("a", &lo)}
	rhs := []*syntax.Node{atomAt("b", &ro)}
	lt, rt := syntax.Prepare(lhs, rhs)

	cm := Diff(lt, rt, libdiff.PreferOuter)

	if !Changed(lt, cm) || !Changed(rt, cm) {
		t.Errorf("edit not reported")
	}
	if cm.MustGet(lhs[0]).Kind != libdiff.Novel {
		t.Errorf("lhs atom = %v, want novel", cm.MustGet(lhs[0]).Kind)
	}
}

func TestDiffClassifiesEveryNode(t *testing.T) {
	var lo, ro uint32 = 0, 100
	ll := syntax.NewList("(", ")",
		[]*syntax.Node{atomAt("a", &lo), atomAt("x", &lo)},
		syntax.Range{Start: 0, End: 20})
	rl := syntax.NewList("(", ")",
		[]*syntax.Node{atomAt("a", &ro), atomAt("y", &ro)},
		syntax.Range{Start: 100, End: 120})
	lt, rt := syntax.Prepare([]*syntax.Node{ll}, []*syntax.Node{rl})

	cm := Diff(lt, rt, libdiff.PreferOuter)

	total := 0
	for _, tree := range []*syntax.Tree{lt, rt} {
		for _, root := range tree.Roots() {
			root.Walk(func(n *syntax.Node) {
				cm.MustGet(n)
				total++
			})
		}
	}
	if cm.Len() != total {
		t.Errorf("map has %d entries for %d nodes", cm.Len(), total)
	}
}
