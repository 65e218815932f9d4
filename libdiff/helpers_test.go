package libdiff

import (
	"github.com/syndiff/go-syndiff/syntax"
)

// treeBuilder lays nodes out with sequential byte ranges, one byte of
// separation between siblings, so gap heuristics see realistic source
// positions.
type treeBuilder struct {
	off uint32
}

func (b *treeBuilder) atom(content string) *syntax.Node {
	return b.tokAtom(content, syntax.TokenNormal)
}

func (b *treeBuilder) comment(content string) *syntax.Node {
	return b.tokAtom(content, syntax.TokenComment)
}

func (b *treeBuilder) str(content string) *syntax.Node {
	return b.tokAtom(content, syntax.TokenString)
}

func (b *treeBuilder) tokAtom(content string, tok syntax.TokenKind) *syntax.Node {
	start := b.off
	end := start + uint32(len(content))
	b.off = end + 1
	return syntax.NewAtom(content, tok, syntax.Range{Start: start, End: end})
}

func (b *treeBuilder) list(open, close string, children ...*syntax.Node) *syntax.Node {
	var start, end uint32
	if len(children) > 0 {
		start = children[0].ByteRange().Start
		end = children[len(children)-1].ByteRange().End
	} else {
		start, end = b.off, b.off
	}
	if o := uint32(len(open)); o <= start {
		start -= o
	} else {
		start = 0
	}
	end += uint32(len(close))
	b.off = end + 1
	return syntax.NewList(open, close, children, syntax.Range{Start: start, End: end})
}

// runDiff runs the full classification pipeline on two root slices.
func runDiff(lhs, rhs []*syntax.Node, pref Preference) (*syntax.Tree, *syntax.Tree, *ChangeMap) {
	lt, rt := syntax.Prepare(lhs, rhs)
	cm := NewChangeMap(lt, rt)
	for _, res := range MarkUnchanged(lhs, rhs, cm) {
		ClassifyResidual(res, cm)
	}
	FixAllSliders(pref, lhs, rhs, cm)
	return lt, rt, cm
}

// kinds flattens the classification of a sibling slice for comparison.
func kinds(cm *ChangeMap, nodes []*syntax.Node) []Kind {
	res := make([]Kind, len(nodes))
	for i, n := range nodes {
		res[i] = cm.MustGet(n).Kind
	}
	return res
}
