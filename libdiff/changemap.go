package libdiff

import (
	"github.com/syndiff/go-syndiff/syntax"
)

// Kind classifies one node of a diffed tree pair.
type Kind int

const (
	// Unchanged nodes match one specific node on the opposite side.
	Unchanged Kind = iota
	// Novel nodes have no match: added, removed, or fully edited.
	Novel
	// ReplacedComment pairs a comment atom with an edited counterpart.
	ReplacedComment
	// ReplacedString pairs a string atom with an edited counterpart.
	ReplacedString
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "Unchanged"
	case Novel:
		return "Novel"
	case ReplacedComment:
		return "ReplacedComment"
	case ReplacedString:
		return "ReplacedString"
	}
	return "<unknown change kind>"
}

// Change is one classification entry.
type Change struct {
	Kind Kind
	// Opposite is the matching node on the other side when Kind is
	// Unchanged. The pairing is symmetric: if a's entry points at b,
	// b's entry points at a.
	Opposite *syntax.Node
	// Lhs and Rhs hold the replaced atom pair for ReplacedComment and
	// ReplacedString.
	Lhs, Rhs *syntax.Node
}

// ChangeMap maps every node of a prepared tree pair to its Change.
// Entries are keyed by (side, dense id), one slice per side, so the
// cross-tree Unchanged pairing never forms an ownership cycle.
type ChangeMap struct {
	entries [2][]mapEntry
	written int
}

type mapEntry struct {
	set bool
	ch  Change
}

// NewChangeMap returns an empty map sized for the two prepared trees.
func NewChangeMap(lhs, rhs *syntax.Tree) *ChangeMap {
	cm := &ChangeMap{}
	cm.entries[syntax.Lhs] = make([]mapEntry, lhs.Len())
	cm.entries[syntax.Rhs] = make([]mapEntry, rhs.Len())
	return cm
}

// Len is the number of nodes with an entry.
func (cm *ChangeMap) Len() int {
	return cm.written
}

// Get returns n's entry, if it has one.
func (cm *ChangeMap) Get(n *syntax.Node) (Change, bool) {
	e := cm.entries[n.Side()][n.ID()]
	return e.ch, e.set
}

// MustGet returns n's entry and panics if there is none. A missing
// entry at lookup time is a caller contract violation: every reachable
// node must be classified before the map is consumed.
func (cm *ChangeMap) MustGet(n *syntax.Node) Change {
	e := cm.entries[n.Side()][n.ID()]
	if !e.set {
		panic("libdiff: node has no change entry")
	}
	return e.ch
}

func (cm *ChangeMap) put(n *syntax.Node, ch Change) {
	e := &cm.entries[n.Side()][n.ID()]
	if !e.set {
		cm.written++
	}
	e.set = true
	e.ch = ch
}

// MarkNovel records n as having no match on the other side.
func (cm *ChangeMap) MarkNovel(n *syntax.Node) {
	cm.put(n, Change{Kind: Novel})
}

// MarkDeepNovel records n and every descendant as Novel.
func (cm *ChangeMap) MarkDeepNovel(n *syntax.Node) {
	n.Walk(func(d *syntax.Node) {
		cm.put(d, Change{Kind: Novel})
	})
}

// MarkUnchanged records a and b as each other's match. It writes both
// directions of the pairing.
func (cm *ChangeMap) MarkUnchanged(a, b *syntax.Node) {
	if a.Side() == b.Side() {
		panic("libdiff: unchanged pairing within one side")
	}
	cm.put(a, Change{Kind: Unchanged, Opposite: b})
	cm.put(b, Change{Kind: Unchanged, Opposite: a})
}

// MarkDeepUnchanged records a and b as each other's match, descendants
// included. The two subtrees must be isomorphic, which a content id
// match guarantees; diverging shapes panic.
func (cm *ChangeMap) MarkDeepUnchanged(a, b *syntax.Node) {
	cm.MarkUnchanged(a, b)
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		panic("libdiff: deep unchanged pair with diverging shapes")
	}
	for i := range ac {
		cm.MarkDeepUnchanged(ac[i], bc[i])
	}
}

// MarkReplacedComment records the atoms l and r as an edited comment
// pair.
func (cm *ChangeMap) MarkReplacedComment(l, r *syntax.Node) {
	ch := Change{Kind: ReplacedComment, Lhs: l, Rhs: r}
	cm.put(l, ch)
	cm.put(r, ch)
}

// MarkReplacedString records the atoms l and r as an edited string
// pair.
func (cm *ChangeMap) MarkReplacedString(l, r *syntax.Node) {
	ch := Change{Kind: ReplacedString, Lhs: l, Rhs: r}
	cm.put(l, ch)
	cm.put(r, ch)
}
