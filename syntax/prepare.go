package syntax

import (
	"strconv"
	"strings"
)

// Tree holds one prepared side of a diff: its root nodes plus a dense
// index of every node, in preorder.
type Tree struct {
	side  Side
	roots []*Node
	nodes []*Node
}

func (t *Tree) Side() Side     { return t.side }
func (t *Tree) Roots() []*Node { return t.roots }

// Len is the total node count of the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given dense id.
func (t *Tree) Node(id int) *Node { return t.nodes[id] }

// Prepare freezes two sides for one diff invocation. It assigns each
// node a dense per-side id, interns content ids bottom-up with a single
// intern table shared across both sides, and computes per-side content
// uniqueness. The returned trees index every node reachable from the
// given roots.
//
// Content ids are only comparable between nodes prepared by the same
// call.
func Prepare(lhs, rhs []*Node) (*Tree, *Tree) {
	in := &interner{ids: map[string]uint32{}}
	lt := prepareSide(Lhs, lhs, in)
	rt := prepareSide(Rhs, rhs, in)
	return lt, rt
}

func prepareSide(side Side, roots []*Node, in *interner) *Tree {
	t := &Tree{side: side, roots: roots}
	counts := map[uint32]int{}
	for _, root := range roots {
		root.Walk(func(n *Node) {
			if n.prepared {
				panic("syntax: node prepared twice")
			}
			n.id = len(t.nodes)
			n.side = side
			t.nodes = append(t.nodes, n)
		})
	}
	for _, root := range roots {
		internContent(root, in)
		root.Walk(func(n *Node) {
			counts[n.contentID]++
		})
	}
	for _, n := range t.nodes {
		n.unique = counts[n.contentID] == 1
	}
	return t
}

// interner maps structural summaries to small dense ids, so that
// content comparison is integer comparison downstream.
type interner struct {
	ids map[string]uint32
}

func (in *interner) intern(summary string) uint32 {
	id, ok := in.ids[summary]
	if !ok {
		id = uint32(len(in.ids))
		in.ids[summary] = id
	}
	return id
}

func internContent(n *Node, in *interner) uint32 {
	var sb strings.Builder
	switch n.kind {
	case AtomKind:
		sb.WriteString("a\x00")
		sb.WriteString(strconv.Itoa(int(n.tok)))
		sb.WriteString("\x00")
		sb.WriteString(n.content)
	case ListKind:
		sb.WriteString("l\x00")
		sb.WriteString(n.openContent)
		sb.WriteString("\x00")
		sb.WriteString(n.closeContent)
		for _, child := range n.children {
			id := internContent(child, in)
			sb.WriteString("\x00")
			sb.WriteString(strconv.FormatUint(uint64(id), 10))
		}
	}
	n.contentID = in.intern(sb.String())
	n.prepared = true
	return n.contentID
}
