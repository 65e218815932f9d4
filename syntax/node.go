package syntax

// Kind discriminates the two node variants.
type Kind int

const (
	AtomKind Kind = iota
	ListKind
)

func (k Kind) String() string {
	switch k {
	case AtomKind:
		return "Atom"
	case ListKind:
		return "List"
	}
	return "<unknown kind>"
}

// TokenKind classifies atom content. The residual differ uses it to
// decide whether two replaced atoms are comments or strings.
type TokenKind int

const (
	TokenNormal TokenKind = iota
	TokenComment
	TokenString
)

func (t TokenKind) String() string {
	switch t {
	case TokenNormal:
		return "normal"
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	}
	return "<unknown token kind>"
}

// Range is a half-open byte range [Start, End) into the source text.
type Range struct {
	Start, End uint32
}

// Side identifies which of the two input trees a node belongs to.
type Side int

const (
	Lhs Side = iota
	Rhs
)

func (s Side) String() string {
	if s == Lhs {
		return "lhs"
	}
	return "rhs"
}

// Node is a single syntax tree node, either an Atom (leaf token) or a
// List (delimited sequence of children). Nodes are built with NewAtom
// and NewList, then frozen by Prepare, which assigns ids, content ids
// and uniqueness. Nodes must not be mutated after Prepare.
type Node struct {
	kind         Kind
	tok          TokenKind
	content      string
	openContent  string
	closeContent string
	children     []*Node
	rng          Range
	descendants  uint32

	// assigned by Prepare
	id        int
	side      Side
	contentID uint32
	unique    bool
	prepared  bool
}

// NewAtom returns a leaf node holding the given token content.
func NewAtom(content string, tok TokenKind, rng Range) *Node {
	return &Node{
		kind:    AtomKind,
		tok:     tok,
		content: content,
		rng:     rng,
	}
}

// NewList returns an interior node. open and close hold the delimiter
// content ("(" and ")" for a parenthesised list); both may be empty for
// undelimited sequences.
func NewList(open, close string, children []*Node, rng Range) *Node {
	n := &Node{
		kind:         ListKind,
		openContent:  open,
		closeContent: close,
		children:     children,
		rng:          rng,
	}
	for _, child := range children {
		n.descendants += 1 + child.descendants
	}
	return n
}

func (n *Node) Kind() Kind           { return n.kind }
func (n *Node) Token() TokenKind     { return n.tok }
func (n *Node) Content() string      { return n.content }
func (n *Node) OpenContent() string  { return n.openContent }
func (n *Node) CloseContent() string { return n.closeContent }
func (n *Node) Children() []*Node    { return n.children }
func (n *Node) ByteRange() Range     { return n.rng }

// NumDescendants is the count of all nodes strictly below n. Always 0
// for atoms.
func (n *Node) NumDescendants() uint32 { return n.descendants }

// ID is the dense per-side index assigned by Prepare.
func (n *Node) ID() int { return n.id }

// Side reports which input tree n belongs to.
func (n *Node) Side() Side { return n.side }

// ContentID is the interned structural id of n. Two nodes have equal
// ContentIDs iff their subtrees are byte-for-byte identical, within one
// Prepare call. It panics if n has not been through Prepare.
func (n *Node) ContentID() uint32 {
	if !n.prepared {
		panic("syntax: ContentID called before Prepare")
	}
	return n.contentID
}

// ContentIsUnique reports whether no other node on the same side shares
// n's content id.
func (n *Node) ContentIsUnique() bool {
	if !n.prepared {
		panic("syntax: ContentIsUnique called before Prepare")
	}
	return n.unique
}

// SameDelimiters reports whether two lists have byte-identical open and
// close delimiter content.
func SameDelimiters(a, b *Node) bool {
	if a.kind != ListKind || b.kind != ListKind {
		return false
	}
	return a.openContent == b.openContent && a.closeContent == b.closeContent
}

// Walk visits n and every descendant in depth-first preorder.
func (n *Node) Walk(f func(*Node)) {
	f(n)
	for _, child := range n.children {
		child.Walk(f)
	}
}
