package parse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syndiff/go-syndiff/debug"
	"github.com/syndiff/go-syndiff/syntax"
)

type parseOpts struct {
	skipSrc string
}

type Option func(*parseOpts)

// Skip drops every subtree matching the given expr predicate before
// the tree is built. The predicate sees the variables of SkipEnv, so
// `kind == "comment"` hides comments from the diff.
func Skip(code string) Option {
	return func(o *parseOpts) { o.skipSrc = code }
}

// Parse parses src with the tree-sitter grammar for lang and returns
// the top-level siblings.
func Parse(ctx context.Context, src []byte, lang Language, opts ...Option) ([]*syntax.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	filter, err := compileSkip(pOpts.skipSrc)
	if err != nil {
		return nil, err
	}
	g, err := grammar(lang)
	if err != nil {
		return nil, err
	}

	p := sitter.NewParser()
	p.SetLanguage(g)
	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	conv := &converter{src: src, skip: filter}
	roots, err := conv.children(tree.RootNode())
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %s, %d bytes, %d top-level nodes\n", lang, len(src), len(roots))
	}
	return roots, nil
}

type converter struct {
	src  []byte
	skip *skipFilter
}

func (c *converter) children(n *sitter.Node) ([]*syntax.Node, error) {
	var res []*syntax.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		node, err := c.node(n.Child(i))
		if err != nil {
			return nil, err
		}
		if node != nil {
			res = append(res, node)
		}
	}
	return res, nil
}

func (c *converter) node(n *sitter.Node) (*syntax.Node, error) {
	if n.StartByte() >= n.EndByte() {
		// zero-width token from error recovery
		return nil, nil
	}
	if c.skip != nil {
		drop, err := c.skip.drops(n)
		if err != nil {
			return nil, err
		}
		if drop {
			return nil, nil
		}
	}
	rng := syntax.Range{Start: n.StartByte(), End: n.EndByte()}
	tok := tokenKind(n.Type())
	// comments and string literals diff as single units even when the
	// grammar gives them internal structure
	if n.ChildCount() == 0 || tok != syntax.TokenNormal {
		return syntax.NewAtom(c.text(n), tok, rng), nil
	}
	kids, err := c.children(n)
	if err != nil {
		return nil, err
	}
	open, close, inner := splitDelimiters(kids)
	return syntax.NewList(open, close, inner, rng), nil
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

func tokenKind(nodeType string) syntax.TokenKind {
	switch {
	case strings.Contains(nodeType, "comment"):
		return syntax.TokenComment
	case strings.Contains(nodeType, "string"),
		strings.Contains(nodeType, "char"),
		nodeType == "rune_literal":
		return syntax.TokenString
	}
	return syntax.TokenNormal
}

var bracketPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// splitDelimiters peels matched bracket punctuation off the edges of a
// converted child sequence.
func splitDelimiters(kids []*syntax.Node) (string, string, []*syntax.Node) {
	if len(kids) < 2 {
		return "", "", kids
	}
	first, last := kids[0], kids[len(kids)-1]
	if first.Kind() != syntax.AtomKind || last.Kind() != syntax.AtomKind {
		return "", "", kids
	}
	close, ok := bracketPairs[first.Content()]
	if !ok || last.Content() != close {
		return "", "", kids
	}
	return first.Content(), close, kids[1 : len(kids)-1]
}
