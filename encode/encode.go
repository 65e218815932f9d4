package encode

import (
	"fmt"
	"io"

	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/syntax"
)

type EncState struct {
	context          int
	lhsPath, rhsPath string

	Color func(ColorAttr, string) string
}

type EncodeOption func(*EncState)

// Context sets how many unchanged lines surround each hunk.
func Context(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.context = n
		}
	}
}

// Paths sets the file names shown in the output header.
func Paths(lhs, rhs string) EncodeOption {
	return func(es *EncState) {
		es.lhsPath, es.rhsPath = lhs, rhs
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Encode writes the classified difference between the two sources as
// line hunks: removal hunks from the left side first, then addition
// hunks from the right. Identical inputs produce no output.
func Encode(w io.Writer, lhsSrc, rhsSrc []byte, lhsTree, rhsTree *syntax.Tree, cm *libdiff.ChangeMap, opts ...EncodeOption) error {
	es := &EncState{
		context: 3,
		lhsPath: "a",
		rhsPath: "b",
		Color:   NoColors().Color,
	}
	for _, opt := range opts {
		opt(es)
	}

	lhsIx := newLineIndex(lhsSrc)
	rhsIx := newLineIndex(rhsSrc)
	lhsHunks := makeHunks(changedLines(lhsIx, changedRanges(lhsTree, cm)), lhsIx.lines(), es.context)
	rhsHunks := makeHunks(changedLines(rhsIx, changedRanges(rhsTree, cm)), rhsIx.lines(), es.context)
	if len(lhsHunks) == 0 && len(rhsHunks) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, es.Color(PathColor, "--- "+es.lhsPath)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, es.Color(PathColor, "+++ "+es.rhsPath)); err != nil {
		return err
	}
	if err := es.writeHunks(w, lhsSrc, lhsIx, lhsHunks, cm, lhsTree, '-', RemovedColor); err != nil {
		return err
	}
	return es.writeHunks(w, rhsSrc, rhsIx, rhsHunks, cm, rhsTree, '+', AddedColor)
}

func (es *EncState) writeHunks(w io.Writer, src []byte, ix *lineIndex, hunks []hunk, cm *libdiff.ChangeMap, tree *syntax.Tree, mark byte, attr ColorAttr) error {
	changed := map[int]bool{}
	for _, l := range changedLines(ix, changedRanges(tree, cm)) {
		changed[l] = true
	}
	for _, h := range hunks {
		header := fmt.Sprintf("@@ %c%d,%d @@", mark, h.start+1, h.end-h.start+1)
		if _, err := fmt.Fprintln(w, es.Color(HunkColor, header)); err != nil {
			return err
		}
		for l := h.start; l <= h.end; l++ {
			prefix, lineAttr := " ", ContextColor
			if changed[l] {
				prefix, lineAttr = string(mark), attr
			}
			if _, err := fmt.Fprintln(w, es.Color(lineAttr, prefix+ix.text(src, l))); err != nil {
				return err
			}
		}
	}
	return nil
}
