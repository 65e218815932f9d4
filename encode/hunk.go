package encode

import (
	"sort"

	"github.com/syndiff/go-syndiff/libdiff"
	"github.com/syndiff/go-syndiff/syntax"
)

// lineIndex maps byte offsets to 0-based line numbers.
type lineIndex struct {
	starts []uint32
	size   uint32
}

func newLineIndex(src []byte) *lineIndex {
	ix := &lineIndex{starts: []uint32{0}, size: uint32(len(src))}
	for i, b := range src {
		if b == '\n' && i+1 < len(src) {
			ix.starts = append(ix.starts, uint32(i+1))
		}
	}
	return ix
}

func (ix *lineIndex) lines() int { return len(ix.starts) }

func (ix *lineIndex) lineOf(off uint32) int {
	return sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > off
	}) - 1
}

// text returns one line without its trailing newline.
func (ix *lineIndex) text(src []byte, line int) string {
	start := ix.starts[line]
	end := ix.size
	if line+1 < len(ix.starts) {
		end = ix.starts[line+1]
	}
	for end > start && (src[end-1] == '\n' || src[end-1] == '\r') {
		end--
	}
	return string(src[start:end])
}

// changedRanges collects the byte ranges cm blames on tree's side. A
// novel list contributes only its delimiter bytes; its children report
// themselves.
func changedRanges(tree *syntax.Tree, cm *libdiff.ChangeMap) []syntax.Range {
	var res []syntax.Range
	for _, root := range tree.Roots() {
		root.Walk(func(n *syntax.Node) {
			if cm.MustGet(n).Kind == libdiff.Unchanged {
				return
			}
			r := n.ByteRange()
			if n.Kind() == syntax.AtomKind {
				res = append(res, r)
				return
			}
			if open := uint32(len(n.OpenContent())); open > 0 {
				res = append(res, syntax.Range{Start: r.Start, End: r.Start + open})
			}
			if close := uint32(len(n.CloseContent())); close > 0 {
				res = append(res, syntax.Range{Start: r.End - close, End: r.End})
			}
		})
	}
	return res
}

// changedLines marks every 0-based line touched by a changed range.
func changedLines(ix *lineIndex, ranges []syntax.Range) []int {
	seen := map[int]bool{}
	for _, r := range ranges {
		if r.End <= r.Start || r.Start >= ix.size {
			continue
		}
		last := r.End - 1
		if last >= ix.size {
			last = ix.size - 1
		}
		for l := ix.lineOf(r.Start); l <= ix.lineOf(last); l++ {
			seen[l] = true
		}
	}
	lines := make([]int, 0, len(seen))
	for l := range seen {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	return lines
}

// hunk is an inclusive range of 0-based lines to print.
type hunk struct {
	start, end int
}

// makeHunks expands changed lines by context lines and merges the
// overlapping groups.
func makeHunks(lines []int, total, context int) []hunk {
	var hunks []hunk
	for _, l := range lines {
		start, end := l-context, l+context
		if start < 0 {
			start = 0
		}
		if end >= total {
			end = total - 1
		}
		if n := len(hunks); n > 0 && start <= hunks[n-1].end+1 {
			hunks[n-1].end = end
			continue
		}
		hunks = append(hunks, hunk{start: start, end: end})
	}
	return hunks
}
