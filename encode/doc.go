// Package encode renders a classified tree pair as colored hunks.
//
// # Usage
//
//	cm := syndiff.Diff(lhsTree, rhsTree, libdiff.PreferOuter)
//	err := encode.Encode(os.Stdout, lhsSrc, rhsSrc, lhsTree, rhsTree, cm,
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.Context(3))
//
// Changed bytes come straight from the ChangeMap: novel and replaced
// nodes contribute their source ranges, unchanged nodes contribute
// nothing. Lines containing changed bytes are grouped into hunks with
// surrounding context.
//
// # Related Packages
//
//   - github.com/syndiff/go-syndiff/libdiff - tree pair classification
//   - github.com/syndiff/go-syndiff/parse - source text to trees
package encode
