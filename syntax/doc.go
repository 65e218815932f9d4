// Package syntax provides the tree model that the differ operates on.
//
// A tree is built from two node variants: Atom, a leaf token, and List,
// a delimited sequence of children. Trees for the two sides of a diff
// are frozen together with Prepare, which assigns dense per-side ids
// and interned content ids. After Prepare, two nodes have equal
// ContentID exactly when their subtrees are byte-for-byte identical,
// which is what the diff layer uses as its match predicate.
//
// Nodes carry byte ranges into the original source so that downstream
// rendering can map classifications back to text.
package syntax
