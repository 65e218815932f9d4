// Package parse turns source text into diffable syntax trees.
//
// # Usage
//
//	lang, ok := parse.LanguageFromPath("main.go")
//	if !ok {
//	    return errUnsupported
//	}
//	roots, err := parse.Parse(ctx, src, lang)
//	if err != nil {
//	    return err
//	}
//
//	// Drop comments before diffing
//	roots, err = parse.Parse(ctx, src, lang, parse.Skip(`kind == "comment"`))
//
// Parsing is delegated to tree-sitter grammars. Leaves become atoms,
// interior nodes become lists, and matching bracket punctuation at the
// edges of a list becomes its delimiters.
//
// # Related Packages
//
//   - github.com/syndiff/go-syndiff/syntax - tree representation
//   - github.com/syndiff/go-syndiff/libdiff - tree pair classification
//   - github.com/syndiff/go-syndiff/encode - render a classified pair
package parse
