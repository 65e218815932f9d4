package parse

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	sitter "github.com/smacker/go-tree-sitter"
)

// SkipEnv is the variable set a Skip predicate is evaluated against,
// once per parsed node.
type SkipEnv struct {
	// Kind is the grammar's node type name, e.g. "comment" or
	// "function_declaration".
	Kind string `expr:"kind"`
	// Named distinguishes grammar rule nodes from bare punctuation.
	Named bool `expr:"named"`
}

type skipFilter struct {
	program *vm.Program
}

func compileSkip(code string) (*skipFilter, error) {
	if code == "" {
		return nil, nil
	}
	program, err := expr.Compile(code, expr.Env(SkipEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("parse: bad skip expression %q: %w", code, err)
	}
	return &skipFilter{program: program}, nil
}

func (f *skipFilter) drops(n *sitter.Node) (bool, error) {
	res, err := vm.Run(f.program, SkipEnv{Kind: n.Type(), Named: n.IsNamed()})
	if err != nil {
		return false, fmt.Errorf("parse: skip expression: %w", err)
	}
	drop, _ := res.(bool)
	return drop, nil
}
