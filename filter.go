package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the set of variables a filter expression can refer to.
type filterEnv struct {
	Tok string `expr:"tok"`
	N   int64  `expr:"n"`
	I   int    `expr:"i"`
}

// itemFilter keeps the items for which a boolean expression holds. A nil
// filter keeps everything.
type itemFilter struct {
	source  string
	program *vm.Program
}

func newItemFilter(source string) (*itemFilter, error) {
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, newConfigError("invalid filter %q: %v", source, err)
	}
	return &itemFilter{source: source, program: program}, nil
}

func (f *itemFilter) keep(env filterEnv) (bool, error) {
	if f == nil {
		return true, nil
	}
	res, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.source, res)
	}
	return keep, nil
}
