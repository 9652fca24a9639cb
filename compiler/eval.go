// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr does compile-time evaluation of an integer expression. Numeric
// constants are visible to the expression by name.
func evalExpr(expr string, sym *Symbols) (value int64, err error) {
	thread := starlark.Thread{Name: "shasm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, text := range sym.Constants() {
		v, perr := strconv.ParseInt(text, 0, 64)
		if perr != nil {
			// Ignore non-integer constants. They may be
			// expressions or symbols for the assembler.
			continue
		}
		pred[name] = starlark.MakeInt64(v)
	}

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if serr != nil {
		err = ErrExpressionInvalid.With(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpressionInvalid.With(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpressionInvalid.With(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpressionInvalid.With(expr)
		return
	}
	return
}
