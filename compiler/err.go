// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"github.com/ezrec/shasm/translate"
)

var f = translate.From

// Kind classifies a compilation failure.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_STRUCTURAL = Kind(0) // structural
	KIND_SYNTAX     = Kind(1) // syntax
	KIND_SEMANTIC   = Kind(2) // semantic
)

// Code identifies a compilation failure. Codes are errors themselves, so
// errors.Is(err, ErrDivideImmediate) holds for any failure of that code.
type Code int

const (
	// Structural errors
	ErrCompileDuplicate = Code(iota)
	ErrCompileMissing
	ErrMainDuplicate
	ErrMainMissing
	ErrFunctionDuplicate
	ErrStackEmpty
	ErrStackMismatch
	ErrBlockUnclosed
	ErrOutsideBlock
	ErrConstOutsideCompile

	// Syntax errors
	ErrCharacterInvalid
	ErrOperatorUnknown
	ErrLiteralInvalid
	ErrSizeInvalid
	ErrBracketUnterminated
	ErrStringUnterminated
	ErrExpressionUnterminated
	ErrExpressionInvalid
	ErrCastUnknown
	ErrExpected
	ErrTrailing

	// Semantic errors
	ErrRegisterExpected
	ErrImmediateExpected
	ErrDivideImmediate
	ErrHighRegister
	ErrNameInvalid
	ErrVariableDuplicate
)

// codeInfo is the kind, the summary and the detailed en-US message format
// of each code.
var codeInfo = map[Code]struct {
	kind    Kind
	summary string
	format  string
}{
	ErrCompileDuplicate:    {KIND_STRUCTURAL, "compile duplicated", "multiple compile blocks"},
	ErrCompileMissing:      {KIND_STRUCTURAL, "compile missing", "no compile block defined"},
	ErrMainDuplicate:       {KIND_STRUCTURAL, "main duplicated", "multiple main blocks"},
	ErrMainMissing:         {KIND_STRUCTURAL, "main missing", "no main block defined"},
	ErrFunctionDuplicate:   {KIND_STRUCTURAL, "function duplicated", "function %v duplicated"},
	ErrStackEmpty:          {KIND_STRUCTURAL, "control stack empty", "'%v' without an open block"},
	ErrStackMismatch:       {KIND_STRUCTURAL, "control stack mismatch", "'%v' cannot close '%v' %v"},
	ErrBlockUnclosed:       {KIND_STRUCTURAL, "block unclosed", "'%v' block %v is not closed"},
	ErrOutsideBlock:        {KIND_STRUCTURAL, "statement outside block", "'%v' outside of main or a function"},
	ErrConstOutsideCompile: {KIND_STRUCTURAL, "constant outside compile", "constant %v outside of the compile block"},

	ErrCharacterInvalid:       {KIND_SYNTAX, "character invalid", "unexpected character '%v'"},
	ErrOperatorUnknown:        {KIND_SYNTAX, "operator unknown", "unknown operator '%v'"},
	ErrLiteralInvalid:         {KIND_SYNTAX, "literal invalid", "'%v' is not a valid literal"},
	ErrSizeInvalid:            {KIND_SYNTAX, "size invalid", "'%v' is not a valid size"},
	ErrBracketUnterminated:    {KIND_SYNTAX, "bracket unterminated", "missing ']' after '%v'"},
	ErrStringUnterminated:     {KIND_SYNTAX, "string unterminated", "unterminated string %v"},
	ErrExpressionUnterminated: {KIND_SYNTAX, "expression unterminated", "unterminated expression %v"},
	ErrExpressionInvalid:      {KIND_SYNTAX, "expression invalid", "$(%v) is not a valid expression"},
	ErrCastUnknown:            {KIND_SYNTAX, "cast unknown", "unknown cast (%v)"},
	ErrExpected:               {KIND_SYNTAX, "token expected", "expected '%v' at '%v'"},
	ErrTrailing:               {KIND_SYNTAX, "excessive arguments", "unexpected '%v' after statement"},

	ErrRegisterExpected:  {KIND_SEMANTIC, "register expected", "'%v' is not a register"},
	ErrImmediateExpected: {KIND_SEMANTIC, "immediate expected", "'%v' is not an immediate value"},
	ErrDivideImmediate:   {KIND_SEMANTIC, "immediate division", "division by immediate %v"},
	ErrHighRegister:      {KIND_SEMANTIC, "high operator register", "'%v' requires an immediate operand"},
	ErrNameInvalid:       {KIND_SEMANTIC, "name invalid", "'%v' is not a valid name"},
	ErrVariableDuplicate: {KIND_SEMANTIC, "variable duplicated", "variable %v duplicated"},
}

// Kind returns the class of the failure.
func (code Code) Kind() Kind {
	return codeInfo[code].kind
}

func (code Code) Error() string {
	return f(codeInfo[code].summary)
}

// With binds the contextual arguments of a failure to its code.
func (code Code) With(args ...any) *Error {
	return &Error{Code: code, Args: args}
}

// Error is a compilation failure: a code with its contextual arguments.
type Error struct {
	Code Code
	Args []any
}

func (err *Error) Error() string {
	return f(codeInfo[err.Code].format, err.Args...)
}

func (err *Error) Unwrap() error {
	return err.Code
}

// ErrSyntax locates a failure in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
