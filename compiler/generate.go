// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ezrec/shasm/ir"
	"github.com/ezrec/shasm/isa"
)

// generator lowers parsed statements into a listing. A generator is used
// for exactly one compilation.
type generator struct {
	listing   *Listing
	symbols   *Symbols
	stack     controlStack
	predefine []predefined
	warn      func(err error)
	at        Statement // Statement being generated

	labels    map[string]int  // Counters by function and construct
	functions map[string]bool // Functions defined so far
	compiled  bool            // A compile block was opened
	mained    bool            // A main block was opened

	scope   BlockKind // Kind of the open top level block
	name    string    // Label prefix of the open top level block
	current *ir.Block // Append point
}

type predefined struct {
	name, value string
}

func newGenerator() *generator {
	sym := NewSymbols()
	gen := &generator{
		listing: &Listing{
			Symbols: sym,
			Setup:   &ir.Block{},
			Main:    &ir.Main{},
		},
		symbols:   sym,
		labels:    make(map[string]int),
		functions: make(map[string]bool),
		warn:      func(error) {},
	}

	gen.listing.Setup.Add(ir.Op(".global", ir.START))

	return gen
}

// label mints the next label for a construct in the open function.
func (gen *generator) label(construct string) string {
	key := gen.name + "_" + construct
	gen.labels[key]++
	return fmt.Sprintf("%s%d", key, gen.labels[key])
}

// Generate lowers all statements, and finishes the listing.
func (gen *generator) Generate(stmts []Statement) (listing *Listing, err error) {
	for _, st := range stmts {
		gen.at = st
		err = gen.statement(st.Stmt)
		if err != nil {
			err = ErrSyntax{LineNo: st.LineNo, Line: st.Line, Err: err}
			return
		}
	}

	err = gen.close()
	if err != nil {
		return
	}

	if !gen.compiled {
		err = ErrCompileMissing
		return
	}

	if !gen.mained {
		err = ErrMainMissing
		return
	}

	gen.listing.seal()

	listing = gen.listing
	return
}

func (gen *generator) statement(stmt Stmt) (err error) {
	switch st := stmt.(type) {
	case *BlockStmt:
		err = gen.open(st)
	case *IfStmt:
		err = gen.openIf(st)
	case *ElseStmt:
		err = gen.openElse()
	case *WhileStmt:
		err = gen.openWhile(st)
	case *EndStmt:
		err = gen.end()
	case *CommentStmt:
		gen.comment(st)
	case *DeclStmt:
		err = gen.declare(st)
	default:
		if gen.current == nil {
			err = ErrOutsideBlock.With(stmtWord(stmt))
			return
		}
		var node ir.Node
		node, err = gen.instruction(stmt)
		if err != nil {
			return
		}
		gen.current.Add(node)
	}

	return
}

// stmtWord names a statement in diagnostics.
func stmtWord(stmt Stmt) string {
	switch st := stmt.(type) {
	case *IfStmt:
		return "if"
	case *ElseStmt:
		return "else"
	case *WhileStmt:
		return "while"
	case *EndStmt:
		return "end"
	case *CallStmt:
		return "call " + st.Name
	case *MoveStmt:
		return st.Dst
	case *AddrStmt:
		return st.Dst
	case *LoadStmt:
		return st.Dst
	case *NameStmt:
		return st.Dst
	case *ImmStmt:
		return st.Dst
	case *OpStmt:
		return st.Dst
	case *StoreStmt:
		if len(st.Name) != 0 {
			return st.Name
		}
		return "*" + st.Base
	default:
		return "?"
	}
}

// open starts a compile, main or function block, closing any open block.
func (gen *generator) open(st *BlockStmt) (err error) {
	err = gen.close()
	if err != nil {
		return
	}

	switch st.Kind {
	case BLOCK_COMPILE:
		if gen.compiled {
			err = ErrCompileDuplicate
			return
		}
		gen.compiled = true
		gen.name = "compile"
		for _, pre := range gen.predefine {
			err = gen.constant(pre.name, pre.value)
			if err != nil {
				return
			}
		}
	case BLOCK_MAIN:
		if gen.mained {
			err = ErrMainDuplicate
			return
		}
		if !st.Colon {
			gen.warn(ErrSyntax{LineNo: gen.at.LineNo, Line: gen.at.Line, Err: ErrExpected.With(":", "main")})
		}
		gen.mained = true
		gen.name = "main"
		gen.current = &gen.listing.Main.Block
	case BLOCK_FUNCTION:
		if gen.functions[st.Name] {
			err = ErrFunctionDuplicate.With(st.Name)
			return
		}
		gen.functions[st.Name] = true
		fn := &ir.Function{Name: st.Name}
		gen.listing.Functions = append(gen.listing.Functions, fn)
		gen.name = st.Name
		gen.current = &fn.Block
	}

	gen.scope = st.Kind
	return
}

// close ends the open top level block, if any.
func (gen *generator) close() (err error) {
	if top, ok := gen.stack.Peek(); ok {
		err = ErrBlockUnclosed.With(top.Kind, top.Name)
		return
	}

	gen.scope = BLOCK_NONE
	gen.name = ""
	gen.current = nil
	return
}

// nest adds a new block for a construct at the append point, and makes it
// the append point.
func (gen *generator) nest(ent entry) {
	ent.Block = &ir.Block{}
	ent.Outer = gen.current
	gen.current.Add(ent.Block)
	gen.current = ent.Block
	gen.stack.Push(ent)
}

func (gen *generator) openIf(st *IfStmt) (err error) {
	if gen.current == nil {
		err = ErrOutsideBlock.With("if")
		return
	}

	name := gen.label("if")
	gen.nest(entry{Kind: CONSTRUCT_IF, Name: name, Label: falseLabel(name)})
	gen.current.Add(Guard(st.Cond, name)...)
	gen.current.Add(ir.Label(trueLabel(name)))
	return
}

func (gen *generator) openElse() (err error) {
	top, ok := gen.stack.Peek()
	if !ok {
		err = ErrStackEmpty.With("else")
		return
	}
	if top.Kind != CONSTRUCT_IF {
		err = ErrStackMismatch.With("else", top.Kind, top.Name)
		return
	}
	gen.stack.Pop()

	// The else label shares the number of its if.
	name := gen.name + "_else" + strings.TrimPrefix(top.Name, gen.name+"_if")
	top.Block.Add(ir.Br(name), ir.Label(top.Label))
	top.Block.Seal()
	gen.current = top.Outer

	gen.nest(entry{Kind: CONSTRUCT_ELSE, Name: name, Label: name})
	return
}

func (gen *generator) openWhile(st *WhileStmt) (err error) {
	if gen.current == nil {
		err = ErrOutsideBlock.With("while")
		return
	}

	name := gen.label("while")
	if st.Cond == nil {
		gen.nest(entry{Kind: CONSTRUCT_WHILE_TRUE, Name: name, Top: name})
		gen.current.Add(ir.Label(name))
		return
	}

	// The guard is tested at the bottom of the loop, entered from the top.
	gen.nest(entry{Kind: CONSTRUCT_WHILE, Name: name, Top: name, Label: falseLabel(name), Cond: st.Cond})
	gen.current.Add(ir.Br(testLabel(name)), ir.Label(name))
	return
}

func testLabel(name string) string { return name + "_test" }

// end closes the innermost construct, or the top level block.
func (gen *generator) end() (err error) {
	top, ok := gen.stack.Pop()
	if !ok {
		if gen.scope == BLOCK_NONE {
			err = ErrStackEmpty.With("end")
			return
		}
		err = gen.close()
		return
	}

	if top.Cond != nil {
		top.Block.Add(ir.Label(testLabel(top.Name)))
		top.Block.Add(Guard(top.Cond, top.Name)...)
		top.Block.Add(ir.Label(trueLabel(top.Name)))
	}
	if len(top.Top) != 0 {
		top.Block.Add(ir.Br(top.Top))
	}
	if len(top.Label) != 0 {
		top.Block.Add(ir.Label(top.Label))
	}
	top.Block.Seal()

	gen.current = top.Outer
	return
}

func (gen *generator) comment(st *CommentStmt) {
	switch {
	case gen.current != nil:
		gen.current.Add(ir.Comment(st.Text))
	case gen.scope == BLOCK_COMPILE:
		gen.listing.Setup.Add(ir.Comment(st.Text))
	}
}

// immediate resolves an immediate operand to its assembler text.
func (gen *generator) immediate(imm Immediate) (text string, err error) {
	if imm.Type != TOKEN_EXPR {
		text = imm.Text
		return
	}

	value, err := evalExpr(exprBody(imm.Text), gen.symbols)
	if err != nil {
		return
	}
	text = strconv.FormatInt(value, 10)
	return
}

// exprBody strips the '$(' and ')' of an expression token.
func exprBody(text string) string {
	return strings.TrimSuffix(strings.TrimPrefix(text, "$("), ")")
}

// size resolves an array size of unit byte elements to a positive count.
func (gen *generator) size(imm Immediate, unit int64) (count int64, err error) {
	var expr string
	switch imm.Type {
	case TOKEN_NUMBER, TOKEN_IDENT:
		expr = imm.Text
	case TOKEN_EXPR:
		expr = exprBody(imm.Text)
	default:
		err = ErrSizeInvalid.With(imm.Text)
		return
	}

	count, err = evalExpr(expr, gen.symbols)
	if err != nil || count <= 0 || count > math.MaxInt32/unit {
		err = ErrSizeInvalid.With(imm.Text)
		return
	}
	return
}

func (gen *generator) constant(name, value string) (err error) {
	// A value that is a single $(...) expression is evaluated now.
	if tokens, _ := Lex(value); len(tokens) == 1 && tokens[0].Type == TOKEN_EXPR {
		value, err = gen.immediate(Immediate{Type: TOKEN_EXPR, Text: value})
		if err != nil {
			return
		}
	}

	gen.symbols.SetConstant(name, value)
	gen.listing.Setup.Add(ir.Op(".equ", name, value))
	return
}

func (gen *generator) declare(st *DeclStmt) (err error) {
	if st.Kind == DECL_CONST {
		if gen.scope != BLOCK_COMPILE {
			err = ErrConstOutsideCompile.With(st.Name)
			return
		}
		err = gen.constant(st.Name, st.Value)
		return
	}

	unit := int64(4)
	align := ir.ALIGN_WORD
	if st.Byte || st.Kind == DECL_STRING || st.Kind == DECL_BUFFER {
		unit = 1
		align = ir.ALIGN_BYTE
	}

	vr := &ir.Variable{Name: st.Name, Align: align}
	storage := Storage{Align: align}

	switch st.Kind {
	case DECL_SCALAR:
		storage.Size = int(unit)
		if len(st.Init) == 0 {
			vr.Directive = ".skip"
			vr.Args = []string{strconv.FormatInt(unit, 10)}
			break
		}
		vr.Directive = ".word"
		if st.Byte {
			vr.Directive = ".byte"
		}
		for _, imm := range st.Init {
			var text string
			text, err = gen.immediate(imm)
			if err != nil {
				return
			}
			vr.Args = append(vr.Args, text)
		}
		storage.Size *= len(vr.Args)
		storage.Init = vr.Args
	case DECL_ARRAY, DECL_BUFFER:
		var count int64
		count, err = gen.size(st.Size, unit)
		if err != nil {
			return
		}
		storage.Size = int(count * unit)
		vr.Directive = ".skip"
		vr.Args = []string{strconv.Itoa(storage.Size)}
	case DECL_STRING:
		value, _ := strconv.Unquote(st.Value)
		storage.Size = len(value) + 1
		storage.Init = []string{st.Value}
		vr.Directive = ".asciz"
		vr.Args = []string{st.Value}
	}

	err = gen.symbols.Declare(st.Name, storage)
	if err != nil {
		return
	}

	if align == ir.ALIGN_WORD {
		gen.listing.Aligned = append(gen.listing.Aligned, vr)
	} else {
		gen.listing.Default = append(gen.listing.Default, vr)
	}
	return
}

// instruction selects the instruction of a simple statement.
func (gen *generator) instruction(stmt Stmt) (node ir.Node, err error) {
	switch st := stmt.(type) {
	case *CallStmt:
		node = ir.Op("call", st.Name)
	case *MoveStmt:
		node = ir.Op("mov", st.Dst, st.Src)
	case *AddrStmt:
		node = ir.Op("movia", st.Dst, st.Name)
	case *LoadStmt:
		var offset string
		offset, err = gen.immediate(st.Offset)
		if err != nil {
			return
		}
		node = ir.Op(st.Cast.Load(), st.Dst, isa.Mem(offset, st.Base))
	case *NameStmt:
		if _, ok := gen.symbols.Constant(st.Name); ok && !st.Casted {
			node = ir.Op("movi", st.Dst, st.Name)
			return
		}
		node = ir.Op(st.Cast.Load(), st.Dst, isa.Mem(st.Name, isa.ZERO))
	case *ImmStmt:
		var value string
		value, err = gen.immediate(st.Value)
		if err != nil {
			return
		}
		node = ir.Op("movi", st.Dst, value)
	case *OpStmt:
		node, err = gen.operation(st)
	case *StoreStmt:
		var offset string
		if len(st.Name) != 0 {
			offset = st.Name
		} else {
			offset, err = gen.immediate(st.Offset)
			if err != nil {
				return
			}
		}
		node = ir.Op(st.Cast.Store(), st.Src, isa.Mem(offset, st.Base))
	default:
		panic(fmt.Sprintf("compiler: unhandled statement %T", stmt))
	}

	return
}

func (gen *generator) operation(st *OpStmt) (node ir.Node, err error) {
	if st.Rhs.IsReg() {
		mnemonic, ok := st.Op.Mnemonic()
		if !ok {
			err = ErrHighRegister.With(st.Op.String())
			return
		}
		node = ir.Op(mnemonic, st.Dst, st.Src, st.Rhs.Reg)
		return
	}

	mnemonic, ok := st.Op.MnemonicImm()
	if !ok {
		err = ErrDivideImmediate.With(st.Rhs.Imm.Text)
		return
	}

	value, err := gen.immediate(st.Rhs.Imm)
	if err != nil {
		return
	}
	node = ir.Op(mnemonic, st.Dst, st.Src, value)
	return
}
