// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"github.com/ezrec/shasm/isa"
)

// Stmt is a parsed statement.
type Stmt interface {
	stmt()
}

// Statement is a parsed statement with its source location.
type Statement struct {
	LineNo int
	Line   string
	Stmt   Stmt
}

// Immediate is an immediate operand, resolved during generation.
type Immediate struct {
	Type TokenType // TOKEN_NUMBER, TOKEN_CHAR, TOKEN_EXPR or TOKEN_IDENT
	Text string
}

// Operand is either a register or an immediate.
type Operand struct {
	Reg string
	Imm Immediate
}

// IsReg is true for register operands.
func (op Operand) IsReg() bool {
	return len(op.Reg) != 0
}

func (op Operand) String() string {
	if op.IsReg() {
		return op.Reg
	}
	return op.Imm.Text
}

// BlockKind is the kind of a top level block.
type BlockKind int

const (
	BLOCK_NONE     = BlockKind(0)
	BLOCK_COMPILE  = BlockKind(1)
	BLOCK_MAIN     = BlockKind(2)
	BLOCK_FUNCTION = BlockKind(3)
)

// BlockStmt opens 'compile:', 'main:' or 'func NAME:'.
type BlockStmt struct {
	Kind  BlockKind
	Name  string
	Colon bool
}

// IfStmt opens a conditional block.
type IfStmt struct {
	Cond Cond
}

// ElseStmt switches an open conditional to its alternative.
type ElseStmt struct{}

// WhileStmt opens a loop; Cond is nil for 'while true'.
type WhileStmt struct {
	Cond Cond
}

// EndStmt closes the innermost open construct.
type EndStmt struct{}

// CallStmt calls a function.
type CallStmt struct {
	Name string
}

// CommentStmt is carried into the output verbatim.
type CommentStmt struct {
	Text string
}

// MoveStmt is 'rX = rY'.
type MoveStmt struct {
	Dst, Src string
}

// AddrStmt is 'rX = &VAR'.
type AddrStmt struct {
	Dst, Name string
}

// LoadStmt is 'rX = (cast) &rY[OFF]'.
type LoadStmt struct {
	Dst    string
	Cast   isa.Cast
	Base   string
	Offset Immediate
}

// NameStmt is 'rX = NAME' or 'rX = (cast) NAME'. Uncast constants load
// as immediates; everything else loads from memory.
type NameStmt struct {
	Dst    string
	Name   string
	Cast   isa.Cast
	Casted bool
}

// ImmStmt is 'rX = IMM'.
type ImmStmt struct {
	Dst   string
	Value Immediate
}

// OpStmt is 'rX = rY OP rZ' or 'rX = rY OP IMM'. Compound assignment and
// increments are parsed into this form.
type OpStmt struct {
	Dst string
	Src string
	Op  isa.Operator
	Rhs Operand
}

// StoreStmt is 'VAR = (cast) rX', '*rX = (cast) rY' or
// '*rX[OFF] = (cast) rY'. Name is set for the variable form.
type StoreStmt struct {
	Cast   isa.Cast
	Src    string
	Name   string
	Base   string
	Offset Immediate
}

// DeclKind is the syntactic family of a declaration.
type DeclKind int

const (
	DECL_SCALAR = DeclKind(0) // int name [= v, ...]
	DECL_ARRAY  = DeclKind(1) // int[N] name
	DECL_STRING = DeclKind(2) // string name = "..."
	DECL_BUFFER = DeclKind(3) // var[N] name
	DECL_CONST  = DeclKind(4) // const name = value
)

// DeclStmt declares a variable or a constant.
type DeclStmt struct {
	Kind  DeclKind
	Byte  bool
	Name  string
	Size  Immediate   // DECL_ARRAY, DECL_BUFFER
	Init  []Immediate // DECL_SCALAR
	Value string      // DECL_STRING (quoted), DECL_CONST
}

func (*BlockStmt) stmt()   {}
func (*IfStmt) stmt()      {}
func (*ElseStmt) stmt()    {}
func (*WhileStmt) stmt()   {}
func (*EndStmt) stmt()     {}
func (*CallStmt) stmt()    {}
func (*CommentStmt) stmt() {}
func (*MoveStmt) stmt()    {}
func (*AddrStmt) stmt()    {}
func (*LoadStmt) stmt()    {}
func (*NameStmt) stmt()    {}
func (*ImmStmt) stmt()     {}
func (*OpStmt) stmt()      {}
func (*StoreStmt) stmt()   {}
func (*DeclStmt) stmt()    {}

// Cond is a parsed boolean condition.
type Cond interface {
	cond()
}

// Compare is an atomic register comparison.
type Compare struct {
	A   string
	Cmp isa.Comparator
	B   string
}

// Logical joins two conditions with '&&' (And) or '||'.
type Logical struct {
	And bool
	Lhs Cond
	Rhs Cond
}

func (*Compare) cond() {}
func (*Logical) cond() {}
