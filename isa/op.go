// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Operator is an arithmetic or bitwise operator.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_ADD   = Operator(0)  // +
	OP_SUB   = Operator(1)  // -
	OP_MUL   = Operator(2)  // *
	OP_DIV   = Operator(3)  // /
	OP_AND   = Operator(4)  // &
	OP_OR    = Operator(5)  // |
	OP_XOR   = Operator(6)  // ^
	OP_SHL   = Operator(7)  // <<
	OP_SHR   = Operator(8)  // >>
	OP_ANDHI = Operator(9)  // ?&
	OP_ORHI  = Operator(10) // ?|
	OP_XORHI = Operator(11) // ?^
)

// opMnemonic maps operators to their register and immediate forms.
// An empty mnemonic means the form does not exist.
var opMnemonic = map[Operator]struct{ reg, imm string }{
	OP_ADD:   {"add", "addi"},
	OP_SUB:   {"sub", "subi"},
	OP_MUL:   {"mul", "muli"},
	OP_DIV:   {"div", ""},
	OP_AND:   {"and", "andi"},
	OP_OR:    {"or", "ori"},
	OP_XOR:   {"xor", "xori"},
	OP_SHL:   {"sll", "slli"},
	OP_SHR:   {"srl", "srli"},
	OP_ANDHI: {"", "andhi"},
	OP_ORHI:  {"", "orhi"},
	OP_XORHI: {"", "xorhi"},
}

var opBySymbol = func() map[string]Operator {
	ops := make(map[string]Operator, len(opMnemonic))
	for op := range opMnemonic {
		ops[op.String()] = op
	}
	return ops
}()

// ParseOperator looks up an operator by its source symbol.
func ParseOperator(symbol string) (op Operator, ok bool) {
	op, ok = opBySymbol[symbol]
	return
}

// Mnemonic returns the register-register form of the operator.
func (op Operator) Mnemonic() (mnemonic string, ok bool) {
	mnemonic = opMnemonic[op].reg
	ok = len(mnemonic) != 0
	return
}

// MnemonicImm returns the register-immediate form of the operator.
func (op Operator) MnemonicImm() (mnemonic string, ok bool) {
	mnemonic = opMnemonic[op].imm
	ok = len(mnemonic) != 0
	return
}

// Comparator is a register comparison.
type Comparator int

//go:generate go tool stringer -linecomment -type=Comparator
const (
	CMP_LT = Comparator(0) // <
	CMP_GT = Comparator(1) // >
	CMP_LE = Comparator(2) // <=
	CMP_GE = Comparator(3) // >=
	CMP_EQ = Comparator(4) // ==
	CMP_NE = Comparator(5) // !=
)

var cmpBranch = [...]string{
	CMP_LT: "blt",
	CMP_GT: "bgt",
	CMP_LE: "ble",
	CMP_GE: "bge",
	CMP_EQ: "beq",
	CMP_NE: "bne",
}

var cmpInverse = [...]Comparator{
	CMP_LT: CMP_GE,
	CMP_GT: CMP_LE,
	CMP_LE: CMP_GT,
	CMP_GE: CMP_LT,
	CMP_EQ: CMP_NE,
	CMP_NE: CMP_EQ,
}

// ParseComparator looks up a comparator by its source symbol.
func ParseComparator(symbol string) (cmp Comparator, ok bool) {
	for n := range cmpBranch {
		if Comparator(n).String() == symbol {
			return Comparator(n), true
		}
	}
	return
}

// Invert returns the logical complement of the comparator.
func (cmp Comparator) Invert() Comparator {
	return cmpInverse[cmp]
}

// Branch returns the branch mnemonic taken when the comparison holds.
func (cmp Comparator) Branch() string {
	return cmpBranch[cmp]
}

// BranchInverted returns the branch mnemonic taken when the comparison fails.
func (cmp Comparator) BranchInverted() string {
	return cmpBranch[cmp.Invert()]
}
