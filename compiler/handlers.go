// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strings"

	"github.com/ezrec/shasm/isa"
)

// blockHandler handles 'compile:', 'main:' and 'func NAME:'.
type blockHandler struct {
	word string
	kind BlockKind
}

func (h *blockHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, h.word)
}

func (h *blockHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, term := statement(rest, ";", ":")
	block := &BlockStmt{Kind: h.kind, Colon: term == ":"}

	if h.kind == BLOCK_FUNCTION {
		if len(body) == 0 {
			err = ErrExpected.With("name", h.word)
			return
		}
		if !isName(body[0]) {
			err = ErrNameInvalid.With(body[0].String())
			return
		}
		block.Name = body[0].Text
		body = body[1:]
	}

	err = trailing(body)
	stmt = block
	return
}

// ifHandler handles 'if COND:'.
type ifHandler struct{}

func (h *ifHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, "if")
}

func (h *ifHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest, ";", ":")
	cond, err := parseCond(body)
	if err != nil {
		return
	}
	stmt = &IfStmt{Cond: cond}
	return
}

// elseHandler handles 'else', with an optional colon.
type elseHandler struct{}

func (h *elseHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, "else")
}

func (h *elseHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest, ";", ":")
	err = trailing(body)
	stmt = &ElseStmt{}
	return
}

// whileHandler handles 'while COND:' and 'while true:'.
type whileHandler struct{}

func (h *whileHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, "while")
}

func (h *whileHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest, ";", ":")
	if len(body) > 0 && body[0].Type == TOKEN_IDENT && body[0].Text == "true" {
		err = trailing(body[1:])
		stmt = &WhileStmt{}
		return
	}

	cond, err := parseCond(body)
	if err != nil {
		return
	}
	stmt = &WhileStmt{Cond: cond}
	return
}

// endHandler handles 'end'.
type endHandler struct{}

func (h *endHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, "end")
}

func (h *endHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest, ";", ":")
	err = trailing(body)
	stmt = &EndStmt{}
	return
}

// callHandler handles 'call NAME'.
type callHandler struct{}

func (h *callHandler) Matches(candidate, rest []Token) bool {
	return isKeyword(candidate, "call")
}

func (h *callHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest)
	if len(body) == 0 {
		err = ErrExpected.With("name", "call")
		return
	}
	if !isName(body[0]) {
		err = ErrNameInvalid.With(body[0].String())
		return
	}
	err = trailing(body[1:])
	stmt = &CallStmt{Name: body[0].Text}
	return
}

// commentHandler handles '// text'.
type commentHandler struct{}

func (h *commentHandler) Matches(candidate, rest []Token) bool {
	return len(candidate) == 1 && candidate[0].Type == TOKEN_COMMENT
}

func (h *commentHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	stmt = &CommentStmt{Text: candidate[0].Text}
	return
}

// registerHandler handles every statement starting with a register:
//
//	rX = rY              ->      mov rX, rY
//	rX = &VAR            ->      movia rX, VAR
//	rX = (cast) &rY[OFF] ->      ld(w/b)(io/) rX, OFF(rY)
//	rX = (cast) VAR      ->      ld(w/b)(io/) rX, VAR(r0)
//	rX = IMM             ->      movi rX, IMM
//	rX = rY OP rZ        ->      OP rX, rY, rZ
//	rX = rY OP IMM       ->      OPi rX, rY, IMM
//	rX OP= rY            ->      OP rX, rX, rY
//	rX OP= IMM           ->      OPi rX, rX, IMM
//	rX++ / rX--          ->      addi/subi rX, rX, 1
//
// '*' may be used in place of '&'.
type registerHandler struct{}

func (h *registerHandler) Matches(candidate, rest []Token) bool {
	return len(candidate) == 1 && candidate[0].Type == TOKEN_IDENT && isa.IsRegister(candidate[0].Text)
}

func (h *registerHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	dst := candidate[0].Text
	body, used, _ := statement(rest)
	if len(body) == 0 {
		err = ErrExpected.With("=", dst)
		return
	}

	first := body[0]
	body = body[1:]

	switch {
	case first.Is("="):
		stmt, body, err = h.parseAssign(dst, body)
	case first.Is("++"), first.Is("--"):
		op := isa.OP_ADD
		if first.Text == "--" {
			op = isa.OP_SUB
		}
		stmt = &OpStmt{Dst: dst, Src: dst, Op: op, Rhs: Operand{Imm: Immediate{Type: TOKEN_NUMBER, Text: "1"}}}
	case first.Type == TOKEN_OP && strings.HasSuffix(first.Text, "="):
		op, ok := isa.ParseOperator(strings.TrimSuffix(first.Text, "="))
		if !ok {
			err = ErrOperatorUnknown.With(first.Text)
			return
		}
		var rhs Operand
		var n int
		rhs, n, err = parseOperand(body)
		body = body[n:]
		stmt = &OpStmt{Dst: dst, Src: dst, Op: op, Rhs: rhs}
	default:
		err = ErrOperatorUnknown.With(first.String())
	}
	if err != nil {
		return
	}

	err = trailing(body)
	return
}

// parseAssign parses the right hand side of 'rX = ...'.
func (h *registerHandler) parseAssign(dst string, body []Token) (stmt Stmt, rest []Token, err error) {
	if len(body) == 0 {
		err = ErrExpected.With("value", dst+" =")
		return
	}

	// rX = rY [OP rZ/IMM]
	if body[0].Type == TOKEN_IDENT && isa.IsRegister(body[0].Text) {
		src := body[0].Text
		rest = body[1:]
		if len(rest) == 0 {
			stmt = &MoveStmt{Dst: dst, Src: src}
			return
		}
		if rest[0].Type != TOKEN_OP {
			err = ErrTrailing.With(joinTokens(rest))
			return
		}
		op, ok := isa.ParseOperator(rest[0].Text)
		if !ok {
			err = ErrOperatorUnknown.With(rest[0].Text)
			return
		}
		var rhs Operand
		var n int
		rhs, n, err = parseOperand(rest[1:])
		if err != nil {
			return
		}
		rest = rest[1+n:]
		stmt = &OpStmt{Dst: dst, Src: src, Op: op, Rhs: rhs}
		return
	}

	cast, casted, n, err := parseCast(body)
	if err != nil {
		return
	}
	rest = body[n:]
	if len(rest) == 0 {
		err = ErrExpected.With("value", joinTokens(body))
		return
	}

	// rX = (cast) &rY[OFF] / rX = &VAR
	if rest[0].Is("&") || rest[0].Is("*") {
		rest = rest[1:]
		if len(rest) == 0 {
			err = ErrExpected.With("name", joinTokens(body))
			return
		}
		if rest[0].Type == TOKEN_IDENT && isa.IsRegister(rest[0].Text) {
			load := &LoadStmt{Dst: dst, Cast: cast, Base: rest[0].Text}
			load.Offset, n, err = parseIndex(rest[1:])
			if err != nil {
				return
			}
			rest = rest[1+n:]
			stmt = load
			return
		}
		if casted {
			err = ErrRegisterExpected.With(rest[0].String())
			return
		}
		if !isName(rest[0]) {
			err = ErrNameInvalid.With(rest[0].String())
			return
		}
		stmt = &AddrStmt{Dst: dst, Name: rest[0].Text}
		rest = rest[1:]
		return
	}

	// rX = (cast) VAR
	if casted {
		if !isName(rest[0]) {
			err = ErrNameInvalid.With(rest[0].String())
			return
		}
		stmt = &NameStmt{Dst: dst, Name: rest[0].Text, Cast: cast, Casted: true}
		rest = rest[1:]
		return
	}

	// rX = IMM / rX = VAR
	imm, n, err := parseImmediate(rest)
	if err != nil {
		return
	}
	rest = rest[n:]
	if imm.Type == TOKEN_IDENT {
		stmt = &NameStmt{Dst: dst, Name: imm.Text}
	} else {
		stmt = &ImmStmt{Dst: dst, Value: imm}
	}
	return
}

// storeHandler handles stores to memory, the statements that assign to
// something other than a register:
//
//	VAR = (cast) rX          ->      st(w/b)(io/) rX, VAR(r0)
//	*rX = (cast) rY          ->      st(w/b)(io/) rY, 0(rX)
//	*rX[OFF] = (cast) rY     ->      st(w/b)(io/) rY, OFF(rX)
//
// '&' may be used in place of '*'.
type storeHandler struct{}

func (h *storeHandler) Matches(candidate, rest []Token) bool {
	if len(candidate) == 1 && (candidate[0].Is("*") || candidate[0].Is("&")) {
		return true
	}
	last := candidate[len(candidate)-1]
	if !last.Is("=") {
		return false
	}
	return !(len(candidate) == 2 && candidate[0].Type == TOKEN_IDENT && isa.IsRegister(candidate[0].Text))
}

func (h *storeHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest)
	store := &StoreStmt{}

	if len(candidate) == 1 {
		// *rX[OFF] = ...
		store.Base, err = parseRegister(body)
		if err != nil {
			return
		}
		var n int
		store.Offset, n, err = parseIndex(body[1:])
		if err != nil {
			return
		}
		body = body[1+n:]
		if len(body) == 0 || !body[0].Is("=") {
			err = ErrExpected.With("=", joinTokens(candidate)+" "+store.Base)
			return
		}
		body = body[1:]
	} else {
		// VAR = ...
		target := candidate[:len(candidate)-1]
		if len(target) != 1 || !isName(target[0]) {
			err = ErrNameInvalid.With(joinTokens(target))
			return
		}
		store.Name = target[0].Text
		store.Base = isa.ZERO
	}

	cast, _, n, err := parseCast(body)
	if err != nil {
		return
	}
	store.Cast = cast
	body = body[n:]

	store.Src, err = parseRegister(body)
	if err != nil {
		return
	}

	err = trailing(body[1:])
	stmt = store
	return
}
