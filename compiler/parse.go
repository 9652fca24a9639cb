// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strconv"

	"github.com/ezrec/shasm/isa"
)

// validNumber checks a numeric literal, in any Go integer base.
func validNumber(text string) bool {
	if _, err := strconv.ParseInt(text, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseUint(text, 0, 64)
	return err == nil
}

// parseImmediate parses an immediate at the start of tokens: a number,
// optionally negated, a character, a $(...) expression or a name.
func parseImmediate(tokens []Token) (imm Immediate, used int, err error) {
	if len(tokens) == 0 {
		err = ErrExpected.With("value", "")
		return
	}

	tok := tokens[0]
	used = 1

	if tok.Is("-") && len(tokens) > 1 && tokens[1].Type == TOKEN_NUMBER {
		tok = tokens[1]
		tok.Text = "-" + tok.Text
		used = 2
	}

	switch tok.Type {
	case TOKEN_NUMBER:
		if !validNumber(tok.Text) {
			err = ErrLiteralInvalid.With(tok.Text)
			return
		}
	case TOKEN_CHAR, TOKEN_EXPR:
	case TOKEN_IDENT:
		if isa.IsRegister(tok.Text) {
			err = ErrImmediateExpected.With(tok.Text)
			return
		}
		if !isName(tok) {
			err = ErrNameInvalid.With(tok.Text)
			return
		}
	default:
		err = ErrLiteralInvalid.With(tok.String())
		return
	}

	imm = Immediate{Type: tok.Type, Text: tok.Text}
	return
}

// parseOperand parses a register or an immediate.
func parseOperand(tokens []Token) (op Operand, used int, err error) {
	if len(tokens) > 0 && tokens[0].Type == TOKEN_IDENT && isa.IsRegister(tokens[0].Text) {
		op = Operand{Reg: tokens[0].Text}
		used = 1
		return
	}

	op.Imm, used, err = parseImmediate(tokens)
	return
}

// parseRegister parses a single register.
func parseRegister(tokens []Token) (reg string, err error) {
	if len(tokens) == 0 {
		err = ErrExpected.With("register", "")
		return
	}
	if tokens[0].Type != TOKEN_IDENT || !isa.IsRegister(tokens[0].Text) {
		err = ErrRegisterExpected.With(tokens[0].String())
		return
	}
	reg = tokens[0].Text
	return
}

// parseIndex parses an optional '[OFF]' suffix. The offset defaults to 0.
func parseIndex(tokens []Token) (offset Immediate, used int, err error) {
	offset = Immediate{Type: TOKEN_NUMBER, Text: "0"}
	if len(tokens) == 0 || !tokens[0].Is("[") {
		return
	}

	offset, used, err = parseImmediate(tokens[1:])
	if err != nil {
		return
	}
	used++

	if used >= len(tokens) || !tokens[used].Is("]") {
		err = ErrBracketUnterminated.With(joinTokens(tokens[:used]))
		return
	}
	used++

	return
}

// parseCast parses an optional '(cast)' prefix.
func parseCast(tokens []Token) (cast isa.Cast, casted bool, used int, err error) {
	if len(tokens) == 0 || !tokens[0].Is("(") {
		return
	}
	if len(tokens) < 3 || !tokens[2].Is(")") {
		err = ErrExpected.With(")", joinTokens(tokens))
		return
	}

	cast, ok := isa.ParseCast(tokens[1].Text)
	if tokens[1].Type != TOKEN_IDENT || !ok {
		err = ErrCastUnknown.With(tokens[1].String())
		return
	}

	casted = true
	used = 3
	return
}

// splitOn splits tokens at each operator token equal to sep.
func splitOn(tokens []Token, sep string) (parts [][]Token) {
	start := 0
	for n, tok := range tokens {
		if tok.Type == TOKEN_OP && tok.Text == sep {
			parts = append(parts, tokens[start:n])
			start = n + 1
		}
	}
	return append(parts, tokens[start:])
}

// parseCond parses a condition. '&&' binds tighter than '||', and both
// associate to the left. There is no grouping.
func parseCond(tokens []Token) (cond Cond, err error) {
	if len(tokens) == 0 {
		err = ErrExpected.With("condition", "")
		return
	}

	for n, part := range splitOn(tokens, "||") {
		var term Cond
		term, err = parseAnd(part)
		if err != nil {
			return
		}
		if n == 0 {
			cond = term
		} else {
			cond = &Logical{Lhs: cond, Rhs: term}
		}
	}

	return
}

func parseAnd(tokens []Token) (cond Cond, err error) {
	for n, part := range splitOn(tokens, "&&") {
		var atom *Compare
		atom, err = parseCompare(part)
		if err != nil {
			return
		}
		if n == 0 {
			cond = atom
		} else {
			cond = &Logical{And: true, Lhs: cond, Rhs: atom}
		}
	}
	return
}

func parseCompare(tokens []Token) (cmp *Compare, err error) {
	if len(tokens) == 0 {
		err = ErrExpected.With("condition", "")
		return
	}

	cmp = &Compare{}
	cmp.A, err = parseRegister(tokens)
	if err != nil {
		return
	}

	if len(tokens) < 2 {
		err = ErrExpected.With("comparison", joinTokens(tokens))
		return
	}
	var ok bool
	cmp.Cmp, ok = isa.ParseComparator(tokens[1].Text)
	if tokens[1].Type != TOKEN_OP || !ok {
		err = ErrOperatorUnknown.With(tokens[1].String())
		return
	}

	cmp.B, err = parseRegister(tokens[2:])
	if err != nil {
		return
	}

	err = trailing(tokens[3:])
	return
}
