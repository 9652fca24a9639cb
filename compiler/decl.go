// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strings"
)

// declHandler handles declarations:
//
//	const name = VALUE       ->      .equ name, VALUE
//	int/byte name [= V,...]  ->      name: .skip 4/1 / .word/.byte V, ...
//	int/byte[SIZE] name      ->      name: .skip 4*SIZE/SIZE
//	string name = "VALUE"    ->      name: .asciz "VALUE"
//	var[SIZE] name           ->      name: .skip SIZE
type declHandler struct{}

func (h *declHandler) Matches(candidate, rest []Token) bool {
	for _, word := range []string{"int", "byte", "string", "var", "const"} {
		if isKeyword(candidate, word) {
			return true
		}
	}
	return false
}

func (h *declHandler) Parse(candidate, rest []Token) (stmt Stmt, used int, err error) {
	body, used, _ := statement(rest)

	var decl *DeclStmt
	switch candidate[0].Text {
	case "int":
		decl, err = h.parseSized(body, false)
	case "byte":
		decl, err = h.parseSized(body, true)
	case "string":
		decl, err = h.parseString(body)
	case "var":
		decl, err = h.parseBuffer(body)
	case "const":
		decl, err = h.parseConst(body)
	}
	if err != nil {
		return
	}

	stmt = decl
	return
}

// parseSize parses '[SIZE]'.
func parseSize(body []Token) (size Immediate, used int, err error) {
	if len(body) == 0 || !body[0].Is("[") {
		err = ErrExpected.With("[", joinTokens(body))
		return
	}
	size, used, err = parseImmediate(body[1:])
	if err != nil {
		return
	}
	used++
	if used >= len(body) || !body[used].Is("]") {
		err = ErrBracketUnterminated.With(joinTokens(body[:used]))
		return
	}
	used++
	return
}

// parseName parses the declared name.
func parseName(body []Token) (name string, err error) {
	if len(body) == 0 {
		err = ErrNameInvalid.With("")
		return
	}
	if !isName(body[0]) {
		err = ErrNameInvalid.With(body[0].String())
		return
	}
	name = body[0].Text
	return
}

func (h *declHandler) parseSized(body []Token, isByte bool) (decl *DeclStmt, err error) {
	decl = &DeclStmt{Kind: DECL_SCALAR, Byte: isByte}

	if len(body) > 0 && body[0].Is("[") {
		var n int
		decl.Kind = DECL_ARRAY
		decl.Size, n, err = parseSize(body)
		if err != nil {
			return
		}
		body = body[n:]
	}

	decl.Name, err = parseName(body)
	if err != nil {
		return
	}
	body = body[1:]

	if decl.Kind == DECL_SCALAR && len(body) > 0 && body[0].Is("=") {
		for _, value := range splitOn(body[1:], ",") {
			var imm Immediate
			var n int
			imm, n, err = parseImmediate(value)
			if err != nil {
				return
			}
			err = trailing(value[n:])
			if err != nil {
				return
			}
			decl.Init = append(decl.Init, imm)
		}
		body = nil
	}

	err = trailing(body)
	return
}

func (h *declHandler) parseString(body []Token) (decl *DeclStmt, err error) {
	decl = &DeclStmt{Kind: DECL_STRING}

	decl.Name, err = parseName(body)
	if err != nil {
		return
	}
	body = body[1:]

	if len(body) == 0 || !body[0].Is("=") {
		err = ErrExpected.With("=", decl.Name)
		return
	}
	body = body[1:]

	if len(body) == 0 || body[0].Type != TOKEN_STRING {
		err = ErrExpected.With("\"", joinTokens(body))
		return
	}
	decl.Value = body[0].Text

	err = trailing(body[1:])
	return
}

func (h *declHandler) parseBuffer(body []Token) (decl *DeclStmt, err error) {
	decl = &DeclStmt{Kind: DECL_BUFFER, Byte: true}

	var n int
	decl.Size, n, err = parseSize(body)
	if err != nil {
		return
	}
	body = body[n:]

	decl.Name, err = parseName(body)
	if err != nil {
		return
	}

	err = trailing(body[1:])
	return
}

func (h *declHandler) parseConst(body []Token) (decl *DeclStmt, err error) {
	decl = &DeclStmt{Kind: DECL_CONST}

	decl.Name, err = parseName(body)
	if err != nil {
		return
	}
	body = body[1:]

	if len(body) == 0 || !body[0].Is("=") {
		err = ErrExpected.With("=", decl.Name)
		return
	}
	body = body[1:]

	if len(body) == 0 {
		err = ErrExpected.With("value", decl.Name+" =")
		return
	}

	var value strings.Builder
	for _, tok := range body {
		value.WriteString(tok.String())
	}
	decl.Value = value.String()
	return
}
