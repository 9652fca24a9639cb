// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strings"
	"unicode"
)

// lexer holds the scanning state of one source line.
type lexer struct {
	src []rune
	pos int
}

func (lx *lexer) peek() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *lexer) peek2() rune {
	if lx.pos+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+1]
}

func (lx *lexer) done() bool {
	return lx.pos >= len(lx.src)
}

func (lx *lexer) rest() string {
	return string(lx.src[lx.pos:])
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanWhile consumes runes while accept holds.
func (lx *lexer) scanWhile(accept func(rune) bool) string {
	start := lx.pos
	for !lx.done() && accept(lx.peek()) {
		lx.pos++
	}
	return string(lx.src[start:lx.pos])
}

// scanQuoted consumes a quoted literal, including both quotes. Escapes are
// kept verbatim for the assembler.
func (lx *lexer) scanQuoted(quote rune) (text string, ok bool) {
	start := lx.pos
	lx.pos++
	for !lx.done() {
		r := lx.peek()
		lx.pos++
		switch r {
		case '\\':
			if !lx.done() {
				lx.pos++
			}
		case quote:
			return string(lx.src[start:lx.pos]), true
		}
	}
	return string(lx.src[start:]), false
}

// scanExpr consumes a $(...) expression with balanced parentheses.
func (lx *lexer) scanExpr() (text string, ok bool) {
	start := lx.pos
	lx.pos += 2
	depth := 1
	for !lx.done() {
		r := lx.peek()
		lx.pos++
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return string(lx.src[start:lx.pos]), true
			}
		}
	}
	return string(lx.src[start:]), false
}

// Lex splits a single source line into tokens.
func Lex(line string) (tokens []Token, err error) {
	lx := &lexer{src: []rune(line)}

	for {
		lx.scanWhile(unicode.IsSpace)
		if lx.done() {
			return
		}

		col := lx.pos + 1
		r := lx.peek()

		var tok Token
		switch {
		case r == '/' && lx.peek2() == '/':
			lx.pos += 2
			tok = Token{Type: TOKEN_COMMENT, Text: lx.rest()}
			lx.pos = len(lx.src)
		case isIdentStart(r):
			tok = Token{Type: TOKEN_IDENT, Text: lx.scanWhile(isIdentPart)}
		case unicode.IsDigit(r):
			tok = Token{Type: TOKEN_NUMBER, Text: lx.scanWhile(isIdentPart)}
		case r == '"':
			text, ok := lx.scanQuoted('"')
			if !ok {
				err = ErrStringUnterminated.With(text)
				return
			}
			tok = Token{Type: TOKEN_STRING, Text: text}
		case r == '\'':
			text, ok := lx.scanQuoted('\'')
			if !ok || len(text) < 3 {
				err = ErrLiteralInvalid.With(text)
				return
			}
			tok = Token{Type: TOKEN_CHAR, Text: text}
		case r == '$' && lx.peek2() == '(':
			text, ok := lx.scanExpr()
			if !ok {
				err = ErrExpressionUnterminated.With(text)
				return
			}
			tok = Token{Type: TOKEN_EXPR, Text: text}
		default:
			rest := lx.rest()
			for _, op := range operators {
				if strings.HasPrefix(rest, op) {
					tok = Token{Type: TOKEN_OP, Text: op}
					lx.pos += len([]rune(op))
					break
				}
			}
			if len(tok.Text) == 0 {
				err = ErrCharacterInvalid.With(string(r))
				return
			}
		}

		tok.Col = col
		tokens = append(tokens, tok)
	}
}
