// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"github.com/ezrec/shasm/isa"
)

// Handler recognizes and parses one family of statements.
//
// The dispatcher grows a candidate one token at a time from the front of a
// line, and offers it with the rest of the line to each handler in
// priority order. The first handler that matches parses its statement.
type Handler interface {
	// Matches is true if the candidate starts a statement of this family.
	Matches(candidate, rest []Token) bool
	// Parse parses the statement, returning it with the number of tokens
	// of rest that belong to it. A nil statement is not an error.
	Parse(candidate, rest []Token) (stmt Stmt, used int, err error)
}

// Handlers returns the statement handlers in priority order.
func Handlers() []Handler {
	return []Handler{
		&blockHandler{word: "compile", kind: BLOCK_COMPILE},
		&blockHandler{word: "main", kind: BLOCK_MAIN},
		&ifHandler{},
		&elseHandler{},
		&whileHandler{},
		&endHandler{},
		&registerHandler{},
		&declHandler{},
		&callHandler{},
		&blockHandler{word: "func", kind: BLOCK_FUNCTION},
		&storeHandler{},
		&commentHandler{},
	}
}

// keywords cannot be used as names.
var keywords = map[string]bool{
	"compile": true,
	"main":    true,
	"func":    true,
	"if":      true,
	"else":    true,
	"while":   true,
	"end":     true,
	"call":    true,
	"int":     true,
	"byte":    true,
	"string":  true,
	"var":     true,
	"const":   true,
	"true":    true,
}

// isName is true for a token usable as a variable, constant or function
// name.
func isName(tok Token) bool {
	return tok.Type == TOKEN_IDENT && !isa.IsRegister(tok.Text) && !keywords[tok.Text]
}

// isKeyword is true if the candidate is exactly the keyword.
func isKeyword(candidate []Token, word string) bool {
	return len(candidate) == 1 && candidate[0].Type == TOKEN_IDENT && candidate[0].Text == word
}

// statement splits the tokens of one statement from the rest of a line.
// The statement ends before a comment, or at the first terminator, which
// is consumed and returned as term.
func statement(rest []Token, terminators ...string) (body []Token, used int, term string) {
	if len(terminators) == 0 {
		terminators = []string{";"}
	}
	for n, tok := range rest {
		if tok.Type == TOKEN_COMMENT {
			return rest[:n], n, ""
		}
		for _, t := range terminators {
			if tok.Type == TOKEN_OP && tok.Text == t {
				return rest[:n], n + 1, t
			}
		}
	}
	return rest, len(rest), ""
}

// trailing fails if any tokens remain in a statement.
func trailing(body []Token) error {
	if len(body) != 0 {
		return ErrTrailing.With(joinTokens(body))
	}
	return nil
}

// dispatch parses all statements of one line of tokens.
func dispatch(handlers []Handler, tokens []Token) (stmts []Stmt, err error) {
	start := 0
	for end := start + 1; end <= len(tokens); end++ {
		candidate := tokens[start:end]
		rest := tokens[end:]
		for _, handler := range handlers {
			if !handler.Matches(candidate, rest) {
				continue
			}

			var stmt Stmt
			var used int
			stmt, used, err = handler.Parse(candidate, rest)
			if err != nil {
				return
			}
			if stmt != nil {
				stmts = append(stmts, stmt)
			}

			start = end + used
			end = start
			break
		}
	}

	return
}
