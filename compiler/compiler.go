// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Compiler translates shorthand assembly into assembly source.
// A Compiler may be reused, but not concurrently.
type Compiler struct {
	Verbose  bool    // If set, verbosely logs each source line.
	Warnings []error // Warnings of the last compilation.

	// Handlers overrides the statement handlers, in priority order.
	Handlers []Handler

	predefine []predefined // Predefined constants, in definition order.
}

// Predefine defines a constant, as if declared at the top of the compile
// block. A later definition of the same name wins.
func (cc *Compiler) Predefine(name string, value string) {
	cc.predefine = append(cc.predefine, predefined{name: name, value: value})
}

// Parse splits the input into statements.
func (cc *Compiler) Parse(input io.Reader) (stmts []Statement, err error) {
	scanner := bufio.NewScanner(input)

	handlers := cc.Handlers
	if handlers == nil {
		handlers = Handlers()
	}

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if cc.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)

		var tokens []Token
		tokens, err = Lex(line)
		if err != nil {
			return
		}

		var parsed []Stmt
		parsed, err = dispatch(handlers, tokens)
		if err != nil {
			return
		}

		for _, stmt := range parsed {
			stmts = append(stmts, Statement{LineNo: lineno, Line: line, Stmt: stmt})
		}
	}

	err = scanner.Err()
	return
}

// Compile translates the input into a listing.
func (cc *Compiler) Compile(input io.Reader) (listing *Listing, err error) {
	cc.Warnings = nil

	stmts, err := cc.Parse(input)
	if err != nil {
		return
	}

	gen := newGenerator()
	gen.predefine = cc.predefine
	gen.warn = func(warning error) {
		if cc.Verbose {
			log.Printf("warning: %v", warning)
		}
		cc.Warnings = append(cc.Warnings, warning)
	}

	listing, err = gen.Generate(stmts)
	return
}

// Compile translates source text into assembly source text.
func Compile(src string) (text string, err error) {
	cc := &Compiler{}
	listing, err := cc.Compile(strings.NewReader(src))
	if err != nil {
		return
	}

	text = listing.String()
	return
}
