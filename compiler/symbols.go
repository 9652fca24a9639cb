// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"iter"

	"github.com/ezrec/shasm/ir"
)

// Storage describes a declared variable.
type Storage struct {
	Size  int      // Size in bytes
	Align ir.Align // Placement class
	Init  []string // Initial values, if any
}

// Symbols is the symbol table of one compilation: constants by textual
// value, and variables by storage.
type Symbols struct {
	constant      map[string]string
	constantOrder []string
	variable      map[string]Storage
	variableOrder []string
}

// NewSymbols returns an empty symbol table.
func NewSymbols() *Symbols {
	return &Symbols{
		constant: make(map[string]string),
		variable: make(map[string]Storage),
	}
}

// SetConstant defines or redefines a constant. The last value wins.
func (sym *Symbols) SetConstant(name, value string) {
	if _, ok := sym.constant[name]; !ok {
		sym.constantOrder = append(sym.constantOrder, name)
	}
	sym.constant[name] = value
}

// Constant returns the textual value of a constant.
func (sym *Symbols) Constant(name string) (value string, ok bool) {
	value, ok = sym.constant[name]
	return
}

// Constants iterates over the constants in order of first definition.
func (sym *Symbols) Constants() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range sym.constantOrder {
			if !yield(name, sym.constant[name]) {
				return
			}
		}
	}
}

// Declare adds a variable. Names are unique.
func (sym *Symbols) Declare(name string, storage Storage) (err error) {
	if _, ok := sym.variable[name]; ok {
		err = ErrVariableDuplicate.With(name)
		return
	}
	sym.variable[name] = storage
	sym.variableOrder = append(sym.variableOrder, name)
	return
}

// Variable returns the storage of a variable.
func (sym *Symbols) Variable(name string) (storage Storage, ok bool) {
	storage, ok = sym.variable[name]
	return
}

// Variables iterates over the variables in declaration order.
func (sym *Symbols) Variables() iter.Seq2[string, Storage] {
	return func(yield func(string, Storage) bool) {
		for _, name := range sym.variableOrder {
			if !yield(name, sym.variable[name]) {
				return
			}
		}
	}
}
