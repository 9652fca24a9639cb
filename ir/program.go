// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ir

import (
	"iter"

	"github.com/ezrec/shasm/isa"
)

// Entry point labels and the initial stack pointer.
const (
	START     = "_start"
	END       = "_end"
	STACK_TOP = "LAST_RAM_WORD"
)

// Main is the program entry. Its body runs after the stack pointer is set
// up, and falls into an endless self-branch.
type Main struct {
	Block
}

func (mn *Main) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		prologue := []Node{
			Text("# Entry point"),
			Label(START),
			Op("movia", "sp", STACK_TOP),
		}
		epilogue := []Node{
			Label(END),
			Br(END),
		}
		for _, seq := range []iter.Seq[string]{
			(&Block{nodes: prologue}).Lines(),
			mn.Block.Lines(),
			(&Block{nodes: epilogue}).Lines(),
		} {
			for line := range seq {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// Function is a named subroutine, entered by 'call' and left by 'ret'.
type Function struct {
	Name string
	Block
}

func (fn *Function) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(fn.Name + ":") {
			return
		}
		for line := range fn.Block.Lines() {
			if !yield(line) {
				return
			}
		}
		yield(isa.Format("ret"))
	}
}

// Align is the placement class of a variable.
type Align int

const (
	ALIGN_BYTE = Align(0) // Default data area
	ALIGN_WORD = Align(1) // Word aligned area at a fixed origin
)

// Variable declares labelled storage.
type Variable struct {
	Name      string
	Align     Align
	Directive string
	Args      []string
}

func (vr *Variable) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(vr.Name + ":") {
			return
		}
		yield(isa.Format(vr.Directive, vr.Args...))
	}
}
