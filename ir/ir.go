// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ir is the intermediate representation of a compiled listing: a
// tree of emittable nodes, each rendering to one or more lines of assembly.
//
// Leaf nodes are plain values. Container nodes (Block, Main, Function) are
// owned by exactly one parent; attaching a container twice, or adding to a
// sealed container, panics.
package ir

import (
	"iter"
	"strings"

	"github.com/ezrec/shasm/isa"
)

// Node is an emittable element of the output tree.
type Node interface {
	Lines() iter.Seq[string]
}

// single yields one line.
func single(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(line)
	}
}

// Instr is a fixed instruction or directive line.
type Instr struct {
	Mnemonic string
	Operands []string
}

// Op creates an instruction.
func Op(mnemonic string, operands ...string) Instr {
	return Instr{Mnemonic: mnemonic, Operands: operands}
}

func (in Instr) Lines() iter.Seq[string] {
	return single(isa.Format(in.Mnemonic, in.Operands...))
}

// Branch is an instruction whose last operand is a label.
type Branch struct {
	Mnemonic string
	Operands []string
	Target   string
}

// Br creates an unconditional branch to target.
func Br(target string) Branch {
	return Branch{Mnemonic: "br", Target: target}
}

// Bcc creates a conditional two register branch to target.
func Bcc(mnemonic, a, b, target string) Branch {
	return Branch{Mnemonic: mnemonic, Operands: []string{a, b}, Target: target}
}

func (br Branch) Lines() iter.Seq[string] {
	return single(isa.Format(br.Mnemonic, append(append([]string{}, br.Operands...), br.Target)...))
}

// Label defines a branch target.
type Label string

func (lb Label) Lines() iter.Seq[string] {
	return single(string(lb) + ":")
}

// Comment is an indented source comment carried into the output.
type Comment string

func (cm Comment) Lines() iter.Seq[string] {
	text := strings.TrimSpace(string(cm))
	if len(text) == 0 {
		return single(isa.Indent + "#")
	}
	return single(isa.Indent + "# " + text)
}

// Text is a raw unindented line, such as a section banner.
type Text string

func (tx Text) Lines() iter.Seq[string] {
	return single(string(tx))
}
