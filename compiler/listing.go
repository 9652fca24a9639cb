// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"iter"
	"strings"

	"github.com/ezrec/shasm/internal"
	"github.com/ezrec/shasm/ir"
	"github.com/ezrec/shasm/isa"
)

// Origin of the word aligned variables.
const ALIGNED_ORIGIN = "0x00001000"

// Listing is a compiled program, ready for emission.
type Listing struct {
	Symbols   *Symbols       // Constants and variables
	Setup     *ir.Block      // Globals and equates
	Main      *ir.Main       // Program entry
	Functions []*ir.Function // Functions, in definition order
	Aligned   []*ir.Variable // Word aligned variables
	Default   []*ir.Variable // Byte aligned variables
}

func (lst *Listing) seal() {
	lst.Setup.Seal()
	lst.Main.Seal()
	for _, fn := range lst.Functions {
		fn.Seal()
	}
}

func nodeLines[N ir.Node](node N) iter.Seq[string] {
	return node.Lines()
}

// functionLines separates each function with a blank line.
func functionLines(fn *ir.Function) iter.Seq[string] {
	return internal.Concat(internal.Of(""), fn.Lines())
}

// Lines iterates over the lines of the assembly source, without newlines.
// Sections without content are left out.
func (lst *Listing) Lines() iter.Seq[string] {
	seqs := []iter.Seq[string]{
		internal.Of(
			"# Generated by shasm",
			"",
			"# Setup",
		),
		lst.Setup.Lines(),
		internal.Of(""),
		lst.Main.Lines(),
	}

	if len(lst.Functions) != 0 {
		seqs = append(seqs,
			internal.Of(
				"",
				"# Functions",
			),
			internal.Each(lst.Functions, functionLines),
		)
	}

	if len(lst.Aligned) != 0 {
		seqs = append(seqs,
			internal.Of(
				"",
				"# Word-Aligned Variables",
				"",
				isa.Format(".org", ALIGNED_ORIGIN),
			),
			internal.Each(lst.Aligned, nodeLines[*ir.Variable]),
		)
	}

	if len(lst.Default) != 0 {
		seqs = append(seqs,
			internal.Of(
				"",
				"# Random Variables",
			),
			internal.Each(lst.Default, nodeLines[*ir.Variable]),
		)
	}

	seqs = append(seqs,
		internal.Of(
			"",
			"# End of Assembly Source",
			isa.Format(".end"),
		),
	)

	return internal.Concat(seqs...)
}

// String is the assembly source text.
func (lst *Listing) String() string {
	var text strings.Builder
	for line := range lst.Lines() {
		text.WriteString(line)
		text.WriteString("\n")
	}
	return text.String()
}
