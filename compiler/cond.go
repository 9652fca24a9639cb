// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"fmt"

	"github.com/ezrec/shasm/ir"
)

// condCompiler generates short-circuit branch code for a condition.
//
// Every node of the condition has a name, and a pair of labels NAME_t and
// NAME_f. The code of a node branches to NAME_f when the node is false,
// and falls through when it is true; the caller places NAME_t directly
// after the code. Composite nodes place the labels of their children and
// redirect them to their own with explicit branches.
type condCompiler struct {
	base   string
	serial int
}

// name mints the name of a child node.
func (cc *condCompiler) name() string {
	cc.serial++
	return fmt.Sprintf("%s_c%d", cc.base, cc.serial)
}

func trueLabel(name string) string  { return name + "_t" }
func falseLabel(name string) string { return name + "_f" }

// Guard compiles cond as the node named name.
func Guard(cond Cond, name string) []ir.Node {
	cc := &condCompiler{base: name}
	return cc.build(cond, name)
}

func (cc *condCompiler) build(cond Cond, name string) (nodes []ir.Node) {
	switch c := cond.(type) {
	case *Compare:
		// Branch away on the inverted test.
		nodes = []ir.Node{
			ir.Bcc(c.Cmp.BranchInverted(), c.A, c.B, falseLabel(name)),
		}
	case *Logical:
		lname := cc.name()
		rname := cc.name()
		lhs := cc.build(c.Lhs, lname)
		rhs := cc.build(c.Rhs, rname)

		if c.And {
			// lhs true falls into rhs; either false is false.
			nodes = append(nodes, lhs...)
			nodes = append(nodes, ir.Label(trueLabel(lname)))
			nodes = append(nodes, rhs...)
			nodes = append(nodes,
				ir.Label(trueLabel(rname)),
				ir.Br(trueLabel(name)),
				ir.Label(falseLabel(lname)),
				ir.Label(falseLabel(rname)),
				ir.Br(falseLabel(name)),
			)
		} else {
			// lhs false falls into rhs; either true is true.
			nodes = append(nodes, lhs...)
			nodes = append(nodes,
				ir.Label(trueLabel(lname)),
				ir.Br(trueLabel(name)),
				ir.Label(falseLabel(lname)),
			)
			nodes = append(nodes, rhs...)
			nodes = append(nodes,
				ir.Label(trueLabel(rname)),
				ir.Br(trueLabel(name)),
				ir.Label(falseLabel(rname)),
				ir.Br(falseLabel(name)),
			)
		}
	}

	return
}
