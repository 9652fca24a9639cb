// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strings"
)

// Indent is the leading whitespace of every non-label line.
const Indent = "    "

// Format renders one instruction or directive line, without newline.
func Format(mnemonic string, operands ...string) string {
	line := fmt.Sprintf("%s%-16s%s", Indent, mnemonic, strings.Join(operands, ", "))
	return strings.TrimRight(line, " ")
}

// Mem renders a base plus offset memory operand.
func Mem(offset, base string) string {
	return offset + "(" + base + ")"
}
