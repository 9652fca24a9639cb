// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
)

// ZERO is the hardwired zero register, used as the base of absolute
// addressing.
const ZERO = "r0"

// registerMap holds every name the assembler accepts as a register.
var registerMap = func() map[string]bool {
	regs := map[string]bool{
		"zero":    true,
		"at":      true,
		"et":      true,
		"bt":      true,
		"gp":      true,
		"sp":      true,
		"fp":      true,
		"ea":      true,
		"ba":      true,
		"sstatus": true,
		"ra":      true,
	}
	for n := range 32 {
		regs[fmt.Sprintf("r%d", n)] = true
	}
	return regs
}()

// IsRegister returns true if name is a register.
func IsRegister(name string) bool {
	return registerMap[name]
}
