// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa describes the target machine as seen by the shorthand
// compiler: its register names, the mnemonics selected for arithmetic
// operators, comparators and load/store casts, and the fixed layout of an
// assembly instruction line.
//
// The target is a 32 register RISC with a Nios II style assembler: two and
// three operand arithmetic with an 'i' suffixed immediate form, compare and
// branch instructions, and word/byte loads and stores with an optional
// I/O (cache bypassing) variant.
package isa
