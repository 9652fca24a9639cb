// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"github.com/ezrec/shasm/ir"
)

// Construct is the kind of an open structured block.
type Construct int

const (
	CONSTRUCT_IF         = Construct(0)
	CONSTRUCT_ELSE       = Construct(1)
	CONSTRUCT_WHILE      = Construct(2)
	CONSTRUCT_WHILE_TRUE = Construct(3)
)

func (con Construct) String() string {
	switch con {
	case CONSTRUCT_IF:
		return "if"
	case CONSTRUCT_ELSE:
		return "else"
	case CONSTRUCT_WHILE:
		return "while"
	case CONSTRUCT_WHILE_TRUE:
		return "while true"
	default:
		return "?"
	}
}

// entry is a structured block awaiting its 'end'.
type entry struct {
	Kind  Construct
	Name  string    // Label minted for the construct
	Label string    // Pending label, placed at 'end'
	Top   string    // Loop top, target of the back branch
	Cond  Cond      // Loop guard, tested at 'end'
	Block *ir.Block // Code of the construct
	Outer *ir.Block // Append point to restore at 'end'
}

// controlStack tracks the open structured blocks of a function body.
type controlStack struct {
	data []entry
}

func (s *controlStack) Push(value entry) {
	s.data = append(s.data, value)
}

func (s *controlStack) Pop() (value entry, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.data = s.data[:len(s.data)-1]
	}
	return
}

func (s *controlStack) Empty() bool {
	return len(s.data) == 0
}

func (s *controlStack) Peek() (value entry, ok bool) {
	if s.Empty() {
		return
	}

	return s.data[len(s.data)-1], true
}
