// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Cast selects the width and the I/O variant of a load or store.
type Cast int

//go:generate go tool stringer -linecomment -type=Cast
const (
	CAST_WORD    = Cast(0)                   // word
	CAST_IO      = Cast(1)                   // io
	CAST_BYTE    = Cast(2)                   // byte
	CAST_BYTE_IO = Cast(CAST_BYTE | CAST_IO) // byteio
)

// castMap maps the parenthesised cast names to casts.
var castMap = map[string]Cast{
	"word":   CAST_WORD,
	"int":    CAST_WORD,
	"io":     CAST_IO,
	"wordio": CAST_IO,
	"byte":   CAST_BYTE,
	"byteio": CAST_BYTE_IO,
}

// ParseCast looks up a cast by name, without parentheses.
func ParseCast(name string) (cast Cast, ok bool) {
	cast, ok = castMap[name]
	return
}

// Byte is true for byte wide accesses.
func (cast Cast) Byte() bool {
	return cast&CAST_BYTE != 0
}

// IO is true for accesses that bypass the data cache.
func (cast Cast) IO() bool {
	return cast&CAST_IO != 0
}

func (cast Cast) suffix() (suffix string) {
	if cast.Byte() {
		suffix = "b"
	} else {
		suffix = "w"
	}
	if cast.IO() {
		suffix += "io"
	}
	return
}

// Load returns the load mnemonic for the cast.
func (cast Cast) Load() string {
	return "ld" + cast.suffix()
}

// Store returns the store mnemonic for the cast.
func (cast Cast) Store() string {
	return "st" + cast.suffix()
}
