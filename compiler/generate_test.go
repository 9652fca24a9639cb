// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/shasm/isa"
)

// mainBody compiles statements as the body of main, and returns the lines
// of the body.
func mainBody(lines ...string) (body []string, err error) {
	src := "compile:\nmain:\n" + strings.Join(lines, "\n") + "\nend\n"
	listing, err := (&Compiler{}).Compile(strings.NewReader(src))
	if err != nil {
		return
	}
	body = slices.Collect(listing.Main.Block.Lines())
	return
}

func TestRegisterExpression(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line   string
		expect string
	}){
		{"r1 = r2", isa.Format("mov", "r1", "r2")},
		{"r1 = 5", isa.Format("movi", "r1", "5")},
		{"r1 = -5", isa.Format("movi", "r1", "-5")},
		{"r1 = 'a'", isa.Format("movi", "r1", "'a'")},
		{"r1 = $(2 * 8)", isa.Format("movi", "r1", "16")},
		{"r1 = &buffer", isa.Format("movia", "r1", "buffer")},
		{"r4 = (byte) test", isa.Format("ldb", "r4", "test(r0)")},
		{"r3 = counter", isa.Format("ldw", "r3", "counter(r0)")},
		{"r5 = (io) &r6", isa.Format("ldwio", "r5", "0(r6)")},
		{"r4 = (byteio) &r5[4]", isa.Format("ldbio", "r4", "4(r5)")},
		{"r4 = (wordio) *r5[$(1 + 1)]", isa.Format("ldwio", "r4", "2(r5)")},
		{"r4 = &r6[test]", isa.Format("ldw", "r4", "test(r6)")},
		{"r5 = sp & 4", isa.Format("andi", "r5", "sp", "4")},
		{"r2 = r1 + 3", isa.Format("addi", "r2", "r1", "3")},
		{"r2 = r1 - r3", isa.Format("sub", "r2", "r1", "r3")},
		{"r2 = r1 * r3", isa.Format("mul", "r2", "r1", "r3")},
		{"r2 = r1 / r3", isa.Format("div", "r2", "r1", "r3")},
		{"r2 = r1 | 0x80", isa.Format("ori", "r2", "r1", "0x80")},
		{"r2 = r1 ^ r3", isa.Format("xor", "r2", "r1", "r3")},
		{"r2 = r1 >> r3", isa.Format("srl", "r2", "r1", "r3")},
		{"r1 <<= 2", isa.Format("slli", "r1", "r1", "2")},
		{"r5 /= r0", isa.Format("div", "r5", "r5", "r0")},
		{"r5 += r6", isa.Format("add", "r5", "r5", "r6")},
		{"r5 &= 0xFF", isa.Format("andi", "r5", "r5", "0xFF")},
		{"r5 ?|= 0xFF", isa.Format("orhi", "r5", "r5", "0xFF")},
		{"r5 ?&= 0xFF", isa.Format("andhi", "r5", "r5", "0xFF")},
		{"r1++", isa.Format("addi", "r1", "r1", "1")},
		{"r1--", isa.Format("subi", "r1", "r1", "1")},
		{"counter = r1", isa.Format("stw", "r1", "counter(r0)")},
		{"counter = (byte) r1", isa.Format("stb", "r1", "counter(r0)")},
		{"*r2 = r1", isa.Format("stw", "r1", "0(r2)")},
		{"&r2[8] = (io) r1", isa.Format("stwio", "r1", "8(r2)")},
		{"*r2[$(4*2)] = (byteio) r3", isa.Format("stbio", "r3", "8(r2)")},
		{"call foo", isa.Format("call", "foo")},
		{"// hello", isa.Indent + "# hello"},
	}

	for _, tc := range table {
		body, err := mainBody(tc.line)
		if !assert.NoError(err, tc.line) {
			continue
		}
		assert.Equal([]string{tc.expect}, body, tc.line)
	}
}

func TestRegisterExpressionErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		code Code
		kind Kind
	}){
		{"r1 < r2", ErrOperatorUnknown, KIND_SYNTAX},
		{"r1 /= 3", ErrDivideImmediate, KIND_SEMANTIC},
		{"r1 = r2 / 3", ErrDivideImmediate, KIND_SEMANTIC},
		{"r1 ?&= r2", ErrHighRegister, KIND_SEMANTIC},
		{"r1 = $(1 +)", ErrExpressionInvalid, KIND_SYNTAX},
		{"r1 = $(\"text\")", ErrExpressionInvalid, KIND_SYNTAX},
	}

	for _, tc := range table {
		_, err := mainBody(tc.line)
		assert.True(errors.Is(err, tc.code), "%v: %v", tc.line, err)

		var cerr *Error
		if assert.True(errors.As(err, &cerr), tc.line) {
			assert.Equal(tc.kind, cerr.Code.Kind(), tc.line)
		}

		var serr ErrSyntax
		if assert.True(errors.As(err, &serr), tc.line) {
			assert.Equal(3, serr.LineNo, tc.line)
			assert.Equal(tc.line, serr.Line)
		}
	}
}

func TestConstantLoad(t *testing.T) {
	assert := assert.New(t)

	src := "compile:\nconst limit = 10\nmain:\nr1 = limit\nr2 = (word) limit\nend\n"
	listing, err := (&Compiler{}).Compile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format("movi", "r1", "limit"),
		isa.Format("ldw", "r2", "limit(r0)"),
	}, slices.Collect(listing.Main.Block.Lines()))

	assert.Contains(slices.Collect(listing.Setup.Lines()), isa.Format(".equ", "limit", "10"))
}

func TestIfElse(t *testing.T) {
	assert := assert.New(t)

	body, err := mainBody(
		"if r1 < r2:",
		"    r3 = 1",
		"else",
		"    r3 = 2",
		"end",
	)
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format("bge", "r1", "r2", "main_if1_f"),
		"main_if1_t:",
		isa.Format("movi", "r3", "1"),
		isa.Format("br", "main_else1"),
		"main_if1_f:",
		isa.Format("movi", "r3", "2"),
		"main_else1:",
	}, body)
}

func TestElsePairsWithIf(t *testing.T) {
	assert := assert.New(t)

	body, err := mainBody(
		"if r1 < r2:",
		"end",
		"if r3 == r4:",
		"    r5 = 1",
		"else",
		"    r5 = 2",
		"end",
	)
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format("bge", "r1", "r2", "main_if1_f"),
		"main_if1_t:",
		"main_if1_f:",
		isa.Format("bne", "r3", "r4", "main_if2_f"),
		"main_if2_t:",
		isa.Format("movi", "r5", "1"),
		isa.Format("br", "main_else2"),
		"main_if2_f:",
		isa.Format("movi", "r5", "2"),
		"main_else2:",
	}, body)
}

func TestIfAnd(t *testing.T) {
	assert := assert.New(t)

	body, err := mainBody(
		"if r1 < r2 && r3 > r4:",
		"    r5 = 1",
		"end",
	)
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format("bge", "r1", "r2", "main_if1_c1_f"),
		"main_if1_c1_t:",
		isa.Format("ble", "r3", "r4", "main_if1_c2_f"),
		"main_if1_c2_t:",
		isa.Format("br", "main_if1_t"),
		"main_if1_c1_f:",
		"main_if1_c2_f:",
		isa.Format("br", "main_if1_f"),
		"main_if1_t:",
		isa.Format("movi", "r5", "1"),
		"main_if1_f:",
	}, body)
}

func TestWhile(t *testing.T) {
	assert := assert.New(t)

	body, err := mainBody(
		"while r1 != r0:",
		"    r1--",
		"end",
		"while true:",
		"    call poll",
		"end",
	)
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format("br", "main_while1_test"),
		"main_while1:",
		isa.Format("subi", "r1", "r1", "1"),
		"main_while1_test:",
		isa.Format("beq", "r1", "r0", "main_while1_f"),
		"main_while1_t:",
		isa.Format("br", "main_while1"),
		"main_while1_f:",
		"main_while2:",
		isa.Format("call", "poll"),
		isa.Format("br", "main_while2"),
	}, body)
}

func TestNested(t *testing.T) {
	assert := assert.New(t)

	body, err := mainBody(
		"while true:",
		"    if r1 == r2:",
		"        if r3 == r4:",
		"            r5++",
		"        end",
		"    end",
		"    if r1 >= r2:",
		"    end",
		"end",
	)
	require.NoError(t, err)

	assert.Equal([]string{
		"main_while1:",
		isa.Format("bne", "r1", "r2", "main_if1_f"),
		"main_if1_t:",
		isa.Format("bne", "r3", "r4", "main_if2_f"),
		"main_if2_t:",
		isa.Format("addi", "r5", "r5", "1"),
		"main_if2_f:",
		"main_if1_f:",
		isa.Format("blt", "r1", "r2", "main_if3_f"),
		"main_if3_t:",
		"main_if3_f:",
		isa.Format("br", "main_while1"),
	}, body)
}

func TestLabelsPerFunction(t *testing.T) {
	assert := assert.New(t)

	src := `compile:
main:
    if r1 < r2:
    end
    if r1 < r2:
    end
end
func helper:
    if r1 < r2:
    end
    while true:
    end
end
`
	cc := &Compiler{}
	listing, err := cc.Compile(strings.NewReader(src))
	require.NoError(t, err)

	text := listing.String()
	for _, label := range []string{"main_if1_t:", "main_if2_t:", "helper_if1_t:", "helper_while1:"} {
		assert.Equal(1, strings.Count(text, "\n"+label+"\n"), label)
	}
	assert.NotContains(text, "main_if3")
	assert.NotContains(text, "helper_if2")

	// Counters restart with each compilation.
	again, err := cc.Compile(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(text, again.String())
}

func TestFunction(t *testing.T) {
	assert := assert.New(t)

	src := "compile:\nmain:\ncall double\nend\nfunc double:\nr2 = r2 + r2\nend\n"
	listing, err := (&Compiler{}).Compile(strings.NewReader(src))
	require.NoError(t, err)

	if assert.Len(listing.Functions, 1) {
		assert.Equal([]string{
			"double:",
			isa.Format("add", "r2", "r2", "r2"),
			isa.Format("ret"),
		}, slices.Collect(listing.Functions[0].Lines()))
	}
}

func TestStructuralErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src    string
		code   Code
		lineno int // zero for failures found at the end of the source
	}){
		{"", ErrCompileMissing, 0},
		{"main:\nend\n", ErrCompileMissing, 0},
		{"compile:\n", ErrMainMissing, 0},
		{"compile:\ncompile:\nmain:\nend\n", ErrCompileDuplicate, 2},
		{"compile:\nmain:\nend\nmain:\nend\n", ErrMainDuplicate, 4},
		{"compile:\nmain:\nend\nfunc f:\nend\nfunc f:\nend\n", ErrFunctionDuplicate, 6},
		{"compile:\nmain:\nend\nend\n", ErrStackEmpty, 4},
		{"compile:\nmain:\nelse\nend\n", ErrStackEmpty, 3},
		{"compile:\nmain:\nwhile true:\nelse\nend\nend\n", ErrStackMismatch, 4},
		{"compile:\nmain:\nif r1 < r2:\nfunc f:\nend\n", ErrBlockUnclosed, 4},
		{"compile:\nmain:\nwhile true:\n", ErrBlockUnclosed, 0},
		{"compile:\nr1 = 5\nmain:\nend\n", ErrOutsideBlock, 2},
		{"compile:\nif r1 < r2:\nend\nmain:\nend\n", ErrOutsideBlock, 2},
		{"compile:\nmain:\nend\nwhile true:\nend\n", ErrOutsideBlock, 4},
		{"compile:\nmain:\nconst x = 1\nend\n", ErrConstOutsideCompile, 3},
	}

	for _, tc := range table {
		_, err := Compile(tc.src)
		assert.True(errors.Is(err, tc.code), "%q: %v", tc.src, err)
		assert.Equal(KIND_STRUCTURAL, tc.code.Kind())

		var serr ErrSyntax
		if tc.lineno == 0 {
			assert.False(errors.As(err, &serr), "%q: %v", tc.src, err)
		} else if assert.True(errors.As(err, &serr), "%q: %v", tc.src, err) {
			assert.Equal(tc.lineno, serr.LineNo, tc.src)
		}
	}
}

func TestMainColonWarning(t *testing.T) {
	assert := assert.New(t)

	cc := &Compiler{}
	_, err := cc.Compile(strings.NewReader("compile:\nmain\nend\n"))
	assert.NoError(err)
	if assert.Len(cc.Warnings, 1) {
		assert.True(errors.Is(cc.Warnings[0], ErrExpected))
		var serr ErrSyntax
		if assert.True(errors.As(cc.Warnings[0], &serr)) {
			assert.Equal(2, serr.LineNo)
		}
	}

	_, err = cc.Compile(strings.NewReader("compile:\nmain:\nend\n"))
	assert.NoError(err)
	assert.Empty(cc.Warnings)
}

func TestVariables(t *testing.T) {
	assert := assert.New(t)

	src := `compile:
    const N = 4
main:
end
int a
byte b
int[N] c
string s = "hi"
var[$(N*2)] buf
int d = 1, 2
byte e = 'x'
byte[$(N+1)] f
`
	listing, err := (&Compiler{}).Compile(strings.NewReader(src))
	require.NoError(t, err)

	var aligned, other []string
	for _, vr := range listing.Aligned {
		aligned = slices.AppendSeq(aligned, vr.Lines())
	}
	for _, vr := range listing.Default {
		other = slices.AppendSeq(other, vr.Lines())
	}

	assert.Equal([]string{
		"a:", isa.Format(".skip", "4"),
		"c:", isa.Format(".skip", "16"),
		"d:", isa.Format(".word", "1", "2"),
	}, aligned)
	assert.Equal([]string{
		"b:", isa.Format(".skip", "1"),
		"s:", isa.Format(".asciz", `"hi"`),
		"buf:", isa.Format(".skip", "8"),
		"e:", isa.Format(".byte", "'x'"),
		"f:", isa.Format(".skip", "5"),
	}, other)

	storage, ok := listing.Symbols.Variable("c")
	assert.True(ok)
	assert.Equal(16, storage.Size)

	storage, ok = listing.Symbols.Variable("s")
	assert.True(ok)
	assert.Equal(3, storage.Size)

	storage, ok = listing.Symbols.Variable("d")
	assert.True(ok)
	assert.Equal(8, storage.Size)
	assert.Equal([]string{"1", "2"}, storage.Init)
}

func TestVariableErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		src  string
		code Code
	}){
		{"compile:\nmain:\nend\nint a\nbyte a\n", ErrVariableDuplicate},
		{"compile:\nmain:\nend\nint[0] z\n", ErrSizeInvalid},
		{"compile:\nmain:\nend\nint[$(2-5)] z\n", ErrSizeInvalid},
		{"compile:\nmain:\nend\nint[$(1<<62)] z\n", ErrSizeInvalid},
		{"compile:\nmain:\nend\nint[$(1<<30)] z\n", ErrSizeInvalid},
		{"compile:\nmain:\nend\nbyte[$(1<<32)] z\n", ErrSizeInvalid},
		{"compile:\nmain:\nend\nvar[unknown] z\n", ErrSizeInvalid},
		{"compile:\nconst name = \"x\"\nmain:\nend\nvar[name] z\n", ErrSizeInvalid},
	}

	for _, tc := range table {
		_, err := Compile(tc.src)
		assert.True(errors.Is(err, tc.code), "%q: %v", tc.src, err)
	}
}

func TestConstants(t *testing.T) {
	assert := assert.New(t)

	src := "compile:\n// limits\nconst x = 1\nconst x = 2\nconst y = $(x * 4)\nmain:\nend\n"
	listing, err := (&Compiler{}).Compile(strings.NewReader(src))
	require.NoError(t, err)

	value, ok := listing.Symbols.Constant("x")
	assert.True(ok)
	assert.Equal("2", value)

	value, ok = listing.Symbols.Constant("y")
	assert.True(ok)
	assert.Equal("8", value)

	assert.Equal([]string{
		isa.Format(".global", "_start"),
		isa.Indent + "# limits",
		isa.Format(".equ", "x", "1"),
		isa.Format(".equ", "x", "2"),
		isa.Format(".equ", "y", "8"),
	}, slices.Collect(listing.Setup.Lines()))
}

func TestPredefine(t *testing.T) {
	assert := assert.New(t)

	cc := &Compiler{}
	cc.Predefine("BASE", "0x100")
	cc.Predefine("WORDS", "$(2 * 2)")

	src := "compile:\nconst TOP = $(BASE + WORDS * 4)\nmain:\nr1 = BASE\nend\nint[WORDS] table\n"
	listing, err := cc.Compile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal([]string{
		isa.Format(".global", "_start"),
		isa.Format(".equ", "BASE", "0x100"),
		isa.Format(".equ", "WORDS", "4"),
		isa.Format(".equ", "TOP", "272"),
	}, slices.Collect(listing.Setup.Lines()))

	assert.Equal([]string{isa.Format("movi", "r1", "BASE")}, slices.Collect(listing.Main.Block.Lines()))

	storage, ok := listing.Symbols.Variable("table")
	assert.True(ok)
	assert.Equal(16, storage.Size)
}
