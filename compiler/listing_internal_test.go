// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Listing", func() {
	It("should emit a minimal program", func() {
		text, err := Compile(`compile:
    const limit = 10
main:
    r1 = 5; r2 = r1 + 3
    r3 = limit
end
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal(`# Generated by shasm

# Setup
    .global         _start
    .equ            limit, 10

# Entry point
_start:
    movia           sp, LAST_RAM_WORD
    movi            r1, 5
    addi            r2, r1, 3
    movi            r3, limit
_end:
    br              _end

# End of Assembly Source
    .end
`))
	})

	It("should emit a banner only for sections with content", func() {
		text, err := Compile("compile:\nmain:\nend\nbyte flag\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("\n# Random Variables\nflag:\n"))
		Expect(text).NotTo(ContainSubstring("# Functions"))
		Expect(text).NotTo(ContainSubstring("# Word-Aligned Variables"))
		Expect(text).NotTo(ContainSubstring(".org"))

		text, err = Compile("compile:\nmain:\nend\nfunc f:\nend\nint x\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("\n# Functions\n\nf:\n"))
		Expect(text).To(ContainSubstring("\n# Word-Aligned Variables\n\n    .org            0x00001000\nx:\n"))
		Expect(text).NotTo(ContainSubstring("# Random Variables"))
	})

	It("should order sections and variables", func() {
		listing, err := (&Compiler{}).Compile(strings.NewReader(`compile:
main:
    call first
end
byte flag = 1
func first:
    call second
end
int counter
func second:
    // nothing to do
end
string name = "shasm"
`))
		Expect(err).NotTo(HaveOccurred())

		lines := slices.Collect(listing.Lines())
		index := func(line string) int {
			n := slices.Index(lines, line)
			Expect(n).To(BeNumerically(">=", 0), line)
			return n
		}

		Expect(index("# Setup")).To(BeNumerically("<", index("_start:")))
		Expect(index("_start:")).To(BeNumerically("<", index("    movia           sp, LAST_RAM_WORD")))
		Expect(index("    movia           sp, LAST_RAM_WORD")).To(BeNumerically("<", index("    call            first")))
		Expect(index("    call            first")).To(BeNumerically("<", index("_end:")))
		Expect(index("_end:") + 1).To(Equal(index("    br              _end")))
		Expect(index("# Functions")).To(BeNumerically("<", index("first:")))
		Expect(index("first:")).To(BeNumerically("<", index("second:")))
		Expect(index("second:")).To(BeNumerically("<", index("# Word-Aligned Variables")))
		Expect(index("# Word-Aligned Variables")).To(BeNumerically("<", index("counter:")))
		Expect(index("counter:")).To(BeNumerically("<", index("# Random Variables")))
		Expect(index("# Random Variables")).To(BeNumerically("<", index("flag:")))
		Expect(index("flag:")).To(BeNumerically("<", index("name:")))
		Expect(index("name:")).To(BeNumerically("<", index("# End of Assembly Source")))
		Expect(lines[len(lines)-1]).To(Equal("    .end"))

		Expect(lines).To(ContainElement("    # nothing to do"))
		Expect(lines).To(ContainElement("    ret"))
	})

	It("should discard the listing of a failed compilation", func() {
		text, err := Compile("compile:\nmain:\n    r1 = 5\n    r2 /= 3\nend\n")
		Expect(err).To(MatchError(ErrDivideImmediate))
		Expect(text).To(BeEmpty())
	})

	It("should be immutable once emitted", func() {
		listing, err := (&Compiler{}).Compile(strings.NewReader("compile:\nmain:\nend\n"))
		Expect(err).NotTo(HaveOccurred())

		Expect(func() { listing.Setup.Add(nil) }).To(Panic())
		Expect(func() { listing.Main.Add(nil) }).To(Panic())
	})

	It("should compile independent sources independently", func() {
		cc := &Compiler{}
		first, err := cc.Compile(strings.NewReader("compile:\nconst a = 1\nmain:\nif r1 < r2:\nend\nend\nint x\n"))
		Expect(err).NotTo(HaveOccurred())

		second, err := cc.Compile(strings.NewReader("compile:\nmain:\nif r1 < r2:\nend\nend\nint x\n"))
		Expect(err).NotTo(HaveOccurred())

		_, ok := second.Symbols.Constant("a")
		Expect(ok).To(BeFalse())
		Expect(second.String()).To(ContainSubstring("main_if1_t:"))
		Expect(first.String()).To(ContainSubstring("main_if1_t:"))
	})
})
