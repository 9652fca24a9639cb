// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatcher", func() {
	var (
		mockCtrl *gomock.Controller
		handler  *MockHandler
		tokens   []Token
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		handler = NewMockHandler(mockCtrl)

		var err error
		tokens, err = Lex("a b c d")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should grow the candidate one token at a time", func() {
		gomock.InOrder(
			handler.EXPECT().Matches(tokens[:1], tokens[1:]).Return(false),
			handler.EXPECT().Matches(tokens[:2], tokens[2:]).Return(false),
			handler.EXPECT().Matches(tokens[:3], tokens[3:]).Return(false),
			handler.EXPECT().Matches(tokens[:4], tokens[4:]).Return(false),
		)

		stmts, err := dispatch([]Handler{handler}, tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(stmts).To(BeEmpty())
	})

	It("should restart the candidate after a statement", func() {
		stmt := &CallStmt{Name: "ab"}
		gomock.InOrder(
			handler.EXPECT().Matches(tokens[:1], tokens[1:]).Return(false),
			handler.EXPECT().Matches(tokens[:2], tokens[2:]).Return(true),
			handler.EXPECT().Parse(tokens[:2], tokens[2:]).Return(stmt, 1, nil),
			handler.EXPECT().Matches(tokens[3:4], tokens[4:]).Return(false),
		)

		stmts, err := dispatch([]Handler{handler}, tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(stmts).To(Equal([]Stmt{stmt}))
	})

	It("should offer the candidate in priority order", func() {
		second := NewMockHandler(mockCtrl)
		gomock.InOrder(
			handler.EXPECT().Matches(tokens[:1], tokens[1:]).Return(false),
			second.EXPECT().Matches(tokens[:1], tokens[1:]).Return(true),
			second.EXPECT().Parse(tokens[:1], tokens[1:]).Return(nil, 3, nil),
		)

		stmts, err := dispatch([]Handler{handler, second}, tokens)
		Expect(err).NotTo(HaveOccurred())
		Expect(stmts).To(BeEmpty())
	})

	It("should stop at the first failure", func() {
		handler.EXPECT().Matches(tokens[:1], tokens[1:]).Return(true)
		handler.EXPECT().Parse(tokens[:1], tokens[1:]).Return(nil, 0, ErrTrailing.With("b"))

		_, err := dispatch([]Handler{handler}, tokens)
		Expect(err).To(MatchError(ErrTrailing))
	})

	It("should use the handlers of the compiler", func() {
		handler.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

		cc := &Compiler{Handlers: []Handler{handler}}
		_, err := cc.Compile(strings.NewReader("compile:\nmain:\nend\n"))
		Expect(err).To(MatchError(ErrCompileMissing))
	})
})
