// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

// TokenType is the category of a lexed token.
type TokenType int

const (
	TOKEN_IDENT   = TokenType(0) // name, keyword or register
	TOKEN_NUMBER  = TokenType(1) // numeric literal, not yet validated
	TOKEN_CHAR    = TokenType(2) // 'c'
	TOKEN_STRING  = TokenType(3) // "..."
	TOKEN_EXPR    = TokenType(4) // $(...)
	TOKEN_COMMENT = TokenType(5) // rest of line after //
	TOKEN_OP      = TokenType(6) // operator or punctuation
)

// Token is a lexeme of a single source line.
type Token struct {
	Type TokenType
	Text string
	Col  int // 1-based column of the first character
}

// Is returns true if the token is the operator or identifier text.
func (tok Token) Is(text string) bool {
	return (tok.Type == TOKEN_OP || tok.Type == TOKEN_IDENT) && tok.Text == text
}

func (tok Token) String() string {
	switch tok.Type {
	case TOKEN_COMMENT:
		return "//" + tok.Text
	default:
		return tok.Text
	}
}

// operators, longest first.
var operators = []string{
	"?&=", "?|=", "?^=", "<<=", ">>=",
	"==", "!=", "<=", ">=", "<<", ">>", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "&=", "|=", "^=", "?&", "?|", "?^",
	"=", "+", "-", "*", "/", "&", "|", "^", "<", ">",
	"(", ")", "[", "]", ",", ":", ";",
}

// joinTokens reconstructs source-like text from tokens, for diagnostics.
func joinTokens(tokens []Token) (text string) {
	for n, tok := range tokens {
		if n > 0 {
			text += " "
		}
		text += tok.String()
	}
	return
}
