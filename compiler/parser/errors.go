package parser

import (
	"errors"
	"fmt"

	"git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax          = errors.New("syntax error")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
)

// SyntaxError describes the token at which parsing stopped.
type SyntaxError struct {
	ChunkName string
	Line      int
	Kind      int    // token kind, TOKEN_EOF at end of input
	Value     string // literal text of the token
	Expected  string
}

func newSyntaxError(chunkName string, tok lexer.Token, expected string) *SyntaxError {
	return &SyntaxError{
		ChunkName: chunkName,
		Line:      tok.Line,
		Kind:      tok.Kind,
		Value:     tok.Value,
		Expected:  expected,
	}
}

func (e *SyntaxError) EOF() bool {
	return e.Kind == lexer.TOKEN_EOF
}

func (e *SyntaxError) Error() string {
	var msg string
	if e.EOF() {
		msg = "syntax error at EOF"
	} else {
		msg = fmt.Sprintf("syntax error at line %d, token=%s, value='%s'",
			e.Line, lexer.TokenName(e.Kind), e.Value)
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	if e.ChunkName != "" {
		msg = e.ChunkName + ": " + msg
	}
	return msg
}

func (e *SyntaxError) Unwrap() []error {
	if e.EOF() {
		return []error{ErrSyntax, ErrUnexpectedEOF}
	}
	return []error{ErrSyntax, ErrUnexpectedToken}
}
