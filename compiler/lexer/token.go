package lexer

import (
	"fmt"
	"math"
)

// token kind
const (
	TOKEN_EOF = iota
	TOKEN_TYPE
	TOKEN_ID
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_OP_ASSIGN
	TOKEN_SEP_SEMI
	TOKEN_OP_SHL
	TOKEN_OP_SHR
	TOKEN_SEP_LPAREN
	TOKEN_SEP_RPAREN
	TOKEN_SEP_LCURLY
	TOKEN_SEP_RCURLY
	TOKEN_SEP_COLON
	TOKEN_SEP_COMMA
	TOKEN_KW_CLASS
	TOKEN_KW_PUBLIC
	TOKEN_KW_PRIVATE
	TOKEN_KW_PROTECTED
	TOKEN_KW_COUT
	TOKEN_KW_CIN
	TOKEN_KW_RETURN
)

var tokenNames = map[int]string{
	TOKEN_EOF:          "EOF",
	TOKEN_TYPE:         "TYPE",
	TOKEN_ID:           "ID",
	TOKEN_NUMBER:       "NUMBER",
	TOKEN_STRING:       "STRING",
	TOKEN_OP_ASSIGN:    "EQUALS",
	TOKEN_SEP_SEMI:     "SEMICOLON",
	TOKEN_OP_SHL:       "LSHIFT",
	TOKEN_OP_SHR:       "RSHIFT",
	TOKEN_SEP_LPAREN:   "LPAREN",
	TOKEN_SEP_RPAREN:   "RPAREN",
	TOKEN_SEP_LCURLY:   "LBRACE",
	TOKEN_SEP_RCURLY:   "RBRACE",
	TOKEN_SEP_COLON:    "COLON",
	TOKEN_SEP_COMMA:    "COMMA",
	TOKEN_KW_CLASS:     "CLASS",
	TOKEN_KW_PUBLIC:    "PUBLIC",
	TOKEN_KW_PRIVATE:   "PRIVATE",
	TOKEN_KW_PROTECTED: "PROTECTED",
	TOKEN_KW_COUT:      "COUT",
	TOKEN_KW_CIN:       "CIN",
	TOKEN_KW_RETURN:    "RETURN",
}

// TokenName returns the upper-case name of a token kind, e.g. "SEMICOLON".
func TokenName(kind int) string {
	name, ok := tokenNames[kind]
	if !ok {
		return "unknown"
	}
	return name
}

var keywords = map[string]int{
	"int":       TOKEN_TYPE,
	"float":     TOKEN_TYPE,
	"void":      TOKEN_TYPE,
	"class":     TOKEN_KW_CLASS,
	"public":    TOKEN_KW_PUBLIC,
	"private":   TOKEN_KW_PRIVATE,
	"protected": TOKEN_KW_PROTECTED,
	"cout":      TOKEN_KW_COUT,
	"cin":       TOKEN_KW_CIN,
	"return":    TOKEN_KW_RETURN,
}

// Token is a single lexical unit. Num is only meaningful for TOKEN_NUMBER.
type Token struct {
	Line  int
	Kind  int
	Value string
	Num   float64
}

// InRange reports whether a NUMBER literal fits in a float64.
func (t Token) InRange() bool {
	return !math.IsInf(t.Num, 0)
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q line %d", TokenName(t.Kind), t.Value, t.Line)
}
