package lexer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"git.lolli.tech/lollipopkit/minicpp/logger"
)

var reIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)
var reIdentifierTail = regexp.MustCompile(`^[a-zA-Z0-9_]+`)
var reNumber = regexp.MustCompile(`^[0-9]*\.?[0-9]+`)
var reString = regexp.MustCompile(`^"[^"]*"`)
var reNewLine = regexp.MustCompile("\r\n|\n|\r")

// Lexer produces tokens on demand. A Lexer belongs to a single parse and
// must not be shared between goroutines.
type Lexer struct {
	chunk     string // remaining source code
	chunkName string // source name
	line      int    // current line number
	ahead     Token
	hasAhead  bool
	illegal   []*IllegalCharError
}

func NewLexer(chunk, chunkName string) *Lexer {
	return &Lexer{chunk: chunk, chunkName: chunkName, line: 1}
}

func (self *Lexer) ChunkName() string {
	return self.chunkName
}

// Line returns the line the lexer is currently scanning.
func (self *Lexer) Line() int {
	return self.line
}

// Illegal returns every illegal character reported so far, in source order.
func (self *Lexer) Illegal() []*IllegalCharError {
	return self.illegal
}

// LookAhead returns the kind of the next token without consuming it.
func (self *Lexer) LookAhead() int {
	return self.Peek().Kind
}

// Peek returns the next token without consuming it.
func (self *Lexer) Peek() Token {
	if self.hasAhead {
		return self.ahead
	}
	self.ahead = self.scan()
	self.hasAhead = true
	return self.ahead
}

func (self *Lexer) NextToken() Token {
	if self.hasAhead {
		self.hasAhead = false
		return self.ahead
	}
	return self.scan()
}

// Tokens drains the lexer and returns every remaining token, EOF excluded.
func (self *Lexer) Tokens() []Token {
	tokens := make([]Token, 0, 16)
	for {
		tok := self.NextToken()
		if tok.Kind == TOKEN_EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (self *Lexer) scan() Token {
	for {
		self.skipWhiteSpaces()
		if len(self.chunk) == 0 {
			return Token{Line: self.line, Kind: TOKEN_EOF, Value: "EOF"}
		}

		switch self.chunk[0] {
		case '=':
			self.next(1)
			return self.token(TOKEN_OP_ASSIGN, "=")
		case ';':
			self.next(1)
			return self.token(TOKEN_SEP_SEMI, ";")
		case '(':
			self.next(1)
			return self.token(TOKEN_SEP_LPAREN, "(")
		case ')':
			self.next(1)
			return self.token(TOKEN_SEP_RPAREN, ")")
		case '{':
			self.next(1)
			return self.token(TOKEN_SEP_LCURLY, "{")
		case '}':
			self.next(1)
			return self.token(TOKEN_SEP_RCURLY, "}")
		case ':':
			self.next(1)
			return self.token(TOKEN_SEP_COLON, ":")
		case ',':
			self.next(1)
			return self.token(TOKEN_SEP_COMMA, ",")
		case '<':
			if self.test("<<") {
				self.next(2)
				return self.token(TOKEN_OP_SHL, "<<")
			}
		case '>':
			if self.test(">>") {
				self.next(2)
				return self.token(TOKEN_OP_SHR, ">>")
			}
		case '"':
			if tok, ok := self.scanString(); ok {
				return tok
			}
		}

		c := self.chunk[0]
		if isDigit(c) || c == '.' && len(self.chunk) > 1 && isDigit(self.chunk[1]) {
			return self.scanNumber()
		}
		if c == '_' || isLetter(c) {
			line := self.line
			word := self.scanIdentifier()
			if kind, found := keywords[word]; found {
				return Token{Line: line, Kind: kind, Value: word}
			}
			return Token{Line: line, Kind: TOKEN_ID, Value: word}
		}

		self.skipIllegal()
	}
}

func (self *Lexer) token(kind int, value string) Token {
	return Token{Line: self.line, Kind: kind, Value: value}
}

func (self *Lexer) next(n int) {
	self.chunk = self.chunk[n:]
}

func (self *Lexer) test(s string) bool {
	return strings.HasPrefix(self.chunk, s)
}

// skipIllegal reports the character under the cursor and drops exactly that
// one character.
func (self *Lexer) skipIllegal() {
	r, size := utf8.DecodeRuneInString(self.chunk)
	err := &IllegalCharError{ChunkName: self.chunkName, Char: r, Line: self.line}
	self.illegal = append(self.illegal, err)
	logger.W("%s", err.Error())
	self.next(size)
}

func (self *Lexer) skipWhiteSpaces() {
	for len(self.chunk) > 0 {
		if self.test("\r\n") {
			self.next(2)
			self.line += 1
		} else if isNewLine(self.chunk[0]) {
			self.next(1)
			self.line += 1
		} else if isWhiteSpace(self.chunk[0]) {
			self.next(1)
		} else {
			break
		}
	}
}

func (self *Lexer) scanIdentifier() string {
	return self.scanRe(reIdentifier)
}

// scanNumber reads `\d*\.?\d+`. An identifier run glued to the number (as in
// `23c` or `23abc`) is reported once, at its first character, and dropped
// whole. A literal too large for a float64 keeps Num at +Inf, see InRange.
func (self *Lexer) scanNumber() Token {
	line := self.line
	lit := self.scanRe(reNumber)
	num, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		logger.W("%s:%d: number %s out of range", self.chunkName, line, lit)
	}
	if len(self.chunk) > 0 && (self.chunk[0] == '_' || isLetter(self.chunk[0])) {
		self.skipIllegal()
		if run := reIdentifierTail.FindString(self.chunk); run != "" {
			self.next(len(run))
		}
	}
	return Token{Line: line, Kind: TOKEN_NUMBER, Value: lit, Num: num}
}

func (self *Lexer) scanRe(re *regexp.Regexp) string {
	if token := re.FindString(self.chunk); token != "" {
		self.next(len(token))
		return token
	}
	panic("unreachable!")
}

func (self *Lexer) scanString() (Token, bool) {
	str := reString.FindString(self.chunk)
	if str == "" {
		return Token{}, false
	}
	line := self.line
	self.next(len(str))
	self.line += len(reNewLine.FindAllString(str, -1))
	return Token{Line: line, Kind: TOKEN_STRING, Value: str[1 : len(str)-1]}, true
}

func isWhiteSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNewLine(c byte) bool {
	return c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
