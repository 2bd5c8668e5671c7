package lexer

import (
	"errors"
	"fmt"
)

// ErrIllegalCharacter is wrapped by every IllegalCharError.
var ErrIllegalCharacter = errors.New("illegal character")

// IllegalCharError reports one source character that matches no token rule.
type IllegalCharError struct {
	ChunkName string
	Char      rune
	Line      int
}

func (e *IllegalCharError) Error() string {
	if e.ChunkName == "" {
		return fmt.Sprintf("illegal character '%c' at line %d", e.Char, e.Line)
	}
	return fmt.Sprintf("%s:%d: illegal character '%c'", e.ChunkName, e.Line, e.Char)
}

func (e *IllegalCharError) Unwrap() error {
	return ErrIllegalCharacter
}

// IllegalChars collects the illegal characters carried by err, which may be
// a single *IllegalCharError or several joined with errors.Join.
func IllegalChars(err error) []*IllegalCharError {
	var found []*IllegalCharError
	var ice *IllegalCharError
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			found = append(found, IllegalChars(e)...)
		}
		return found
	}
	if errors.As(err, &ice) {
		found = append(found, ice)
	}
	return found
}
