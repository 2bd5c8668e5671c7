package parser

import (
	"errors"

	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	. "git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
)

/* recursive descent parser */

// Parse parses a whole source text. Each call uses its own lexer, so
// concurrent calls on different inputs are safe.
//
// On a syntax error the program is nil and the error matches ErrSyntax.
// If the source parsed but contained illegal characters, the program is
// returned together with an error matching lexer.ErrIllegalCharacter.
func Parse(chunk, chunkName string) (prog *Program, err error) {
	lexer := NewLexer(chunk, chunkName)
	defer func() {
		if r := recover(); r != nil {
			synErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			prog = nil
			err = joinErrors(lexer.Illegal(), synErr)
		}
	}()

	prog = ParseProgram(lexer)
	if illegal := lexer.Illegal(); len(illegal) > 0 {
		err = joinErrors(illegal, nil)
	}
	return prog, err
}

// ParseProgram panics with *SyntaxError; use Parse unless you recover
// yourself.
func ParseProgram(lexer *Lexer) *Program {
	stats := make([]Stat, 0, 8)
	// program ::= statement {statement}
	stats = append(stats, ParseStat(lexer))
	for lexer.LookAhead() != TOKEN_EOF {
		stats = append(stats, ParseStat(lexer))
	}
	return &Program{Stats: stats}
}

func joinErrors(illegal []*IllegalCharError, synErr *SyntaxError) error {
	errs := make([]error, 0, len(illegal)+1)
	for _, e := range illegal {
		errs = append(errs, e)
	}
	if synErr != nil {
		errs = append(errs, synErr)
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
