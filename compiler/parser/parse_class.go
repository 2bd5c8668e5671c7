package parser

import (
	"strings"

	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	. "git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
)

// class_declaration ::= class ID ‘{’ class_body ‘}’ ‘;’
// class_body ::= {access_specifier_section}
func parseClassDecl(lexer *Lexer) *ClassDeclaration {
	kw := expect(lexer, TOKEN_KW_CLASS, "class")
	name := expect(lexer, TOKEN_ID, "identifier")
	expect(lexer, TOKEN_SEP_LCURLY, "'{'")

	// sections are kept apart even when an access keyword repeats
	body := make([]*AccessSection, 0, 3)
	for _isAccessSpecifier(lexer.LookAhead()) {
		body = append(body, parseAccessSection(lexer))
	}

	expect(lexer, TOKEN_SEP_RCURLY, "'}' or access specifier")
	expect(lexer, TOKEN_SEP_SEMI, "';'")
	return &ClassDeclaration{Line: kw.Line, Name: name.Value, Body: body}
}

// access_specifier_section ::= access_specifier ‘:’ member_list
// member_list ::= {declaration | function_declaration}
func parseAccessSection(lexer *Lexer) *AccessSection {
	access := lexer.NextToken()
	expect(lexer, TOKEN_SEP_COLON, "':'")

	members := make([]Member, 0, 4)
	for lexer.LookAhead() == TOKEN_TYPE {
		members = append(members, parseTypedDecl(lexer))
	}
	return &AccessSection{Access: strings.ToLower(access.Value), Members: members}
}

// access_specifier ::= public | private | protected
func _isAccessSpecifier(tokenKind int) bool {
	switch tokenKind {
	case TOKEN_KW_PUBLIC, TOKEN_KW_PRIVATE, TOKEN_KW_PROTECTED:
		return true
	}
	return false
}
