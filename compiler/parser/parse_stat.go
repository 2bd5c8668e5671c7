package parser

import (
	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	. "git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
)

// declOrFunc is what a statement starting with `TYPE ID` turns into.
type declOrFunc interface {
	Stat
	Member
}

// statement ::= declaration | cout_statement | cin_statement | function_declaration | class_declaration
func ParseStat(lexer *Lexer) Stat {
	switch lexer.LookAhead() {
	case TOKEN_TYPE:
		return parseTypedDecl(lexer)
	case TOKEN_KW_COUT:
		return parseCoutStat(lexer)
	case TOKEN_KW_CIN:
		return parseCinStat(lexer)
	case TOKEN_KW_CLASS:
		return parseClassDecl(lexer)
	default:
		panic(newSyntaxError(lexer.ChunkName(), lexer.NextToken(), "statement"))
	}
}

// declaration and function_declaration share the `TYPE ID` prefix; the
// token after the name picks the production.
func parseTypedDecl(lexer *Lexer) declOrFunc {
	typ := expect(lexer, TOKEN_TYPE, "type")
	name := expect(lexer, TOKEN_ID, "identifier")
	if lexer.LookAhead() == TOKEN_SEP_LPAREN {
		return finishFuncDecl(lexer, typ, name)
	}
	return finishDeclaration(lexer, typ, name)
}

// declaration ::= TYPE variable_list ‘;’
// variable_list ::= variable_declaration {‘,’ variable_declaration}
func finishDeclaration(lexer *Lexer, typ, name Token) *MultipleDeclaration {
	decls := make([]Declaration, 0, 4)
	decls = append(decls, finishVarDecl(lexer, name))
	for lexer.LookAhead() == TOKEN_SEP_COMMA {
		lexer.NextToken()
		decls = append(decls, finishVarDecl(lexer, expect(lexer, TOKEN_ID, "identifier")))
	}
	expect(lexer, TOKEN_SEP_SEMI, "';'")

	return &MultipleDeclaration{
		Line:         typ.Line,
		VarType:      typ.Value,
		Declarations: decls,
	}
}

// variable_declaration ::= ID [‘=’ NUMBER]
func finishVarDecl(lexer *Lexer, name Token) Declaration {
	if lexer.LookAhead() != TOKEN_OP_ASSIGN {
		return Declaration{Name: name.Value}
	}
	lexer.NextToken()
	num := number(lexer, expect(lexer, TOKEN_NUMBER, "number"))
	return Declaration{Name: name.Value, Value: &num}
}

// function_declaration ::= TYPE ID ‘(’ [parameter_list] ‘)’ ‘{’ function_body ‘}’
func finishFuncDecl(lexer *Lexer, typ, name Token) *FunctionDeclaration {
	expect(lexer, TOKEN_SEP_LPAREN, "'('")
	params := parseParameterList(lexer)
	expect(lexer, TOKEN_SEP_RPAREN, "')'")
	expect(lexer, TOKEN_SEP_LCURLY, "'{'")
	body := parseFuncBody(lexer)
	expect(lexer, TOKEN_SEP_RCURLY, "'}'")

	return &FunctionDeclaration{
		Line:       typ.Line,
		ReturnType: typ.Value,
		Name:       name.Value,
		Parameters: params,
		Body:       body,
	}
}

// parameter_list ::= TYPE ID {‘,’ TYPE ID}
func parseParameterList(lexer *Lexer) []Parameter {
	params := make([]Parameter, 0, 4)
	if lexer.LookAhead() == TOKEN_SEP_RPAREN {
		return params
	}
	params = append(params, parseParameter(lexer))
	for lexer.LookAhead() == TOKEN_SEP_COMMA {
		lexer.NextToken()
		params = append(params, parseParameter(lexer))
	}
	return params
}

func parseParameter(lexer *Lexer) Parameter {
	typ := expect(lexer, TOKEN_TYPE, "type")
	name := expect(lexer, TOKEN_ID, "identifier")
	return Parameter{Type: typ.Value, Name: name.Value}
}

// function_body ::= {statement | return_statement}
func parseFuncBody(lexer *Lexer) []BodyStat {
	body := make([]BodyStat, 0, 8)
	for lexer.LookAhead() != TOKEN_SEP_RCURLY {
		if lexer.LookAhead() == TOKEN_KW_RETURN {
			body = append(body, parseReturnStat(lexer))
		} else {
			body = append(body, ParseStat(lexer))
		}
	}
	return body
}

// return_statement ::= return expression ‘;’
// expression ::= NUMBER | ID
func parseReturnStat(lexer *Lexer) *Return {
	kw := expect(lexer, TOKEN_KW_RETURN, "return")
	tok := lexer.NextToken()
	var val Value
	switch tok.Kind {
	case TOKEN_NUMBER:
		val = NumberValue(number(lexer, tok))
	case TOKEN_ID:
		val = IdentValue(tok.Value)
	default:
		panic(newSyntaxError(lexer.ChunkName(), tok, "number or identifier"))
	}
	expect(lexer, TOKEN_SEP_SEMI, "';'")
	return &Return{Line: kw.Line, Value: val}
}

// cout_statement ::= cout ‘<<’ output_item ‘;’
// output_item ::= STRING | ID | NUMBER
func parseCoutStat(lexer *Lexer) *Output {
	kw := expect(lexer, TOKEN_KW_COUT, "cout")
	expect(lexer, TOKEN_OP_SHL, "'<<'")
	tok := lexer.NextToken()
	var val Value
	switch tok.Kind {
	case TOKEN_STRING:
		val = StringValue(tok.Value)
	case TOKEN_ID:
		val = IdentValue(tok.Value)
	case TOKEN_NUMBER:
		val = NumberValue(number(lexer, tok))
	default:
		panic(newSyntaxError(lexer.ChunkName(), tok, "string, identifier or number"))
	}
	expect(lexer, TOKEN_SEP_SEMI, "';'")
	return &Output{Line: kw.Line, Value: val}
}

// cin_statement ::= cin ‘>>’ ID ‘;’
func parseCinStat(lexer *Lexer) *Input {
	kw := expect(lexer, TOKEN_KW_CIN, "cin")
	expect(lexer, TOKEN_OP_SHR, "'>>'")
	name := expect(lexer, TOKEN_ID, "identifier")
	expect(lexer, TOKEN_SEP_SEMI, "';'")
	return &Input{Line: kw.Line, Variable: name.Value}
}

// number rejects literals that overflow a float64, they cannot be encoded.
func number(lexer *Lexer, tok Token) float64 {
	if !tok.InRange() {
		panic(newSyntaxError(lexer.ChunkName(), tok, "number within float64 range"))
	}
	return tok.Num
}

func expect(lexer *Lexer, kind int, what string) Token {
	tok := lexer.NextToken()
	if tok.Kind != kind {
		panic(newSyntaxError(lexer.ChunkName(), tok, what))
	}
	return tok
}
