package ast

/*
program   ::= statement {statement}
statement ::= declaration | cout_statement | cin_statement
            | function_declaration | class_declaration
*/

// Node is implemented by every syntax node. The set is closed: only the
// types in this package satisfy it.
type Node interface {
	Type() string
	node()
}

// Stat is a node allowed at top level and inside function bodies.
type Stat interface {
	BodyStat
	stat()
}

// BodyStat is a node allowed inside a function body: any Stat or a *Return.
type BodyStat interface {
	Node
	bodyStat()
}

// Member is a node allowed inside an access section.
type Member interface {
	Node
	member()
}

const (
	TYPE_MULTIPLE_DECLARATION = "multiple_declaration"
	TYPE_OUTPUT               = "output"
	TYPE_INPUT                = "input"
	TYPE_FUNCTION_DECLARATION = "function_declaration"
	TYPE_RETURN               = "return"
	TYPE_CLASS_DECLARATION    = "class_declaration"
	TYPE_ACCESS_SECTION       = "access_section"
)

// Program is the parse result: top-level statements in source order.
type Program struct {
	Stats []Stat
}

// declaration          ::= TYPE variable_list ‘;’
// variable_list        ::= variable_declaration {‘,’ variable_declaration}
// variable_declaration ::= ID [‘=’ NUMBER]
type MultipleDeclaration struct {
	Line         int
	VarType      string
	Declarations []Declaration
}

type Declaration struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"` // nil when there is no initializer
}

// cout_statement ::= cout ‘<<’ output_item ‘;’
// output_item    ::= STRING | ID | NUMBER
type Output struct {
	Line  int
	Value Value
}

// cin_statement ::= cin ‘>>’ ID ‘;’
type Input struct {
	Line     int
	Variable string
}

// function_declaration ::= TYPE ID ‘(’ [parameter_list] ‘)’ ‘{’ function_body ‘}’
// parameter_list       ::= TYPE ID {‘,’ TYPE ID}
// function_body        ::= {statement | return_statement}
type FunctionDeclaration struct {
	Line       int
	ReturnType string
	Name       string
	Parameters []Parameter
	Body       []BodyStat
}

type Parameter struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// return_statement ::= return expression ‘;’
// expression       ::= NUMBER | ID
type Return struct {
	Line  int
	Value Value
}

// class_declaration ::= class ID ‘{’ {access_specifier_section} ‘}’ ‘;’
type ClassDeclaration struct {
	Line int
	Name string
	Body []*AccessSection
}

// access_specifier_section ::= (public | private | protected) ‘:’ {declaration | function_declaration}
type AccessSection struct {
	Access  string // "public", "private" or "protected"
	Members []Member
}

func (*MultipleDeclaration) Type() string { return TYPE_MULTIPLE_DECLARATION }
func (*Output) Type() string              { return TYPE_OUTPUT }
func (*Input) Type() string               { return TYPE_INPUT }
func (*FunctionDeclaration) Type() string { return TYPE_FUNCTION_DECLARATION }
func (*Return) Type() string              { return TYPE_RETURN }
func (*ClassDeclaration) Type() string    { return TYPE_CLASS_DECLARATION }
func (*AccessSection) Type() string       { return TYPE_ACCESS_SECTION }

func (*MultipleDeclaration) node() {}
func (*Output) node()              {}
func (*Input) node()               {}
func (*FunctionDeclaration) node() {}
func (*Return) node()              {}
func (*ClassDeclaration) node()    {}
func (*AccessSection) node()       {}

func (*MultipleDeclaration) stat() {}
func (*Output) stat()              {}
func (*Input) stat()               {}
func (*FunctionDeclaration) stat() {}
func (*ClassDeclaration) stat()    {}

func (*MultipleDeclaration) bodyStat() {}
func (*Output) bodyStat()              {}
func (*Input) bodyStat()               {}
func (*FunctionDeclaration) bodyStat() {}
func (*ClassDeclaration) bodyStat()    {}
func (*Return) bodyStat()              {}

func (*MultipleDeclaration) member() {}
func (*FunctionDeclaration) member() {}
