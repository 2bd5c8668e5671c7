package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src, "")
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func num(f float64) *float64 {
	return &f
}

func TestParseDeclaration(t *testing.T) {
	prog := mustParse(t, "int a, b=3, c;")
	want := &Program{Stats: []Stat{
		&MultipleDeclaration{Line: 1, VarType: "int", Declarations: []Declaration{
			{Name: "a"},
			{Name: "b", Value: num(3)},
			{Name: "c"},
		}},
	}}
	if !reflect.DeepEqual(prog, want) {
		t.Errorf("got %#v", prog.Stats[0])
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		src  string
		want Value
	}{
		{`cout << "Hello";`, StringValue("Hello")},
		{"cout << score;", IdentValue("score")},
		{"cout << 4.5;", NumberValue(4.5)},
	}
	for _, tt := range tests {
		prog := mustParse(t, tt.src)
		out, ok := prog.Stats[0].(*Output)
		if !ok {
			t.Fatalf("%q: got %T", tt.src, prog.Stats[0])
		}
		if out.Value != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.src, out.Value, tt.want)
		}
	}

	// a string "x" and an identifier x must stay distinguishable
	s := mustParse(t, `cout << "x";`).Stats[0].(*Output)
	id := mustParse(t, "cout << x;").Stats[0].(*Output)
	if s.Value == id.Value {
		t.Error("string and identifier operands are equal")
	}
}

func TestParseInput(t *testing.T) {
	prog := mustParse(t, "cin >> score;")
	want := &Input{Line: 1, Variable: "score"}
	if !reflect.DeepEqual(prog.Stats[0], want) {
		t.Errorf("got %#v", prog.Stats[0])
	}
}

func TestParseFunction(t *testing.T) {
	prog := mustParse(t, "int add(int a, int b) { return a; }")
	want := &FunctionDeclaration{
		Line:       1,
		ReturnType: "int",
		Name:       "add",
		Parameters: []Parameter{{Type: "int", Name: "a"}, {Type: "int", Name: "b"}},
		Body:       []BodyStat{&Return{Line: 1, Value: IdentValue("a")}},
	}
	if !reflect.DeepEqual(prog.Stats[0], want) {
		t.Errorf("got %#v", prog.Stats[0])
	}
}

func TestParseFunctionBody(t *testing.T) {
	src := `void main() {
    float score = 95.5, gpa;
    cout << "Enter score: ";
    cin >> score;
    return 0;
}`
	fn := mustParse(t, src).Stats[0].(*FunctionDeclaration)
	if len(fn.Parameters) != 0 || fn.Parameters == nil {
		t.Errorf("parameters = %#v, want empty", fn.Parameters)
	}
	types := []string{}
	lines := []int{}
	for _, stat := range fn.Body {
		types = append(types, stat.Type())
	}
	for _, stat := range fn.Body {
		switch s := stat.(type) {
		case *MultipleDeclaration:
			lines = append(lines, s.Line)
		case *Output:
			lines = append(lines, s.Line)
		case *Input:
			lines = append(lines, s.Line)
		case *Return:
			lines = append(lines, s.Line)
			if s.Value != NumberValue(0) {
				t.Errorf("return value %+v", s.Value)
			}
		}
	}
	wantTypes := []string{TYPE_MULTIPLE_DECLARATION, TYPE_OUTPUT, TYPE_INPUT, TYPE_RETURN}
	if !reflect.DeepEqual(types, wantTypes) {
		t.Errorf("body types %v, want %v", types, wantTypes)
	}
	if !reflect.DeepEqual(lines, []int{2, 3, 4, 5}) {
		t.Errorf("body lines %v", lines)
	}
}

func TestParseEmptyFunctionBody(t *testing.T) {
	fn := mustParse(t, "void f() {}").Stats[0].(*FunctionDeclaration)
	if fn.Body == nil || len(fn.Body) != 0 {
		t.Errorf("body = %#v, want empty", fn.Body)
	}
}

func TestParseClass(t *testing.T) {
	src := `class Student {
    private:
        int id, roll_number;
        float gpa;
    public:
        int getId() { return id; }
    private:
        int age;
};`
	class := mustParse(t, src).Stats[0].(*ClassDeclaration)
	if class.Name != "Student" || class.Line != 1 {
		t.Errorf("got %s at line %d", class.Name, class.Line)
	}

	var access []string
	var counts []int
	for _, section := range class.Body {
		access = append(access, section.Access)
		counts = append(counts, len(section.Members))
	}
	if !reflect.DeepEqual(access, []string{"private", "public", "private"}) {
		t.Errorf("sections %v", access)
	}
	if !reflect.DeepEqual(counts, []int{2, 1, 1}) {
		t.Errorf("member counts %v", counts)
	}
	if _, ok := class.Body[1].Members[0].(*FunctionDeclaration); !ok {
		t.Errorf("public member is %T", class.Body[1].Members[0])
	}
}

func TestParseClassEdgeCases(t *testing.T) {
	class := mustParse(t, "class E {};").Stats[0].(*ClassDeclaration)
	if class.Body == nil || len(class.Body) != 0 {
		t.Errorf("empty class body = %#v", class.Body)
	}

	class = mustParse(t, "class E { public: };").Stats[0].(*ClassDeclaration)
	if len(class.Body) != 1 || class.Body[0].Members == nil || len(class.Body[0].Members) != 0 {
		t.Errorf("empty section = %#v", class.Body)
	}
}

func TestParseLines(t *testing.T) {
	src := "int a;\n\ncout << a;\r\ncin >> a;\n\nclass A {};"
	prog := mustParse(t, src)
	want := []int{1, 3, 4, 6}
	got := []int{
		prog.Stats[0].(*MultipleDeclaration).Line,
		prog.Stats[1].(*Output).Line,
		prog.Stats[2].(*Input).Line,
		prog.Stats[3].(*ClassDeclaration).Line,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got lines %v, want %v", got, want)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	src := `class A { public: int x; void f(int y) { cout << y; } };
int main() { cin >> v; return 1; }`
	first := mustParse(t, src)
	second := mustParse(t, src)
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same source differ")
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		src      string
		line     int
		value    string
		eof      bool
		expected string
	}{
		{"int a", 0, "", true, "';'"},
		{"int a\nint b;", 2, "int", false, "';'"},
		{"cout << a", 0, "", true, "';'"},
		{`cout << "Welcome"` + "\ncout << a;", 2, "cout", false, "';'"},
		{"cin >> ;", 1, ";", false, "identifier"},
		{"void myFunc\n{ }", 2, "{", false, "';'"},
		{"class A { unprotected: int x; };", 1, "unprotected", false, "'}' or access specifier"},
		{"class A { public: int x; }", 0, "", true, "';'"},
		{"class A { public: cout << x; };", 1, "cout", false, ""},
		{"a = 3;", 1, "a", false, "statement"},
		{"return 0;", 1, "return", false, "statement"},
		{"int f() { return; }", 1, ";", false, "number or identifier"},
		{"int a = b;", 1, "b", false, "number"},
		{"int f(int a,) {}", 1, ")", false, "type"},
	}
	for _, tt := range tests {
		prog, err := Parse(tt.src, "")
		if prog != nil {
			t.Errorf("%q: got a program", tt.src)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v, want a syntax error", tt.src, err)
			continue
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("%q: error is not a *SyntaxError", tt.src)
		}
		if synErr.EOF() != tt.eof {
			t.Errorf("%q: EOF = %v", tt.src, synErr.EOF())
		}
		if !tt.eof && (synErr.Line != tt.line || synErr.Value != tt.value) {
			t.Errorf("%q: got line %d value %q, want line %d value %q", tt.src, synErr.Line, synErr.Value, tt.line, tt.value)
		}
		if tt.expected != "" && synErr.Expected != tt.expected {
			t.Errorf("%q: expected %q, want %q", tt.src, synErr.Expected, tt.expected)
		}
	}
}

func TestParseNumberOutOfRange(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	for _, src := range []string{
		"int a = " + huge + ";",
		"cout << " + huge + ";",
		"int f() { return " + huge + "; }",
	} {
		prog, err := Parse(src, "")
		var synErr *SyntaxError
		if prog != nil || !errors.As(err, &synErr) {
			t.Errorf("%.20q: got %v, %v", src, prog, err)
			continue
		}
		if synErr.Value != huge || synErr.Expected != "number within float64 range" {
			t.Errorf("%.20q: got %v", src, synErr)
		}
	}

	prog := mustParse(t, "int a = 179769313486231570000;")
	if d := prog.Stats[0].(*MultipleDeclaration).Declarations[0]; *d.Value != 179769313486231570000 {
		t.Errorf("got %v", *d.Value)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, src := range []string{"", "  \n\t\n"} {
		prog, err := Parse(src, "")
		if prog != nil || !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("%q: got %v, %v", src, prog, err)
		}
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("int a\nint b;", "main.cpp")
	want := "main.cpp: syntax error at line 2, token=TYPE, value='int', expected ';'"
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %s", err, want)
	}
	if !errors.Is(err, ErrUnexpectedToken) || errors.Is(err, ErrUnexpectedEOF) {
		t.Error("wrong sentinel for an unexpected token")
	}

	_, err = Parse("int a", "")
	if err == nil || err.Error() != "syntax error at EOF, expected ';'" {
		t.Errorf("got %v", err)
	}
}

func TestParseIllegalCharacters(t *testing.T) {
	prog, err := Parse("int a; @ cout << a;", "")
	if prog == nil || len(prog.Stats) != 2 {
		t.Fatalf("got %v, %v", prog, err)
	}
	if !errors.Is(err, lexer.ErrIllegalCharacter) || errors.Is(err, ErrSyntax) {
		t.Errorf("got %v, want only an illegal character error", err)
	}
}

func TestParseIllegalThenSyntaxError(t *testing.T) {
	// 23c lexes as NUMBER 23 plus an illegal c, the parser then fails on
	// the number where it wants a name
	src := `class Student {
    private:
        int id;
        int 23c;
};`
	prog, err := Parse(src, "")
	if prog != nil {
		t.Fatal("got a program")
	}
	if !errors.Is(err, ErrSyntax) || !errors.Is(err, lexer.ErrIllegalCharacter) {
		t.Errorf("got %v, want both error kinds", err)
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) && (synErr.Line != 4 || synErr.Value != "23") {
		t.Errorf("got %+v", synErr)
	}
	if ill := lexer.IllegalChars(err); len(ill) != 1 || ill[0].Char != 'c' {
		t.Errorf("illegal %v", ill)
	}
	if !strings.Contains(err.Error(), "illegal character 'c'") {
		t.Errorf("message %q", err.Error())
	}
}

func TestParseStat(t *testing.T) {
	lex := lexer.NewLexer("cin >> a; cout << a;", "")
	first := ParseStat(lex)
	if _, ok := first.(*Input); !ok {
		t.Fatalf("got %T", first)
	}
	if lex.LookAhead() != lexer.TOKEN_KW_COUT {
		t.Error("ParseStat consumed more than one statement")
	}
}

func TestParseConcurrent(t *testing.T) {
	srcs := []string{"int a;", "cout << 1;", "class A {};", "void f() {}"}
	done := make(chan *Program, len(srcs))
	for _, src := range srcs {
		go func(src string) {
			prog, _ := Parse(src, "")
			done <- prog
		}(src)
	}
	for range srcs {
		if prog := <-done; prog == nil || len(prog.Stats) != 1 {
			t.Errorf("got %v", prog)
		}
	}
}
