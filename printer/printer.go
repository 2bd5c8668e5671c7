package printer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	. "git.lolli.tech/lollipopkit/minicpp/compiler/ast"
)

const indentUnit = "  "

// Fprint writes prog as an indented outline: every node starts with a
// "Type: ..." line followed by its fields, child lists nest one level deeper.
func Fprint(w io.Writer, prog *Program) error {
	bw := bufio.NewWriter(w)
	p := &printer{w: bw}
	if prog != nil {
		for _, stat := range prog.Stats {
			p.node(stat)
		}
	}
	if p.err != nil {
		return p.err
	}
	return bw.Flush()
}

func Sprint(prog *Program) string {
	var buf bytes.Buffer
	Fprint(&buf, prog)
	return buf.String()
}

// SprintNode renders a single node at top level.
func SprintNode(n Node) string {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.node(n)
	return buf.String()
}

type printer struct {
	w     io.Writer
	level int
	err   error
}

func (p *printer) line(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat(indentUnit, p.level)+format+"\n", a...)
}

func (p *printer) nested(key string, fn func()) {
	p.line("%s:", key)
	p.level++
	fn()
	p.level--
}

func (p *printer) node(n Node) {
	p.line("Type: %s", n.Type())

	switch n := n.(type) {
	case *MultipleDeclaration:
		p.line("var_type: %s", n.VarType)
		p.nested("declarations", func() {
			for _, d := range n.Declarations {
				if d.Value == nil {
					p.line("- %s", d.Name)
				} else {
					p.line("- %s = %s", d.Name, formatNum(*d.Value))
				}
			}
		})
		p.line("line: %d", n.Line)
	case *Output:
		p.line("value: %s", n.Value)
		p.line("value_kind: %s", n.Value.Kind)
		p.line("line: %d", n.Line)
	case *Input:
		p.line("variable: %s", n.Variable)
		p.line("line: %d", n.Line)
	case *FunctionDeclaration:
		p.line("return_type: %s", n.ReturnType)
		p.line("name: %s", n.Name)
		p.nested("parameters", func() {
			for _, param := range n.Parameters {
				p.line("- %s %s", param.Type, param.Name)
			}
		})
		p.nested("body", func() {
			for _, stat := range n.Body {
				p.node(stat)
			}
		})
		p.line("line: %d", n.Line)
	case *Return:
		p.line("value: %s", n.Value)
		p.line("value_kind: %s", n.Value.Kind)
		p.line("line: %d", n.Line)
	case *ClassDeclaration:
		p.line("name: %s", n.Name)
		p.nested("body", func() {
			for _, section := range n.Body {
				p.node(section)
			}
		})
		p.line("line: %d", n.Line)
	case *AccessSection:
		p.line("access: %s", n.Access)
		p.nested("members", func() {
			for _, m := range n.Members {
				p.node(m)
			}
		})
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
