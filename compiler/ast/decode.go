package ast

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJson = errors.New("invalid json")
	ErrUnknownNode = errors.New("unknown node type")
	ErrMisplaced   = errors.New("node not allowed here")
)

// Decode rebuilds a program from the JSON produced by Encode.
func Decode(data []byte) (*Program, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJson
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: program must be an array", ErrInvalidJson)
	}

	items := root.Array()
	prog := &Program{Stats: make([]Stat, 0, len(items))}
	for idx := range items {
		node, err := decodeNode(items[idx])
		if err != nil {
			return nil, err
		}
		stat, ok := node.(Stat)
		if !ok {
			return nil, fmt.Errorf("%w: %s at top level", ErrMisplaced, node.Type())
		}
		prog.Stats = append(prog.Stats, stat)
	}
	return prog, nil
}

func decodeNode(r gjson.Result) (Node, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: node must be an object", ErrInvalidJson)
	}

	line := int(r.Get("line").Int())
	switch typ := r.Get("type").String(); typ {
	case TYPE_MULTIPLE_DECLARATION:
		decl := &MultipleDeclaration{
			Line:         line,
			VarType:      r.Get("var_type").String(),
			Declarations: []Declaration{},
		}
		for _, d := range r.Get("declarations").Array() {
			item := Declaration{Name: d.Get("name").String()}
			if v := d.Get("value"); v.Exists() && v.Type == gjson.Number {
				num := v.Float()
				item.Value = &num
			}
			decl.Declarations = append(decl.Declarations, item)
		}
		return decl, nil

	case TYPE_OUTPUT:
		val, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		return &Output{Line: line, Value: val}, nil

	case TYPE_INPUT:
		return &Input{Line: line, Variable: r.Get("variable").String()}, nil

	case TYPE_RETURN:
		val, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		return &Return{Line: line, Value: val}, nil

	case TYPE_FUNCTION_DECLARATION:
		fn := &FunctionDeclaration{
			Line:       line,
			ReturnType: r.Get("return_type").String(),
			Name:       r.Get("name").String(),
			Parameters: []Parameter{},
			Body:       []BodyStat{},
		}
		for _, p := range r.Get("parameters").Array() {
			fn.Parameters = append(fn.Parameters, Parameter{
				Type: p.Get("type").String(),
				Name: p.Get("name").String(),
			})
		}
		for _, b := range r.Get("body").Array() {
			node, err := decodeNode(b)
			if err != nil {
				return nil, err
			}
			stat, ok := node.(BodyStat)
			if !ok {
				return nil, fmt.Errorf("%w: %s in function body", ErrMisplaced, node.Type())
			}
			fn.Body = append(fn.Body, stat)
		}
		return fn, nil

	case TYPE_CLASS_DECLARATION:
		class := &ClassDeclaration{Line: line, Name: r.Get("name").String(), Body: []*AccessSection{}}
		for _, s := range r.Get("body").Array() {
			node, err := decodeNode(s)
			if err != nil {
				return nil, err
			}
			section, ok := node.(*AccessSection)
			if !ok {
				return nil, fmt.Errorf("%w: %s in class body", ErrMisplaced, node.Type())
			}
			class.Body = append(class.Body, section)
		}
		return class, nil

	case TYPE_ACCESS_SECTION:
		section := &AccessSection{Access: r.Get("access").String(), Members: []Member{}}
		for _, m := range r.Get("members").Array() {
			node, err := decodeNode(m)
			if err != nil {
				return nil, err
			}
			member, ok := node.(Member)
			if !ok {
				return nil, fmt.Errorf("%w: %s in access section", ErrMisplaced, node.Type())
			}
			section.Members = append(section.Members, member)
		}
		return section, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, typ)
	}
}

func decodeValue(r gjson.Result) (Value, error) {
	v := r.Get("value")
	switch kind := r.Get("value_kind").String(); kind {
	case "string":
		return StringValue(v.String()), nil
	case "identifier":
		return IdentValue(v.String()), nil
	case "number":
		return NumberValue(v.Float()), nil
	default:
		return Value{}, fmt.Errorf("%w: value_kind %q", ErrInvalidJson, kind)
	}
}
