package ast

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
)

var (
	Json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Encode serializes a program as a JSON array of nodes. Every node object
// carries a "type" discriminator.
func Encode(prog *Program) ([]byte, error) {
	if prog == nil {
		return []byte("[]"), nil
	}
	return Json.Marshal(prog)
}

// EncodeIndent is Encode with two-space indentation. Short scalar arrays
// stay on one line.
func EncodeIndent(prog *Program) ([]byte, error) {
	data, err := Encode(prog)
	if err != nil {
		return nil, err
	}
	// jsoniter does not re-indent what a MarshalJSON returns
	out := pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  "})
	return bytes.TrimRight(out, "\n"), nil
}

func (self *Program) MarshalJSON() ([]byte, error) {
	if self == nil || self.Stats == nil {
		return []byte("[]"), nil
	}
	return Json.Marshal(self.Stats)
}

func (self *MultipleDeclaration) MarshalJSON() ([]byte, error) {
	decls := self.Declarations
	if decls == nil {
		decls = []Declaration{}
	}
	return Json.Marshal(struct {
		Type         string        `json:"type"`
		VarType      string        `json:"var_type"`
		Declarations []Declaration `json:"declarations"`
		Line         int           `json:"line"`
	}{TYPE_MULTIPLE_DECLARATION, self.VarType, decls, self.Line})
}

func (self *Output) MarshalJSON() ([]byte, error) {
	return Json.Marshal(struct {
		Type      string `json:"type"`
		Value     any    `json:"value"`
		ValueKind string `json:"value_kind"`
		Line      int    `json:"line"`
	}{TYPE_OUTPUT, self.Value.Raw(), self.Value.Kind.String(), self.Line})
}

func (self *Input) MarshalJSON() ([]byte, error) {
	return Json.Marshal(struct {
		Type     string `json:"type"`
		Variable string `json:"variable"`
		Line     int    `json:"line"`
	}{TYPE_INPUT, self.Variable, self.Line})
}

func (self *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	params := self.Parameters
	if params == nil {
		params = []Parameter{}
	}
	body := self.Body
	if body == nil {
		body = []BodyStat{}
	}
	return Json.Marshal(struct {
		Type       string      `json:"type"`
		ReturnType string      `json:"return_type"`
		Name       string      `json:"name"`
		Parameters []Parameter `json:"parameters"`
		Body       []BodyStat  `json:"body"`
		Line       int         `json:"line"`
	}{TYPE_FUNCTION_DECLARATION, self.ReturnType, self.Name, params, body, self.Line})
}

func (self *Return) MarshalJSON() ([]byte, error) {
	return Json.Marshal(struct {
		Type      string `json:"type"`
		Value     any    `json:"value"`
		ValueKind string `json:"value_kind"`
		Line      int    `json:"line"`
	}{TYPE_RETURN, self.Value.Raw(), self.Value.Kind.String(), self.Line})
}

func (self *ClassDeclaration) MarshalJSON() ([]byte, error) {
	body := self.Body
	if body == nil {
		body = []*AccessSection{}
	}
	return Json.Marshal(struct {
		Type string           `json:"type"`
		Name string           `json:"name"`
		Body []*AccessSection `json:"body"`
		Line int              `json:"line"`
	}{TYPE_CLASS_DECLARATION, self.Name, body, self.Line})
}

func (self *AccessSection) MarshalJSON() ([]byte, error) {
	members := self.Members
	if members == nil {
		members = []Member{}
	}
	return Json.Marshal(struct {
		Type    string   `json:"type"`
		Access  string   `json:"access"`
		Members []Member `json:"members"`
	}{TYPE_ACCESS_SECTION, self.Access, members})
}
