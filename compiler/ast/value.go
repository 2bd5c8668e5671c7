package ast

import "strconv"

type ValueKind int

const (
	VALUE_STRING ValueKind = iota
	VALUE_IDENTIFIER
	VALUE_NUMBER
)

var valueKindNames = [...]string{
	VALUE_STRING:     "string",
	VALUE_IDENTIFIER: "identifier",
	VALUE_NUMBER:     "number",
}

func (k ValueKind) String() string {
	if int(k) >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is the operand of cout and return: a string literal, an identifier
// or a number. Str holds the text for the first two kinds.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

func StringValue(s string) Value  { return Value{Kind: VALUE_STRING, Str: s} }
func IdentValue(s string) Value   { return Value{Kind: VALUE_IDENTIFIER, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: VALUE_NUMBER, Num: n} }

// Raw returns the value as a plain string or float64.
func (v Value) Raw() any {
	if v.Kind == VALUE_NUMBER {
		return v.Num
	}
	return v.Str
}

func (v Value) String() string {
	switch v.Kind {
	case VALUE_NUMBER:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case VALUE_STRING:
		return strconv.Quote(v.Str)
	default:
		return v.Str
	}
}
