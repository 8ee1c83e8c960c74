package ast

import (
	"fmt"
	"strconv"
)

// ValueKind identifies template argument value types
type ValueKind int

// Argument value kinds
const (
	ValueKindStr ValueKind = iota
	ValueKindBool
	ValueKindExpression
)

// Argument value kind names
const (
	ValueKindNameStr        = "str"
	ValueKindNameBool       = "bool"
	ValueKindNameExpression = "expression"
)

// String returns the value kind name
func (k ValueKind) String() string {
	switch k {
	case ValueKindBool:
		return ValueKindNameBool
	case ValueKindExpression:
		return ValueKindNameExpression
	default:
		return ValueKindNameStr
	}
}

// ArgumentValue is the value assigned to a template argument.
type ArgumentValue interface {
	ValueKind() ValueKind
	String() string
}

// StrLiteral is a quoted string value with its quote escapes resolved.
type StrLiteral struct {
	Text Text
}

// ValueKind returns ValueKindStr
func (v StrLiteral) ValueKind() ValueKind { return ValueKindStr }

// String returns the value quoted
func (v StrLiteral) String() string { return strconv.Quote(v.Text.String()) }

// BoolLiteral is a bare flag or an explicit true/false value.
type BoolLiteral struct {
	Value bool
}

// ValueKind returns ValueKindBool
func (v BoolLiteral) ValueKind() ValueKind { return ValueKindBool }

// String returns "true" or "false"
func (v BoolLiteral) String() string { return strconv.FormatBool(v.Value) }

// ExpressionValue is an embedded expression value.
type ExpressionValue struct {
	Text Text
}

// ValueKind returns ValueKindExpression
func (v ExpressionValue) ValueKind() ValueKind { return ValueKindExpression }

// String returns the expression wrapped in braces
func (v ExpressionValue) String() string { return "{{" + v.Text.String() + "}}" }

// TemplateArgument is a name/value pair on a child template tag.
type TemplateArgument struct {
	Name   Text
	Value  ArgumentValue
	Offset int
}

// NewTemplateArgument creates a template argument
func NewTemplateArgument(name Text, value ArgumentValue, offset int) TemplateArgument {
	return TemplateArgument{Name: name, Value: value, Offset: offset}
}

// String returns name=value
func (a TemplateArgument) String() string {
	return fmt.Sprintf("%s=%s", a.Name, a.Value)
}
